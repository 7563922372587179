package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/stretch/internal/helpers"
	"github.com/joshua-takyi/stretch/internal/models"
	"github.com/joshua-takyi/stretch/internal/services"
	"github.com/joshua-takyi/stretch/internal/views"
)

const organiserHomePath = "/organiser-home"

func OrganiserHome(es *services.EventService, ss *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		settings, _, err := ss.Current(ctx)
		if err != nil {
			respondError(c, err)
			return
		}

		dash, err := es.Dashboard(ctx)
		if err != nil {
			respondError(c, err)
			return
		}

		c.HTML(http.StatusOK, views.OrganiserHome, gin.H{
			"Settings":  settings,
			"Published": dash.Published,
			"Drafts":    dash.Drafts,
		})
	}
}

func CreateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := es.CreateDraft(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.Redirect(http.StatusFound, fmt.Sprintf("/events/%d/edit", id))
	}
}

func EditEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}

		event, err := es.GetEvent(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		c.HTML(http.StatusOK, views.EditEvent, gin.H{"Event": event})
	}
}

func UpdateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}

		var form models.EventForm
		if err := c.ShouldBind(&form); err != nil {
			c.String(http.StatusBadRequest, "invalid form submission")
			return
		}

		if err := es.UpdateEvent(c.Request.Context(), id, form); err != nil {
			respondError(c, err)
			return
		}

		c.Redirect(http.StatusFound, organiserHomePath)
	}
}

// PublishEvent redirects even when the id matches nothing.
func PublishEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}

		if err := es.PublishEvent(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}

		c.Redirect(http.StatusFound, organiserHomePath)
	}
}

func DeleteEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := helpers.ParseID(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}

		if err := es.DeleteEvent(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}

		c.Redirect(http.StatusFound, organiserHomePath)
	}
}
