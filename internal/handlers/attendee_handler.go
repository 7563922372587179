package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/stretch/internal/services"
	"github.com/joshua-takyi/stretch/internal/views"
)

func AttendeeHome(es *services.EventService, ss *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		settings, _, err := ss.Current(ctx)
		if err != nil {
			respondError(c, err)
			return
		}

		events, err := es.PublishedSchedule(ctx)
		if err != nil {
			respondError(c, err)
			return
		}

		c.HTML(http.StatusOK, views.AttendeeHome, gin.H{
			"Settings": settings,
			"Events":   events,
		})
	}
}
