package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/stretch/internal/models"
	"github.com/joshua-takyi/stretch/internal/services"
	"github.com/joshua-takyi/stretch/internal/views"
)

const siteSettingsPath = "/site-settings"

// SiteSettingsPage redirects back to itself after seeding a missing row.
func SiteSettingsPage(ss *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, created, err := ss.Current(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if created {
			c.Redirect(http.StatusFound, siteSettingsPath)
			return
		}

		c.HTML(http.StatusOK, views.SiteSettings, gin.H{"Settings": settings})
	}
}

func UpdateSiteSettings(ss *services.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.SiteSettings
		if err := c.ShouldBind(&input); err != nil {
			c.String(http.StatusBadRequest, "invalid form submission")
			return
		}

		if _, err := ss.Update(c.Request.Context(), input); err != nil {
			respondError(c, err)
			return
		}

		c.Redirect(http.StatusFound, organiserHomePath)
	}
}
