package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/stretch/internal/container"
	"github.com/joshua-takyi/stretch/internal/handlers"
	"github.com/joshua-takyi/stretch/internal/middleware"
	"github.com/joshua-takyi/stretch/internal/views"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(views.MustLoad())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     container.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"service": "stretch-yoga",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", handlers.Home())
	r.GET("/attendee", handlers.AttendeeHome(container.EventService, container.SettingsService))

	// organiser pages; there is no authentication in front of these
	r.GET("/organiser-home", handlers.OrganiserHome(container.EventService, container.SettingsService))

	eventRoutes := r.Group("/events")
	{
		eventRoutes.POST("/create", handlers.CreateEvent(container.EventService))
		eventRoutes.GET("/:id/edit", handlers.EditEvent(container.EventService))
		eventRoutes.POST("/:id/publish", handlers.PublishEvent(container.EventService))
		eventRoutes.POST("/:id/update", handlers.UpdateEvent(container.EventService))
		eventRoutes.POST("/:id/delete", handlers.DeleteEvent(container.EventService))
	}

	r.GET("/site-settings", handlers.SiteSettingsPage(container.SettingsService))
	r.POST("/site-settings", handlers.UpdateSiteSettings(container.SettingsService))

	return r
}
