package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"booking-app-server/internal/config"
	"booking-app-server/internal/handlers"
	"booking-app-server/internal/middleware"
	"booking-app-server/internal/scheduling"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, scheduler *scheduling.Service, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	providerHandler := handlers.NewProviderHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(scheduler)
	notificationHandler := handlers.NewNotificationHandler(db)

	// Public routes (no authentication required)
	router.POST("/users", authHandler.Register)
	router.POST("/sessions", authHandler.Login)

	// Authenticated routes
	private := router.Group("")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		private.GET("/me", authHandler.Profile)
		private.GET("/providers", providerHandler.ListProviders)

		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("", appointmentHandler.ListAppointments)
			appointmentRoutes.DELETE("/:id", appointmentHandler.CancelAppointment)
		}

		notificationRoutes := private.Group("/notifications")
		{
			notificationRoutes.GET("", notificationHandler.ListNotifications)
			notificationRoutes.PATCH("/:id/read", notificationHandler.MarkNotificationRead)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
