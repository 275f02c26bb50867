package routes

import (
	"net/http"

	"eventdesk/internal/container"
	"eventdesk/internal/handlers"
	"eventdesk/internal/middleware"
	"eventdesk/internal/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	r.GET("/", handlers.HealthHandler())
	r.GET("/ready", handlers.ReadinessHandler(container.MongoDBClient))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	eventRoutes := r.Group("/events")
	{
		eventRoutes.POST("", handlers.CreateEventHandler(container.Events))
		eventRoutes.GET("", handlers.ListEventsHandler(container.Events))
		eventRoutes.GET("/:id", handlers.GetEventHandler(container.Events))
		eventRoutes.PUT("/:id", handlers.UpdateEventHandler(container.Events))
		eventRoutes.DELETE("/:id", handlers.DeleteEventHandler(container.Events))
	}

	attendeeRoutes := r.Group("/attendees")
	{
		attendeeRoutes.POST("", handlers.CreateAttendeeHandler(container.Attendees))
		attendeeRoutes.GET("", handlers.ListAttendeesHandler(container.Attendees))
		attendeeRoutes.GET("/:id", handlers.GetAttendeeHandler(container.Attendees))
		attendeeRoutes.PUT("/:id", handlers.UpdateAttendeeHandler(container.Attendees))
		attendeeRoutes.DELETE("/:id", handlers.DeleteAttendeeHandler(container.Attendees))
	}

	venueRoutes := r.Group("/venues")
	{
		venueRoutes.POST("", handlers.CreateVenueHandler(container.Venues))
		venueRoutes.GET("", handlers.ListVenuesHandler(container.Venues))
		venueRoutes.GET("/:id", handlers.GetVenueHandler(container.Venues))
		venueRoutes.PUT("/:id", handlers.UpdateVenueHandler(container.Venues))
		venueRoutes.DELETE("/:id", handlers.DeleteVenueHandler(container.Venues))
	}

	bookingRoutes := r.Group("/bookings")
	{
		bookingRoutes.POST("", handlers.CreateBookingHandler(container.Bookings))
		bookingRoutes.GET("", handlers.ListBookingsHandler(container.Bookings))
		bookingRoutes.GET("/:id", handlers.GetBookingHandler(container.Bookings))
		bookingRoutes.PUT("/:id", handlers.UpdateBookingHandler(container.Bookings))
		bookingRoutes.DELETE("/:id", handlers.DeleteBookingHandler(container.Bookings))
	}

	r.POST("/upload_event_poster/:event_id", handlers.UploadAssetHandler(container.Assets, models.EventPosterKind, "event_id", "Event poster uploaded"))
	r.GET("/event_poster/:event_id", handlers.FetchAssetHandler(container.Assets, models.EventPosterKind, "event_id", "Poster not found"))
	r.POST("/upload_promo_video/:event_id", handlers.UploadAssetHandler(container.Assets, models.PromoVideoKind, "event_id", "Promo video uploaded"))
	r.GET("/promo_video/:event_id", handlers.FetchAssetHandler(container.Assets, models.PromoVideoKind, "event_id", "Promo video not found"))
	r.POST("/upload_venue_photo/:venue_id", handlers.UploadAssetHandler(container.Assets, models.VenuePhotoKind, "venue_id", "Venue photo uploaded"))
	r.GET("/venue_photo/:venue_id", handlers.FetchAssetHandler(container.Assets, models.VenuePhotoKind, "venue_id", "Venue photo not found"))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"detail": "Method Not Allowed"})
	})

	return r
}
