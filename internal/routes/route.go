package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/weout/promohub/internal/container"
	"github.com/weout/promohub/internal/handlers"
	"github.com/weout/promohub/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "promohub-api",
			})
		})

		// public routes
		v1.POST("/signup", handlers.Signup(container.UserService))
		v1.POST("/login", handlers.Login(container.UserService))
		v1.POST("/logout", handlers.Logout())
		v1.POST("/waitlist", handlers.JoinWaitlist(container.WaitlistService))
		v1.POST("/contact", handlers.SubmitContactMessage(container.WaitlistService))

		// the invite link surface: resolve + self-registration
		v1.GET("/invites/:code", handlers.ResolveInvite(container.EventService))
		v1.POST("/invites/:code/guests", handlers.InviteSignup(container.EventService, container.GuestService))

		// public directories
		v1.GET("/promoters", handlers.ListPromoters(container.UserService))
		v1.GET("/venues", handlers.ListVenues(container.VenueService))
		v1.GET("/venues/:id", handlers.GetVenue(container.VenueService))
		v1.GET("/events", handlers.ListEvents(container.EventService))
		v1.GET("/events/:id", handlers.GetEvent(container.EventService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.UserService, container.Logger))

	protected.GET("/profile", handlers.CurrentProfile())

	userRoutes := protected.Group("/users")
	{
		userRoutes.GET("/:id", handlers.GetProfile(container.UserService))
		userRoutes.PATCH("/:id", handlers.UpdateProfile(container.UserService))
	}

	eventRoutes := protected.Group("/events")
	{
		eventRoutes.POST("/", handlers.CreateEvent(container.EventService))
		eventRoutes.PATCH("/:id", handlers.UpdateEvent(container.EventService))
		eventRoutes.DELETE("/:id", handlers.DeleteEvent(container.EventService))
		eventRoutes.GET("/:id/invite-link", handlers.InviteLink(container.EventService))

		// guest list workflows
		eventRoutes.GET("/:id/guests", handlers.ListGuests(container.EventService, container.GuestService))
		eventRoutes.POST("/:id/guests", handlers.AddGuest(container.EventService, container.GuestService))
		eventRoutes.POST("/:id/guests/import", handlers.ImportGuests(container.EventService, container.GuestService))
		eventRoutes.PATCH("/:id/guests/:guestId", handlers.UpdateGuest(container.EventService, container.GuestService))
		eventRoutes.DELETE("/:id/guests/:guestId", handlers.DeleteGuest(container.EventService, container.GuestService))
		eventRoutes.POST("/:id/guests/:guestId/checkin", handlers.CheckInGuest(container.EventService, container.GuestService))
		eventRoutes.POST("/:id/guests/:guestId/reject", handlers.RejectGuest(container.EventService, container.GuestService))
		eventRoutes.POST("/:id/guests/:guestId/unreject", handlers.UnrejectGuest(container.EventService, container.GuestService))
		eventRoutes.GET("/:id/activity", handlers.EventActivity(container.EventService, container.GuestService))
	}

	venueRoutes := protected.Group("/venues")
	{
		venueRoutes.POST("/", handlers.CreateVenue(container.VenueService))
	}

	return r
}
