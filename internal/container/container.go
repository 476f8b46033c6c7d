package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/supabase-community/supabase-go"
	"github.com/weout/promohub/internal/models"
	"github.com/weout/promohub/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary
	// Database clients
	SupabaseClient  *supabase.Client
	MongoDBClient   *mongo.Client
	UserService     *services.UserService
	EventService    *services.EventService
	GuestService    *services.GuestService
	VenueService    *services.VenueService
	WaitlistService *services.WaitlistService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cloudinary *cloudinary.Cloudinary,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	supaUrl, supaKey, appBaseURL string,
) *Container {
	// Initialize repositories
	supa := models.SupabaseNewRepo(supabaseClient, supaUrl, supaKey)
	mongo := models.MongodbNewRepo(mongoDBClient)

	userService := services.NewUserService(supa, supa)
	eventService := services.NewEventService(supa, supa, appBaseURL)
	guestService := services.NewGuestService(supa, mongo, logger)
	venueService := services.NewVenueService(supa)
	waitlistService := services.NewWaitlistService(supa)

	return &Container{
		Logger:          logger,
		Cloudinary:      cloudinary,
		SupabaseClient:  supabaseClient,
		MongoDBClient:   mongoDBClient,
		UserService:     userService,
		EventService:    eventService,
		GuestService:    guestService,
		VenueService:    venueService,
		WaitlistService: waitlistService,
	}
}
