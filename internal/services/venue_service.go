package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/weout/promohub/internal/models"
)

type VenueService struct {
	venuesRepo models.VenuesRepo
}

func NewVenueService(venuesRepo models.VenuesRepo) *VenueService {
	return &VenueService{
		venuesRepo: venuesRepo,
	}
}

func (vs *VenueService) CreateVenue(ctx context.Context, input models.CreateVenueInput, accessToken string) (*models.Venue, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid venue data provided: %v", err)
	}

	venue := &models.Venue{
		ID:          uuid.New(),
		Name:        input.Name,
		Address:     input.Address,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CreatedAt:   time.Now(),
	}

	return vs.venuesRepo.CreateVenue(ctx, venue, accessToken)
}

func (vs *VenueService) GetVenue(ctx context.Context, id uuid.UUID) (*models.Venue, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid venue ID")
	}

	return vs.venuesRepo.GetVenueByID(ctx, id)
}

func (vs *VenueService) ListVenues(ctx context.Context, offset, limit int) ([]*models.Venue, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}

	return vs.venuesRepo.ListVenues(ctx, offset, limit)
}
