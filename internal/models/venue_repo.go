package models

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type VenuesRepo interface {
	CreateVenue(ctx context.Context, venue *Venue, accessToken string) (*Venue, error)
	GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	ListVenues(ctx context.Context, offset, limit int) ([]*Venue, int, error)
}

func (su *SupabaseRepo) CreateVenue(ctx context.Context, venue *Venue, accessToken string) (*Venue, error) {
	client, err := su.client(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated client: %v", err)
	}

	venueData := map[string]interface{}{
		"id":          venue.ID,
		"name":        venue.Name,
		"address":     venue.Address,
		"description": venue.Description,
		"image_url":   venue.ImageURL,
		"created_at":  time.Now(),
	}

	data, count, err := client.
		From(VenuesTable).
		Insert(venueData, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create venue: %v", err)
	}

	var created []Venue
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created venue: %v", err)
	}

	if count == 0 || len(created) == 0 {
		return venue, nil
	}

	return &created[0], nil
}

// GetVenueByID also pulls the venue's events through the PostgREST embedded
// resource syntax, matching the venue detail page. The embed names its
// columns so the guests map never rides along on this public read.
func (su *SupabaseRepo) GetVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}

	data, _, err := su.supabaseClient.
		From(VenuesTable).
		Select("*, events(id,name,description,date,start_time,end_time,venue_id,image_url,created_at)", "exact", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get venue by ID: %v", err)
	}

	var venues []Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue rows: %v", err)
	}

	if len(venues) == 0 {
		return nil, ErrVenueNotFound
	}

	return &venues[0], nil
}

func (su *SupabaseRepo) ListVenues(ctx context.Context, offset, limit int) ([]*Venue, int, error) {
	data, count, err := su.supabaseClient.
		From(VenuesTable).
		Select("*", "exact", false).
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list venues: %v", err)
	}

	if count == 0 {
		return []*Venue{}, 0, nil
	}

	var rows []Venue
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal venues: %v", err)
	}

	venues := make([]*Venue, 0, len(rows))
	for i := range rows {
		venues = append(venues, &rows[i])
	}

	return venues, int(count), nil
}
