package models

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

type EventsRepo interface {
	CreateEvent(ctx context.Context, event *Event, accessToken string) (*Event, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error)
	ListEvents(ctx context.Context, offset, limit int) ([]*Event, int, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, fields map[string]interface{}, accessToken string) (*Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID, accessToken string) error
}

// GuestStore is the persistence contract the guest domain logic runs on.
// The whole mapping is fetched and rewritten on every mutation; the events
// table has no per-guest rows to update.
type GuestStore interface {
	FetchGuestMap(ctx context.Context, eventID string) (GuestMap, error)
	WriteGuestMap(ctx context.Context, eventID string, guests GuestMap) error
}

func (su *SupabaseRepo) CreateEvent(ctx context.Context, event *Event, accessToken string) (*Event, error) {
	client, err := su.client(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated client: %v", err)
	}

	eventData := map[string]interface{}{
		"id":          event.ID,
		"name":        event.Name,
		"description": event.Description,
		"date":        event.Date,
		"start_time":  event.StartTime,
		"end_time":    event.EndTime,
		"venue_id":    event.VenueID,
		"promoters":   event.Promoters,
		"guests":      event.Guests,
		"image_url":   event.ImageURL,
		"created_by":  event.CreatedBy,
		"created_at":  event.CreatedAt,
		"updated_at":  event.UpdatedAt,
	}

	data, count, err := client.
		From(EventsTable).
		Insert(eventData, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %v", err)
	}

	var created []Event
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created event: %v", err)
	}

	if count == 0 || len(created) == 0 {
		// Insert succeeded but no representation came back; echo the input.
		return event, nil
	}

	return &created[0], nil
}

func (su *SupabaseRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}

	data, _, err := su.supabaseClient.
		From(EventsTable).
		Select("*", "exact", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get event by ID: %v", err)
	}

	// Supabase returns an array even for single results
	var events []Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event rows: %v", err)
	}

	if len(events) == 0 {
		return nil, ErrEventNotFound
	}

	event := &events[0]
	if event.Guests == nil {
		event.Guests = GuestMap{}
	}
	return event, nil
}

func (su *SupabaseRepo) ListEvents(ctx context.Context, offset, limit int) ([]*Event, int, error) {
	data, count, err := su.supabaseClient.
		From(EventsTable).
		Select("*", "exact", false).
		Order("date", &postgrest.OrderOpts{Ascending: true}).
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %v", err)
	}

	if count == 0 {
		return []*Event{}, 0, nil
	}

	var rows []Event
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal events: %v", err)
	}

	events := make([]*Event, 0, len(rows))
	for i := range rows {
		if rows[i].Guests == nil {
			rows[i].Guests = GuestMap{}
		}
		if rows[i].Promoters == nil {
			rows[i].Promoters = []string{}
		}
		events = append(events, &rows[i])
	}

	return events, int(count), nil
}

func (su *SupabaseRepo) UpdateEvent(ctx context.Context, id uuid.UUID, fields map[string]interface{}, accessToken string) (*Event, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	client, err := su.client(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated client: %v", err)
	}

	fields["updated_at"] = time.Now()

	data, count, err := client.
		From(EventsTable).
		Update(fields, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %v", err)
	}

	if count == 0 {
		return nil, ErrEventNotFound
	}

	var updated []Event
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated event: %v", err)
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("no event data returned after update")
	}

	return &updated[0], nil
}

func (su *SupabaseRepo) DeleteEvent(ctx context.Context, id uuid.UUID, accessToken string) error {
	if id == uuid.Nil {
		return fmt.Errorf("invalid UUID")
	}

	client, err := su.client(accessToken)
	if err != nil {
		return fmt.Errorf("failed to create authenticated client: %v", err)
	}

	_, count, err := client.
		From(EventsTable).
		Delete("", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete event: %v", err)
	}

	if count == 0 {
		return ErrEventNotFound
	}

	return nil
}

func (su *SupabaseRepo) FetchGuestMap(ctx context.Context, eventID string) (GuestMap, error) {
	if eventID == "" {
		return nil, fmt.Errorf("event ID is required")
	}

	data, _, err := su.supabaseClient.
		From(EventsTable).
		Select("guests", "exact", false).
		Eq("id", eventID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guest map: %v", err)
	}

	var rows []struct {
		Guests GuestMap `json:"guests"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guest map: %v", err)
	}

	if len(rows) == 0 {
		return nil, ErrEventNotFound
	}

	if rows[0].Guests == nil {
		return GuestMap{}, nil
	}
	return rows[0].Guests, nil
}

func (su *SupabaseRepo) WriteGuestMap(ctx context.Context, eventID string, guests GuestMap) error {
	if eventID == "" {
		return fmt.Errorf("event ID is required")
	}

	_, count, err := su.supabaseClient.
		From(EventsTable).
		Update(map[string]interface{}{
			"guests":     guests,
			"updated_at": time.Now(),
		}, "", "exact").
		Eq("id", eventID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to write guest map: %v", err)
	}

	if count == 0 {
		return ErrEventNotFound
	}

	return nil
}
