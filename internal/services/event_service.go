package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/weout/promohub/internal/connect"
	"github.com/weout/promohub/internal/helpers"
	"github.com/weout/promohub/internal/invite"
	"github.com/weout/promohub/internal/models"
)

type EventService struct {
	eventsRepo   models.EventsRepo
	profilesRepo models.ProfilesRepo
	baseURL      string
}

func NewEventService(eventsRepo models.EventsRepo, profilesRepo models.ProfilesRepo, baseURL string) *EventService {
	return &EventService{
		eventsRepo:   eventsRepo,
		profilesRepo: profilesRepo,
		baseURL:      strings.TrimRight(baseURL, "/"),
	}
}

func (es *EventService) CreateEvent(ctx context.Context, input models.CreateEventInput, createdBy string, accessToken string) (*models.Event, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid event data provided: %v", err)
	}

	venueID, err := uuid.Parse(input.VenueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue ID: %v", err)
	}

	now := time.Now()
	event := &models.Event{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		VenueID:     venueID,
		Promoters:   input.Promoters,
		Guests:      models.GuestMap{},
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if event.Promoters == nil {
		event.Promoters = []string{}
	}

	var uploadedPublicIDs []string
	if input.Image != "" {
		urls, publicIDs, uploadErr := helpers.UploadImages(ctx, connect.Cld, []string{input.Image}, helpers.EventsFolder)
		if uploadErr != nil {
			return nil, fmt.Errorf("failed to upload event image: %v", uploadErr)
		}
		event.ImageURL = urls[0]
		uploadedPublicIDs = publicIDs
	}

	created, err := es.eventsRepo.CreateEvent(ctx, event, accessToken)
	if err != nil {
		if len(uploadedPublicIDs) > 0 {
			helpers.DeleteImages(ctx, connect.Cld, helpers.EventsFolder, uploadedPublicIDs)
		}
		return nil, err
	}

	return created, nil
}

func (es *EventService) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid event ID")
	}

	return es.eventsRepo.GetEventByID(ctx, id)
}

func (es *EventService) ListEvents(ctx context.Context, offset, limit int) ([]*models.Event, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}

	return es.eventsRepo.ListEvents(ctx, offset, limit)
}

func (es *EventService) UpdateEvent(ctx context.Context, id uuid.UUID, input models.UpdateEventInput, accessToken string) (*models.Event, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid event ID")
	}
	if err := models.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid event data provided: %v", err)
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		fields["description"] = strings.TrimSpace(*input.Description)
	}
	if input.Date != nil {
		fields["date"] = *input.Date
	}
	if input.StartTime != nil {
		fields["start_time"] = *input.StartTime
	}
	if input.EndTime != nil {
		fields["end_time"] = *input.EndTime
	}
	if input.VenueID != nil {
		fields["venue_id"] = *input.VenueID
	}
	if input.Promoters != nil {
		fields["promoters"] = *input.Promoters
	}
	if input.Image != nil && *input.Image != "" {
		urls, _, uploadErr := helpers.UploadImages(ctx, connect.Cld, []string{*input.Image}, helpers.EventsFolder)
		if uploadErr != nil {
			return nil, fmt.Errorf("failed to upload event image: %v", uploadErr)
		}
		fields["image_url"] = urls[0]
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	return es.eventsRepo.UpdateEvent(ctx, id, fields, accessToken)
}

// DeleteEvent removes the event row. The guest map is embedded in the row,
// so the guests go with it.
func (es *EventService) DeleteEvent(ctx context.Context, id uuid.UUID, accessToken string) error {
	if id == uuid.Nil {
		return fmt.Errorf("invalid event ID")
	}

	return es.eventsRepo.DeleteEvent(ctx, id, accessToken)
}

// InviteLink builds the absolute invite URL for a promoter on an event.
func (es *EventService) InviteLink(eventID, promoterID string) (string, error) {
	if eventID == "" || promoterID == "" {
		return "", fmt.Errorf("event ID and promoter ID are required")
	}

	token, err := invite.Encode(invite.Data{
		EventID:    eventID,
		PromoterID: promoterID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode invite: %v", err)
	}

	return es.baseURL + "/" + token, nil
}

// ResolveInvite decodes an invite token and loads the event plus the
// inviting promoter's profile. Any malformed token resolves to
// ErrInvalidToken rather than an internal failure.
func (es *EventService) ResolveInvite(ctx context.Context, token string) (*models.Event, *models.Profile, error) {
	data, err := invite.Decode(token)
	if err != nil {
		return nil, nil, err
	}

	eventID, err := uuid.Parse(data.EventID)
	if err != nil {
		return nil, nil, invite.ErrInvalidToken
	}
	promoterID, err := uuid.Parse(data.PromoterID)
	if err != nil {
		return nil, nil, invite.ErrInvalidToken
	}

	event, err := es.eventsRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	promoter, err := es.profilesRepo.GetProfile(ctx, promoterID, "")
	if err != nil {
		return nil, nil, err
	}

	return event, promoter, nil
}
