package models

import (
	"time"

	"github.com/google/uuid"
)

// Event owns its guest map exclusively; deleting the event takes the guests
// with it. Promoters holds profile ids of the promoters working the event.
type Event struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description,omitempty"`
	Date        string    `db:"date" json:"date"`             // YYYY-MM-DD
	StartTime   string    `db:"start_time" json:"start_time"` // HH:MM
	EndTime     string    `db:"end_time" json:"end_time"`     // HH:MM
	VenueID     uuid.UUID `db:"venue_id" json:"venue_id"`
	Promoters   []string  `db:"promoters" json:"promoters"`
	Guests      GuestMap  `db:"guests" json:"guests,omitempty"`
	ImageURL    string    `db:"image_url" json:"image_url,omitempty"`
	CreatedBy   string    `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Public returns a copy stripped for unauthenticated responses. The guest
// list carries names, phones and emails, so it only ever leaves through the
// protected guest routes.
func (e *Event) Public() *Event {
	out := *e
	out.Guests = nil
	return &out
}

// HasPromoter reports whether the given profile id works this event.
func (e *Event) HasPromoter(profileID string) bool {
	for _, p := range e.Promoters {
		if p == profileID {
			return true
		}
	}
	return false
}

type CreateEventInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string   `json:"start_time" validate:"required"`
	EndTime     string   `json:"end_time" validate:"required"`
	VenueID     string   `json:"venue_id" validate:"required,uuid"`
	Promoters   []string `json:"promoters" validate:"dive,uuid"`
	Image       string   `json:"image"` // local path or data URI, uploaded before insert
}

// UpdateEventInput is a partial update; nil fields are left untouched.
type UpdateEventInput struct {
	Name        *string   `json:"name" validate:"omitempty,min=1"`
	Description *string   `json:"description"`
	Date        *string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string   `json:"start_time"`
	EndTime     *string   `json:"end_time"`
	VenueID     *string   `json:"venue_id" validate:"omitempty,uuid"`
	Promoters   *[]string `json:"promoters" validate:"omitempty,dive,uuid"`
	Image       *string   `json:"image"`
}
