package models

import (
	"time"

	"github.com/google/uuid"
)

type Venue struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Address     string    `db:"address" json:"address,omitempty"`
	Description string    `db:"description" json:"description,omitempty"`
	ImageURL    string    `db:"image_url" json:"image_url,omitempty"`
	Events      []Event   `db:"events" json:"events,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CreateVenueInput struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}
