package models

import "time"

type ContactMessage struct {
	Name      string    `db:"name" json:"name" validate:"required"`
	Phone     string    `db:"phone" json:"phone" validate:"required"`
	Message   string    `db:"message" json:"message" validate:"required"`
	Status    string    `db:"status" json:"status,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at,omitempty"`
}
