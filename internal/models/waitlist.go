package models

import "time"

type WaitlistEntry struct {
	FullName  string    `db:"full_name" json:"full_name" validate:"required"`
	Email     string    `db:"email" json:"email" validate:"required,email"`
	Role      string    `db:"role" json:"role" validate:"required,oneof=promoter user venue"`
	CreatedAt time.Time `db:"created_at" json:"created_at,omitempty"`
}
