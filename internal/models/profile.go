package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin    = "admin"
	RolePromoter = "promoter"
	RoleUser     = "user"
)

type Profile struct {
	ID          uuid.UUID `db:"id" json:"id"`
	FullName    string    `db:"full_name" json:"full_name"`
	Email       string    `db:"email" json:"email"`
	Role        string    `db:"role" json:"role"`
	Company     string    `db:"company" json:"company,omitempty"`
	PhoneNumber string    `db:"phone_number" json:"phone_number,omitempty"`
	Instagram   string    `db:"instagram" json:"instagram,omitempty"`
	AvatarURL   string    `db:"avatar_url" json:"avatar_url,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Promoter is the directory card shape: a profile plus how many events the
// promoter is attached to.
type Promoter struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"full_name"`
	Company    string    `json:"company,omitempty"`
	Role       string    `json:"role"`
	EventCount int       `json:"event_count"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
}
