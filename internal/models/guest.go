package models

import "time"

// GuestStatus is the display state of a guest. A guest is in exactly one of
// the three states; Rejected wins over CheckedIn when both flags are set.
type GuestStatus string

const (
	GuestPending   GuestStatus = "pending"
	GuestCheckedIn GuestStatus = "checked_in"
	GuestRejected  GuestStatus = "rejected"
)

// Guest is one entry in an event's embedded guest map. Guests have no life
// of their own: the owning Event row is the only place they exist.
type Guest struct {
	ID          string     `json:"id"`
	FullName    string     `json:"full_name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email,omitempty"`
	Instagram   string     `json:"instagram,omitempty"`
	Note        string     `json:"note,omitempty"`
	AddedBy     string     `json:"added_by"`
	AddedAt     time.Time  `json:"added_at"`
	CheckedIn   bool       `json:"checked_in"`
	CheckInTime *time.Time `json:"check_in_time"`
	Rejected    bool       `json:"rejected"`
}

func (g Guest) Status() GuestStatus {
	switch {
	case g.Rejected:
		return GuestRejected
	case g.CheckedIn:
		return GuestCheckedIn
	default:
		return GuestPending
	}
}

// GuestMap is the per-event guest mapping, keyed by guest id.
type GuestMap map[string]Guest

// Partition splits the map into the three display buckets.
func (gm GuestMap) Partition() (pending, checkedIn, rejected []Guest) {
	for _, g := range gm {
		switch g.Status() {
		case GuestRejected:
			rejected = append(rejected, g)
		case GuestCheckedIn:
			checkedIn = append(checkedIn, g)
		default:
			pending = append(pending, g)
		}
	}
	return pending, checkedIn, rejected
}

// AddGuestInput is the validated payload for a single manual or invite-link
// registration.
type AddGuestInput struct {
	FullName  string `json:"full_name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Instagram string `json:"instagram"`
}

// UpdateGuestInput edits contact fields and the note without touching the
// state flags.
type UpdateGuestInput struct {
	FullName  *string `json:"full_name" validate:"omitempty,min=1"`
	Phone     *string `json:"phone" validate:"omitempty,min=1"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Instagram *string `json:"instagram"`
	Note      *string `json:"note"`
}

// ImportGuestsInput carries raw delimited text for bulk import.
type ImportGuestsInput struct {
	CSV string `json:"csv" validate:"required"`
}
