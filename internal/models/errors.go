package models

import "errors"

// Sentinel errors for the failure modes handlers care about. Everything else
// is wrapped with fmt.Errorf at the repo boundary and surfaced as a generic
// persistence failure.
var (
	ErrEventNotFound   = errors.New("event not found")
	ErrGuestNotFound   = errors.New("guest not found")
	ErrVenueNotFound   = errors.New("venue not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrDuplicateEntry  = errors.New("already on the waitlist")
	ErrNoteRequired    = errors.New("a note is required to reject a guest")
	ErrNotAuthorized   = errors.New("not authorized")
)
