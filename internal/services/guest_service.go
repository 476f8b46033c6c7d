package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/weout/promohub/internal/models"
)

// GuestService owns every guest-list mutation. All operations are a
// read-modify-write over the event's embedded guest map: fetch the mapping,
// rewrite one entry, write the merged mapping back. Two concurrent mutations
// on the same event race on that read and the later writer wins with its
// stale base; this is a known limitation of the embedded-map storage shape,
// not something the service guards against.
type GuestService struct {
	store    models.GuestStore
	activity models.ActivityRepo
	logger   *slog.Logger
}

func NewGuestService(store models.GuestStore, activity models.ActivityRepo, logger *slog.Logger) *GuestService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GuestService{
		store:    store,
		activity: activity,
		logger:   logger,
	}
}

// ToggleCheckIn flips the guest's checked_in flag. Callers never pass a
// target state: a pending guest checks in, a checked-in guest reverts to
// pending. The check-in timestamp follows the flag.
func (gs *GuestService) ToggleCheckIn(ctx context.Context, eventID, guestID, actor string) (*models.Guest, error) {
	guests, err := gs.store.FetchGuestMap(ctx, eventID)
	if err != nil {
		return nil, err
	}

	guest, ok := guests[guestID]
	if !ok {
		return nil, models.ErrGuestNotFound
	}

	action := models.ActionCheckIn
	if guest.CheckedIn {
		guest.CheckedIn = false
		guest.CheckInTime = nil
		action = models.ActionUndoCheckIn
	} else {
		now := time.Now()
		guest.CheckedIn = true
		guest.CheckInTime = &now
	}

	guests[guestID] = guest
	if err := gs.store.WriteGuestMap(ctx, eventID, guests); err != nil {
		return nil, err
	}

	gs.record(ctx, eventID, guestID, action, actor, "")
	return &guest, nil
}

// Reject marks the guest rejected. The note is mandatory and is checked
// before any persistence access. A checked-in guest being rejected loses its
// check-in state.
func (gs *GuestService) Reject(ctx context.Context, eventID, guestID, note, actor string) (*models.Guest, error) {
	if strings.TrimSpace(note) == "" {
		return nil, models.ErrNoteRequired
	}

	guests, err := gs.store.FetchGuestMap(ctx, eventID)
	if err != nil {
		return nil, err
	}

	guest, ok := guests[guestID]
	if !ok {
		return nil, models.ErrGuestNotFound
	}

	guest.Rejected = true
	guest.CheckedIn = false
	guest.CheckInTime = nil
	guest.Note = strings.TrimSpace(note)

	guests[guestID] = guest
	if err := gs.store.WriteGuestMap(ctx, eventID, guests); err != nil {
		return nil, err
	}

	gs.record(ctx, eventID, guestID, models.ActionReject, actor, guest.Note)
	return &guest, nil
}

// Unreject returns a rejected guest to pending. The note stays on the
// record; clearing it is an edit, not part of the transition.
func (gs *GuestService) Unreject(ctx context.Context, eventID, guestID, actor string) (*models.Guest, error) {
	guests, err := gs.store.FetchGuestMap(ctx, eventID)
	if err != nil {
		return nil, err
	}

	guest, ok := guests[guestID]
	if !ok {
		return nil, models.ErrGuestNotFound
	}

	guest.Rejected = false

	guests[guestID] = guest
	if err := gs.store.WriteGuestMap(ctx, eventID, guests); err != nil {
		return nil, err
	}

	gs.record(ctx, eventID, guestID, models.ActionUnreject, actor, "")
	return &guest, nil
}

// AddGuest creates a pending guest with a fresh id. Both the manual add and
// the invite-link self-registration go through here; addedBy is the
// promoter's id for invite signups and the staff member's display name for
// manual adds.
func (gs *GuestService) AddGuest(ctx context.Context, eventID string, input models.AddGuestInput, addedBy string) (*models.Guest, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid guest data provided: %v", err)
	}

	guests, err := gs.store.FetchGuestMap(ctx, eventID)
	if err != nil {
		return nil, err
	}

	guest := models.Guest{
		ID:        uuid.NewString(),
		FullName:  strings.TrimSpace(input.FullName),
		Phone:     strings.TrimSpace(input.Phone),
		Email:     strings.TrimSpace(input.Email),
		Instagram: strings.TrimSpace(input.Instagram),
		AddedBy:   addedBy,
		AddedAt:   time.Now(),
	}

	guests[guest.ID] = guest
	if err := gs.store.WriteGuestMap(ctx, eventID, guests); err != nil {
		return nil, err
	}

	return &guest, nil
}

// UpdateGuest edits contact fields and the note. State flags are never
// touched here.
func (gs *GuestService) UpdateGuest(ctx context.Context, eventID, guestID string, input models.UpdateGuestInput) (*models.Guest, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid guest data provided: %v", err)
	}

	guests, err := gs.store.FetchGuestMap(ctx, eventID)
	if err != nil {
		return nil, err
	}

	guest, ok := guests[guestID]
	if !ok {
		return nil, models.ErrGuestNotFound
	}

	if input.FullName != nil {
		guest.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Phone != nil {
		guest.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Email != nil {
		guest.Email = strings.TrimSpace(*input.Email)
	}
	if input.Instagram != nil {
		guest.Instagram = strings.TrimSpace(*input.Instagram)
	}
	if input.Note != nil {
		guest.Note = strings.TrimSpace(*input.Note)
	}

	guests[guestID] = guest
	if err := gs.store.WriteGuestMap(ctx, eventID, guests); err != nil {
		return nil, err
	}

	return &guest, nil
}

// DeleteGuest removes exactly one key from the event's guest map.
func (gs *GuestService) DeleteGuest(ctx context.Context, eventID, guestID string) error {
	guests, err := gs.store.FetchGuestMap(ctx, eventID)
	if err != nil {
		return err
	}

	if _, ok := guests[guestID]; !ok {
		return models.ErrGuestNotFound
	}

	delete(guests, guestID)
	return gs.store.WriteGuestMap(ctx, eventID, guests)
}

// ListGuests returns the event's guests partitioned into the three display
// buckets.
func (gs *GuestService) ListGuests(ctx context.Context, eventID string) (pending, checkedIn, rejected []models.Guest, err error) {
	guests, err := gs.store.FetchGuestMap(ctx, eventID)
	if err != nil {
		return nil, nil, nil, err
	}

	pending, checkedIn, rejected = guests.Partition()
	return pending, checkedIn, rejected, nil
}

// ImportGuests parses comma-delimited text (header row first) and merges one
// new pending guest per data row into the event's map. Existing guests are
// left untouched and no duplicate detection is attempted. Returns the number
// of guests added.
func (gs *GuestService) ImportGuests(ctx context.Context, eventID, csvText, addedBy string) (int, error) {
	rows, err := parseGuestRows(csvText)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	guests, err := gs.store.FetchGuestMap(ctx, eventID)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	for _, row := range rows {
		guest := models.Guest{
			ID:        uuid.NewString(),
			FullName:  row.name,
			Email:     row.email,
			Phone:     row.phone,
			Instagram: row.instagram,
			AddedBy:   addedBy,
			AddedAt:   now,
		}
		guests[guest.ID] = guest
	}

	if err := gs.store.WriteGuestMap(ctx, eventID, guests); err != nil {
		return 0, err
	}

	return len(rows), nil
}

type guestRow struct {
	name      string
	email     string
	phone     string
	instagram string
}

// parseGuestRows reads header + data rows. Header names are matched
// case-insensitively; unknown columns are ignored; rows shorter than the
// header default missing fields to "".
func parseGuestRows(csvText string) ([]guestRow, error) {
	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV header: %v", err)
	}

	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	field := func(record []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var rows []guestRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV row: %v", err)
		}

		row := guestRow{
			name:      field(record, "name"),
			email:     field(record, "email"),
			phone:     field(record, "phone"),
			instagram: field(record, "instagram"),
		}
		if row.name == "" {
			row.name = field(record, "full_name")
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// record appends to the activity log. The log is advisory: a failed append
// is logged and the door operation still succeeds.
func (gs *GuestService) record(ctx context.Context, eventID, guestID, action, actor, note string) {
	if gs.activity == nil {
		return
	}

	entry := &models.ActivityEntry{
		EventID: eventID,
		GuestID: guestID,
		Action:  action,
		Actor:   actor,
		Note:    note,
	}
	if err := gs.activity.RecordActivity(ctx, entry); err != nil {
		gs.logger.Error("failed to record guest activity",
			"event_id", eventID,
			"guest_id", guestID,
			"action", action,
			"error", err,
		)
	}
}

// EventActivity reads the door audit trail for an event, newest first.
func (gs *GuestService) EventActivity(ctx context.Context, eventID string, limit int64) ([]*models.ActivityEntry, error) {
	if gs.activity == nil {
		return []*models.ActivityEntry{}, nil
	}
	if limit <= 0 {
		limit = 100
	}
	return gs.activity.ListEventActivity(ctx, eventID, limit)
}
