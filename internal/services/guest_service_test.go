package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weout/promohub/internal/models"
)

// fakeGuestStore is an in-memory stand-in for the events table. Fetch hands
// back a copy so the service's read-modify-write cycle behaves like a real
// round trip.
type fakeGuestStore struct {
	maps       map[string]models.GuestMap
	fetchCalls int
	writeCalls int
	writeErr   error
}

func newFakeGuestStore(events ...string) *fakeGuestStore {
	maps := map[string]models.GuestMap{}
	for _, id := range events {
		maps[id] = models.GuestMap{}
	}
	return &fakeGuestStore{maps: maps}
}

func (f *fakeGuestStore) FetchGuestMap(ctx context.Context, eventID string) (models.GuestMap, error) {
	f.fetchCalls++
	m, ok := f.maps[eventID]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	out := models.GuestMap{}
	for k, v := range m {
		out[k] = v
	}
	return out, nil
}

func (f *fakeGuestStore) WriteGuestMap(ctx context.Context, eventID string, guests models.GuestMap) error {
	f.writeCalls++
	if f.writeErr != nil {
		return f.writeErr
	}
	if _, ok := f.maps[eventID]; !ok {
		return models.ErrEventNotFound
	}
	f.maps[eventID] = guests
	return nil
}

type fakeActivityRepo struct {
	entries []*models.ActivityEntry
}

func (f *fakeActivityRepo) RecordActivity(ctx context.Context, entry *models.ActivityEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeActivityRepo) ListEventActivity(ctx context.Context, eventID string, limit int64) ([]*models.ActivityEntry, error) {
	return f.entries, nil
}

func newTestService(store *fakeGuestStore) (*GuestService, *fakeActivityRepo) {
	activity := &fakeActivityRepo{}
	return NewGuestService(store, activity, nil), activity
}

func addPendingGuest(store *fakeGuestStore, eventID, guestID, name string) {
	store.maps[eventID][guestID] = models.Guest{
		ID:       guestID,
		FullName: name,
		Phone:    "555-0000",
		AddedBy:  "test",
		AddedAt:  time.Now(),
	}
}

func TestToggleCheckInFlipsStateAndTimestamp(t *testing.T) {
	store := newFakeGuestStore("e1")
	addPendingGuest(store, "e1", "g1", "Alice")
	svc, _ := newTestService(store)

	guest, err := svc.ToggleCheckIn(context.Background(), "e1", "g1", "door")
	require.NoError(t, err)
	assert.True(t, guest.CheckedIn)
	require.NotNil(t, guest.CheckInTime)
	assert.Equal(t, models.GuestCheckedIn, guest.Status())

	// Toggling again returns the guest to pending with the timestamp cleared.
	guest, err = svc.ToggleCheckIn(context.Background(), "e1", "g1", "door")
	require.NoError(t, err)
	assert.False(t, guest.CheckedIn)
	assert.Nil(t, guest.CheckInTime)
	assert.Equal(t, models.GuestPending, guest.Status())
}

func TestToggleCheckInRecordsActivity(t *testing.T) {
	store := newFakeGuestStore("e1")
	addPendingGuest(store, "e1", "g1", "Alice")
	svc, activity := newTestService(store)

	_, err := svc.ToggleCheckIn(context.Background(), "e1", "g1", "door")
	require.NoError(t, err)
	_, err = svc.ToggleCheckIn(context.Background(), "e1", "g1", "door")
	require.NoError(t, err)

	require.Len(t, activity.entries, 2)
	assert.Equal(t, models.ActionCheckIn, activity.entries[0].Action)
	assert.Equal(t, models.ActionUndoCheckIn, activity.entries[1].Action)
}

func TestToggleCheckInUnknownGuest(t *testing.T) {
	store := newFakeGuestStore("e1")
	svc, _ := newTestService(store)

	_, err := svc.ToggleCheckIn(context.Background(), "e1", "missing", "door")
	assert.ErrorIs(t, err, models.ErrGuestNotFound)
}

func TestToggleCheckInEventNotFound(t *testing.T) {
	store := newFakeGuestStore()
	svc, _ := newTestService(store)

	_, err := svc.ToggleCheckIn(context.Background(), "nope", "g1", "door")
	assert.ErrorIs(t, err, models.ErrEventNotFound)
}

func TestRejectRequiresNoteBeforePersistence(t *testing.T) {
	store := newFakeGuestStore("e1")
	addPendingGuest(store, "e1", "g1", "Alice")
	svc, _ := newTestService(store)

	for _, note := range []string{"", "   ", "\t\n"} {
		_, err := svc.Reject(context.Background(), "e1", "g1", note, "door")
		assert.ErrorIs(t, err, models.ErrNoteRequired)
	}

	// The store was never touched for any of the refused rejects.
	assert.Zero(t, store.fetchCalls)
	assert.Zero(t, store.writeCalls)
}

func TestRejectClearsCheckInRegardlessOfPriorState(t *testing.T) {
	store := newFakeGuestStore("e1")
	addPendingGuest(store, "e1", "g1", "Alice")
	svc, _ := newTestService(store)

	// Check Alice in first, then reject her.
	_, err := svc.ToggleCheckIn(context.Background(), "e1", "g1", "door")
	require.NoError(t, err)

	guest, err := svc.Reject(context.Background(), "e1", "g1", "wrong list", "door")
	require.NoError(t, err)
	assert.True(t, guest.Rejected)
	assert.False(t, guest.CheckedIn)
	assert.Nil(t, guest.CheckInTime)
	assert.Equal(t, "wrong list", guest.Note)
	assert.Equal(t, models.GuestRejected, guest.Status())
}

func TestUnrejectReturnsToPendingAndKeepsNote(t *testing.T) {
	store := newFakeGuestStore("e1")
	addPendingGuest(store, "e1", "g1", "Alice")
	svc, _ := newTestService(store)

	_, err := svc.Reject(context.Background(), "e1", "g1", "wrong list", "door")
	require.NoError(t, err)

	guest, err := svc.Unreject(context.Background(), "e1", "g1", "door")
	require.NoError(t, err)
	assert.False(t, guest.Rejected)
	assert.Equal(t, "wrong list", guest.Note)
	assert.Equal(t, models.GuestPending, guest.Status())
}

func TestAddGuestValidation(t *testing.T) {
	store := newFakeGuestStore("e1")
	svc, _ := newTestService(store)

	cases := []models.AddGuestInput{
		{Phone: "555-1000"},                                  // missing name
		{FullName: "Alice"},                                  // missing phone
		{FullName: "Alice", Phone: "555-1000", Email: "bad"}, // malformed email
	}
	for _, input := range cases {
		_, err := svc.AddGuest(context.Background(), "e1", input, "staff")
		assert.Error(t, err)
	}
	assert.Zero(t, store.writeCalls)
}

func TestAddGuestCreatesPendingEntry(t *testing.T) {
	store := newFakeGuestStore("e1")
	svc, _ := newTestService(store)

	input := models.AddGuestInput{
		FullName:  "  Alice  ",
		Phone:     "555-1000",
		Email:     "a@x.com",
		Instagram: "@alice",
	}
	guest, err := svc.AddGuest(context.Background(), "e1", input, "promoter-1")
	require.NoError(t, err)

	assert.NotEmpty(t, guest.ID)
	assert.Equal(t, "Alice", guest.FullName)
	assert.Equal(t, "promoter-1", guest.AddedBy)
	assert.False(t, guest.CheckedIn)
	assert.Nil(t, guest.CheckInTime)
	assert.False(t, guest.Rejected)
	assert.Contains(t, store.maps["e1"], guest.ID)
}

func TestUpdateGuestLeavesStateFlagsAlone(t *testing.T) {
	store := newFakeGuestStore("e1")
	addPendingGuest(store, "e1", "g1", "Alice")
	svc, _ := newTestService(store)

	_, err := svc.ToggleCheckIn(context.Background(), "e1", "g1", "door")
	require.NoError(t, err)

	newName := "Alice Cooper"
	newNote := "VIP"
	guest, err := svc.UpdateGuest(context.Background(), "e1", "g1", models.UpdateGuestInput{
		FullName: &newName,
		Note:     &newNote,
	})
	require.NoError(t, err)

	assert.Equal(t, "Alice Cooper", guest.FullName)
	assert.Equal(t, "VIP", guest.Note)
	assert.True(t, guest.CheckedIn)
	assert.NotNil(t, guest.CheckInTime)
}

func TestDeleteGuestRemovesExactlyOneKey(t *testing.T) {
	store := newFakeGuestStore("e1")
	addPendingGuest(store, "e1", "g1", "Alice")
	addPendingGuest(store, "e1", "g2", "Bob")
	addPendingGuest(store, "e1", "g3", "Carol")
	svc, _ := newTestService(store)

	before := store.maps["e1"]
	err := svc.DeleteGuest(context.Background(), "e1", "g2")
	require.NoError(t, err)

	after := store.maps["e1"]
	assert.Len(t, after, 2)
	assert.NotContains(t, after, "g2")
	assert.Equal(t, before["g1"], after["g1"])
	assert.Equal(t, before["g3"], after["g3"])

	err = svc.DeleteGuest(context.Background(), "e1", "g2")
	assert.ErrorIs(t, err, models.ErrGuestNotFound)
}

func TestImportGuestsAddsOneEntryPerRow(t *testing.T) {
	store := newFakeGuestStore("e1")
	addPendingGuest(store, "e1", "existing", "Existing Guest")
	svc, _ := newTestService(store)

	csvText := "name,email,phone\nAlice,a@x.com,555-1000\nBob,,555-2000"
	added, err := svc.ImportGuests(context.Background(), "e1", csvText, "importer")
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	guests := store.maps["e1"]
	assert.Len(t, guests, 3)
	assert.Contains(t, guests, "existing")

	byName := map[string]models.Guest{}
	for id, g := range guests {
		assert.Equal(t, id, g.ID)
		byName[g.FullName] = g
	}

	alice := byName["Alice"]
	assert.Equal(t, "a@x.com", alice.Email)
	assert.Equal(t, "555-1000", alice.Phone)
	assert.False(t, alice.CheckedIn)
	assert.Nil(t, alice.CheckInTime)
	assert.Equal(t, "importer", alice.AddedBy)

	bob := byName["Bob"]
	assert.Equal(t, "", bob.Email)
	assert.Equal(t, "555-2000", bob.Phone)
	assert.False(t, bob.CheckedIn)
}

func TestImportGuestsGeneratesUniqueIDs(t *testing.T) {
	store := newFakeGuestStore("e1")
	svc, _ := newTestService(store)

	var csvText string
	csvText = "name,phone\n"
	for i := 0; i < 50; i++ {
		csvText += fmt.Sprintf("Guest %d,555-%04d\n", i, i)
	}

	added, err := svc.ImportGuests(context.Background(), "e1", csvText, "importer")
	require.NoError(t, err)
	assert.Equal(t, 50, added)
	assert.Len(t, store.maps["e1"], 50)
}

func TestImportGuestsHeaderCaseInsensitive(t *testing.T) {
	store := newFakeGuestStore("e1")
	svc, _ := newTestService(store)

	csvText := "NAME,Email,PHONE\nAlice,a@x.com,555-1000"
	added, err := svc.ImportGuests(context.Background(), "e1", csvText, "importer")
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	for _, g := range store.maps["e1"] {
		assert.Equal(t, "Alice", g.FullName)
		assert.Equal(t, "a@x.com", g.Email)
		assert.Equal(t, "555-1000", g.Phone)
	}
}

func TestImportGuestsRaggedRowsDefaultToEmpty(t *testing.T) {
	store := newFakeGuestStore("e1")
	svc, _ := newTestService(store)

	csvText := "name,email,phone\nAlice"
	added, err := svc.ImportGuests(context.Background(), "e1", csvText, "importer")
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	for _, g := range store.maps["e1"] {
		assert.Equal(t, "Alice", g.FullName)
		assert.Equal(t, "", g.Email)
		assert.Equal(t, "", g.Phone)
	}
}

func TestImportGuestsEmptyInput(t *testing.T) {
	store := newFakeGuestStore("e1")
	svc, _ := newTestService(store)

	for _, csvText := range []string{"", "name,email,phone", "name,email,phone\n"} {
		added, err := svc.ImportGuests(context.Background(), "e1", csvText, "importer")
		require.NoError(t, err)
		assert.Zero(t, added, "input %q", csvText)
	}
	assert.Empty(t, store.maps["e1"])
}

func TestImportGuestsAcceptsFullNameHeader(t *testing.T) {
	store := newFakeGuestStore("e1")
	svc, _ := newTestService(store)

	csvText := "full_name,phone\nAlice,555-1000"
	added, err := svc.ImportGuests(context.Background(), "e1", csvText, "importer")
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	for _, g := range store.maps["e1"] {
		assert.Equal(t, "Alice", g.FullName)
	}
}

func TestWriteFailureSurfacesOnce(t *testing.T) {
	store := newFakeGuestStore("e1")
	addPendingGuest(store, "e1", "g1", "Alice")
	store.writeErr = fmt.Errorf("write failed")
	svc, _ := newTestService(store)

	_, err := svc.ToggleCheckIn(context.Background(), "e1", "g1", "door")
	assert.Error(t, err)
	// One attempt, no retries.
	assert.Equal(t, 1, store.writeCalls)
}

func TestListGuestsPartitionsByStatus(t *testing.T) {
	store := newFakeGuestStore("e1")
	addPendingGuest(store, "e1", "g1", "Pending Pat")
	addPendingGuest(store, "e1", "g2", "Door Dan")
	addPendingGuest(store, "e1", "g3", "Banned Bill")
	svc, _ := newTestService(store)

	_, err := svc.ToggleCheckIn(context.Background(), "e1", "g2", "door")
	require.NoError(t, err)
	_, err = svc.Reject(context.Background(), "e1", "g3", "no entry", "door")
	require.NoError(t, err)

	pending, checkedIn, rejected, err := svc.ListGuests(context.Background(), "e1")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Len(t, checkedIn, 1)
	require.Len(t, rejected, 1)
	assert.Equal(t, "Pending Pat", pending[0].FullName)
	assert.Equal(t, "Door Dan", checkedIn[0].FullName)
	assert.Equal(t, "Banned Bill", rejected[0].FullName)
}
