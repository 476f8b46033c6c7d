package services

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weout/promohub/internal/invite"
	"github.com/weout/promohub/internal/models"
)

type fakeEventsRepo struct {
	events map[uuid.UUID]*models.Event
}

func (f *fakeEventsRepo) CreateEvent(ctx context.Context, event *models.Event, accessToken string) (*models.Event, error) {
	f.events[event.ID] = event
	return event, nil
}

func (f *fakeEventsRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	return event, nil
}

func (f *fakeEventsRepo) ListEvents(ctx context.Context, offset, limit int) ([]*models.Event, int, error) {
	var out []*models.Event
	for _, e := range f.events {
		out = append(out, e)
	}
	return out, len(out), nil
}

func (f *fakeEventsRepo) UpdateEvent(ctx context.Context, id uuid.UUID, fields map[string]interface{}, accessToken string) (*models.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	return event, nil
}

func (f *fakeEventsRepo) DeleteEvent(ctx context.Context, id uuid.UUID, accessToken string) error {
	if _, ok := f.events[id]; !ok {
		return models.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

type fakeProfilesRepo struct {
	profiles map[uuid.UUID]*models.Profile
}

func (f *fakeProfilesRepo) GetProfile(ctx context.Context, id uuid.UUID, accessToken string) (*models.Profile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, models.ErrProfileNotFound
	}
	return profile, nil
}

func (f *fakeProfilesRepo) ListPromoters(ctx context.Context, offset, limit int) ([]*models.Promoter, int, error) {
	return nil, 0, nil
}

func (f *fakeProfilesRepo) UpdateProfile(ctx context.Context, fields map[string]interface{}, id uuid.UUID, accessToken string) (*models.Profile, error) {
	return f.GetProfile(ctx, id, accessToken)
}

func TestInviteLinkBuildsURLOnBase(t *testing.T) {
	svc := NewEventService(nil, nil, "https://weout.app/invites/")

	link, err := svc.InviteLink("event-1", "promoter-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://weout.app/invites/"))

	// The token is the final path segment and must survive URL parsing
	// untouched.
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	token := strings.TrimPrefix(parsed.Path, "/invites/")
	assert.NotContains(t, token, "/")

	data, err := invite.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "event-1", data.EventID)
	assert.Equal(t, "promoter-1", data.PromoterID)
}

func TestInviteLinkRequiresBothIDs(t *testing.T) {
	svc := NewEventService(nil, nil, "https://weout.app")

	_, err := svc.InviteLink("", "promoter-1")
	assert.Error(t, err)
	_, err = svc.InviteLink("event-1", "")
	assert.Error(t, err)
}

func TestResolveInviteRoundTrip(t *testing.T) {
	eventID := uuid.New()
	promoterID := uuid.New()
	eventsRepo := &fakeEventsRepo{events: map[uuid.UUID]*models.Event{
		eventID: {ID: eventID, Name: "Launch Night"},
	}}
	profilesRepo := &fakeProfilesRepo{profiles: map[uuid.UUID]*models.Profile{
		promoterID: {ID: promoterID, FullName: "Dana", Role: models.RolePromoter},
	}}
	svc := NewEventService(eventsRepo, profilesRepo, "https://weout.app")

	link, err := svc.InviteLink(eventID.String(), promoterID.String())
	require.NoError(t, err)
	token := link[strings.LastIndex(link, "/")+1:]

	event, promoter, err := svc.ResolveInvite(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "Launch Night", event.Name)
	assert.Equal(t, "Dana", promoter.FullName)
}

func TestResolveInviteMalformedToken(t *testing.T) {
	svc := NewEventService(&fakeEventsRepo{events: map[uuid.UUID]*models.Event{}}, &fakeProfilesRepo{}, "https://weout.app")

	for _, token := range []string{"", "garbage", "!!!not-base64!!!"} {
		_, _, err := svc.ResolveInvite(context.Background(), token)
		assert.ErrorIs(t, err, invite.ErrInvalidToken, "token %q", token)
	}
}

func TestResolveInviteNonUUIDPayload(t *testing.T) {
	// A structurally valid token whose ids are not UUIDs still resolves to
	// ErrInvalidToken, never a repo lookup failure.
	token, err := invite.Encode(invite.Data{EventID: "not-a-uuid", PromoterID: "also-not"})
	require.NoError(t, err)

	svc := NewEventService(&fakeEventsRepo{events: map[uuid.UUID]*models.Event{}}, &fakeProfilesRepo{}, "https://weout.app")
	_, _, err = svc.ResolveInvite(context.Background(), token)
	assert.ErrorIs(t, err, invite.ErrInvalidToken)
}

func TestResolveInviteUnknownEvent(t *testing.T) {
	token, err := invite.Encode(invite.Data{
		EventID:    uuid.NewString(),
		PromoterID: uuid.NewString(),
	})
	require.NoError(t, err)

	svc := NewEventService(&fakeEventsRepo{events: map[uuid.UUID]*models.Event{}}, &fakeProfilesRepo{}, "https://weout.app")
	_, _, err = svc.ResolveInvite(context.Background(), token)
	assert.ErrorIs(t, err, models.ErrEventNotFound)
}
