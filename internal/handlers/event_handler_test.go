package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weout/promohub/internal/helpers"
	"github.com/weout/promohub/internal/models"
	"github.com/weout/promohub/internal/services"
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
	return f.GetEventByID(ctx, id)
}

func (f *fakeEventsRepo) DeleteEvent(ctx context.Context, id uuid.UUID, accessToken string) error {
	delete(f.events, id)
	return nil
}

type fakeGuestStore struct {
	maps       map[string]models.GuestMap
	fetchCalls int
}

func (f *fakeGuestStore) FetchGuestMap(ctx context.Context, eventID string) (models.GuestMap, error) {
	f.fetchCalls++
	m, ok := f.maps[eventID]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	return m, nil
}

func (f *fakeGuestStore) WriteGuestMap(ctx context.Context, eventID string, guests models.GuestMap) error {
	f.maps[eventID] = guests
	return nil
}

// newEventFixture builds an event with one guest whose contact details act
// as markers for the leak assertions.
func newEventFixture() (*models.Event, string) {
	eventID := uuid.New()
	now := time.Now()
	event := &models.Event{
		ID:        eventID,
		Name:      "Launch Night",
		Date:      "2026-09-04",
		Promoters: []string{uuid.NewString()},
		Guests: models.GuestMap{
			"g1": {
				ID:       "g1",
				FullName: "Alice Secret",
				Phone:    "555-1000",
				Email:    "alice@example.com",
				Note:     "friend of the owner",
				AddedBy:  "door",
				AddedAt:  now,
			},
		},
		CreatedBy: uuid.NewString(),
	}
	return event, eventID.String()
}

// newTestRouter mounts the event routes the way SetupRoutes does: the event
// reads on the public group, the guest routes behind claims.
func newTestRouter(es *services.EventService, gs *services.GuestService, claims *helpers.EnhancedClaims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	v1 := r.Group("/api/v1")
	v1.GET("/events", ListEvents(es))
	v1.GET("/events/:id", GetEvent(es))

	protected := v1.Group("/")
	protected.Use(func(c *gin.Context) {
		c.Set("user", claims)
		c.Next()
	})
	protected.GET("/events/:id/guests", ListGuests(es, gs))

	return r
}

func TestGetEventPublicResponseOmitsGuests(t *testing.T) {
	event, eventID := newEventFixture()
	es := services.NewEventService(&fakeEventsRepo{events: map[uuid.UUID]*models.Event{event.ID: event}}, nil, "https://weout.app")
	router := newTestRouter(es, nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/"+eventID, nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Launch Night")
	assert.NotContains(t, body, `"guests"`)
	assert.NotContains(t, body, "Alice Secret")
	assert.NotContains(t, body, "555-1000")
	assert.NotContains(t, body, "alice@example.com")
}

func TestListEventsPublicResponseOmitsGuests(t *testing.T) {
	event, _ := newEventFixture()
	es := services.NewEventService(&fakeEventsRepo{events: map[uuid.UUID]*models.Event{event.ID: event}}, nil, "https://weout.app")
	router := newTestRouter(es, nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Launch Night")
	assert.NotContains(t, body, `"guests"`)
	assert.NotContains(t, body, "Alice Secret")
}

func TestListGuestsStaysBehindPolicy(t *testing.T) {
	event, eventID := newEventFixture()
	repo := &fakeEventsRepo{events: map[uuid.UUID]*models.Event{event.ID: event}}
	store := &fakeGuestStore{maps: map[string]models.GuestMap{eventID: event.Guests}}
	es := services.NewEventService(repo, nil, "https://weout.app")
	gs := services.NewGuestService(store, nil, nil)

	// An admin sees the full partitioned list, served through the guest
	// store rather than the event payload.
	admin := &helpers.EnhancedClaims{Role: models.RoleAdmin, UserID: uuid.NewString()}
	router := newTestRouter(es, gs, admin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/"+eventID+"/guests", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice Secret")
	assert.Contains(t, w.Body.String(), "pending")
	assert.Equal(t, 1, store.fetchCalls)

	// A plain user with no claim on the event is refused.
	user := &helpers.EnhancedClaims{Role: models.RoleUser, UserID: uuid.NewString()}
	router = newTestRouter(es, gs, user)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/events/"+eventID+"/guests", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "Alice Secret")
}
