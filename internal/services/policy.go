package services

import "github.com/weout/promohub/internal/models"

// Authorization is decided here, against the profile role loaded by the auth
// middleware, regardless of what any client chose to display.

// CanManageGuests allows admins, the event creator, and promoters attached
// to the event to mutate its guest list.
func CanManageGuests(event *models.Event, userID, role string) bool {
	if role == models.RoleAdmin {
		return true
	}
	if event.CreatedBy == userID {
		return true
	}
	return role == models.RolePromoter && event.HasPromoter(userID)
}

// CanEditEvent allows admins and the event creator to edit or delete the
// event itself.
func CanEditEvent(event *models.Event, userID, role string) bool {
	return role == models.RoleAdmin || event.CreatedBy == userID
}

// CanCreateEvent gates event creation to admins and promoters.
func CanCreateEvent(role string) bool {
	return role == models.RoleAdmin || role == models.RolePromoter
}
