package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weout/promohub/internal/helpers"
	"github.com/weout/promohub/internal/invite"
	"github.com/weout/promohub/internal/models"
)

// currentClaims pulls the enriched claims the auth middleware stored. The
// second return is false when the route was mounted without the middleware,
// which is a wiring bug rather than a client error.
func currentClaims(c *gin.Context) (*helpers.EnhancedClaims, bool) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse("unauthorized"))
		return nil, false
	}

	claims, ok := userClaims.(*helpers.EnhancedClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("invalid user claims"))
		return nil, false
	}

	return claims, true
}

// errorStatus maps the error taxonomy onto HTTP statuses. Anything outside
// the known sentinels is a persistence failure.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrGuestNotFound),
		errors.Is(err, models.ErrVenueNotFound),
		errors.Is(err, models.ErrProfileNotFound),
		errors.Is(err, invite.ErrInvalidToken):
		return http.StatusNotFound
	case errors.Is(err, models.ErrNoteRequired):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrDuplicateEntry):
		return http.StatusConflict
	case errors.Is(err, models.ErrNotAuthorized):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
