package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weout/promohub/internal/helpers"
	"github.com/weout/promohub/internal/models"
	"github.com/weout/promohub/internal/services"
)

// guestListAccess loads the event and applies the guest-list policy. Every
// guest mutation route goes through this before touching the domain service.
func guestListAccess(c *gin.Context, es *services.EventService) (*models.Event, *helpers.EnhancedClaims, bool) {
	claims, ok := currentClaims(c)
	if !ok {
		return nil, nil, false
	}

	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return nil, nil, false
	}

	event, err := es.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
		return nil, nil, false
	}

	if !services.CanManageGuests(event, claims.UserID, claims.GetSafeRole()) {
		c.JSON(http.StatusForbidden, models.ErrorResponse("forbidden: you cannot manage this guest list"))
		return nil, nil, false
	}

	return event, claims, true
}

func ListGuests(es *services.EventService, gs *services.GuestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, _, ok := guestListAccess(c, es)
		if !ok {
			return
		}

		pending, checkedIn, rejected, err := gs.ListGuests(c.Request.Context(), event.ID.String())
		if err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"pending":    pending,
			"checked_in": checkedIn,
			"rejected":   rejected,
		}, ""))
	}
}

func AddGuest(es *services.EventService, gs *services.GuestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, claims, ok := guestListAccess(c, es)
		if !ok {
			return
		}

		var input models.AddGuestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		guest, err := gs.AddGuest(c.Request.Context(), event.ID.String(), input, claims.DisplayName())
		if err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(guest, "Guest added successfully"))
	}
}

func UpdateGuest(es *services.EventService, gs *services.GuestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, _, ok := guestListAccess(c, es)
		if !ok {
			return
		}

		var input models.UpdateGuestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		guest, err := gs.UpdateGuest(c.Request.Context(), event.ID.String(), c.Param("guestId"), input)
		if err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(guest, "Guest updated successfully"))
	}
}

func DeleteGuest(es *services.EventService, gs *services.GuestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, _, ok := guestListAccess(c, es)
		if !ok {
			return
		}

		if err := gs.DeleteGuest(c.Request.Context(), event.ID.String(), c.Param("guestId")); err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "guest deleted successfully"))
	}
}

// CheckInGuest flips the guest between pending and checked-in. The request
// carries no target state.
func CheckInGuest(es *services.EventService, gs *services.GuestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, claims, ok := guestListAccess(c, es)
		if !ok {
			return
		}

		guest, err := gs.ToggleCheckIn(c.Request.Context(), event.ID.String(), c.Param("guestId"), claims.DisplayName())
		if err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(guest, ""))
	}
}

func RejectGuest(es *services.EventService, gs *services.GuestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, claims, ok := guestListAccess(c, es)
		if !ok {
			return
		}

		var body struct {
			Note string `json:"note"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		guest, err := gs.Reject(c.Request.Context(), event.ID.String(), c.Param("guestId"), body.Note, claims.DisplayName())
		if err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(guest, ""))
	}
}

func UnrejectGuest(es *services.EventService, gs *services.GuestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, claims, ok := guestListAccess(c, es)
		if !ok {
			return
		}

		guest, err := gs.Unreject(c.Request.Context(), event.ID.String(), c.Param("guestId"), claims.DisplayName())
		if err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(guest, ""))
	}
}

// ImportGuests accepts the raw CSV either as a text body or as the "csv"
// field of a JSON payload.
func ImportGuests(es *services.EventService, gs *services.GuestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, claims, ok := guestListAccess(c, es)
		if !ok {
			return
		}

		var csvText string
		if c.ContentType() == "application/json" {
			var input models.ImportGuestsInput
			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
				return
			}
			csvText = input.CSV
		} else {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse("failed to read request body"))
				return
			}
			csvText = string(body)
		}

		added, err := gs.ImportGuests(c.Request.Context(), event.ID.String(), csvText, claims.DisplayName())
		if err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"imported": added}, "Guest list imported"))
	}
}

func EventActivity(es *services.EventService, gs *services.GuestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, _, ok := guestListAccess(c, es)
		if !ok {
			return
		}

		entries, err := gs.EventActivity(c.Request.Context(), event.ID.String(), 100)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(entries, ""))
	}
}
