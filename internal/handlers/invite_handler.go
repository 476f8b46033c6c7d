package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weout/promohub/internal/models"
	"github.com/weout/promohub/internal/services"
)

// ResolveInvite is the public landing data for an invite link: the event and
// the inviting promoter's display name. Malformed or stale tokens are a 404,
// never an internal error.
func ResolveInvite(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, promoter, err := es.ResolveInvite(c.Request.Context(), c.Param("code"))
		if err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse("invite not found"))
			return
		}

		// The public view never includes the guest list.
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"event": gin.H{
				"id":          event.ID,
				"name":        event.Name,
				"description": event.Description,
				"date":        event.Date,
				"start_time":  event.StartTime,
				"end_time":    event.EndTime,
				"image_url":   event.ImageURL,
			},
			"promoter": gin.H{
				"id":        promoter.ID,
				"full_name": promoter.FullName,
			},
		}, ""))
	}
}

// InviteSignup is the public self-registration behind an invite link. The
// guest lands on the list as pending, attributed to the inviting promoter.
func InviteSignup(es *services.EventService, gs *services.GuestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, promoter, err := es.ResolveInvite(c.Request.Context(), c.Param("code"))
		if err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse("invite not found"))
			return
		}

		var input models.AddGuestInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		guest, err := gs.AddGuest(c.Request.Context(), event.ID.String(), input, promoter.ID.String())
		if err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse("failed to add to guest list"))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(guest, "You're on the list"))
	}
}
