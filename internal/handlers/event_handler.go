package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/weout/promohub/internal/models"
	"github.com/weout/promohub/internal/services"
)

func CreateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		if !services.CanCreateEvent(claims.GetSafeRole()) {
			c.JSON(http.StatusForbidden, models.ErrorResponse("only admins and promoters can create events"))
			return
		}

		var input models.CreateEventInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		created, err := es.CreateEvent(c.Request.Context(), input, claims.UserID, accessToken)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Event created successfully"))
	}
}

func ListEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := c.DefaultQuery("limit", "10")
		offset := c.DefaultQuery("offset", "0")
		limitInt, err := strconv.Atoi(limit)
		if err != nil || limitInt <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid limit parameter"))
			return
		}
		offsetInt, err := strconv.Atoi(offset)
		if err != nil || offsetInt < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid offset parameter"))
			return
		}

		events, total, err := es.ListEvents(c.Request.Context(), offsetInt, limitInt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		// This route is unauthenticated; the guest lists stay behind the
		// protected guest routes.
		public := make([]*models.Event, 0, len(events))
		for _, event := range events {
			public = append(public, event.Public())
		}

		page := (offsetInt / limitInt) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(public, page, limitInt, total))
	}
}

func GetEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		event, err := es.GetEvent(c.Request.Context(), eventID)
		if err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(event.Public(), ""))
	}
}

func UpdateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		eventID, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		event, err := es.GetEvent(c.Request.Context(), eventID)
		if err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		if !services.CanEditEvent(event, claims.UserID, claims.GetSafeRole()) {
			c.JSON(http.StatusForbidden, models.ErrorResponse("forbidden: you can only edit your own events"))
			return
		}

		var input models.UpdateEventInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		updated, err := es.UpdateEvent(c.Request.Context(), eventID, input, accessToken)
		if err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Event updated successfully"))
	}
}

func DeleteEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		eventID, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		event, err := es.GetEvent(c.Request.Context(), eventID)
		if err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		if !services.CanEditEvent(event, claims.UserID, claims.GetSafeRole()) {
			c.JSON(http.StatusForbidden, models.ErrorResponse("forbidden: you can only delete your own events"))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		if err := es.DeleteEvent(c.Request.Context(), eventID, accessToken); err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "event deleted successfully"))
	}
}

// InviteLink returns the absolute invite URL for a promoter on an event.
func InviteLink(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		eventID, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		promoterID := c.DefaultQuery("promoter_id", claims.UserID)

		event, err := es.GetEvent(c.Request.Context(), eventID)
		if err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		if !services.CanManageGuests(event, claims.UserID, claims.GetSafeRole()) {
			c.JSON(http.StatusForbidden, models.ErrorResponse("forbidden: you are not a promoter on this event"))
			return
		}

		link, err := es.InviteLink(eventID.String(), promoterID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"invite_url": link}, ""))
	}
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Param(name))
	raw = strings.Trim(raw, "\"'")
	if raw == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(name+" is required"))
		return uuid.Nil, false
	}

	parsed, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid "+name+" format"))
		return uuid.Nil, false
	}

	return parsed, true
}
