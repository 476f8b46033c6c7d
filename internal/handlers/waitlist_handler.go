package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weout/promohub/internal/models"
	"github.com/weout/promohub/internal/services"
)

func JoinWaitlist(ws *services.WaitlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var entry models.WaitlistEntry
		if err := c.ShouldBindJSON(&entry); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		if err := ws.JoinWaitlist(c.Request.Context(), &entry); err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(nil, "You're on the waitlist"))
	}
}

func SubmitContactMessage(ws *services.WaitlistService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var msg models.ContactMessage
		if err := c.ShouldBindJSON(&msg); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		if err := ws.SubmitContactMessage(c.Request.Context(), &msg); err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(nil, "Message sent"))
	}
}
