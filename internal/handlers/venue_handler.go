package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/weout/promohub/internal/models"
	"github.com/weout/promohub/internal/services"
)

func CreateVenue(vs *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		if !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("only admins can create venues"))
			return
		}

		var input models.CreateVenueInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		created, err := vs.CreateVenue(c.Request.Context(), input, accessToken)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Venue created successfully"))
	}
}

func ListVenues(vs *services.VenueService) gin.HandlerFunc {
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

		venues, total, err := vs.ListVenues(c.Request.Context(), offsetInt, limitInt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		page := (offsetInt / limitInt) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(venues, page, limitInt, total))
	}
}

func GetVenue(vs *services.VenueService) gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		venue, err := vs.GetVenue(c.Request.Context(), venueID)
		if err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(venue, ""))
	}
}
