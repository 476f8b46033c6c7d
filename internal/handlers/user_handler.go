package handlers

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/weout/promohub/internal/models"
	"github.com/weout/promohub/internal/services"
)

func Signup(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		res, err := us.Signup(c.Request.Context(), input)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(res, "Account created successfully"))
	}
}

func Login(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		res, err := us.Login(c.Request.Context(), input)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(err.Error()))
			return
		}

		isProduction := os.Getenv("GIN_MODE") == "production"
		if tokenRes, ok := res.(*types.TokenResponse); ok && tokenRes.AccessToken != "" {
			c.SetCookie(
				"access_token",
				tokenRes.AccessToken,
				tokenRes.ExpiresIn,
				"/",
				"",
				isProduction,
				true,
			)
			c.SetCookie(
				"refresh_token",
				tokenRes.RefreshToken,
				3600*24*30, // 30 days
				"/",
				"",
				isProduction,
				true,
			)
		}

		c.JSON(http.StatusOK, models.SuccessResponse(res, "Logged in successfully"))
	}
}

// Logout clears the auth cookies; the tokens themselves simply expire.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		isProduction := os.Getenv("GIN_MODE") == "production"

		c.SetCookie("access_token", "", -1, "/", "", isProduction, true)
		c.SetCookie("refresh_token", "", -1, "/", "", isProduction, true)

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Logged out successfully"))
	}
}

// CurrentProfile returns the enriched claims the auth middleware resolved.
func CurrentProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"user_id":    claims.UserID,
			"email":      claims.Email,
			"role":       claims.GetSafeRole(),
			"full_name":  claims.FullName,
			"avatar_url": claims.AvatarURL,
			"is_admin":   claims.IsAdmin(),
		}, ""))
	}
}

func GetProfile(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		accessToken, _ := c.Cookie("access_token")

		profile, err := us.GetProfile(profileID, accessToken)
		if err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(profile, ""))
	}
}

func UpdateProfile(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		profileID, ok := parseIDParam(c, "id")
		if !ok {
			return
		}

		if !claims.IsOwner(profileID.String()) && !claims.IsAdmin() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("forbidden: you can only edit your own profile"))
			return
		}

		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		accessToken, _ := c.Cookie("access_token")

		updated, err := us.UpdateProfile(c.Request.Context(), fields, profileID, accessToken)
		if err != nil {
			c.JSON(errorStatus(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Profile updated successfully"))
	}
}

func ListPromoters(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := c.DefaultQuery("limit", "9")
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

		promoters, total, err := us.ListPromoters(c.Request.Context(), offsetInt, limitInt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		page := (offsetInt / limitInt) + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(promoters, page, limitInt, total))
	}
}
