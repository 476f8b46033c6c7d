package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSafeRoleDefaultsToUser(t *testing.T) {
	claims := &EnhancedClaims{}
	assert.Equal(t, "user", claims.GetSafeRole())

	claims.Role = "promoter"
	assert.Equal(t, "promoter", claims.GetSafeRole())
}

func TestDisplayNameFallsBackToUserID(t *testing.T) {
	claims := &EnhancedClaims{UserID: "abc-123"}
	assert.Equal(t, "abc-123", claims.DisplayName())

	claims.FullName = "Dana"
	assert.Equal(t, "Dana", claims.DisplayName())
}

func TestRoleHelpers(t *testing.T) {
	admin := &EnhancedClaims{Role: "admin", UserID: "u1"}
	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsPromoter())
	assert.True(t, admin.HasRole("admin"))
	assert.True(t, admin.IsOwner("u1"))
	assert.False(t, admin.IsOwner("u2"))
}
