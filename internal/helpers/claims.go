package helpers

// EnhancedClaims merges the verified JWT claims with the caller's profiles
// row, so handlers can make policy decisions without another lookup.
type EnhancedClaims struct {
	*CustomClaims
	Role        string `json:"role"`
	UserID      string `json:"id"`
	Email       string `json:"email,omitempty"`
	FullName    string `json:"full_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

func (ec *EnhancedClaims) IsAdmin() bool {
	return ec.Role == "admin"
}

func (ec *EnhancedClaims) IsPromoter() bool {
	return ec.Role == "promoter"
}

func (ec *EnhancedClaims) HasRole(role string) bool {
	return ec.Role == role
}

func (ec *EnhancedClaims) IsOwner(userID string) bool {
	return ec.UserID == userID
}

func (ec *EnhancedClaims) GetSafeRole() string {
	if ec.Role == "" {
		return "user"
	}
	return ec.Role
}

// DisplayName is what lands in a guest's added_by field for manual adds.
func (ec *EnhancedClaims) DisplayName() string {
	if ec.FullName != "" {
		return ec.FullName
	}
	return ec.UserID
}
