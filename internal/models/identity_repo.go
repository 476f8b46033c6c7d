package models

import (
	"context"
	"fmt"
	"strings"

	"github.com/supabase-community/gotrue-go/types"
)

// IdentityRepo is the identity collaborator: account creation and session
// exchange live in Supabase auth, not in the profiles table.
type IdentityRepo interface {
	SignUp(ctx context.Context, email, password, fullName string) (interface{}, error)
	SignIn(ctx context.Context, email, password string) (interface{}, error)
	RefreshToken(ctx context.Context, refreshToken string) (interface{}, error)
}

func (su *SupabaseRepo) SignUp(ctx context.Context, email, password, fullName string) (interface{}, error) {
	signed := types.SignupRequest{
		Email:    email,
		Password: password,
		Data: map[string]interface{}{
			"full_name": fullName,
		},
	}

	res, err := su.supabaseClient.Auth.Signup(signed)
	if err != nil {
		if strings.Contains(err.Error(), "User already registered") || strings.Contains(err.Error(), "already been registered") {
			return nil, fmt.Errorf("email already in use")
		}
		if strings.Contains(err.Error(), "unique constraint") {
			return nil, fmt.Errorf("user already exists")
		}
		if strings.Contains(err.Error(), "invalid input syntax") {
			return nil, fmt.Errorf("invalid input format")
		}
		return nil, fmt.Errorf("failed to create user")
	}

	return res, nil
}

func (su *SupabaseRepo) SignIn(ctx context.Context, email, password string) (interface{}, error) {
	resp, err := su.supabaseClient.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate user: %v", err)
	}
	return resp, nil
}

func (su *SupabaseRepo) RefreshToken(ctx context.Context, refreshToken string) (interface{}, error) {
	resp, err := su.supabaseClient.Auth.RefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %v", err)
	}
	return resp, nil
}
