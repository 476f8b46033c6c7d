package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/weout/promohub/internal/helpers"
	"github.com/weout/promohub/internal/models"
)

type UserService struct {
	identityRepo models.IdentityRepo
	profilesRepo models.ProfilesRepo
}

func NewUserService(identityRepo models.IdentityRepo, profilesRepo models.ProfilesRepo) *UserService {
	return &UserService{
		identityRepo: identityRepo,
		profilesRepo: profilesRepo,
	}
}

// Signup validates the form locally (password confirmation and strength)
// before the identity collaborator is invoked.
func (us *UserService) Signup(ctx context.Context, input models.SignupInput) (interface{}, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid signup data: %v", err)
	}

	if input.Password != input.ConfirmPassword {
		return nil, fmt.Errorf("passwords do not match")
	}

	if !helpers.IsPasswordStrong(input.Password) {
		return nil, fmt.Errorf("password is not strong enough")
	}

	return us.identityRepo.SignUp(ctx, input.Email, input.Password, input.FullName)
}

func (us *UserService) Login(ctx context.Context, input models.LoginInput) (interface{}, error) {
	if err := models.Validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid login data: %v", err)
	}

	response, err := us.identityRepo.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %v", err)
	}

	return response, nil
}

func (us *UserService) RefreshToken(refreshToken string) (interface{}, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token is required")
	}

	response, err := us.identityRepo.RefreshToken(context.Background(), refreshToken)
	if err != nil {
		return nil, fmt.Errorf("token refresh failed: %v", err)
	}

	return response, nil
}

func (us *UserService) GetProfile(id uuid.UUID, accessToken string) (*models.Profile, error) {
	res, err := us.profilesRepo.GetProfile(context.Background(), id, accessToken)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, fields map[string]interface{}, id uuid.UUID, accessToken string) (*models.Profile, error) {
	// Role changes are an admin concern; the account form never sends one.
	delete(fields, "role")
	delete(fields, "id")

	return us.profilesRepo.UpdateProfile(ctx, fields, id, accessToken)
}

func (us *UserService) ListPromoters(ctx context.Context, offset, limit int) ([]*models.Promoter, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit")
	}

	return us.profilesRepo.ListPromoters(ctx, offset, limit)
}
