package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type ProfilesRepo interface {
	GetProfile(ctx context.Context, id uuid.UUID, accessToken string) (*Profile, error)
	ListPromoters(ctx context.Context, offset, limit int) ([]*Promoter, int, error)
	UpdateProfile(ctx context.Context, fields map[string]interface{}, id uuid.UUID, accessToken string) (*Profile, error)
}

func (su *SupabaseRepo) GetProfile(ctx context.Context, id uuid.UUID, accessToken string) (*Profile, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}

	client, err := su.client(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated client: %v", err)
	}

	data, _, err := client.
		From(ProfilesTable).
		Select("*", "exact", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %v", err)
	}

	var profiles []Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile rows: %v", err)
	}

	if len(profiles) == 0 {
		return nil, ErrProfileNotFound
	}

	return &profiles[0], nil
}

func (su *SupabaseRepo) ListPromoters(ctx context.Context, offset, limit int) ([]*Promoter, int, error) {
	data, count, err := su.supabaseClient.
		From(ProfilesTable).
		Select("*", "exact", false).
		Eq("role", RolePromoter).
		Range(offset, offset+limit-1, "").
		Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list promoters: %v", err)
	}

	if count == 0 {
		return []*Promoter{}, 0, nil
	}

	var profiles []Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal promoter rows: %v", err)
	}

	promoters := make([]*Promoter, 0, len(profiles))
	for _, p := range profiles {
		promoters = append(promoters, &Promoter{
			ID:         p.ID,
			FullName:   p.FullName,
			Company:    p.Company,
			Role:       p.Role,
			EventCount: su.countPromoterEvents(p.ID),
			AvatarURL:  p.AvatarURL,
		})
	}

	return promoters, int(count), nil
}

// countPromoterEvents counts events whose promoters array contains the given
// profile id. A failed count degrades to zero rather than failing the
// directory listing.
func (su *SupabaseRepo) countPromoterEvents(id uuid.UUID) int {
	_, count, err := su.supabaseClient.
		From(EventsTable).
		Select("id", "exact", true).
		Filter("promoters", "cs", fmt.Sprintf("{%s}", id.String())).
		Execute()
	if err != nil {
		return 0
	}
	return int(count)
}

func (su *SupabaseRepo) UpdateProfile(ctx context.Context, fields map[string]interface{}, id uuid.UUID, accessToken string) (*Profile, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("invalid UUID")
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	client, err := su.client(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated client: %v", err)
	}

	data, count, err := client.
		From(ProfilesTable).
		Update(fields, "", "exact").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %v", err)
	}

	if count == 0 {
		return nil, ErrProfileNotFound
	}

	var updated []Profile
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated profile: %v", err)
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("no profile data returned after update")
	}

	return &updated[0], nil
}
