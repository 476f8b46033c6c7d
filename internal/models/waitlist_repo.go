package models

import (
	"context"
	"fmt"
	"strings"
)

type WaitlistRepo interface {
	AddToWaitlist(ctx context.Context, entry *WaitlistEntry) error
	SubmitContactMessage(ctx context.Context, msg *ContactMessage) error
}

func (su *SupabaseRepo) AddToWaitlist(ctx context.Context, entry *WaitlistEntry) error {
	_, _, err := su.supabaseClient.
		From(WaitlistTable).
		Insert(map[string]interface{}{
			"full_name": entry.FullName,
			"email":     entry.Email,
			"role":      entry.Role,
		}, false, "", "", "").
		Execute()
	if err != nil {
		// Postgres 23505: the email column carries a unique constraint.
		if strings.Contains(err.Error(), "23505") || strings.Contains(err.Error(), "duplicate key") {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("failed to join waitlist: %v", err)
	}

	return nil
}

func (su *SupabaseRepo) SubmitContactMessage(ctx context.Context, msg *ContactMessage) error {
	_, _, err := su.supabaseClient.
		From(ContactMessagesTable).
		Insert(map[string]interface{}{
			"name":    msg.Name,
			"phone":   msg.Phone,
			"message": msg.Message,
			"status":  "new",
		}, false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to submit contact message: %v", err)
	}

	return nil
}
