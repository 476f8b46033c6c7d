package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/weout/promohub/internal/models"
)

type WaitlistService struct {
	waitlistRepo models.WaitlistRepo
}

func NewWaitlistService(waitlistRepo models.WaitlistRepo) *WaitlistService {
	return &WaitlistService{
		waitlistRepo: waitlistRepo,
	}
}

func (ws *WaitlistService) JoinWaitlist(ctx context.Context, entry *models.WaitlistEntry) error {
	entry.FullName = strings.TrimSpace(entry.FullName)
	entry.Email = strings.ToLower(strings.TrimSpace(entry.Email))

	if err := models.Validate.Struct(entry); err != nil {
		return fmt.Errorf("invalid waitlist entry: %v", err)
	}

	return ws.waitlistRepo.AddToWaitlist(ctx, entry)
}

func (ws *WaitlistService) SubmitContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Phone = strings.TrimSpace(msg.Phone)
	msg.Message = strings.TrimSpace(msg.Message)

	if err := models.Validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid contact message: %v", err)
	}

	return ws.waitlistRepo.SubmitContactMessage(ctx, msg)
}
