package notification

import (
	"context"
	"errors"
	"fmt"

	"kindkart/internal/domain"

	"gorm.io/gorm"
)

// Retrieval is capped so a donor with a long history cannot pull the whole
// table through the polling endpoint.
const MaxListLimit = 50

type Service struct {
	repo NotificationRepository
}

func NewService(repo NotificationRepository) *Service {
	return &Service{repo: repo}
}

// Emit inserts exactly one unread notification. The returned error is
// informational: lifecycle callers treat it as non-fatal.
func (s *Service) Emit(ctx context.Context, userID, donationID, message string) (*domain.Notification, error) {
	n := &domain.Notification{
		UserID:     userID,
		DonationID: donationID,
		Message:    message,
		Read:       false,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// NotifyStatusChanged renders the donor-facing message for a lifecycle
// transition and emits it.
func (s *Service) NotifyStatusChanged(ctx context.Context, userID, donationID, foodName string, status domain.DonationStatus) error {
	msg := fmt.Sprintf("Your donation %q status changed to %s.", foodName, status)
	_, err := s.Emit(ctx, userID, donationID, msg)
	return err
}

func (s *Service) List(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	if userID == "" {
		return nil, ErrValidation
	}
	if limit <= 0 || limit > MaxListLimit {
		limit = MaxListLimit
	}
	return s.repo.GetByUserID(ctx, userID, limit)
}

func (s *Service) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	n, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return n, nil
}
