package donation

import (
	"context"

	"kindkart/internal/domain"
	"kindkart/internal/repository"
)

// DonationRepository defines the store operations for the lifecycle engine
type DonationRepository interface {
	Create(ctx context.Context, d *domain.Donation) error
	GetByID(ctx context.Context, id string) (*domain.Donation, error)
	List(ctx context.Context, f repository.DonationFilter) ([]domain.Donation, error)
	UpdateFields(ctx context.Context, id string, updates map[string]any) error
}

// UserRepository resolves donor/ngo references for populated views
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// NotificationSender is the side-effect hook fired after a status change.
// Failures are non-fatal to the transition.
type NotificationSender interface {
	NotifyStatusChanged(ctx context.Context, userID, donationID, foodName string, status domain.DonationStatus) error
}
