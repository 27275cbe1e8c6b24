package notification

import (
	"context"

	"kindkart/internal/domain"
)

// NotificationRepository defines the store operations the service relies on.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByUserID(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
}
