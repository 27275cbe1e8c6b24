package repository

import (
	"context"
	"time"

	"kindkart/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

type notificationModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	UserID     string    `gorm:"column:user_id;index"`
	DonationID *string   `gorm:"column:donation_id"`
	Message    string    `gorm:"column:message"`
	Read       bool      `gorm:"column:read"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (notificationModel) TableName() string { return "notifications" }

func toDomainNotification(m notificationModel) *domain.Notification {
	var donationID string
	if m.DonationID != nil {
		donationID = *m.DonationID
	}

	return &domain.Notification{
		ID:         m.ID,
		UserID:     m.UserID,
		DonationID: donationID,
		Message:    m.Message,
		Read:       m.Read,
		CreatedAt:  m.CreatedAt,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	var donationID *string
	if n.DonationID != "" {
		v := n.DonationID
		donationID = &v
	}

	m := notificationModel{
		ID:         n.ID,
		UserID:     n.UserID,
		DonationID: donationID,
		Message:    n.Message,
		Read:       n.Read,
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*n = *toDomainNotification(m)
	return nil
}

func (r *NotificationRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	q := r.db.WithContext(ctx).
		Table("notifications").
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		q = q.Limit(limit)
	}

	var models []notificationModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Notification, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainNotification(m))
	}
	return out, nil
}

// MarkRead flips read to true and returns the updated record. Marking an
// already-read notification is a no-op that still succeeds.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	var m notificationModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}

	if !m.Read {
		res := r.db.WithContext(ctx).
			Table("notifications").
			Where("id = ?", id).
			Update("read", true)
		if res.Error != nil {
			return nil, res.Error
		}
		m.Read = true
	}

	return toDomainNotification(m), nil
}
