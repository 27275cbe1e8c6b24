package repository

import (
	"context"
	"time"

	"kindkart/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

type donationModel struct {
	ID         string     `gorm:"column:id;primaryKey"`
	DonorID    string     `gorm:"column:donor_id;index"`
	FoodName   string     `gorm:"column:food_name"`
	Quantity   string     `gorm:"column:quantity"`
	Location   string     `gorm:"column:location"`
	ImageURL   *string    `gorm:"column:image_url"`
	ExpiryTime *time.Time `gorm:"column:expiry_time"`
	Status     string     `gorm:"column:status"`
	NgoID      *string    `gorm:"column:ngo_id;index"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
}

func (donationModel) TableName() string { return "donations" }

func toDomainDonation(m donationModel) *domain.Donation {
	var imageURL, ngoID string
	if m.ImageURL != nil {
		imageURL = *m.ImageURL
	}
	if m.NgoID != nil {
		ngoID = *m.NgoID
	}

	return &domain.Donation{
		ID:         m.ID,
		DonorID:    m.DonorID,
		FoodName:   m.FoodName,
		Quantity:   m.Quantity,
		Location:   m.Location,
		ImageURL:   imageURL,
		ExpiryTime: m.ExpiryTime,
		Status:     domain.DonationStatus(m.Status),
		NgoID:      ngoID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toDonationModel(d *domain.Donation) donationModel {
	var imageURL, ngoID *string
	if d.ImageURL != "" {
		v := d.ImageURL
		imageURL = &v
	}
	if d.NgoID != "" {
		v := d.NgoID
		ngoID = &v
	}

	return donationModel{
		ID:         d.ID,
		DonorID:    d.DonorID,
		FoodName:   d.FoodName,
		Quantity:   d.Quantity,
		Location:   d.Location,
		ImageURL:   imageURL,
		ExpiryTime: d.ExpiryTime,
		Status:     string(d.Status),
		NgoID:      ngoID,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (r *DonationRepository) Create(ctx context.Context, d *domain.Donation) error {
	m := toDonationModel(d)
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*d = *toDomainDonation(m)
	return nil
}

func (r *DonationRepository) GetByID(ctx context.Context, id string) (*domain.Donation, error) {
	var m donationModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainDonation(m), nil
}

// DonationFilter narrows List; zero values mean "no constraint".
type DonationFilter struct {
	DonorID string
	NgoID   string
	Status  string
}

func (r *DonationRepository) List(ctx context.Context, f DonationFilter) ([]domain.Donation, error) {
	q := r.db.WithContext(ctx).Table("donations").Order("created_at DESC")
	if f.DonorID != "" {
		q = q.Where("donor_id = ?", f.DonorID)
	}
	if f.NgoID != "" {
		q = q.Where("ngo_id = ?", f.NgoID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var models []donationModel
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Donation, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainDonation(m))
	}
	return out, nil
}

// UpdateFields applies a partial patch as a single UPDATE. The column map is
// built by the service; returns gorm.ErrRecordNotFound when the id is unknown.
func (r *DonationRepository) UpdateFields(ctx context.Context, id string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).
		Table("donations").
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
