package donation

import (
	"time"

	"kindkart/internal/domain"
)

type CreateDonationRequest struct {
	DonorID    string     `json:"donorId"`
	FoodName   string     `json:"foodName"`
	Quantity   string     `json:"quantity"`
	Location   string     `json:"location"`
	ImageURL   string     `json:"imageUrl"`
	ExpiryTime *time.Time `json:"expiryTime"`
}

// UpdateDonationRequest carries a partial patch: nil means "leave unchanged".
type UpdateDonationRequest struct {
	Status *string `json:"status"`
	NgoID  *string `json:"ngoId"`
}

type ListFilter struct {
	DonorID string
	NgoID   string
	Status  string
}

// UserPublic is the safe projection embedded in populated donation views.
type UserPublic struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type DonationView struct {
	ID         string                `json:"id"`
	DonorID    string                `json:"donorId"`
	Donor      *UserPublic           `json:"donor,omitempty"`
	FoodName   string                `json:"foodName"`
	Quantity   string                `json:"quantity"`
	Location   string                `json:"location"`
	ImageURL   string                `json:"imageUrl,omitempty"`
	ExpiryTime *time.Time            `json:"expiryTime,omitempty"`
	Status     domain.DonationStatus `json:"status"`
	NgoID      string                `json:"ngoId,omitempty"`
	Ngo        *UserPublic           `json:"ngo,omitempty"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

func toUserPublic(u *domain.User) *UserPublic {
	if u == nil {
		return nil
	}
	return &UserPublic{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
	}
}

func newView(d *domain.Donation, donor, ngo *domain.User) *DonationView {
	return &DonationView{
		ID:         d.ID,
		DonorID:    d.DonorID,
		Donor:      toUserPublic(donor),
		FoodName:   d.FoodName,
		Quantity:   d.Quantity,
		Location:   d.Location,
		ImageURL:   d.ImageURL,
		ExpiryTime: d.ExpiryTime,
		Status:     d.Status,
		NgoID:      d.NgoID,
		Ngo:        toUserPublic(ngo),
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
