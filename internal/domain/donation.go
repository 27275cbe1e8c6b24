package domain

import "time"

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationAccepted  DonationStatus = "accepted"
	DonationCollected DonationStatus = "collected"
)

func (s DonationStatus) Valid() bool {
	switch s {
	case DonationPending, DonationAccepted, DonationCollected:
		return true
	}
	return false
}

// Rank orders statuses along the lifecycle: pending < accepted < collected.
func (s DonationStatus) Rank() int {
	switch s {
	case DonationPending:
		return 0
	case DonationAccepted:
		return 1
	case DonationCollected:
		return 2
	}
	return -1
}

type Donation struct {
	ID         string         `json:"id"`
	DonorID    string         `json:"donorId" validate:"required"`
	FoodName   string         `json:"foodName" validate:"required"`
	Quantity   string         `json:"quantity"`
	Location   string         `json:"location"`
	ImageURL   string         `json:"imageUrl,omitempty"`
	ExpiryTime *time.Time     `json:"expiryTime,omitempty"`
	Status     DonationStatus `json:"status"`
	NgoID      string         `json:"ngoId,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}
