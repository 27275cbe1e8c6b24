package domain

import "time"

type Notification struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	DonationID string    `json:"donationId,omitempty"`
	Message    string    `json:"message"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}
