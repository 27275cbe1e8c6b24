package admin

import (
	"context"

	"kindkart/internal/domain"
	"kindkart/internal/repository"
)

type DonationReader interface {
	List(ctx context.Context, f repository.DonationFilter) ([]domain.Donation, error)
}

type UserReader interface {
	GetAll(ctx context.Context) ([]domain.User, error)
}
