package auth

import (
	"context"

	"kindkart/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetAll(ctx context.Context) ([]domain.User, error)
}

type jwtService interface {
	GenerateToken(userID string, role string) (string, error)
}
