package auth

import (
	"context"
	"errors"
	"strings"

	"kindkart/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	users UserRepository
	jwt   jwtService
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Signup creates a user with a bcrypt-hashed password. Role defaults to
// donor; unknown roles are rejected.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*domain.User, string, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if name == "" || email == "" || req.Password == "" {
		return nil, "", ErrValidation
	}

	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleDonor
	}
	if !role.Valid() {
		return nil, "", ErrValidation
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        req.Phone,
		Address:      req.Address,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// a concurrent signup can slip past ExistsByEmail; the unique
		// index reports it as 23505
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, "", ErrEmailAlreadyExists
		}
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, "", ErrValidation
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]UserPublic, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]UserPublic, 0, len(users))
	for _, u := range users {
		out = append(out, UserPublic{
			ID:      u.ID,
			Name:    u.Name,
			Email:   u.Email,
			Role:    string(u.Role),
			Phone:   u.Phone,
			Address: u.Address,
		})
	}
	return out, nil
}
