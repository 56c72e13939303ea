package user

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	demoUsername = "demo"
	demoPassword = "password"
)

// Service manages user accounts.
type Service struct {
	repo Repository
}

// NewService creates a user service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// EnsureDemo returns the demo user, creating it with a hashed password the
// first time sample data is seeded.
func (s *Service) EnsureDemo(ctx context.Context) (User, error) {
	u, err := s.repo.GetByUsername(ctx, demoUsername)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	return s.repo.Create(ctx, User{
		Username:     demoUsername,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
}
