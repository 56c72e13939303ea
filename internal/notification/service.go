package notification

import (
	"context"
	"time"

	"github.com/stepfolio/stepfolio/internal/user"
)

// Service exposes notification reads plus first-run sample seeding.
type Service struct {
	repo  Repository
	users *user.Service
}

// NewService builds a notification service instance.
func NewService(repo Repository, users *user.Service) *Service {
	return &Service{repo: repo, users: users}
}

// List returns all notifications, seeding the demo samples when the store is
// empty.
func (s *Service) List(ctx context.Context) ([]Notification, error) {
	notifications, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(notifications) > 0 {
		return notifications, nil
	}

	if err := s.seed(ctx); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// CreateInput captures data for a new notification.
type CreateInput struct {
	UserID  int
	Type    string
	Title   string
	Message string
	Time    string
}

// Create stores a notification record.
func (s *Service) Create(ctx context.Context, input CreateInput) (Notification, error) {
	return s.repo.Create(ctx, Notification{
		UserID:    input.UserID,
		Type:      input.Type,
		Title:     input.Title,
		Message:   input.Message,
		Time:      input.Time,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *Service) seed(ctx context.Context) error {
	demo, err := s.users.EnsureDemo(ctx)
	if err != nil {
		return err
	}

	samples := []CreateInput{
		{Type: TypeInfo, Title: "Price Alert", Message: "GST is down 5% in the last 24 hours", Time: "10 minutes ago"},
		{Type: TypeSuccess, Title: "Transaction Complete", Message: "Your purchase of 25 SAND was successful", Time: "1 hour ago"},
		{Type: TypeWarning, Title: "Market Alert", Message: "Bitcoin volatility has increased by 12%", Time: "5 hours ago"},
		{Type: TypeError, Title: "Connection Error", Message: "Failed to sync with STEPN wallet", Time: "2 hours ago"},
	}

	for _, sample := range samples {
		sample.UserID = demo.ID
		if _, err := s.Create(ctx, sample); err != nil {
			return err
		}
	}
	return nil
}
