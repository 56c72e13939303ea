package wallet

import (
	"context"
	"time"

	"github.com/stepfolio/stepfolio/internal/user"
)

const statusActive = "Active"

// Service exposes wallet CRUD plus first-run sample seeding.
type Service struct {
	repo  Repository
	users *user.Service
}

// NewService builds a wallet service instance.
func NewService(repo Repository, users *user.Service) *Service {
	return &Service{repo: repo, users: users}
}

// List returns all wallets. An empty store is seeded with the demo user's
// sample wallets first so a fresh install renders a populated dashboard.
func (s *Service) List(ctx context.Context) ([]Wallet, error) {
	wallets, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(wallets) > 0 {
		return wallets, nil
	}

	if err := s.seed(ctx); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// Get fetches a single wallet.
func (s *Service) Get(ctx context.Context, id int) (Wallet, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateInput captures data required to add a wallet.
type CreateInput struct {
	UserID  int
	Name    string
	Address string
	Status  string
	Balance map[string]float64
}

// Create stores a new wallet record.
func (s *Service) Create(ctx context.Context, input CreateInput) (Wallet, error) {
	status := input.Status
	if status == "" {
		status = statusActive
	}
	balance := input.Balance
	if balance == nil {
		balance = map[string]float64{}
	}
	return s.repo.Create(ctx, Wallet{
		UserID:    input.UserID,
		Name:      input.Name,
		Address:   input.Address,
		Status:    status,
		Balance:   balance,
		CreatedAt: time.Now().UTC(),
	})
}

// Update replaces a wallet record in full.
func (s *Service) Update(ctx context.Context, w Wallet) (Wallet, error) {
	return s.repo.Update(ctx, w)
}

// Delete removes a wallet record.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) seed(ctx context.Context) error {
	demo, err := s.users.EnsureDemo(ctx)
	if err != nil {
		return err
	}

	samples := []CreateInput{
		{
			UserID:  demo.ID,
			Name:    "My STEPN Wallet",
			Address: "0x8f26a53C2B7D71aF5C22D6CeB4aB295627135a6f",
			Balance: map[string]float64{"gst": 120.5, "gmt": 50.2},
		},
		{
			UserID:  demo.ID,
			Name:    "Main Exchange Wallet",
			Address: "0x3a92b69eBcf91B23481712F738f0892F55a6c8f5",
			Balance: map[string]float64{"btc": 0.05, "eth": 1.2},
		},
		{
			UserID:  demo.ID,
			Name:    "SAND Gaming Wallet",
			Address: "0x4f7A8c1b1C88BDd92b7950a740Fc81865a8d38F2",
			Balance: map[string]float64{"sand": 325.75},
		},
	}

	for _, sample := range samples {
		if _, err := s.Create(ctx, sample); err != nil {
			return err
		}
	}
	return nil
}
