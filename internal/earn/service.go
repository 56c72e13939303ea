package earn

import (
	"context"

	"github.com/stepfolio/stepfolio/internal/wallet"
)

// Service credits simulated move-to-earn rewards to a wallet.
type Service struct {
	wallets wallet.Repository
}

// NewService builds an earn service instance.
func NewService(wallets wallet.Repository) *Service {
	return &Service{wallets: wallets}
}

// Sync converts a step count into tokens and adds them to the wallet's
// balance for the chosen token. Unknown tokens earn nothing but still sync.
func (s *Service) Sync(ctx context.Context, walletID, steps int, token string) (wallet.Wallet, Summary, error) {
	summary := Summarize(steps, token)

	w, err := s.wallets.GetByID(ctx, walletID)
	if err != nil {
		return wallet.Wallet{}, Summary{}, err
	}

	if summary.Tokens > 0 {
		updated := make(map[string]float64, len(w.Balance)+1)
		for code, amount := range w.Balance {
			updated[code] = amount
		}
		updated[summary.Token] += summary.Tokens
		w.Balance = updated

		if w, err = s.wallets.Update(ctx, w); err != nil {
			return wallet.Wallet{}, Summary{}, err
		}
	}

	return w, summary, nil
}
