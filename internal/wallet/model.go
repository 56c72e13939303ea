package wallet

import "time"

// Wallet is a tracked crypto wallet. Balance maps a lowercase currency code
// to the held amount; a missing key means a zero balance. Amounts never go
// negative.
type Wallet struct {
	ID        int                `json:"id"`
	UserID    int                `json:"userId"`
	Name      string             `json:"name"`
	Address   string             `json:"address"`
	Status    string             `json:"status"`
	Balance   map[string]float64 `json:"balance"`
	CreatedAt time.Time          `json:"createdAt"`
}

// BalanceOf returns the held amount for a currency, treating an absent key
// as zero. Currency codes are stored lowercase.
func (w Wallet) BalanceOf(currency string) float64 {
	return w.Balance[currency]
}
