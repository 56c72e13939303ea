package transfer

import "time"

// Lifecycle values for an outbound transfer. The stored record starts at
// pending_broadcast; the HTTP response has always reported completed, and
// existing dashboard clients depend on that, so both values remain in play.
const (
	StatusPendingBroadcast = "pending_broadcast"
	StatusCompleted        = "completed"
)

// Network identifiers recorded per transfer.
const (
	NetworkBitcoinMainnet = "bitcoin_mainnet"
	NetworkOther          = "other"
)

// Input is a proposed transfer out of a wallet. Currency codes are
// normalized to lowercase before any balance lookup.
type Input struct {
	FromWalletID int
	ToAddress    string
	Amount       float64
	Currency     string
}

// Record is the append-only log entry written for every successful transfer.
// It is never mutated after creation.
type Record struct {
	TransactionID string    `json:"transactionId"`
	FromAddress   string    `json:"from"`
	ToAddress     string    `json:"to"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Timestamp     time.Time `json:"timestamp"`
	Status        string    `json:"status"`
	NetworkType   string    `json:"networkType"`
	BalanceBefore float64   `json:"balanceBefore"`
	BalanceAfter  float64   `json:"balanceAfter"`
}

// Result is the outcome of a processed transfer.
type Result struct {
	TransactionID string
	Record        Record
	BalanceAfter  float64
}
