package transfer

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/stepfolio/stepfolio/internal/notification"
	"github.com/stepfolio/stepfolio/internal/wallet"
)

var (
	// ErrWalletNotFound indicates the source wallet does not exist.
	ErrWalletNotFound = errors.New("source wallet not found")

	// ErrInvalidBTCAddress indicates the destination failed the Bitcoin
	// address format check.
	ErrInvalidBTCAddress = errors.New("invalid btc address format")

	// ErrInsufficientBalance indicates the stored balance cannot cover the
	// requested amount.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount indicates a non-positive transfer amount.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// Legacy and bech32 mainnet addresses. I and O stay excluded with the rest
// of the ambiguous base58 set.
var btcAddressPattern = regexp.MustCompile(`^(bc1|[13])[a-zA-HJ-NP-Z0-9]{25,39}$`)

// Service is the transfer processor, the only operation that mutates wallet
// state. It re-validates everything server-side; client-side validation runs
// against balance data that may be stale or forged.
type Service struct {
	wallets       wallet.Repository
	log           Log
	notifications *notification.Service
}

// NewService builds a transfer service. notifications may be nil.
func NewService(wallets wallet.Repository, log Log, notifications *notification.Service) *Service {
	return &Service{wallets: wallets, log: log, notifications: notifications}
}

// Process moves balance out of a wallet to an external address and appends a
// transaction record. Any failure before the wallet write leaves all state
// untouched. The wallet write and the log append are not atomic: a log
// failure after the balance was persisted surfaces as an error with the
// decrement already applied.
func (s *Service) Process(ctx context.Context, input Input) (Result, error) {
	if input.Amount <= 0 {
		return Result{}, ErrInvalidAmount
	}
	code := strings.ToLower(input.Currency)

	w, err := s.wallets.GetByID(ctx, input.FromWalletID)
	if err != nil {
		if errors.Is(err, wallet.ErrNotFound) {
			return Result{}, ErrWalletNotFound
		}
		return Result{}, err
	}

	if code == "btc" && !btcAddressPattern.MatchString(input.ToAddress) {
		return Result{}, ErrInvalidBTCAddress
	}

	before, ok := w.Balance[code]
	if !ok || before < input.Amount {
		return Result{}, ErrInsufficientBalance
	}

	updated := make(map[string]float64, len(w.Balance))
	for c, amount := range w.Balance {
		updated[c] = amount
	}
	updated[code] = before - input.Amount
	w.Balance = updated

	transactionID := newTransactionID()

	if _, err := s.wallets.Update(ctx, w); err != nil {
		return Result{}, err
	}

	networkType := NetworkOther
	if code == "btc" {
		networkType = NetworkBitcoinMainnet
	}

	rec := Record{
		TransactionID: transactionID,
		FromAddress:   w.Address,
		ToAddress:     input.ToAddress,
		Amount:        input.Amount,
		Currency:      code,
		Timestamp:     time.Now().UTC(),
		Status:        StatusPendingBroadcast,
		NetworkType:   networkType,
		BalanceBefore: before,
		BalanceAfter:  updated[code],
	}

	if err := s.log.Append(ctx, rec); err != nil {
		return Result{}, err
	}

	if s.notifications != nil {
		_, _ = s.notifications.Create(ctx, notification.CreateInput{
			UserID:  w.UserID,
			Type:    notification.TypeSuccess,
			Title:   "Transaction Complete",
			Message: fmt.Sprintf("You sent %s %s to %s", FormatAmount(input.Amount), strings.ToUpper(code), input.ToAddress),
			Time:    "just now",
		})
	}

	return Result{TransactionID: transactionID, Record: rec, BalanceAfter: updated[code]}, nil
}

// ListRecent returns the newest transfer records.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	return s.log.ListRecent(ctx, limit)
}

// FormatAmount renders an amount without trailing zeros, the way the
// dashboard displays it.
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// newTransactionID returns an id unique across concurrent calls, in the form
// tx-<unix millis>-<8 hex chars>.
func newTransactionID() string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return fmt.Sprintf("tx-%d-%08x", time.Now().UnixMilli(), time.Now().UnixNano()&0xffffffff)
	}
	return fmt.Sprintf("tx-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(suffix))
}
