package transfer

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stepfolio/stepfolio/internal/notification"
	"github.com/stepfolio/stepfolio/internal/user"
	"github.com/stepfolio/stepfolio/internal/wallet"
)

var txIDPattern = regexp.MustCompile(`^tx-\d+-[0-9a-f]{8}$`)

func seedWallet(t *testing.T, repo wallet.Repository, balance map[string]float64) wallet.Wallet {
	t.Helper()
	w, err := repo.Create(context.Background(), wallet.Wallet{
		UserID:  1,
		Name:    "Main Exchange Wallet",
		Address: "0x3a92b69eBcf91B23481712F738f0892F55a6c8f5",
		Status:  "Active",
		Balance: balance,
	})
	if err != nil {
		t.Fatalf("seed wallet: %v", err)
	}
	return w
}

func newTestService(repo wallet.Repository) (*Service, Log) {
	log := NewMemoryLog()
	return NewService(repo, log, nil), log
}

func TestProcessTransferSuccess(t *testing.T) {
	repo := wallet.NewMemoryRepository()
	w := seedWallet(t, repo, map[string]float64{"eth": 1.2})
	svc, log := newTestService(repo)

	res, err := svc.Process(context.Background(), Input{
		FromWalletID: w.ID,
		ToAddress:    "0xABCDEF0123456789abcdef0123456789ABCDEF01",
		Amount:       0.5,
		Currency:     "eth",
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	if !txIDPattern.MatchString(res.TransactionID) {
		t.Fatalf("transaction id %q does not match tx-<digits>-<8 hex>", res.TransactionID)
	}
	if res.BalanceAfter != 0.7 {
		t.Fatalf("expected balance after 0.7, got %v", res.BalanceAfter)
	}

	stored, _ := repo.GetByID(context.Background(), w.ID)
	if stored.BalanceOf("eth") != 0.7 {
		t.Fatalf("expected persisted balance 0.7, got %v", stored.BalanceOf("eth"))
	}

	records, _ := log.ListRecent(context.Background(), 10)
	if len(records) != 1 {
		t.Fatalf("expected 1 transaction record, got %d", len(records))
	}
	rec := records[0]
	if rec.Status != StatusPendingBroadcast {
		t.Fatalf("stored record status must be %q, got %q", StatusPendingBroadcast, rec.Status)
	}
	if rec.FromAddress != w.Address || rec.BalanceBefore != 1.2 || rec.BalanceAfter != 0.7 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.NetworkType != NetworkOther {
		t.Fatalf("expected network type %q for eth, got %q", NetworkOther, rec.NetworkType)
	}
}

func TestProcessLeavesOtherCurrenciesUntouched(t *testing.T) {
	repo := wallet.NewMemoryRepository()
	w := seedWallet(t, repo, map[string]float64{"eth": 1.2, "gst": 120.5})
	svc, _ := newTestService(repo)

	if _, err := svc.Process(context.Background(), Input{
		FromWalletID: w.ID, ToAddress: "0xABCDEF0123456789", Amount: 0.2, Currency: "eth",
	}); err != nil {
		t.Fatalf("process: %v", err)
	}

	stored, _ := repo.GetByID(context.Background(), w.ID)
	if stored.BalanceOf("gst") != 120.5 {
		t.Fatalf("gst balance changed: %v", stored.BalanceOf("gst"))
	}
	if stored.BalanceOf("eth") != 1.0 {
		t.Fatalf("expected eth balance 1.0, got %v", stored.BalanceOf("eth"))
	}
}

func TestProcessWalletNotFound(t *testing.T) {
	svc, log := newTestService(wallet.NewMemoryRepository())

	_, err := svc.Process(context.Background(), Input{
		FromWalletID: 99, ToAddress: "0xABC", Amount: 1, Currency: "eth",
	})
	if !errors.Is(err, ErrWalletNotFound) {
		t.Fatalf("expected ErrWalletNotFound, got %v", err)
	}
	if records, _ := log.ListRecent(context.Background(), 10); len(records) != 0 {
		t.Fatalf("no record must be written on failure, got %d", len(records))
	}
}

func TestProcessBTCAddressValidation(t *testing.T) {
	valid := []string{
		"bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq",
		"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
		"3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy",
	}
	invalid := []string{
		"notabitcoinaddress",
		"0xABCDEF0123456789abcdef0123456789ABCDEF01",
		"bc1short",
		"2J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy",
		"1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNaOO", // O is not base58
	}

	for _, addr := range valid {
		repo := wallet.NewMemoryRepository()
		w := seedWallet(t, repo, map[string]float64{"btc": 0.05})
		svc, _ := newTestService(repo)
		if _, err := svc.Process(context.Background(), Input{
			FromWalletID: w.ID, ToAddress: addr, Amount: 0.01, Currency: "btc",
		}); err != nil {
			t.Fatalf("expected address %q accepted, got %v", addr, err)
		}
	}

	for _, addr := range invalid {
		repo := wallet.NewMemoryRepository()
		w := seedWallet(t, repo, map[string]float64{"btc": 0.05})
		svc, _ := newTestService(repo)
		if _, err := svc.Process(context.Background(), Input{
			FromWalletID: w.ID, ToAddress: addr, Amount: 0.01, Currency: "btc",
		}); !errors.Is(err, ErrInvalidBTCAddress) {
			t.Fatalf("expected address %q rejected, got %v", addr, err)
		}
		stored, _ := repo.GetByID(context.Background(), w.ID)
		if stored.BalanceOf("btc") != 0.05 {
			t.Fatalf("balance must be unchanged after rejection, got %v", stored.BalanceOf("btc"))
		}
	}
}

func TestProcessBTCCheckIsCaseInsensitiveOnCurrency(t *testing.T) {
	repo := wallet.NewMemoryRepository()
	w := seedWallet(t, repo, map[string]float64{"btc": 0.05})
	svc, _ := newTestService(repo)

	if _, err := svc.Process(context.Background(), Input{
		FromWalletID: w.ID, ToAddress: "notabitcoinaddress", Amount: 0.01, Currency: "BTC",
	}); !errors.Is(err, ErrInvalidBTCAddress) {
		t.Fatalf("expected ErrInvalidBTCAddress for uppercase currency, got %v", err)
	}
}

func TestProcessInsufficientBalance(t *testing.T) {
	repo := wallet.NewMemoryRepository()
	w := seedWallet(t, repo, map[string]float64{"eth": 1.2})
	svc, log := newTestService(repo)

	_, err := svc.Process(context.Background(), Input{
		FromWalletID: w.ID, ToAddress: "0xABC", Amount: 2, Currency: "eth",
	})
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	// Absent currency counts as zero balance.
	_, err = svc.Process(context.Background(), Input{
		FromWalletID: w.ID, ToAddress: "0xABC", Amount: 0.1, Currency: "sol",
	})
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance for absent currency, got %v", err)
	}

	stored, _ := repo.GetByID(context.Background(), w.ID)
	if stored.BalanceOf("eth") != 1.2 {
		t.Fatalf("balance must be unchanged, got %v", stored.BalanceOf("eth"))
	}
	if records, _ := log.ListRecent(context.Background(), 10); len(records) != 0 {
		t.Fatalf("no record must be written on failure, got %d", len(records))
	}
}

func TestProcessExactBalancePasses(t *testing.T) {
	repo := wallet.NewMemoryRepository()
	w := seedWallet(t, repo, map[string]float64{"eth": 1.2})
	svc, _ := newTestService(repo)

	res, err := svc.Process(context.Background(), Input{
		FromWalletID: w.ID, ToAddress: "0xABC", Amount: 1.2, Currency: "eth",
	})
	if err != nil {
		t.Fatalf("expected exact-balance transfer to pass, got %v", err)
	}
	if res.BalanceAfter != 0 {
		t.Fatalf("expected balance 0, got %v", res.BalanceAfter)
	}
}

func TestProcessRejectsNonPositiveAmounts(t *testing.T) {
	repo := wallet.NewMemoryRepository()
	w := seedWallet(t, repo, map[string]float64{"eth": 1.2})
	svc, _ := newTestService(repo)

	for _, amount := range []float64{0, -0.5} {
		if _, err := svc.Process(context.Background(), Input{
			FromWalletID: w.ID, ToAddress: "0xABC", Amount: amount, Currency: "eth",
		}); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount for %v, got %v", amount, err)
		}
	}
}

func TestProcessIdenticalRequestsApplyTwice(t *testing.T) {
	repo := wallet.NewMemoryRepository()
	w := seedWallet(t, repo, map[string]float64{"eth": 1.2})
	svc, log := newTestService(repo)

	in := Input{FromWalletID: w.ID, ToAddress: "0xABC", Amount: 0.4, Currency: "eth"}

	first, err := svc.Process(context.Background(), in)
	if err != nil {
		t.Fatalf("first transfer: %v", err)
	}
	second, err := svc.Process(context.Background(), in)
	if err != nil {
		t.Fatalf("second transfer: %v", err)
	}

	if first.TransactionID == second.TransactionID {
		t.Fatalf("identical requests must produce distinct transaction ids, both %q", first.TransactionID)
	}

	stored, _ := repo.GetByID(context.Background(), w.ID)
	if got := stored.BalanceOf("eth"); got < 0.39999 || got > 0.40001 {
		t.Fatalf("expected balance 1.2 - 2*0.4 = 0.4, got %v", got)
	}
	if records, _ := log.ListRecent(context.Background(), 10); len(records) != 2 {
		t.Fatalf("expected two records, got %d", len(records))
	}
}

func TestProcessWritesNotification(t *testing.T) {
	repo := wallet.NewMemoryRepository()
	w := seedWallet(t, repo, map[string]float64{"eth": 1.2})
	notifRepo := notification.NewMemoryRepository()
	notifSvc := notification.NewService(notifRepo, user.NewService(user.NewMemoryRepository()))
	svc := NewService(repo, NewMemoryLog(), notifSvc)

	if _, err := svc.Process(context.Background(), Input{
		FromWalletID: w.ID, ToAddress: "0xABC", Amount: 0.5, Currency: "eth",
	}); err != nil {
		t.Fatalf("process: %v", err)
	}

	mine, _ := notifRepo.ListByUser(context.Background(), w.UserID)
	if len(mine) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(mine))
	}
	if mine[0].Title != "Transaction Complete" || mine[0].Message != "You sent 0.5 ETH to 0xABC" {
		t.Fatalf("unexpected notification: %+v", mine[0])
	}
}
