package actions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stepfolio/stepfolio/internal/rates"
)

// Kind identifies a currency action requested from the dashboard.
type Kind string

const (
	KindSwap     Kind = "swap"
	KindTransfer Kind = "transfer"
	KindCashout  Kind = "cashout"
)

// Minimum USD value accepted for a cash-out.
const minCashoutUSD = 10.00

// Input carries a proposed currency action exactly as entered on the form.
// Amount is kept unparsed so the validator owns the numeric interpretation.
type Input struct {
	Kind               Kind
	Currency           string
	Amount             string
	Available          float64
	TargetCurrency     string
	DestinationAddress string
	CashoutMethod      string
	CashoutAccount     string
}

// ValidationError describes the first rule an input failed. The message is
// user-facing and rendered verbatim by the form.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Validate checks a proposed swap, transfer, or cash-out against the user's
// known balance and action-specific constraints. Rules run in a fixed order
// and the first failure wins; a nil return means the input passed every rule.
// Validate has no side effects and never mutates state.
//
// Note: the transfer address check requires a 0x prefix for every currency,
// BTC included. The server applies the BTC-specific format check; this rule
// intentionally mirrors the dashboard form's behavior.
func Validate(in Input, table rates.Table) error {
	if in.Currency == "" {
		return invalid("Please select a currency")
	}

	amount, err := strconv.ParseFloat(in.Amount, 64)
	if err != nil || !(amount > 0) {
		return invalid("Please enter a valid amount")
	}

	if amount > in.Available {
		return invalid("Amount exceeds available balance of %.2f %s", in.Available, strings.ToUpper(in.Currency))
	}

	switch in.Kind {
	case KindSwap:
		if in.TargetCurrency == "" {
			return invalid("Please select a target currency to swap to")
		}
	case KindTransfer:
		if in.DestinationAddress == "" {
			return invalid("Please enter a destination wallet address")
		}
		if !strings.HasPrefix(in.DestinationAddress, "0x") {
			return invalid("Please enter a valid wallet address (should start with 0x)")
		}
	case KindCashout:
		if in.CashoutMethod == "" {
			return invalid("Please select a cashout method")
		}
		if in.CashoutAccount == "" {
			return invalid("Please enter your account information")
		}
		// Unknown currencies estimate at $0 and fail the threshold.
		estimated := table.EstimateUSD(in.Currency, amount)
		if estimated < minCashoutUSD {
			return invalid("Minimum cashout amount is $10.00 (current value: $%.2f)", estimated)
		}
	}

	return nil
}
