package rates

import (
	"fmt"
	"strings"
)

// Table maps a lowercase currency code to an approximate USD rate. The rates
// are display estimates for validation thresholds, not authoritative pricing.
type Table map[string]float64

// Default returns the built-in approximation table.
func Default() Table {
	return Table{
		"btc":  64000,
		"eth":  3000,
		"sol":  140,
		"gst":  0.02,
		"gmt":  0.15,
		"sand": 0.45,
	}
}

// New builds a table from the provided mapping, normalizing currency codes to
// lowercase. Negative rates are rejected.
func New(values map[string]float64) (Table, error) {
	t := make(Table, len(values))
	for code, rate := range values {
		if rate < 0 {
			return nil, fmt.Errorf("rate for %s must not be negative", code)
		}
		t[strings.ToLower(code)] = rate
	}
	return t, nil
}

// Lookup returns the USD rate for a currency code. Unknown currencies
// resolve to 0, which makes USD-value estimates for them evaluate to $0.
func (t Table) Lookup(currency string) float64 {
	return t[strings.ToLower(currency)]
}

// EstimateUSD returns the approximate USD value of an amount in the given
// currency.
func (t Table) EstimateUSD(currency string, amount float64) float64 {
	return amount * t.Lookup(currency)
}
