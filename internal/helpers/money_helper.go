package helpers

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hrplatform/freelancer-api/internal/constants"
)

// ReconciliationTolerance is the largest absolute drift between a stored
// amount and its recomputed value that is still treated as equal.
var ReconciliationTolerance = decimal.RequireFromString("0.01")

// RoundMoney rounds an amount to two decimal places. Intermediate
// calculations stay at full precision; only persisted amounts go through here.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ApplyPercent returns amount * rate / 100 at full precision.
func ApplyPercent(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(decimal.NewFromInt(100))
}

// WithinTolerance reports whether two amounts agree within the
// reconciliation tolerance.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(ReconciliationTolerance)
}

// ParseRate parses a percentage string into a decimal, rejecting negatives
// and values above 100.
func ParseRate(s string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid rate %q: %w", s, err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, fmt.Errorf("rate %s out of range", rate.String())
	}
	return rate, nil
}

// NormalizeCurrency upper-cases and trims a currency code.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsSupportedCurrency reports whether the code is in the supported payout set.
func IsSupportedCurrency(code string) bool {
	return constants.SupportedCurrencies[NormalizeCurrency(code)]
}

// FormatMoney renders an amount with its currency symbol for notifications
// and summaries.
func FormatMoney(amount decimal.Decimal, currency string) string {
	symbol, ok := constants.CurrencySymbols[NormalizeCurrency(currency)]
	if !ok {
		return fmt.Sprintf("%s %s", amount.StringFixed(2), currency)
	}
	return fmt.Sprintf("%s%s", symbol, amount.StringFixed(2))
}
