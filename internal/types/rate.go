package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateResult is a resolved exchange rate for a currency pair on a date.
// Inverted is set when the rate was derived from the reverse pair.
type RateResult struct {
	FromCurrency string          `json:"from_currency"`
	ToCurrency   string          `json:"to_currency"`
	Rate         decimal.Decimal `json:"rate"`
	RateDate     time.Time       `json:"rate_date"`
	Source       string          `json:"source"`
	Inverted     bool            `json:"inverted,omitempty"`
	Cached       bool            `json:"-"`
}

// ConversionResult pairs a converted amount with the rate that produced it.
type ConversionResult struct {
	FromCurrency    string          `json:"from_currency"`
	ToCurrency      string          `json:"to_currency"`
	OriginalAmount  decimal.Decimal `json:"original_amount"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	Rate            decimal.Decimal `json:"rate"`
	RateDate        time.Time       `json:"rate_date"`
	Source          string          `json:"source"`
}

// UpsertRateRequest is the admin payload for loading a rate manually.
type UpsertRateRequest struct {
	FromCurrency string `json:"from_currency" binding:"required,len=3"`
	ToCurrency   string `json:"to_currency" binding:"required,len=3"`
	Rate         string `json:"rate" binding:"required"`
	RateDate     string `json:"rate_date" binding:"required"`
	Source       string `json:"source,omitempty"`
}
