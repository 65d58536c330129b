package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hrplatform/freelancer-api/internal/types"
)

// RateProvider fetches exchange rates from an external source.
type RateProvider interface {
	// Name identifies the source for stored rate rows.
	Name() string
	// FetchRate returns the rate for one pair on or before the given date.
	FetchRate(ctx context.Context, from, to string, date time.Time) (decimal.Decimal, error)
	// FetchLatest returns the latest rates quoted against the base currency.
	FetchLatest(ctx context.Context, base string) (map[string]decimal.Decimal, time.Time, error)
}

// AccountingSink hands accounting events to the downstream ledger and
// returns the broker's message id.
type AccountingSink interface {
	Dispatch(ctx context.Context, event types.AccountingEvent) (string, error)
}

// VATRegistryValidator checks a VAT number against the EU registry.
// Implementations run under a bounded deadline; a timeout degrades to an
// advisory result rather than failing the caller.
type VATRegistryValidator interface {
	CheckVAT(ctx context.Context, countryCode, vatNumber string) (*types.VATValidationResult, error)
}

// EmailSender delivers one transactional email and returns the provider's
// message id.
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) (string, error)
}
