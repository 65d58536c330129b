package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hrplatform/freelancer-api/internal/db"
	"github.com/hrplatform/freelancer-api/internal/helpers"
	"github.com/hrplatform/freelancer-api/internal/logger"
	"github.com/hrplatform/freelancer-api/internal/taxerr"
	"github.com/hrplatform/freelancer-api/internal/types"
)

// rateCacheTTL bounds how long a resolved rate is served from memory
// before the store is consulted again.
const rateCacheTTL = 5 * time.Minute

const sourceIdentity = "identity"
const sourceManual = "manual"

type cachedRate struct {
	result   types.RateResult
	storedAt time.Time
}

// ExchangeRateService resolves exchange rates for payment conversion.
// Lookups go memory cache, then stored rows on or before the date, then
// the reverse pair inverted, then the external provider. Stored rate rows
// are immutable per (pair, date); refreshes insert new dated rows.
type ExchangeRateService struct {
	queries  db.Querier
	provider RateProvider
	logger   *zap.Logger

	mu    sync.RWMutex
	cache map[string]cachedRate
	now   func() time.Time
}

// NewExchangeRateService creates a new exchange rate service. The provider
// may be nil; resolution then stops at stored rates.
func NewExchangeRateService(queries db.Querier, provider RateProvider) *ExchangeRateService {
	return &ExchangeRateService{
		queries:  queries,
		provider: provider,
		logger:   logger.Log,
		cache:    make(map[string]cachedRate),
		now:      time.Now,
	}
}

// GetRate resolves the rate for a currency pair on or before the given date.
func (s *ExchangeRateService) GetRate(ctx context.Context, from, to string, date time.Time) (*types.RateResult, error) {
	fromCurrency := helpers.NormalizeCurrency(from)
	toCurrency := helpers.NormalizeCurrency(to)
	if !helpers.IsSupportedCurrency(fromCurrency) {
		return nil, &taxerr.InvalidCurrencyError{Currency: from}
	}
	if !helpers.IsSupportedCurrency(toCurrency) {
		return nil, &taxerr.InvalidCurrencyError{Currency: to}
	}

	if date.IsZero() {
		date = s.now()
	}

	if fromCurrency == toCurrency {
		return &types.RateResult{
			FromCurrency: fromCurrency,
			ToCurrency:   toCurrency,
			Rate:         decimal.NewFromInt(1),
			RateDate:     date,
			Source:       sourceIdentity,
		}, nil
	}

	key := cacheKey(fromCurrency, toCurrency, date)
	if cached, ok := s.cachedRate(key); ok {
		return cached, nil
	}

	result, err := s.resolve(ctx, fromCurrency, toCurrency, date)
	if err != nil {
		return nil, err
	}

	s.storeInCache(key, *result)
	return result, nil
}

func (s *ExchangeRateService) resolve(ctx context.Context, fromCurrency, toCurrency string, date time.Time) (*types.RateResult, error) {
	row, err := s.queries.GetRateOnOrBefore(ctx, db.GetRateOnOrBeforeParams{
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		RateDate:     helpers.TimeToDate(date),
	})
	if err == nil {
		return &types.RateResult{
			FromCurrency: fromCurrency,
			ToCurrency:   toCurrency,
			Rate:         helpers.NumericToDecimal(row.Rate),
			RateDate:     row.RateDate.Time,
			Source:       row.Source,
		}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up exchange rate: %w", err)
	}

	// Reverse pair fallback: a stored EUR/USD row answers USD/EUR too.
	reverse, err := s.queries.GetRateOnOrBefore(ctx, db.GetRateOnOrBeforeParams{
		FromCurrency: toCurrency,
		ToCurrency:   fromCurrency,
		RateDate:     helpers.TimeToDate(date),
	})
	if err == nil {
		stored := helpers.NumericToDecimal(reverse.Rate)
		if stored.IsZero() {
			return nil, &taxerr.RateUnavailableError{FromCurrency: fromCurrency, ToCurrency: toCurrency, Date: date.Format(dateLayout)}
		}
		return &types.RateResult{
			FromCurrency: fromCurrency,
			ToCurrency:   toCurrency,
			Rate:         decimal.NewFromInt(1).DivRound(stored, 10),
			RateDate:     reverse.RateDate.Time,
			Source:       reverse.Source,
			Inverted:     true,
		}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up reverse exchange rate: %w", err)
	}

	if s.provider == nil {
		return nil, &taxerr.RateUnavailableError{FromCurrency: fromCurrency, ToCurrency: toCurrency, Date: date.Format(dateLayout)}
	}

	fetched, err := s.provider.FetchRate(ctx, fromCurrency, toCurrency, date)
	if err != nil {
		s.logger.Warn("Rate provider lookup failed",
			zap.String("from", fromCurrency),
			zap.String("to", toCurrency),
			zap.Error(err))
		return nil, &taxerr.RateUnavailableError{FromCurrency: fromCurrency, ToCurrency: toCurrency, Date: date.Format(dateLayout)}
	}

	stored, err := s.queries.InsertExchangeRateIfAbsent(ctx, db.InsertExchangeRateIfAbsentParams{
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		Rate:         helpers.DecimalToNumeric(fetched),
		RateDate:     helpers.TimeToDate(date),
		Source:       s.provider.Name(),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		// Raced with another writer, the stored row wins.
		return s.resolve(ctx, fromCurrency, toCurrency, date)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to store fetched exchange rate: %w", err)
	}

	return &types.RateResult{
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		Rate:         helpers.NumericToDecimal(stored.Rate),
		RateDate:     stored.RateDate.Time,
		Source:       stored.Source,
	}, nil
}

// Convert converts an amount between currencies at the rate effective on
// the given date. The converted amount is rounded to two decimals.
func (s *ExchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, from, to string, date time.Time) (*types.ConversionResult, error) {
	rate, err := s.GetRate(ctx, from, to, date)
	if err != nil {
		return nil, err
	}
	return &types.ConversionResult{
		FromCurrency:    rate.FromCurrency,
		ToCurrency:      rate.ToCurrency,
		OriginalAmount:  amount,
		ConvertedAmount: helpers.RoundMoney(amount.Mul(rate.Rate)),
		Rate:            rate.Rate,
		RateDate:        rate.RateDate,
		Source:          rate.Source,
	}, nil
}

// RefreshLatest pulls the provider's latest rates for a base currency and
// stores one dated row per supported counter currency. Returns how many
// rows were written.
func (s *ExchangeRateService) RefreshLatest(ctx context.Context, base string) (int, error) {
	if s.provider == nil {
		return 0, taxerr.NewValidation("no rate provider configured")
	}
	baseCurrency := helpers.NormalizeCurrency(base)
	if !helpers.IsSupportedCurrency(baseCurrency) {
		return 0, &taxerr.InvalidCurrencyError{Currency: base}
	}

	rates, rateDate, err := s.provider.FetchLatest(ctx, baseCurrency)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch latest rates: %w", err)
	}

	written := 0
	for counter, rate := range rates {
		counterCurrency := helpers.NormalizeCurrency(counter)
		if !helpers.IsSupportedCurrency(counterCurrency) || counterCurrency == baseCurrency {
			continue
		}
		_, err := s.queries.InsertExchangeRateIfAbsent(ctx, db.InsertExchangeRateIfAbsentParams{
			FromCurrency: baseCurrency,
			ToCurrency:   counterCurrency,
			Rate:         helpers.DecimalToNumeric(rate),
			RateDate:     helpers.TimeToDate(rateDate),
			Source:       s.provider.Name(),
		})
		if errors.Is(err, pgx.ErrNoRows) {
			// Already stored for this pair and date, keep the original.
			continue
		}
		if err != nil {
			return written, fmt.Errorf("failed to store rate %s/%s: %w", baseCurrency, counterCurrency, err)
		}
		written++
	}

	s.invalidateCache()
	s.logger.Info("Refreshed exchange rates",
		zap.String("base", baseCurrency),
		zap.Int("written", written),
		zap.Time("rate_date", rateDate))
	return written, nil
}

// UpsertManual stores an operator-supplied rate row.
func (s *ExchangeRateService) UpsertManual(ctx context.Context, req types.UpsertRateRequest) (*db.ExchangeRate, error) {
	fromCurrency := helpers.NormalizeCurrency(req.FromCurrency)
	toCurrency := helpers.NormalizeCurrency(req.ToCurrency)
	if !helpers.IsSupportedCurrency(fromCurrency) {
		return nil, &taxerr.InvalidCurrencyError{Currency: req.FromCurrency}
	}
	if !helpers.IsSupportedCurrency(toCurrency) {
		return nil, &taxerr.InvalidCurrencyError{Currency: req.ToCurrency}
	}
	if fromCurrency == toCurrency {
		return nil, taxerr.NewValidation("currency pair must differ")
	}

	rate, err := decimal.NewFromString(req.Rate)
	if err != nil || !rate.IsPositive() {
		return nil, taxerr.NewFieldValidation("rate", "must be a positive decimal")
	}
	rateDate, err := parseDate(req.RateDate)
	if err != nil {
		return nil, taxerr.NewFieldValidation("rate_date", "%v", err)
	}
	source := req.Source
	if source == "" {
		source = sourceManual
	}

	stored, err := s.queries.UpsertExchangeRate(ctx, db.UpsertExchangeRateParams{
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		Rate:         helpers.DecimalToNumeric(rate),
		RateDate:     helpers.TimeToDate(rateDate),
		Source:       source,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert exchange rate: %w", err)
	}

	s.invalidateCache()
	return &stored, nil
}

// ListLatest returns the most recent stored rate per counter currency for
// a base currency.
func (s *ExchangeRateService) ListLatest(ctx context.Context, base string) ([]db.ExchangeRate, error) {
	baseCurrency := helpers.NormalizeCurrency(base)
	if !helpers.IsSupportedCurrency(baseCurrency) {
		return nil, &taxerr.InvalidCurrencyError{Currency: base}
	}
	rates, err := s.queries.ListLatestRatesForBase(ctx, baseCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	return rates, nil
}

func cacheKey(from, to string, date time.Time) string {
	return from + "|" + to + "|" + date.Format(dateLayout)
}

func (s *ExchangeRateService) cachedRate(key string) (*types.RateResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.cache[key]
	if !ok || s.now().Sub(entry.storedAt) > rateCacheTTL {
		return nil, false
	}
	result := entry.result
	result.Cached = true
	return &result, true
}

func (s *ExchangeRateService) storeInCache(key string, result types.RateResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = cachedRate{result: result, storedAt: s.now()}
}

func (s *ExchangeRateService) invalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]cachedRate)
}
