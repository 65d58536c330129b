// Package fx implements the exchange rate provider against the
// Frankfurter API, which republishes the ECB reference rates.
package fx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	httpclient "github.com/hrplatform/freelancer-api/internal/client/http"
	"github.com/hrplatform/freelancer-api/internal/logger"
	"github.com/hrplatform/freelancer-api/internal/services"
	"github.com/hrplatform/freelancer-api/internal/taxerr"
)

const (
	// DefaultBaseURL points at the public Frankfurter instance.
	DefaultBaseURL = "https://api.frankfurter.dev/v1"

	sourceName = "frankfurter"
	dateLayout = "2006-01-02"
)

// Client fetches ECB reference rates. It implements
// services.RateProvider.
type Client struct {
	http   *httpclient.Client
	logger *zap.Logger
}

var _ services.RateProvider = (*Client)(nil)

// NewClient creates a Frankfurter client. An empty baseURL selects the
// public instance.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http: httpclient.NewClient(
			httpclient.WithBaseURL(baseURL),
			httpclient.WithTimeout(10*time.Second),
		),
		logger: logger.Log,
	}
}

// Name identifies rate rows written from this source.
func (c *Client) Name() string {
	return sourceName
}

type ratesResponse struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// FetchRate returns the published rate for one pair on or before the
// given date. The API itself falls back to the previous business day.
func (c *Client) FetchRate(ctx context.Context, from, to string, date time.Time) (decimal.Decimal, error) {
	path := fmt.Sprintf("/%s", date.Format(dateLayout))
	resp, err := c.http.Get(ctx, path,
		httpclient.WithQueryParam("base", from),
		httpclient.WithQueryParam("symbols", to),
	)
	if err != nil {
		return decimal.Zero, c.wrapTransportError(err)
	}

	var body ratesResponse
	if err := httpclient.DecodeJSON(resp, &body); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode rate response: %w", err)
	}

	rate, ok := body.Rates[to]
	if !ok {
		return decimal.Zero, &taxerr.RateUnavailableError{
			FromCurrency: from,
			ToCurrency:   to,
			Date:         date.Format(dateLayout),
		}
	}

	c.logger.Debug("Fetched exchange rate",
		zap.String("from", from),
		zap.String("to", to),
		zap.String("rate", rate.String()),
		zap.String("published", body.Date))
	return rate, nil
}

// FetchLatest returns all current rates quoted against base.
func (c *Client) FetchLatest(ctx context.Context, base string) (map[string]decimal.Decimal, time.Time, error) {
	resp, err := c.http.Get(ctx, "/latest", httpclient.WithQueryParam("base", base))
	if err != nil {
		return nil, time.Time{}, c.wrapTransportError(err)
	}

	var body ratesResponse
	if err := httpclient.DecodeJSON(resp, &body); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to decode latest rates: %w", err)
	}

	publishedAt, err := time.Parse(dateLayout, body.Date)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("unexpected rate date %q: %w", body.Date, err)
	}

	c.logger.Debug("Fetched latest exchange rates",
		zap.String("base", base),
		zap.Int("count", len(body.Rates)),
		zap.String("published", body.Date))
	return body.Rates, publishedAt, nil
}

func (c *Client) wrapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &taxerr.ExternalServiceTimeoutError{Service: sourceName, Err: err}
	}
	return err
}
