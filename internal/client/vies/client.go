// Package vies checks VAT numbers against the EU VIES registry over its
// REST interface.
package vies

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	httpclient "github.com/hrplatform/freelancer-api/internal/client/http"
	"github.com/hrplatform/freelancer-api/internal/logger"
	"github.com/hrplatform/freelancer-api/internal/services"
	"github.com/hrplatform/freelancer-api/internal/taxerr"
	"github.com/hrplatform/freelancer-api/internal/types"
)

const (
	// DefaultBaseURL points at the public VIES REST endpoint.
	DefaultBaseURL = "https://ec.europa.eu/taxation_customs/vies/rest-api"

	// checkTimeout bounds one registry lookup. The registry is slow and
	// flaky; callers degrade to an advisory result on timeout.
	checkTimeout = 5 * time.Second
)

// Client validates VAT numbers via VIES. It implements
// services.VATRegistryValidator.
type Client struct {
	http    *httpclient.Client
	timeout time.Duration
	logger  *zap.Logger
}

var _ services.VATRegistryValidator = (*Client)(nil)

// NewClient creates a VIES client. An empty baseURL selects the public
// registry.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http: httpclient.NewClient(
			httpclient.WithBaseURL(baseURL),
			httpclient.WithTimeout(checkTimeout),
			// the registry rejects rapid retries, one attempt only
			httpclient.WithRetryConfig(nil),
		),
		timeout: checkTimeout,
		logger:  logger.Log,
	}
}

type checkResponse struct {
	CountryCode string `json:"countryCode"`
	VATNumber   string `json:"vatNumber"`
	Valid       bool   `json:"valid"`
	Name        string `json:"name"`
	Address     string `json:"address"`
}

// CheckVAT queries the registry for one VAT number. The number may carry
// its country prefix; it is stripped before the lookup.
func (c *Client) CheckVAT(ctx context.Context, countryCode, vatNumber string) (*types.VATValidationResult, error) {
	number := strings.ToUpper(strings.TrimSpace(vatNumber))
	number = strings.TrimPrefix(number, strings.ToUpper(countryCode))
	if countryCode == "" || number == "" {
		return nil, taxerr.NewValidation("country code and VAT number are required")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	path := fmt.Sprintf("/ms/%s/vat/%s", url.PathEscape(countryCode), url.PathEscape(number))
	resp, err := c.http.Get(ctx, path)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &taxerr.ExternalServiceTimeoutError{Service: "vies", Err: err}
		}
		return nil, fmt.Errorf("vies lookup failed: %w", err)
	}

	var body checkResponse
	if err := httpclient.DecodeJSON(resp, &body); err != nil {
		return nil, fmt.Errorf("failed to decode vies response: %w", err)
	}

	c.logger.Info("Checked VAT number against VIES",
		zap.String("country_code", countryCode),
		zap.Bool("valid", body.Valid))
	return &types.VATValidationResult{
		CountryCode: countryCode,
		VATNumber:   countryCode + number,
		Valid:       body.Valid,
		Name:        body.Name,
		Address:     body.Address,
		CheckedAt:   time.Now(),
	}, nil
}
