package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/hrplatform/freelancer-api/internal/logger"
)

// RequestOption mutates a single outgoing request.
type RequestOption func(*http.Request)

// ClientOption configures the client at construction time.
type ClientOption func(*Client)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
	Method     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d %s: %s", e.Method, e.URL, e.StatusCode, e.Status, e.Body)
}

// RetryConfig controls the exponential backoff applied to transient
// failures and retryable status codes.
type RetryConfig struct {
	MaxRetries           int
	InitialInterval      time.Duration
	MaxInterval          time.Duration
	Multiplier           float64
	MaxElapsedTime       time.Duration
	RetryableStatusCodes []int
}

// DefaultRetryConfig covers the usual transient upstream failures.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:           3,
		InitialInterval:      100 * time.Millisecond,
		MaxInterval:          10 * time.Second,
		Multiplier:           2.0,
		MaxElapsedTime:       30 * time.Second,
		RetryableStatusCodes: []int{408, 429, 500, 502, 503, 504},
	}
}

// Client is a JSON HTTP client with retries shared by the outbound
// integrations.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	defaultHeaders map[string]string
	retryConfig    *RetryConfig
}

// NewClient creates a client with JSON defaults and the given options
// applied.
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		defaultHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
		retryConfig: DefaultRetryConfig(),
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// WithBaseURL sets the base URL prepended to request paths.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithDefaultHeader adds a header sent on every request.
func WithDefaultHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.defaultHeaders[key] = value
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetryConfig replaces the retry behaviour. Pass nil to disable
// retries.
func WithRetryConfig(config *RetryConfig) ClientOption {
	return func(c *Client) {
		c.retryConfig = config
	}
}

// WithQueryParam adds a query parameter to one request.
func WithQueryParam(key, value string) RequestOption {
	return func(req *http.Request) {
		q := req.URL.Query()
		q.Add(key, value)
		req.URL.RawQuery = q.Encode()
	}
}

// WithHeader sets a header on one request.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, options ...RequestOption) (*http.Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil, options...)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}, options ...RequestOption) (*http.Response, error) {
	return c.Do(ctx, http.MethodPost, path, body, options...)
}

// Do performs a request, retrying transient failures per the configured
// backoff. The caller owns the response body.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, options ...RequestOption) (*http.Response, error) {
	fullURL := path
	if c.baseURL != "" {
		fullURL = strings.TrimSuffix(c.baseURL, "/")
		if !strings.HasPrefix(path, "/") {
			fullURL += "/"
		}
		fullURL += path
	} else if _, err := url.ParseRequestURI(path); err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", path, err)
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	build := func() (*http.Request, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
		if err != nil {
			return nil, err
		}
		for key, value := range c.defaultHeaders {
			req.Header.Set(key, value)
		}
		for _, option := range options {
			option(req)
		}
		return req, nil
	}

	var resp *http.Response
	attempt := func() error {
		req, err := build()
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err = c.httpClient.Do(req)
		if err != nil {
			return err
		}
		for _, code := range c.retryableStatusCodes() {
			if resp.StatusCode == code {
				drainBody(resp)
				return fmt.Errorf("retryable status code: %d", resp.StatusCode)
			}
		}
		return nil
	}

	var err error
	if c.retryConfig != nil && c.retryConfig.MaxRetries > 0 {
		expBackoff := backoff.NewExponentialBackOff()
		expBackoff.InitialInterval = c.retryConfig.InitialInterval
		expBackoff.MaxInterval = c.retryConfig.MaxInterval
		expBackoff.Multiplier = c.retryConfig.Multiplier
		expBackoff.MaxElapsedTime = c.retryConfig.MaxElapsedTime
		err = backoff.Retry(attempt, backoff.WithContext(
			backoff.WithMaxRetries(expBackoff, uint64(c.retryConfig.MaxRetries)), ctx))
	} else {
		err = attempt()
	}
	if err != nil {
		logger.Error("HTTP request failed",
			zap.String("method", method),
			zap.String("url", fullURL),
			zap.Error(err))
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        fullURL,
			Method:     method,
			Body:       string(bodyBytes),
		}
	}
	return resp, nil
}

// DecodeJSON reads and closes the response body into target.
func DecodeJSON(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

func (c *Client) retryableStatusCodes() []int {
	if c.retryConfig == nil {
		return nil
	}
	return c.retryConfig.RetryableStatusCodes
}

func drainBody(resp *http.Response) {
	if resp.Body != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
}
