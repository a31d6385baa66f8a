// Package exchangerate implements usecase.RateSource against the
// exchangerate-api.com v6 HTTP API.
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
)

const defaultBaseURL = "https://v6.exchangerate-api.com"

// Client fetches currency rates over HTTP. Transient failures (network errors
// and 5xx responses) are retried with exponential backoff.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	maxElapsed time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithMaxElapsedTime caps the total retry window.
func WithMaxElapsedTime(d time.Duration) Option {
	return func(c *Client) {
		c.maxElapsed = d
	}
}

// NewClient creates a new Client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		maxElapsed: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

type latestResponse struct {
	Result          string                     `json:"result"`
	ErrorType       string                     `json:"error-type"`
	BaseCode        string                     `json:"base_code"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

// GetRate returns the base→quote rate from the latest-rates endpoint.
func (c *Client) GetRate(ctx context.Context, base, quote string) (decimal.Decimal, error) {
	var payload latestResponse

	operation := func() error {
		url := fmt.Sprintf("%s/v6/%s/latest/%s", c.baseURL, c.apiKey, base)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("exchange rate API returned %d", resp.StatusCode)
		}

		if err := json.Unmarshal(body, &payload); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode rate response: %w", err))
		}

		if payload.Result != "success" {
			return backoff.Permanent(fmt.Errorf("exchange rate API error: %s", payload.ErrorType))
		}

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = c.maxElapsed

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return decimal.Zero, err
	}

	rate, ok := payload.ConversionRates[quote]
	if !ok {
		return decimal.Zero, fmt.Errorf("no rate for %s in %s response", quote, base)
	}

	return rate, nil
}
