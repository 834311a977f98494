// Package ratesapi is the HTTP adapter for the upstream exchange-rate
// provider. The provider exposes GET {baseURL}/{currency} returning a JSON
// object whose "rates" field maps target currency codes to numeric rates.
package ratesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ebanking/portal_backend/internal/core/ports/gateways"
	"github.com/shopspring/decimal"
)

// Client fetches exchange rates over HTTP. Per-call deadlines come from the
// caller's context; the zero-timeout client never blocks past them.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ gateways.RateSource = (*Client)(nil)

// NewClient creates a rates client for the given provider base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
			},
		},
	}
}

type ratesResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// FetchRates returns the rate mapping for a base currency. Non-2xx statuses,
// network failures and responses without a rates field all surface as errors.
func (c *Client) FetchRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, baseCurrency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create rates request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates for %s: %w", baseCurrency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("rates provider returned status %d for %s", resp.StatusCode, baseCurrency)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read rates response body: %w", err)
	}

	var parsed ratesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse rates response for %s: %w", baseCurrency, err)
	}
	if parsed.Rates == nil {
		return nil, fmt.Errorf("rates response for %s has no rates field", baseCurrency)
	}
	return parsed.Rates, nil
}
