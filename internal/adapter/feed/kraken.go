// Package feed implements the market-data port against public exchange
// ticker APIs.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"crypto-order-agent/internal/core/ports"
	"crypto-order-agent/pkg/apperror"
	"crypto-order-agent/pkg/retryhttp"

	"github.com/shopspring/decimal"
)

// KrakenFeed reads the BTC/USD ticker from Kraken's public API.
type KrakenFeed struct {
	http retryhttp.Doer
	url  string
}

var _ ports.RateFeed = (*KrakenFeed)(nil)

func NewKrakenFeed(httpClient retryhttp.Doer, url string) *KrakenFeed {
	return &KrakenFeed{http: httpClient, url: url}
}

func (f *KrakenFeed) Name() string { return "kraken" }

// Fetch returns the 24-hour volume-weighted average price. Kraken's "p"
// field carries [today, last 24 hours]; the second entry smooths out
// intraday spikes.
func (f *KrakenFeed) Fetch(ctx context.Context) (decimal.Decimal, error) {
	body, err := get(ctx, f.http, f.url)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("fetching kraken ticker: %w", err)
	}

	var payload struct {
		Error  []string `json:"error"`
		Result struct {
			XXBTZUSD struct {
				P []decimal.Decimal `json:"p"`
			} `json:"XXBTZUSD"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return decimal.Decimal{}, apperror.ErrMalformedFeedResponse(f.Name(), err)
	}
	if len(payload.Error) > 0 {
		return decimal.Decimal{}, apperror.ErrMalformedFeedResponse(f.Name(), fmt.Errorf("api error: %v", payload.Error))
	}
	if len(payload.Result.XXBTZUSD.P) != 2 {
		return decimal.Decimal{}, apperror.ErrMalformedFeedResponse(f.Name(), fmt.Errorf("vwap field has %d entries, want 2", len(payload.Result.XXBTZUSD.P)))
	}
	return payload.Result.XXBTZUSD.P[1], nil
}

// get performs one GET through the shared retrying client and returns the
// body of a 200 response.
func get(ctx context.Context, client retryhttp.Doer, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
