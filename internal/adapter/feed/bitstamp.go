package feed

import (
	"context"
	"encoding/json"
	"fmt"

	"crypto-order-agent/internal/core/ports"
	"crypto-order-agent/pkg/apperror"
	"crypto-order-agent/pkg/retryhttp"

	"github.com/shopspring/decimal"
)

// BitstampFeed reads the BTC/USD ticker from Bitstamp's public API.
type BitstampFeed struct {
	http retryhttp.Doer
	url  string
}

var _ ports.RateFeed = (*BitstampFeed)(nil)

func NewBitstampFeed(httpClient retryhttp.Doer, url string) *BitstampFeed {
	return &BitstampFeed{http: httpClient, url: url}
}

func (f *BitstampFeed) Name() string { return "bitstamp" }

// Fetch returns the 24-hour volume-weighted average price from the
// ticker's vwap field.
func (f *BitstampFeed) Fetch(ctx context.Context) (decimal.Decimal, error) {
	body, err := get(ctx, f.http, f.url)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("fetching bitstamp ticker: %w", err)
	}

	var payload struct {
		VWAP *decimal.Decimal `json:"vwap"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return decimal.Decimal{}, apperror.ErrMalformedFeedResponse(f.Name(), err)
	}
	if payload.VWAP == nil {
		return decimal.Decimal{}, apperror.ErrMalformedFeedResponse(f.Name(), fmt.Errorf("vwap field missing"))
	}
	return *payload.VWAP, nil
}
