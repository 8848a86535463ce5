package redis

import (
	"context"
	"fmt"

	"crypto-order-agent/internal/core/ports"
	"crypto-order-agent/pkg/apperror"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const rateKey = "store:exchange_rate:btcusd"

// RateStore publishes the consensus BTC/USD rate to the shared store for
// other tenants to read. The value is plaintext; it is public market data.
type RateStore struct {
	client *goredis.Client
}

var _ ports.RatePublisher = (*RateStore)(nil)

func NewRateStore(client *goredis.Client) *RateStore {
	return &RateStore{client: client}
}

// Publish writes the rate rounded to cents.
func (s *RateStore) Publish(ctx context.Context, rate decimal.Decimal) error {
	if err := s.client.Set(ctx, rateKey, rate.StringFixed(2), 0).Err(); err != nil {
		return apperror.ErrStoreFailure(fmt.Errorf("publishing exchange rate: %w", err))
	}
	return nil
}

// Clear removes the published rate.
func (s *RateStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, rateKey).Err(); err != nil {
		return apperror.ErrStoreFailure(fmt.Errorf("clearing exchange rate: %w", err))
	}
	return nil
}

// Current reads the published rate back, mainly for diagnostics.
func (s *RateStore) Current(ctx context.Context) (decimal.Decimal, bool, error) {
	value, err := s.client.Get(ctx, rateKey).Result()
	if err == goredis.Nil {
		return decimal.Decimal{}, false, nil
	}
	if err != nil {
		return decimal.Decimal{}, false, apperror.ErrStoreFailure(fmt.Errorf("reading exchange rate: %w", err))
	}
	rate, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, false, apperror.ErrStoreFailure(fmt.Errorf("parsing exchange rate %q: %w", value, err))
	}
	return rate, true, nil
}
