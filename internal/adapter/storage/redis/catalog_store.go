package redis

import (
	"context"
	"fmt"

	"crypto-order-agent/internal/core/ports"
	"crypto-order-agent/pkg/apperror"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const catalogKeyPrefix = "store:products:"

// CatalogStore reads product prices the storefront maintains in the shared
// store. This agent never writes catalog entries.
type CatalogStore struct {
	client *goredis.Client
	log    zerolog.Logger
}

var _ ports.ProductCatalog = (*CatalogStore)(nil)

func NewCatalogStore(client *goredis.Client, log zerolog.Logger) *CatalogStore {
	return &CatalogStore{
		client: client,
		log:    log.With().Str("component", "catalog_store").Logger(),
	}
}

// Price returns the USD price of a product. Unknown products and entries
// that do not parse as a price report found=false rather than an error.
func (s *CatalogStore) Price(ctx context.Context, productID string) (decimal.Decimal, bool, error) {
	value, err := s.client.Get(ctx, catalogKeyPrefix+productID).Result()
	if err == goredis.Nil {
		return decimal.Decimal{}, false, nil
	}
	if err != nil {
		return decimal.Decimal{}, false, apperror.ErrStoreFailure(fmt.Errorf("reading product %s: %w", productID, err))
	}

	price, err := decimal.NewFromString(value)
	if err != nil {
		s.log.Warn().Str("product_id", productID).Str("value", value).Msg("unparseable catalog price")
		return decimal.Decimal{}, false, nil
	}
	return price, true, nil
}
