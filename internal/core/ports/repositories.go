package ports

import (
	"context"

	"crypto-order-agent/internal/core/domain"

	"github.com/shopspring/decimal"
)

// OrderStore is the durable owner of order records, backed by the shared
// eventually-consistent key-value store. In-memory order caches must always
// be rebuildable from it.
type OrderStore interface {
	// Put persists the full order record and announces the change to
	// subscribers. Records are never deleted.
	Put(ctx context.Context, order *domain.Order) error
	// Get returns nil, nil when no record exists for id.
	Get(ctx context.Context, id string) (*domain.Order, error)
	// GetByAddress returns the order holding the given payment address,
	// or nil, nil when none does.
	GetByAddress(ctx context.Context, address string) (*domain.Order, error)
	// List returns every persisted order, for startup replay.
	List(ctx context.Context) ([]*domain.Order, error)
	// Subscribe yields order identifiers whose records changed. Deliveries
	// may duplicate and may arrive out of write order; consumers re-read
	// the record and re-derive their next action on every event.
	Subscribe(ctx context.Context) (<-chan string, error)
}

// ProductCatalog resolves product identifiers to USD prices.
type ProductCatalog interface {
	// Price returns found=false for unknown products; unknown or unpriceable
	// items contribute zero to an order total.
	Price(ctx context.Context, productID string) (decimal.Decimal, bool, error)
}

// RatePublisher exposes the consensus exchange rate to the shared store.
type RatePublisher interface {
	Publish(ctx context.Context, rate decimal.Decimal) error
	// Clear removes the published rate; a diverging market is worse than
	// a stale one, so divergence clears rather than keeps the prior value.
	Clear(ctx context.Context) error
}
