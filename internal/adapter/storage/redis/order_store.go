package redis

import (
	"context"
	"fmt"
	"time"

	"crypto-order-agent/internal/core/domain"
	"crypto-order-agent/internal/core/ports"
	"crypto-order-agent/pkg/apperror"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	orderKeyPrefix = "orders:"
	orderChannel   = "orders"
)

// Hash field names of a persisted order record. Everything except the
// timestamp is encrypted at rest; the store is shared infrastructure and
// must never see order contents.
const (
	fieldMessage  = "msg"
	fieldFrom     = "from"
	fieldUSDPrice = "usd_price"
	fieldBTCPrice = "btc_price"
	fieldAddress  = "address"
	fieldPaid     = "paid"
	fieldTime     = "time"
)

// OrderStore implements ports.OrderStore on a Redis hash per order, with
// record-change announcements over pub/sub.
type OrderStore struct {
	client *goredis.Client
	enc    ports.EncryptionService
	log    zerolog.Logger
}

var _ ports.OrderStore = (*OrderStore)(nil)

// NewOrderStore creates a Redis-backed order store. All order fields are
// encrypted with enc before they reach the wire.
func NewOrderStore(client *goredis.Client, enc ports.EncryptionService, log zerolog.Logger) *OrderStore {
	return &OrderStore{
		client: client,
		enc:    enc,
		log:    log.With().Str("component", "order_store").Logger(),
	}
}

// Put persists the full order record and publishes its identifier on the
// orders channel. Existing fields are overwritten; none are removed.
func (s *OrderStore) Put(ctx context.Context, order *domain.Order) error {
	fields, err := s.encode(order)
	if err != nil {
		return err
	}

	key := orderKeyPrefix + order.ID
	if err := s.client.HSet(ctx, key, fields).Err(); err != nil {
		return apperror.ErrStoreFailure(fmt.Errorf("writing %s: %w", key, err))
	}

	s.announce(ctx, order.ID)
	return nil
}

// encode builds the hash field map for an order record.
func (s *OrderStore) encode(order *domain.Order) (map[string]any, error) {
	fields := map[string]any{
		fieldTime: order.CreatedAt.UTC().Format(time.RFC3339Nano),
	}

	put := func(field, plaintext string) error {
		ciphertext, err := s.enc.Encrypt(plaintext)
		if err != nil {
			return apperror.ErrEncryptionFailure(fmt.Errorf("field %s: %w", field, err))
		}
		fields[field] = ciphertext
		return nil
	}

	if err := put(fieldMessage, order.RawMessage); err != nil {
		return nil, err
	}
	if err := put(fieldFrom, order.From); err != nil {
		return nil, err
	}
	if order.USDPrice != nil {
		if err := put(fieldUSDPrice, order.USDPrice.String()); err != nil {
			return nil, err
		}
	}
	if order.BTCPrice != nil {
		if err := put(fieldBTCPrice, order.BTCPrice.String()); err != nil {
			return nil, err
		}
	}
	if order.Address != "" {
		if err := put(fieldAddress, order.Address); err != nil {
			return nil, err
		}
	}
	if order.Paid {
		if err := put(fieldPaid, "true"); err != nil {
			return nil, err
		}
	}
	return fields, nil
}

func (s *OrderStore) announce(ctx context.Context, id string) {
	if err := s.client.Publish(ctx, orderChannel, id).Err(); err != nil {
		// The record is durable; subscribers catch up on the next replay.
		s.log.Warn().Err(err).Str("order_id", id).Msg("announcing order change failed")
	}
}

// Get loads one order record. Legacy records written as a bare encrypted
// string are migrated to the hash layout on first read.
func (s *OrderStore) Get(ctx context.Context, id string) (*domain.Order, error) {
	key := orderKeyPrefix + id

	keyType, err := s.client.Type(ctx, key).Result()
	if err != nil {
		return nil, apperror.ErrStoreFailure(fmt.Errorf("inspecting %s: %w", key, err))
	}

	switch keyType {
	case "none":
		return nil, nil
	case "string":
		return s.migrateLegacy(ctx, id, key)
	}

	values, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, apperror.ErrStoreFailure(fmt.Errorf("reading %s: %w", key, err))
	}
	if len(values) == 0 {
		return nil, nil
	}
	return s.decode(id, values)
}

// GetByAddress scans order records for the one holding address. Addresses
// are encrypted with per-write randomness, so there is no ciphertext index
// to consult.
func (s *OrderStore) GetByAddress(ctx context.Context, address string) (*domain.Order, error) {
	orders, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		if order.Address == address {
			return order, nil
		}
	}
	return nil, nil
}

// List returns every persisted order.
func (s *OrderStore) List(ctx context.Context) ([]*domain.Order, error) {
	var orders []*domain.Order
	iter := s.client.Scan(ctx, 0, orderKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		id := iter.Val()[len(orderKeyPrefix):]
		order, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if order != nil {
			orders = append(orders, order)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, apperror.ErrStoreFailure(fmt.Errorf("scanning orders: %w", err))
	}
	return orders, nil
}

// Subscribe yields identifiers of changed order records until ctx ends.
func (s *OrderStore) Subscribe(ctx context.Context) (<-chan string, error) {
	sub := s.client.Subscribe(ctx, orderChannel)
	if _, err := sub.Receive(ctx); err != nil {
		return nil, apperror.ErrStoreFailure(fmt.Errorf("subscribing to order changes: %w", err))
	}

	events := make(chan string)
	go func() {
		defer close(events)
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				select {
				case events <- msg.Payload:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return events, nil
}

// migrateLegacy rewrites a pre-hash record, a bare encrypted message string,
// into the current layout and returns the migrated order.
func (s *OrderStore) migrateLegacy(ctx context.Context, id, key string) (*domain.Order, error) {
	ciphertext, err := s.client.Get(ctx, key).Result()
	if err != nil {
		return nil, apperror.ErrStoreFailure(fmt.Errorf("reading legacy %s: %w", key, err))
	}
	raw, err := s.enc.Decrypt(ciphertext)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("legacy record %s: %w", key, err))
	}

	order := &domain.Order{
		ID:         id,
		RawMessage: raw,
		CreatedAt:  time.Now().UTC(),
	}
	fields, err := s.encode(order)
	if err != nil {
		return nil, err
	}

	// Delete and rewrite in one transaction; the record must never be gone
	// from the store, not even between the two commands.
	_, err = s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		return nil
	})
	if err != nil {
		return nil, apperror.ErrStoreFailure(fmt.Errorf("migrating legacy %s: %w", key, err))
	}

	s.announce(ctx, id)
	s.log.Info().Str("order_id", id).Msg("migrated legacy order record")
	return order, nil
}

func (s *OrderStore) decode(id string, values map[string]string) (*domain.Order, error) {
	get := func(field string) (string, error) {
		ciphertext, ok := values[field]
		if !ok {
			return "", nil
		}
		plaintext, err := s.enc.Decrypt(ciphertext)
		if err != nil {
			return "", apperror.ErrEncryptionFailure(fmt.Errorf("field %s of %s: %w", field, id, err))
		}
		return plaintext, nil
	}

	order := &domain.Order{ID: id}

	var err error
	if order.RawMessage, err = get(fieldMessage); err != nil {
		return nil, err
	}
	if order.From, err = get(fieldFrom); err != nil {
		return nil, err
	}
	if order.Address, err = get(fieldAddress); err != nil {
		return nil, err
	}

	if usd, err := get(fieldUSDPrice); err != nil {
		return nil, err
	} else if usd != "" {
		price, err := decimal.NewFromString(usd)
		if err != nil {
			return nil, apperror.ErrStoreFailure(fmt.Errorf("usd price of %s: %w", id, err))
		}
		order.USDPrice = &price
	}
	if btc, err := get(fieldBTCPrice); err != nil {
		return nil, err
	} else if btc != "" {
		price, err := decimal.NewFromString(btc)
		if err != nil {
			return nil, apperror.ErrStoreFailure(fmt.Errorf("btc price of %s: %w", id, err))
		}
		order.BTCPrice = &price
	}

	if paid, err := get(fieldPaid); err != nil {
		return nil, err
	} else {
		order.Paid = paid == "true"
	}

	if ts, ok := values[fieldTime]; ok {
		created, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, apperror.ErrStoreFailure(fmt.Errorf("timestamp of %s: %w", id, err))
		}
		order.CreatedAt = created
	}
	return order, nil
}
