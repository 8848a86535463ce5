package service

import (
	"context"
	"encoding/json"
	"sync"

	"crypto-order-agent/internal/clock"
	"crypto-order-agent/internal/core/domain"
	"crypto-order-agent/internal/core/ports"
	"crypto-order-agent/pkg/apperror"
	"crypto-order-agent/pkg/jsonscan"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LifecycleService is the order state machine. It consumes raw channel
// messages, deduplicates them into orders, drives pricing, and hands orders
// to the address broker and payment monitor. Every transition is persisted
// before the next step runs; the in-memory seen-set is only a cache and is
// rebuilt from the store on startup.
//
// Advance is safe to invoke redundantly: store subscription events arrive
// duplicated and out of write order, so each invocation re-reads the record
// and re-derives the next action from its current fields.
type LifecycleService struct {
	store     ports.OrderStore
	catalog   ports.ProductCatalog
	allocator ports.AddressAllocator
	watcher   ports.PaymentWatcher
	receiver  ports.ChannelReceiver
	clk       clock.Clock
	log       zerolog.Logger

	credential []byte // keys the content-derived order identifier

	mu   sync.Mutex
	seen map[string]*domain.Order
	wg   sync.WaitGroup
}

// NewLifecycleService creates the order lifecycle manager.
func NewLifecycleService(
	store ports.OrderStore,
	catalog ports.ProductCatalog,
	allocator ports.AddressAllocator,
	watcher ports.PaymentWatcher,
	receiver ports.ChannelReceiver,
	credential []byte,
	clk clock.Clock,
	log zerolog.Logger,
) *LifecycleService {
	return &LifecycleService{
		store:      store,
		catalog:    catalog,
		allocator:  allocator,
		watcher:    watcher,
		receiver:   receiver,
		clk:        clk,
		log:        log,
		credential: credential,
		seen:       make(map[string]*domain.Order),
	}
}

// HandleMessage turns an inbound channel message into a new order, unless
// the same content has been seen before. Identical replays map to the same
// identifier and are dropped without any externally visible action.
func (s *LifecycleService) HandleMessage(ctx context.Context, msg domain.ChannelMessage) error {
	if !msg.Order {
		return nil
	}

	id, err := domain.OrderID(msg.Canonical(), s.credential)
	if err != nil {
		return apperror.ErrEncryptionFailure(err)
	}

	seen, err := s.previouslySeen(ctx, id)
	if err != nil {
		return err
	}
	if seen {
		s.log.Debug().Str("order_id", id).Msg("duplicate order message ignored")
		return nil
	}

	order := &domain.Order{
		ID:         id,
		RawMessage: msg.Text,
		From:       msg.From,
		CreatedAt:  s.clk.Now(),
	}
	s.cache(order)
	if err := s.store.Put(ctx, order); err != nil {
		// Release the reservation: the store never saw this order, so a
		// redelivery must be free to create it.
		s.mu.Lock()
		delete(s.seen, id)
		s.mu.Unlock()
		return apperror.ErrStoreFailure(err)
	}

	s.log.Info().Str("order_id", id).Str("from", msg.From).Msg("received new order")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.Advance(ctx, id)
	}()
	return nil
}

// previouslySeen consults the seen-set first and the store second, and
// reserves the identifier so concurrent deliveries of the same message
// create at most one order.
func (s *LifecycleService) previouslySeen(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	if _, ok := s.seen[id]; ok {
		s.mu.Unlock()
		return true, nil
	}
	s.seen[id] = nil // reserve
	s.mu.Unlock()

	order, err := s.store.Get(ctx, id)
	if err != nil {
		s.mu.Lock()
		delete(s.seen, id)
		s.mu.Unlock()
		return false, apperror.ErrStoreFailure(err)
	}
	if order != nil {
		s.cache(order)
		return true, nil
	}
	return false, nil
}

// Advance inspects the order's current fields and performs the next
// lifecycle step whose precondition holds. No externally visible action is
// taken twice when its outcome is already present on the record.
func (s *LifecycleService) Advance(ctx context.Context, id string) {
	order, err := s.store.Get(ctx, id)
	if err != nil {
		s.log.Error().Err(apperror.ErrStoreFailure(err)).Str("order_id", id).Msg("loading order failed")
		return
	}
	if order == nil {
		s.log.Error().Err(apperror.ErrOrderNotFound(id)).Msg("advance requested for unknown order")
		return
	}
	s.cache(order)

	switch order.State() {
	case domain.OrderStateReceived:
		if !s.price(ctx, order) {
			return
		}
		s.allocator.Allocate(ctx, order.ID)
	case domain.OrderStatePriced:
		s.allocator.Allocate(ctx, order.ID)
	case domain.OrderStateAddressAssigned:
		s.watcher.Watch(ctx, order.Address, order.ID, order.From)
	case domain.OrderStatePaid:
		// Terminal; nothing left to do.
	}
}

// Resume replays every persisted order through Advance, rebuilding the
// seen-set and picking up work that was in flight before a restart.
func (s *LifecycleService) Resume(ctx context.Context) error {
	orders, err := s.store.List(ctx)
	if err != nil {
		return apperror.ErrStoreFailure(err)
	}
	for _, order := range orders {
		s.cache(order)
		s.wg.Add(1)
		go func(id string) {
			defer s.wg.Done()
			s.Advance(ctx, id)
		}(order.ID)
	}
	s.log.Info().Int("orders", len(orders)).Msg("resumed persisted orders")
	return nil
}

// Run resumes persisted work, then consumes the channel transport and the
// store subscription until ctx is cancelled.
func (s *LifecycleService) Run(ctx context.Context) error {
	if err := s.Resume(ctx); err != nil {
		return err
	}

	events, err := s.store.Subscribe(ctx)
	if err != nil {
		return apperror.ErrStoreFailure(err)
	}
	msgs, err := s.receiver.Receive(ctx)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case id, ok := <-events:
			if !ok {
				return nil
			}
			s.Advance(ctx, id)
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := s.HandleMessage(ctx, msg); err != nil {
				s.log.Error().Err(err).Str("message_id", msg.ID).Msg("handling message failed")
			}
		}
	}
}

// Wait blocks until all advance goroutines have finished after ctx cancel.
func (s *LifecycleService) Wait() {
	s.wg.Wait()
}

// price extracts the embedded item object from the message text, sums the
// catalog prices of its keys, and persists the result. A message with no
// parseable object is logged and left in Received: the computation is
// deterministic on the same input, so only a fresh message retries it.
func (s *LifecycleService) price(ctx context.Context, order *domain.Order) bool {
	span, ok := jsonscan.FirstObject(order.RawMessage)
	if !ok {
		s.log.Error().Err(apperror.ErrMalformedOrderPayload(domain.ErrNoPayload)).
			Str("order_id", order.ID).Msg("pricing abandoned")
		return false
	}

	var items map[string]json.RawMessage
	if err := json.Unmarshal([]byte(span), &items); err != nil {
		s.log.Error().Err(apperror.ErrMalformedOrderPayload(err)).
			Str("order_id", order.ID).Str("payload", span).Msg("pricing abandoned")
		return false
	}

	total := decimal.Zero
	for productID := range items {
		price, found, err := s.catalog.Price(ctx, productID)
		if err != nil {
			s.log.Warn().Err(err).Str("product", productID).Msg("catalog lookup failed, item contributes zero")
			continue
		}
		if !found {
			s.log.Warn().Str("product", productID).Msg("unknown product, item contributes zero")
			continue
		}
		total = total.Add(price)
	}

	order.USDPrice = &total
	if err := s.store.Put(ctx, order); err != nil {
		s.log.Error().Err(apperror.ErrStoreFailure(err)).Str("order_id", order.ID).Msg("persisting price failed")
		order.USDPrice = nil
		return false
	}
	s.cache(order)

	s.log.Info().Str("order_id", order.ID).Str("usd_price", total.String()).Msg("order priced")
	return true
}

func (s *LifecycleService) cache(order *domain.Order) {
	s.mu.Lock()
	s.seen[order.ID] = order
	s.mu.Unlock()
}
