package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"crypto-order-agent/internal/core/domain"
	"crypto-order-agent/internal/core/ports"
	"crypto-order-agent/pkg/apperror"

	"github.com/rs/zerolog"
)

// BrokerService allocates one-time payment addresses for priced orders.
// Allocation must eventually succeed once pricing and rate data exist, so
// every failure reschedules the whole attempt after a fixed delay instead
// of abandoning the order.
type BrokerService struct {
	wallet  ports.WalletClient
	store   ports.OrderStore
	channel ports.ChannelSender
	rates   ports.ConsensusSource
	watcher ports.PaymentWatcher
	log     zerolog.Logger

	notifyBaseURL string
	retryDelay    time.Duration

	mu       sync.Mutex
	inflight map[string]bool
	wg       sync.WaitGroup
}

// NewBrokerService creates the broker. notifyBaseURL is this agent's inbound
// deposit-notification endpoint; the allocated address is appended to it.
func NewBrokerService(
	wallet ports.WalletClient,
	store ports.OrderStore,
	channel ports.ChannelSender,
	rates ports.ConsensusSource,
	watcher ports.PaymentWatcher,
	notifyBaseURL string,
	retryDelay time.Duration,
	log zerolog.Logger,
) *BrokerService {
	if retryDelay <= 0 {
		retryDelay = 10 * time.Second
	}
	return &BrokerService{
		wallet:        wallet,
		store:         store,
		channel:       channel,
		rates:         rates,
		watcher:       watcher,
		notifyBaseURL: notifyBaseURL,
		retryDelay:    retryDelay,
		log:           log,
		inflight:      make(map[string]bool),
	}
}

// Allocate drives address allocation for the order until it holds an
// address, retrying every retryDelay. Redundant calls for an order whose
// allocation is already running or done are no-ops.
func (s *BrokerService) Allocate(ctx context.Context, orderID string) {
	s.mu.Lock()
	if s.inflight[orderID] {
		s.mu.Unlock()
		return
	}
	s.inflight[orderID] = true
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			delete(s.inflight, orderID)
			s.mu.Unlock()
		}()

		for {
			done, err := s.tryAllocate(ctx, orderID)
			if err != nil {
				s.log.Warn().Err(err).Str("order_id", orderID).
					Dur("delay", s.retryDelay).Msg("address allocation failed, rescheduling")
			}
			if done {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.retryDelay):
			}
		}
	}()
}

// Wait blocks until all allocation loops have finished after ctx cancel.
func (s *BrokerService) Wait() {
	s.wg.Wait()
}

// tryAllocate performs one allocation attempt. done=true means there is
// nothing further to do for this order, whether or not this call did it.
func (s *BrokerService) tryAllocate(ctx context.Context, orderID string) (done bool, err error) {
	order, err := s.store.Get(ctx, orderID)
	if err != nil {
		return false, fmt.Errorf("loading order: %w", err)
	}
	if order == nil {
		s.log.Error().Str("order_id", orderID).Msg("allocation requested for unknown order")
		return true, nil
	}

	if order.Address != "" {
		// Allocation already happened (possibly before a restart); make
		// sure payment monitoring is running and stop.
		if !order.Paid {
			s.watcher.Watch(ctx, order.Address, order.ID, order.From)
		}
		return true, nil
	}

	if order.USDPrice == nil {
		// Precondition not met yet; pricing will catch up.
		return false, nil
	}

	rate, ok := s.rates.Current()
	if !ok {
		return false, apperror.ErrNoConsensusRate()
	}

	address, err := s.wallet.CreateAddress(ctx)
	if err != nil {
		return false, fmt.Errorf("requesting address: %w", err)
	}

	btcPrice := domain.BTCAmount(*order.USDPrice, rate)
	order.Address = address
	order.BTCPrice = &btcPrice
	if err := s.store.Put(ctx, order); err != nil {
		return false, fmt.Errorf("persisting address: %w", err)
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("address", address).
		Str("usd", order.USDPrice.String()).
		Str("btc", btcPrice.String()).
		Msg("payment address allocated")

	instruction := fmt.Sprintf("please pay %s BTC to %s", btcPrice.StringFixed(domain.BTCPrecision), address)
	if err := s.channel.Send(ctx, order.From, instruction); err != nil {
		s.log.Error().Err(err).Str("order_id", order.ID).Msg("sending payment instruction failed")
	}

	// Best effort: the balance poller covers a missed registration.
	callbackURL := s.notifyBaseURL + "/" + address
	if err := s.wallet.RegisterNotify(ctx, address, callbackURL); err != nil {
		s.log.Error().Err(err).Str("address", address).Msg("registering deposit notification failed")
	}

	s.watcher.Watch(ctx, address, order.ID, order.From)
	return true, nil
}
