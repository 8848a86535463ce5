package service

import (
	"context"
	"sync"
	"time"

	"crypto-order-agent/internal/core/ports"

	"github.com/rs/zerolog"
)

// MonitorService watches allocated payment addresses for incoming funds.
// Two paths converge on the same balance check: a fixed-interval poll per
// address, and the wallet's deposit notification hitting CheckNow. The
// poll is the only cancellable loop in the agent, cancelled exactly once
// the balance turns positive.
type MonitorService struct {
	wallet  ports.WalletClient
	store   ports.OrderStore
	channel ports.ChannelSender
	log     zerolog.Logger

	pollInterval time.Duration

	mu      sync.Mutex
	cancels map[string]context.CancelFunc // address -> poller cancel
	orders  map[string]string             // address -> order id
	wg      sync.WaitGroup
}

// NewMonitorService creates the payment monitor.
func NewMonitorService(wallet ports.WalletClient, store ports.OrderStore, channel ports.ChannelSender, pollInterval time.Duration, log zerolog.Logger) *MonitorService {
	if pollInterval <= 0 {
		pollInterval = 10 * time.Second
	}
	return &MonitorService{
		wallet:       wallet,
		store:        store,
		channel:      channel,
		log:          log,
		pollInterval: pollInterval,
		cancels:      make(map[string]context.CancelFunc),
		orders:       make(map[string]string),
	}
}

// Watch starts polling the address until payment arrives. At most one
// poller runs per address; repeat calls are no-ops.
func (s *MonitorService) Watch(ctx context.Context, address, orderID, from string) {
	s.mu.Lock()
	if _, running := s.cancels[address]; running {
		s.mu.Unlock()
		return
	}
	pollCtx, cancel := context.WithCancel(ctx)
	s.cancels[address] = cancel
	s.orders[address] = orderID
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.stopWatching(address)

		// Fire once immediately, then on the interval.
		if s.check(pollCtx, address) {
			return
		}
		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-pollCtx.Done():
				return
			case <-ticker.C:
				if s.check(pollCtx, address) {
					return
				}
			}
		}
	}()
}

// CheckNow performs one immediate balance check for the address, used by
// the inbound deposit notification. Unknown addresses are resolved through
// the store so a notification arriving right after a restart still lands.
func (s *MonitorService) CheckNow(ctx context.Context, address string) {
	s.mu.Lock()
	_, known := s.orders[address]
	s.mu.Unlock()

	if !known {
		order, err := s.store.GetByAddress(ctx, address)
		if err != nil {
			s.log.Error().Err(err).Str("address", address).Msg("resolving notified address failed")
			return
		}
		if order == nil {
			s.log.Warn().Str("address", address).Msg("deposit notification for unknown address")
			return
		}
		s.mu.Lock()
		s.orders[address] = order.ID
		s.mu.Unlock()
	}

	s.check(ctx, address)
}

// Wait blocks until all pollers have finished after ctx cancel.
func (s *MonitorService) Wait() {
	s.wg.Wait()
}

func (s *MonitorService) stopWatching(address string) {
	s.mu.Lock()
	if cancel, ok := s.cancels[address]; ok {
		cancel()
		delete(s.cancels, address)
	}
	s.mu.Unlock()
}

// check queries the balance once and finalizes payment when funds are
// present. Returns true when the address needs no further watching.
// Marking an already-paid order paid again is a no-op, so the poll and
// notification paths can race freely.
func (s *MonitorService) check(ctx context.Context, address string) bool {
	balance, err := s.wallet.AddressBalance(ctx, address)
	if err != nil {
		s.log.Error().Err(err).Str("address", address).Msg("balance query failed")
		return false
	}
	if !balance.Positive() {
		return false
	}

	s.mu.Lock()
	orderID := s.orders[address]
	s.mu.Unlock()

	order, err := s.store.Get(ctx, orderID)
	if err != nil {
		s.log.Error().Err(err).Str("order_id", orderID).Msg("loading order for payment failed")
		return false
	}
	if order == nil {
		s.log.Error().Str("order_id", orderID).Str("address", address).Msg("paid address has no order record")
		return true
	}
	if order.Paid {
		s.stopWatching(address)
		return true
	}

	order.Paid = true
	if err := s.store.Put(ctx, order); err != nil {
		s.log.Error().Err(err).Str("order_id", order.ID).Msg("persisting paid flag failed")
		return false
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("address", address).
		Str("total", balance.Total().String()).
		Msg("payment received")

	if err := s.channel.Send(ctx, order.From, "thanks for the payment! "+balance.Total().String()); err != nil {
		s.log.Error().Err(err).Str("order_id", order.ID).Msg("sending payment confirmation failed")
	}

	s.stopWatching(address)
	return true
}
