package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"crypto-order-agent/internal/clock"
	"crypto-order-agent/internal/core/domain"
)

// fakeOrderStore is an in-memory ports.OrderStore for service tests.
// Put copies records so callers cannot mutate stored state through aliases,
// mirroring how the real store round-trips through serialization.
type fakeOrderStore struct {
	mu          sync.Mutex
	orders      map[string]*domain.Order
	events      chan string
	putFailures int // fail this many Puts before recovering
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{
		orders: make(map[string]*domain.Order),
		events: make(chan string, 64),
	}
}

func cloneOrder(o *domain.Order) *domain.Order {
	if o == nil {
		return nil
	}
	c := *o
	if o.USDPrice != nil {
		v := *o.USDPrice
		c.USDPrice = &v
	}
	if o.BTCPrice != nil {
		v := *o.BTCPrice
		c.BTCPrice = &v
	}
	return &c
}

func (f *fakeOrderStore) Put(_ context.Context, order *domain.Order) error {
	f.mu.Lock()
	if f.putFailures > 0 {
		f.putFailures--
		f.mu.Unlock()
		return errors.New("store unavailable")
	}
	f.orders[order.ID] = cloneOrder(order)
	f.mu.Unlock()
	select {
	case f.events <- order.ID:
	default:
	}
	return nil
}

func (f *fakeOrderStore) Get(_ context.Context, id string) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneOrder(f.orders[id]), nil
}

func (f *fakeOrderStore) GetByAddress(_ context.Context, address string) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.Address == address {
			return cloneOrder(o), nil
		}
	}
	return nil, nil
}

func (f *fakeOrderStore) List(_ context.Context) ([]*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func (f *fakeOrderStore) Subscribe(context.Context) (<-chan string, error) {
	return f.events, nil
}

func (f *fakeOrderStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}

// stepClock returns preset instants in sequence, then repeats the last one.
type stepClock struct {
	mu    sync.Mutex
	times []time.Time
	i     int
}

var _ clock.Clock = (*stepClock)(nil)

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.i < len(c.times)-1 {
		t := c.times[c.i]
		c.i++
		return t
	}
	return c.times[len(c.times)-1]
}
