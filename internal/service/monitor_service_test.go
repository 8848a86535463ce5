package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"crypto-order-agent/internal/core/domain"
	"crypto-order-agent/internal/core/ports"
	"crypto-order-agent/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type monitorTestDeps struct {
	svc     *MonitorService
	store   *fakeOrderStore
	wallet  *mocks.MockWalletClient
	channel *mocks.MockChannelSender
	ctrl    *gomock.Controller
}

func setupMonitor(t *testing.T) *monitorTestDeps {
	ctrl := gomock.NewController(t)
	d := &monitorTestDeps{
		store:   newFakeOrderStore(),
		wallet:  mocks.NewMockWalletClient(ctrl),
		channel: mocks.NewMockChannelSender(ctrl),
		ctrl:    ctrl,
	}
	d.svc = NewMonitorService(d.wallet, d.store, d.channel, 5*time.Millisecond, zerolog.Nop())
	return d
}

func putAssignedOrder(t *testing.T, store *fakeOrderStore, id, address string) {
	t.Helper()
	price := decimal.RequireFromString("7.50")
	btc := decimal.RequireFromString("0.00025")
	require.NoError(t, store.Put(context.Background(), &domain.Order{
		ID: id, From: "alice", USDPrice: &price, BTCPrice: &btc, Address: address,
	}))
}

func balance(confirmed, unconfirmed string) ports.AddressBalance {
	return ports.AddressBalance{
		Confirmed:   decimal.RequireFromString(confirmed),
		Unconfirmed: decimal.RequireFromString(unconfirmed),
	}
}

func TestMonitor_Watch_ZeroBalanceKeepsPolling(t *testing.T) {
	d := setupMonitor(t)
	ctx, cancel := context.WithCancel(context.Background())
	putAssignedOrder(t, d.store, "o1", "bc1qwaiting")

	var calls atomic.Int32
	d.wallet.EXPECT().AddressBalance(gomock.Any(), "bc1qwaiting").
		DoAndReturn(func(context.Context, string) (ports.AddressBalance, error) {
			calls.Add(1)
			return balance("0", "0"), nil
		}).AnyTimes()

	d.svc.Watch(ctx, "bc1qwaiting", "o1", "alice")
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	order, _ := d.store.Get(ctx, "o1")
	assert.False(t, order.Paid, "zero balance must not mark the order paid")

	cancel()
	d.svc.Wait()
}

func TestMonitor_Watch_PositiveBalanceMarksPaidAndStops(t *testing.T) {
	d := setupMonitor(t)
	ctx := context.Background()
	putAssignedOrder(t, d.store, "o1", "bc1qpaid")

	d.wallet.EXPECT().AddressBalance(gomock.Any(), "bc1qpaid").Return(balance("1", "0"), nil)
	d.channel.EXPECT().Send(gomock.Any(), "alice", "thanks for the payment! 1").Return(nil)

	d.svc.Watch(ctx, "bc1qpaid", "o1", "alice")
	d.svc.Wait() // poller cancels itself after payment

	order, _ := d.store.Get(ctx, "o1")
	assert.True(t, order.Paid)
	assert.Equal(t, domain.OrderStatePaid, order.State())
}

func TestMonitor_Watch_UnconfirmedBalanceCounts(t *testing.T) {
	d := setupMonitor(t)
	ctx := context.Background()
	putAssignedOrder(t, d.store, "o1", "bc1qmempool")

	d.wallet.EXPECT().AddressBalance(gomock.Any(), "bc1qmempool").Return(balance("0", "0.00025"), nil)
	d.channel.EXPECT().Send(gomock.Any(), "alice", "thanks for the payment! 0.00025").Return(nil)

	d.svc.Watch(ctx, "bc1qmempool", "o1", "alice")
	d.svc.Wait()

	order, _ := d.store.Get(ctx, "o1")
	assert.True(t, order.Paid)
}

func TestMonitor_CheckNow_MarksPaidOnce(t *testing.T) {
	d := setupMonitor(t)
	ctx := context.Background()
	putAssignedOrder(t, d.store, "o1", "bc1qnotify")

	d.wallet.EXPECT().AddressBalance(gomock.Any(), "bc1qnotify").Return(balance("1", "0"), nil).Times(2)
	// The confirmation is sent exactly once even when the same positive
	// balance is observed again.
	d.channel.EXPECT().Send(gomock.Any(), "alice", "thanks for the payment! 1").Return(nil).Times(1)

	d.svc.CheckNow(ctx, "bc1qnotify")
	d.svc.CheckNow(ctx, "bc1qnotify")

	order, _ := d.store.Get(ctx, "o1")
	assert.True(t, order.Paid)
}

func TestMonitor_CheckNow_ResolvesAddressFromStore(t *testing.T) {
	d := setupMonitor(t)
	ctx := context.Background()
	putAssignedOrder(t, d.store, "o1", "bc1qrestart")

	// No Watch registered (as right after a restart): the store lookup
	// must still route the notification to the right order.
	d.wallet.EXPECT().AddressBalance(gomock.Any(), "bc1qrestart").Return(balance("2", "0"), nil)
	d.channel.EXPECT().Send(gomock.Any(), "alice", "thanks for the payment! 2").Return(nil)

	d.svc.CheckNow(ctx, "bc1qrestart")

	order, _ := d.store.Get(ctx, "o1")
	assert.True(t, order.Paid)
}

func TestMonitor_CheckNow_UnknownAddressIsIgnored(t *testing.T) {
	d := setupMonitor(t)
	// No wallet expectations: an unknown address never reaches the wallet.
	d.svc.CheckNow(context.Background(), "bc1qstranger")
}

func TestMonitor_Watch_DuplicateWatchIsNoOp(t *testing.T) {
	d := setupMonitor(t)
	// A long interval isolates the immediate first check.
	d.svc = NewMonitorService(d.wallet, d.store, d.channel, time.Hour, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	putAssignedOrder(t, d.store, "o1", "bc1qdup")

	var calls atomic.Int32
	d.wallet.EXPECT().AddressBalance(gomock.Any(), "bc1qdup").
		DoAndReturn(func(context.Context, string) (ports.AddressBalance, error) {
			calls.Add(1)
			return balance("0", "0"), nil
		}).AnyTimes()

	d.svc.Watch(ctx, "bc1qdup", "o1", "alice")
	d.svc.Watch(ctx, "bc1qdup", "o1", "alice")

	// One immediate check per poller; a second poller would have doubled it.
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	d.svc.Wait()
}

func TestMonitor_BalanceErrorKeepsPolling(t *testing.T) {
	d := setupMonitor(t)
	ctx := context.Background()
	putAssignedOrder(t, d.store, "o1", "bc1qflaky")

	gomock.InOrder(
		d.wallet.EXPECT().AddressBalance(gomock.Any(), "bc1qflaky").Return(ports.AddressBalance{}, errors.New("wallet down")),
		d.wallet.EXPECT().AddressBalance(gomock.Any(), "bc1qflaky").Return(balance("1", "0"), nil),
	)
	d.channel.EXPECT().Send(gomock.Any(), "alice", "thanks for the payment! 1").Return(nil)

	d.svc.Watch(ctx, "bc1qflaky", "o1", "alice")
	d.svc.Wait()

	order, _ := d.store.Get(ctx, "o1")
	assert.True(t, order.Paid)
}
