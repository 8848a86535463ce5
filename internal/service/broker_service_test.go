package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"crypto-order-agent/internal/core/domain"
	"crypto-order-agent/internal/core/ports/mocks"
	"crypto-order-agent/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type brokerTestDeps struct {
	svc     *BrokerService
	store   *fakeOrderStore
	wallet  *mocks.MockWalletClient
	channel *mocks.MockChannelSender
	rates   *mocks.MockConsensusSource
	watcher *mocks.MockPaymentWatcher
	ctrl    *gomock.Controller
}

func setupBroker(t *testing.T, retryDelay time.Duration) *brokerTestDeps {
	ctrl := gomock.NewController(t)
	d := &brokerTestDeps{
		store:   newFakeOrderStore(),
		wallet:  mocks.NewMockWalletClient(ctrl),
		channel: mocks.NewMockChannelSender(ctrl),
		rates:   mocks.NewMockConsensusSource(ctrl),
		watcher: mocks.NewMockPaymentWatcher(ctrl),
		ctrl:    ctrl,
	}
	d.svc = NewBrokerService(
		d.wallet, d.store, d.channel, d.rates, d.watcher,
		"http://agent:8082/electrum_notify", retryDelay, zerolog.Nop(),
	)
	return d
}

func putPricedOrder(t *testing.T, store *fakeOrderStore, id, usd string) {
	t.Helper()
	price := decimal.RequireFromString(usd)
	require.NoError(t, store.Put(context.Background(), &domain.Order{
		ID: id, From: "alice", RawMessage: "order", USDPrice: &price,
	}))
}

func TestBroker_MissingConsensusIsCodedError(t *testing.T) {
	d := setupBroker(t, time.Millisecond)
	ctx := context.Background()
	putPricedOrder(t, d.store, "o1", "7.50")
	d.rates.EXPECT().Current().Return(decimal.Decimal{}, false)

	done, err := d.svc.tryAllocate(ctx, "o1")

	assert.False(t, done)
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNoConsensusRate, appErr.Code)
}

func TestBroker_Allocate_Success(t *testing.T) {
	d := setupBroker(t, time.Millisecond)
	ctx := context.Background()
	putPricedOrder(t, d.store, "o1", "7.50")

	d.rates.EXPECT().Current().Return(decimal.RequireFromString("30000"), true)
	d.wallet.EXPECT().CreateAddress(gomock.Any()).Return("bc1qfresh", nil)
	d.channel.EXPECT().Send(gomock.Any(), "alice", "please pay 0.00025000 BTC to bc1qfresh").Return(nil)
	d.wallet.EXPECT().RegisterNotify(gomock.Any(), "bc1qfresh", "http://agent:8082/electrum_notify/bc1qfresh").Return(nil)
	d.watcher.EXPECT().Watch(gomock.Any(), "bc1qfresh", "o1", "alice")

	d.svc.Allocate(ctx, "o1")
	d.svc.Wait()

	order, err := d.store.Get(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, "bc1qfresh", order.Address)
	require.NotNil(t, order.BTCPrice)
	assert.Equal(t, "0.00025", order.BTCPrice.String())
	assert.Equal(t, domain.OrderStateAddressAssigned, order.State())
}

func TestBroker_Allocate_WaitsForConsensusRate(t *testing.T) {
	d := setupBroker(t, time.Millisecond)
	ctx := context.Background()
	putPricedOrder(t, d.store, "o1", "7.50")

	gomock.InOrder(
		d.rates.EXPECT().Current().Return(decimal.Decimal{}, false),
		d.rates.EXPECT().Current().Return(decimal.RequireFromString("30000"), true),
	)
	d.wallet.EXPECT().CreateAddress(gomock.Any()).Return("bc1qlater", nil)
	d.channel.EXPECT().Send(gomock.Any(), "alice", gomock.Any()).Return(nil)
	d.wallet.EXPECT().RegisterNotify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.watcher.EXPECT().Watch(gomock.Any(), "bc1qlater", "o1", "alice")

	d.svc.Allocate(ctx, "o1")
	d.svc.Wait()

	order, _ := d.store.Get(ctx, "o1")
	assert.Equal(t, "bc1qlater", order.Address)
}

func TestBroker_Allocate_RetriesWalletFailure(t *testing.T) {
	d := setupBroker(t, time.Millisecond)
	ctx := context.Background()
	putPricedOrder(t, d.store, "o1", "10")

	d.rates.EXPECT().Current().Return(decimal.RequireFromString("20000"), true).Times(2)
	gomock.InOrder(
		d.wallet.EXPECT().CreateAddress(gomock.Any()).Return("", errors.New("wallet down")),
		d.wallet.EXPECT().CreateAddress(gomock.Any()).Return("bc1qretry", nil),
	)
	d.channel.EXPECT().Send(gomock.Any(), "alice", gomock.Any()).Return(nil)
	d.wallet.EXPECT().RegisterNotify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.watcher.EXPECT().Watch(gomock.Any(), "bc1qretry", "o1", "alice")

	d.svc.Allocate(ctx, "o1")
	d.svc.Wait()

	order, _ := d.store.Get(ctx, "o1")
	assert.Equal(t, "bc1qretry", order.Address)
	assert.Equal(t, "0.0005", order.BTCPrice.String())
}

func TestBroker_Allocate_UnpricedOrderNeverReachesWallet(t *testing.T) {
	d := setupBroker(t, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, d.store.Put(ctx, &domain.Order{ID: "o1", From: "alice", RawMessage: "order"}))

	// No wallet or rate expectations: allocation must not start without a price.
	d.svc.Allocate(ctx, "o1")
	time.Sleep(20 * time.Millisecond)
	cancel()
	d.svc.Wait()

	order, _ := d.store.Get(ctx, "o1")
	assert.Empty(t, order.Address)
}

func TestBroker_Allocate_ExistingAddressIsNoOp(t *testing.T) {
	d := setupBroker(t, time.Millisecond)
	ctx := context.Background()

	price := decimal.RequireFromString("7.50")
	btc := decimal.RequireFromString("0.00025")
	require.NoError(t, d.store.Put(ctx, &domain.Order{
		ID: "o1", From: "alice", USDPrice: &price, BTCPrice: &btc, Address: "bc1qexisting",
	}))

	// Only monitoring is (re)started; the wallet is never asked for a new address.
	d.watcher.EXPECT().Watch(gomock.Any(), "bc1qexisting", "o1", "alice")

	d.svc.Allocate(ctx, "o1")
	d.svc.Wait()
}

func TestBroker_Allocate_PaidOrderIsNoOp(t *testing.T) {
	d := setupBroker(t, time.Millisecond)
	ctx := context.Background()

	price := decimal.RequireFromString("7.50")
	require.NoError(t, d.store.Put(ctx, &domain.Order{
		ID: "o1", From: "alice", USDPrice: &price, Address: "bc1qdone", Paid: true,
	}))

	d.svc.Allocate(ctx, "o1")
	d.svc.Wait()
}

func TestBroker_Allocate_ConcurrentCallsAllocateOnce(t *testing.T) {
	d := setupBroker(t, time.Millisecond)
	ctx := context.Background()
	putPricedOrder(t, d.store, "o1", "7.50")

	release := make(chan struct{})
	d.rates.EXPECT().Current().Return(decimal.RequireFromString("30000"), true)
	d.wallet.EXPECT().CreateAddress(gomock.Any()).DoAndReturn(func(context.Context) (string, error) {
		<-release
		return "bc1qonce", nil
	})
	d.channel.EXPECT().Send(gomock.Any(), "alice", gomock.Any()).Return(nil)
	d.wallet.EXPECT().RegisterNotify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.watcher.EXPECT().Watch(gomock.Any(), "bc1qonce", "o1", "alice")

	d.svc.Allocate(ctx, "o1")
	d.svc.Allocate(ctx, "o1") // second call must join, not double-allocate
	close(release)
	d.svc.Wait()

	order, _ := d.store.Get(ctx, "o1")
	assert.Equal(t, "bc1qonce", order.Address)
}

func TestBroker_Allocate_UnknownOrderStops(t *testing.T) {
	d := setupBroker(t, time.Millisecond)
	d.svc.Allocate(context.Background(), "missing")
	d.svc.Wait()
}
