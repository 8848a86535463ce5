package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestOrder_State(t *testing.T) {
	price := dec("7.50")
	btc := dec("0.00015")

	tests := []struct {
		name  string
		order Order
		want  OrderState
	}{
		{"new order", Order{ID: "o1"}, OrderStateReceived},
		{"priced", Order{ID: "o1", USDPrice: &price}, OrderStatePriced},
		{"address assigned", Order{ID: "o1", USDPrice: &price, BTCPrice: &btc, Address: "bc1q..."}, OrderStateAddressAssigned},
		{"paid", Order{ID: "o1", USDPrice: &price, BTCPrice: &btc, Address: "bc1q...", Paid: true}, OrderStatePaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.order.State())
		})
	}
}

func TestOrderID_Deterministic(t *testing.T) {
	cred := []byte("0123456789abcdef0123456789abcdef")
	payload := []byte(`{"id":"m1","text":"order: {\"a\":1}","order":true}`)

	id1, err := OrderID(payload, cred)
	require.NoError(t, err)
	id2, err := OrderID(payload, cred)
	require.NoError(t, err)

	assert.Equal(t, id1, id2, "same payload must map to the same order")
	assert.Len(t, id1, 64)
}

func TestOrderID_KeyedByCredential(t *testing.T) {
	payload := []byte(`{"id":"m1","order":true}`)

	id1, err := OrderID(payload, []byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	id2, err := OrderID(payload, []byte("fedcba9876543210fedcba9876543210"))
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
}

func TestOrderID_DifferentPayloads(t *testing.T) {
	cred := []byte("0123456789abcdef0123456789abcdef")

	id1, err := OrderID([]byte(`{"id":"m1"}`), cred)
	require.NoError(t, err)
	id2, err := OrderID([]byte(`{"id":"m2"}`), cred)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
}

func TestBTCAmount_RoundsToEightPlaces(t *testing.T) {
	got := BTCAmount(dec("7.50"), dec("105000"))
	assert.True(t, dec("0.00007143").Equal(got), "got %s", got)

	got = BTCAmount(dec("100"), dec("30000"))
	assert.True(t, dec("0.00333333").Equal(got), "got %s", got)

	got = BTCAmount(decimal.Zero, dec("30000"))
	assert.True(t, got.IsZero())
}

func TestComputeConsensus_Agreement(t *testing.T) {
	now := time.Now()
	a := RateSample{Source: "kraken", Rate: dec("100"), ObservedAt: now}
	b := RateSample{Source: "bitstamp", Rate: dec("110"), ObservedAt: now}

	got, err := ComputeConsensus(a, b, DefaultStalenessWindow, DefaultDisparityTolerance)
	require.NoError(t, err)
	assert.Equal(t, "105.00", got.StringFixed(2))
}

func TestComputeConsensus_OrderIndependent(t *testing.T) {
	now := time.Now()
	a := RateSample{Source: "kraken", Rate: dec("110"), ObservedAt: now}
	b := RateSample{Source: "bitstamp", Rate: dec("100"), ObservedAt: now}

	got, err := ComputeConsensus(a, b, DefaultStalenessWindow, DefaultDisparityTolerance)
	require.NoError(t, err)
	assert.Equal(t, "105.00", got.StringFixed(2))
}

func TestComputeConsensus_Divergence(t *testing.T) {
	now := time.Now()
	a := RateSample{Source: "kraken", Rate: dec("100"), ObservedAt: now}
	b := RateSample{Source: "bitstamp", Rate: dec("130"), ObservedAt: now}

	_, err := ComputeConsensus(a, b, DefaultStalenessWindow, DefaultDisparityTolerance)
	assert.ErrorIs(t, err, ErrSamplesDiverge)
}

func TestComputeConsensus_ToleranceBoundaryRejects(t *testing.T) {
	now := time.Now()
	a := RateSample{Source: "kraken", Rate: dec("100"), ObservedAt: now}
	b := RateSample{Source: "bitstamp", Rate: dec("120"), ObservedAt: now}

	_, err := ComputeConsensus(a, b, DefaultStalenessWindow, DefaultDisparityTolerance)
	assert.ErrorIs(t, err, ErrSamplesDiverge, "ratio exactly at tolerance must not publish")
}

func TestComputeConsensus_ZeroRateRejects(t *testing.T) {
	now := time.Now()
	a := RateSample{Source: "kraken", Rate: decimal.Zero, ObservedAt: now}
	b := RateSample{Source: "bitstamp", Rate: dec("100"), ObservedAt: now}

	_, err := ComputeConsensus(a, b, DefaultStalenessWindow, DefaultDisparityTolerance)
	assert.ErrorIs(t, err, ErrSamplesDiverge)
}

func TestComputeConsensus_Staleness(t *testing.T) {
	now := time.Now()
	a := RateSample{Source: "kraken", Rate: dec("100"), ObservedAt: now}
	b := RateSample{Source: "bitstamp", Rate: dec("101"), ObservedAt: now.Add(-65 * time.Minute)}

	_, err := ComputeConsensus(a, b, DefaultStalenessWindow, DefaultDisparityTolerance)
	assert.ErrorIs(t, err, ErrSamplesStale, "agreeing values must still be rejected when 65 minutes apart")

	// Symmetric in sample order.
	_, err = ComputeConsensus(b, a, DefaultStalenessWindow, DefaultDisparityTolerance)
	assert.ErrorIs(t, err, ErrSamplesStale)
}

func TestChannelMessage_CanonicalStable(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m1 := ChannelMessage{ID: "m1", From: "alice", Text: `order {"a":1}`, Order: true, Time: at}
	m2 := ChannelMessage{ID: "m1", From: "relay-7", Text: `order {"a":1}`, Order: true, Time: at}

	assert.Equal(t, m1.Canonical(), m2.Canonical(),
		"the delivering channel must not change the order identity input")
}
