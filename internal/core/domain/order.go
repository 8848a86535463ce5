package domain

import (
	"encoding/hex"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/blake2b"
)

// OrderState is the derived lifecycle position of an order.
type OrderState string

const (
	OrderStateReceived        OrderState = "RECEIVED"
	OrderStatePriced          OrderState = "PRICED"
	OrderStateAddressAssigned OrderState = "ADDRESS_ASSIGNED"
	OrderStatePaid            OrderState = "PAID"
)

// BTCPrecision is the decimal resolution of the payment currency.
const BTCPrecision = 8

// Order is one payment-tracked unit of work derived from an inbound channel
// message. The persisted store owns the record; in-memory copies are caches.
//
// Fields fill in strictly forward: USDPrice before BTCPrice and Address,
// Address before Paid. Nothing is ever unset, and orders are never deleted;
// Paid is the sole terminal marker.
type Order struct {
	ID         string
	RawMessage string
	From       string // originating channel participant
	USDPrice   *decimal.Decimal
	BTCPrice   *decimal.Decimal
	Address    string
	Paid       bool
	CreatedAt  time.Time
}

// State derives the lifecycle position from the fields that are present.
// Store subscription events can arrive duplicated and out of write order,
// so the state is never tracked separately from the record contents.
func (o *Order) State() OrderState {
	switch {
	case o.Paid:
		return OrderStatePaid
	case o.Address != "":
		return OrderStateAddressAssigned
	case o.USDPrice != nil:
		return OrderStatePriced
	default:
		return OrderStateReceived
	}
}

// OrderID computes the content-derived order identifier: a keyed BLAKE2b-256
// hash of the canonical message payload under the agent's private credential.
// Identical payloads always map to the same identifier, which is what makes
// replayed deliveries idempotent. The credential keys the hash so outsiders
// cannot precompute identifiers.
func OrderID(payload []byte, credential []byte) (string, error) {
	h, err := blake2b.New256(credential)
	if err != nil {
		return "", err
	}
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// BTCAmount converts a USD price into the payment currency at the given
// consensus rate, rounded to the currency's supported resolution.
func BTCAmount(usd, rate decimal.Decimal) decimal.Decimal {
	return usd.DivRound(rate, BTCPrecision)
}
