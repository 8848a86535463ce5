package ports

import (
	"context"

	"crypto-order-agent/internal/core/domain"

	"github.com/shopspring/decimal"
)

// EncryptionService encrypts and decrypts under the agent's fixed private
// credential. The rest of the agent never touches cryptographic material.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// AddressBalance is the wallet's view of funds on one receive address.
type AddressBalance struct {
	Confirmed   decimal.Decimal
	Unconfirmed decimal.Decimal
}

// Positive reports whether any funds, confirmed or not, have arrived.
func (b AddressBalance) Positive() bool {
	return b.Total().IsPositive()
}

// Total is the sum of confirmed and unconfirmed funds.
func (b AddressBalance) Total() decimal.Decimal {
	return b.Confirmed.Add(b.Unconfirmed)
}

// WalletClient is the wallet service RPC surface the agent consumes.
type WalletClient interface {
	// CreateAddress allocates a fresh receive address. Addresses are never
	// reused across orders.
	CreateAddress(ctx context.Context) (string, error)
	// RegisterNotify asks the wallet to hit callbackURL when the address
	// receives a deposit. Fire-and-forget; polling covers missed callbacks.
	RegisterNotify(ctx context.Context, address, callbackURL string) error
	// AddressBalance queries current funds on an address.
	AddressBalance(ctx context.Context, address string) (AddressBalance, error)
}

// RateFeed is one independent market-data source.
type RateFeed interface {
	Name() string
	Fetch(ctx context.Context) (decimal.Decimal, error)
}

// ConsensusSource exposes the current consensus exchange rate, when one exists.
type ConsensusSource interface {
	Current() (decimal.Decimal, bool)
}

// ChannelSender sends a message to a channel participant.
type ChannelSender interface {
	Send(ctx context.Context, participant, text string) error
}

// ChannelReceiver yields inbound channel messages.
type ChannelReceiver interface {
	Receive(ctx context.Context) (<-chan domain.ChannelMessage, error)
}

// AddressAllocator drives payment-address allocation for a priced order.
// Implementations reschedule failed allocations until they succeed and
// tolerate redundant invocations for the same order.
type AddressAllocator interface {
	Allocate(ctx context.Context, orderID string)
}

// PaymentWatcher observes allocated addresses until funds arrive.
type PaymentWatcher interface {
	// Watch starts at most one balance poller for the address; watching an
	// already-watched or already-paid address is a no-op.
	Watch(ctx context.Context, address, orderID, from string)
	// CheckNow performs one immediate out-of-band balance check, used by
	// the inbound deposit notification path.
	CheckNow(ctx context.Context, address string)
}
