// Package channel implements the encrypted participant-channel transport
// over Redis pub/sub.
package channel

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"crypto-order-agent/internal/clock"
	"crypto-order-agent/internal/core/domain"
	"crypto-order-agent/internal/core/ports"
	"crypto-order-agent/pkg/apperror"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const channelPrefix = "channel:"

// RedisChannel sends and receives encrypted message envelopes on
// per-participant pub/sub channels. The transport is shared; envelopes are
// encrypted end to end and carry no participant identity of their own.
type RedisChannel struct {
	client *goredis.Client
	enc    ports.EncryptionService
	clk    clock.Clock
	log    zerolog.Logger
}

var (
	_ ports.ChannelSender   = (*RedisChannel)(nil)
	_ ports.ChannelReceiver = (*RedisChannel)(nil)
)

func NewRedisChannel(client *goredis.Client, enc ports.EncryptionService, clk clock.Clock, log zerolog.Logger) *RedisChannel {
	return &RedisChannel{
		client: client,
		enc:    enc,
		clk:    clk,
		log:    log.With().Str("component", "channel").Logger(),
	}
}

// Send publishes an encrypted envelope on the participant's channel.
// Replies are plain conversation, never order messages.
func (c *RedisChannel) Send(ctx context.Context, participant, text string) error {
	envelope := domain.ChannelMessage{
		ID:    uuid.NewString(),
		Text:  text,
		Order: false,
		Time:  c.clk.Now().UTC(),
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshaling envelope: %w", err)
	}
	ciphertext, err := c.enc.Encrypt(string(payload))
	if err != nil {
		return apperror.ErrEncryptionFailure(err)
	}
	if err := c.client.Publish(ctx, channelPrefix+participant, ciphertext).Err(); err != nil {
		return fmt.Errorf("publishing to %s: %w", participant, err)
	}
	return nil
}

// Receive subscribes to every participant channel and yields decrypted
// envelopes until ctx ends. Envelopes that do not decrypt or parse are
// dropped with a log line; the transport is shared and carries traffic for
// other tenants too.
func (c *RedisChannel) Receive(ctx context.Context) (<-chan domain.ChannelMessage, error) {
	sub := c.client.PSubscribe(ctx, channelPrefix+"*")
	if _, err := sub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("subscribing to channels: %w", err)
	}

	messages := make(chan domain.ChannelMessage)
	go func() {
		defer close(messages)
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case raw, ok := <-sub.Channel():
				if !ok {
					return
				}
				msg, ok := c.decode(raw)
				if !ok {
					continue
				}
				select {
				case messages <- msg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return messages, nil
}

func (c *RedisChannel) decode(raw *goredis.Message) (domain.ChannelMessage, bool) {
	participant := strings.TrimPrefix(raw.Channel, channelPrefix)

	payload, err := c.enc.Decrypt(raw.Payload)
	if err != nil {
		c.log.Debug().Str("channel", raw.Channel).Msg("undecryptable envelope skipped")
		return domain.ChannelMessage{}, false
	}

	var msg domain.ChannelMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		c.log.Warn().Err(err).Str("channel", raw.Channel).Msg("malformed envelope skipped")
		return domain.ChannelMessage{}, false
	}
	if msg.Time.IsZero() {
		msg.Time = c.clk.Now().UTC()
	}
	msg.From = participant
	return msg, true
}
