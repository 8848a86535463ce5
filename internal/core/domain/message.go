package domain

import (
	"encoding/json"
	"time"
)

// ChannelMessage is one inbound message from the encrypted channel layer.
// From is the channel participant identity supplied by the transport, not
// part of the wire envelope.
type ChannelMessage struct {
	ID    string    `json:"id"`
	From  string    `json:"-"`
	Text  string    `json:"text"`
	Order bool      `json:"order"`
	Time  time.Time `json:"time"`
}

// Canonical returns the stable byte serialization used as the order
// identity input. Two deliveries of the same envelope canonicalize
// identically regardless of which channel they arrived on.
func (m ChannelMessage) Canonical() []byte {
	b, _ := json.Marshal(m)
	return b
}
