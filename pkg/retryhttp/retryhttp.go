// Package retryhttp wraps an http client with indefinite fixed-delay retry.
package retryhttp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultDelay is the pause between attempts when none is configured.
const DefaultDelay = 20 * time.Second

// Doer is the subset of *http.Client the wrapper needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client retries transport failures forever at a fixed delay. It never
// backs off and never gives up: the agent runs against a small set of
// trusted endpoints and prefers an eventual success over a surfaced error.
// Non-2xx responses are not failures here; callers inspect status codes
// themselves where they care.
//
// Cancellation comes only from the request context.
type Client struct {
	inner Doer
	delay time.Duration
	log   zerolog.Logger
}

// New creates a retrying client around inner. delay <= 0 selects DefaultDelay.
func New(inner Doer, delay time.Duration, log zerolog.Logger) *Client {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Client{inner: inner, delay: delay, log: log}
}

// Do issues the request, retrying on transport error until it succeeds or
// the request context is cancelled. Requests with a body must carry GetBody
// (http.NewRequest sets it for the common reader types) so the body can be
// rewound between attempts.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	for attempt := 1; ; attempt++ {
		resp, err := c.inner.Do(req)
		if err == nil {
			return resp, nil
		}

		c.log.Warn().
			Err(err).
			Str("method", req.Method).
			Str("url", req.URL.Redacted()).
			Int("attempt", attempt).
			Dur("delay", c.delay).
			Msg("request failed, will retry")

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(c.delay):
		}

		if req.Body != nil {
			if req.GetBody == nil {
				return nil, fmt.Errorf("retryhttp: request body is not rewindable")
			}
			body, err := req.GetBody()
			if err != nil {
				return nil, fmt.Errorf("retryhttp: rewinding request body: %w", err)
			}
			req.Body = body
		}
	}
}
