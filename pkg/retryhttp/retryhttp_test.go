package retryhttp

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyDoer fails the first failures attempts, then delegates to inner.
type flakyDoer struct {
	failures int
	calls    int
	inner    Doer
	bodies   []string
}

func (f *flakyDoer) Do(req *http.Request) (*http.Response, error) {
	f.calls++
	if req.Body != nil {
		b, _ := io.ReadAll(req.Body)
		f.bodies = append(f.bodies, string(b))
	}
	if f.calls <= f.failures {
		return nil, errors.New("connection refused")
	}
	return f.inner.Do(req)
}

type okDoer struct{}

func (okDoer) Do(*http.Request) (*http.Response, error) {
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.Client(), time.Millisecond, zerolog.Nop())
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDo_RetriesTransportFailures(t *testing.T) {
	d := &flakyDoer{failures: 3, inner: okDoer{}}
	c := New(d, time.Millisecond, zerolog.Nop())

	req, err := http.NewRequest(http.MethodGet, "http://wallet.local/rpc", nil)
	require.NoError(t, err)

	resp, err := c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, 4, d.calls, "three failures then one success")
}

func TestDo_RewindsBodyBetweenAttempts(t *testing.T) {
	d := &flakyDoer{failures: 2, inner: okDoer{}}
	c := New(d, time.Millisecond, zerolog.Nop())

	body := `{"id":"1","method":"getaddressbalance","params":["addr"]}`
	req, err := http.NewRequest(http.MethodPost, "http://wallet.local/rpc", strings.NewReader(body))
	require.NoError(t, err)

	resp, err := c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	require.Len(t, d.bodies, 3)
	for _, b := range d.bodies {
		assert.Equal(t, body, b, "every attempt must carry the identical body")
	}
}

func TestDo_NonSuccessStatusIsNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.Client(), time.Millisecond, zerolog.Nop())
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, 1, calls, "status codes are the caller's concern")
}

func TestDo_ContextCancelStopsRetrying(t *testing.T) {
	d := &flakyDoer{failures: 1 << 30, inner: okDoer{}}
	c := New(d, 5*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://wallet.local/rpc", nil)
	require.NoError(t, err)

	_, err = c.Do(req)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNew_DefaultDelay(t *testing.T) {
	c := New(okDoer{}, 0, zerolog.Nop())
	assert.Equal(t, DefaultDelay, c.delay)
}
