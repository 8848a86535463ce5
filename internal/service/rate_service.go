package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"crypto-order-agent/internal/clock"
	"crypto-order-agent/internal/core/domain"
	"crypto-order-agent/internal/core/ports"
	"crypto-order-agent/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RateService polls two independent price feeds and maintains the consensus
// USD exchange rate. It implements ports.ConsensusSource for the broker and
// publishes the rate to the shared store for everyone else.
//
// Failure policy: a failed or malformed feed response leaves that feed's
// previous sample in place — a stale sample is better than none. Divergence
// between the feeds clears the published rate; the agent would rather stall
// pricing than misprice.
type RateService struct {
	feedA     ports.RateFeed
	feedB     ports.RateFeed
	publisher ports.RatePublisher
	clk       clock.Clock
	log       zerolog.Logger

	pollInterval time.Duration
	staleness    time.Duration
	tolerance    decimal.Decimal

	mu        sync.Mutex
	samples   map[string]*domain.RateSample // keyed by feed name
	consensus *decimal.Decimal
	inflight  map[string]bool

	wg sync.WaitGroup
}

// RateServiceOpts bundles the tunables; zero values select the defaults.
type RateServiceOpts struct {
	PollInterval    time.Duration
	StalenessWindow time.Duration
	Tolerance       decimal.Decimal
}

// NewRateService creates the aggregator over exactly two feeds.
func NewRateService(feedA, feedB ports.RateFeed, publisher ports.RatePublisher, clk clock.Clock, log zerolog.Logger, opts RateServiceOpts) *RateService {
	if opts.PollInterval <= 0 {
		opts.PollInterval = time.Minute
	}
	if opts.StalenessWindow <= 0 {
		opts.StalenessWindow = domain.DefaultStalenessWindow
	}
	if opts.Tolerance.IsZero() {
		opts.Tolerance = domain.DefaultDisparityTolerance
	}
	return &RateService{
		feedA:        feedA,
		feedB:        feedB,
		publisher:    publisher,
		clk:          clk,
		log:          log,
		pollInterval: opts.PollInterval,
		staleness:    opts.StalenessWindow,
		tolerance:    opts.Tolerance,
		samples:      make(map[string]*domain.RateSample),
		inflight:     make(map[string]bool),
	}
}

// Current returns the consensus rate, if one is currently established.
func (s *RateService) Current() (decimal.Decimal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consensus == nil {
		return decimal.Decimal{}, false
	}
	return *s.consensus, true
}

// Start polls both feeds immediately and then on every tick until ctx is
// cancelled. Each feed is polled independently; a feed still waiting on its
// retrying transport simply skips the next tick.
func (s *RateService) Start(ctx context.Context) {
	s.pollAll(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.pollAll(ctx)
			}
		}
	}()
}

// Wait blocks until all polling goroutines have finished after ctx cancel.
func (s *RateService) Wait() {
	s.wg.Wait()
}

func (s *RateService) pollAll(ctx context.Context) {
	for _, feed := range []ports.RateFeed{s.feedA, s.feedB} {
		s.mu.Lock()
		if s.inflight[feed.Name()] {
			s.mu.Unlock()
			continue
		}
		s.inflight[feed.Name()] = true
		s.mu.Unlock()

		s.wg.Add(1)
		go func(feed ports.RateFeed) {
			defer s.wg.Done()
			s.pollFeed(ctx, feed)
			s.mu.Lock()
			s.inflight[feed.Name()] = false
			s.mu.Unlock()
		}(feed)
	}
}

// pollFeed fetches one sample and, on success, recomputes the consensus.
func (s *RateService) pollFeed(ctx context.Context, feed ports.RateFeed) {
	rate, err := feed.Fetch(ctx)
	if err != nil {
		// Keep the previous sample; the next tick retries naturally.
		s.log.Error().Err(err).Str("feed", feed.Name()).Msg("rate feed fetch failed")
		return
	}

	s.mu.Lock()
	s.samples[feed.Name()] = &domain.RateSample{
		Source:     feed.Name(),
		Rate:       rate,
		ObservedAt: s.clk.Now(),
	}
	s.mu.Unlock()

	s.log.Debug().Str("feed", feed.Name()).Str("rate", rate.String()).Msg("rate sample updated")
	s.recompute(ctx)
}

// recompute re-derives the consensus from the current sample pair.
func (s *RateService) recompute(ctx context.Context) {
	s.mu.Lock()
	a := s.samples[s.feedA.Name()]
	b := s.samples[s.feedB.Name()]
	s.mu.Unlock()

	if a == nil || b == nil {
		return
	}

	rate, err := domain.ComputeConsensus(*a, *b, s.staleness, s.tolerance)
	switch {
	case err == nil:
		s.mu.Lock()
		s.consensus = &rate
		s.mu.Unlock()
		if pubErr := s.publisher.Publish(ctx, rate); pubErr != nil {
			s.log.Error().Err(pubErr).Msg("publishing consensus rate failed")
		}
		s.log.Info().Str("rate", rate.StringFixed(2)).Msg("consensus rate updated")

	case errors.Is(err, domain.ErrSamplesDiverge):
		s.mu.Lock()
		s.consensus = nil
		s.mu.Unlock()
		if pubErr := s.publisher.Clear(ctx); pubErr != nil {
			s.log.Error().Err(pubErr).Msg("clearing consensus rate failed")
		}
		s.log.Warn().
			Err(apperror.ErrRateDivergence(a.Rate.String(), b.Rate.String())).
			Str("tolerance", s.tolerance.String()).
			Msg("feed rates diverge, consensus cleared")

	case errors.Is(err, domain.ErrSamplesStale):
		// No publish either way; whichever feed recovers next re-pairs them.
		s.log.Warn().
			Err(apperror.ErrRateStale()).
			Time(s.feedA.Name(), a.ObservedAt).
			Time(s.feedB.Name(), b.ObservedAt).
			Msg("rate samples expired, consensus not updated")
	}
}
