package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Default bounds for the two-feed consensus computation.
var (
	DefaultStalenessWindow    = time.Hour
	DefaultDisparityTolerance = decimal.RequireFromString("1.2")
)

// RateSample is one observation of the USD exchange rate from a single feed.
type RateSample struct {
	Source     string
	Rate       decimal.Decimal
	ObservedAt time.Time
}

// ComputeConsensus reconciles two independent feed samples into a single
// published rate: the midpoint of the two, rounded to 2 decimal places.
//
// It fails closed: samples observed more than staleness apart yield
// ErrSamplesStale, and samples whose high/low ratio reaches the disparity
// tolerance yield ErrSamplesDiverge. A diverging market must clear any
// previously published rate rather than keep quoting it.
func ComputeConsensus(a, b RateSample, staleness time.Duration, tolerance decimal.Decimal) (decimal.Decimal, error) {
	gap := a.ObservedAt.Sub(b.ObservedAt)
	if gap < 0 {
		gap = -gap
	}
	if gap > staleness {
		return decimal.Decimal{}, ErrSamplesStale
	}

	low, high := a.Rate, b.Rate
	if low.GreaterThan(high) {
		low, high = high, low
	}
	if low.IsZero() || high.Div(low).GreaterThanOrEqual(tolerance) {
		return decimal.Decimal{}, ErrSamplesDiverge
	}

	two := decimal.NewFromInt(2)
	return high.Add(low).DivRound(two, 2), nil
}
