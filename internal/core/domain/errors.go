package domain

import "errors"

var (
	// ErrSamplesStale means the two feed samples were observed too far apart
	// to be compared; any previously published consensus stays as it is.
	ErrSamplesStale = errors.New("rate samples observed too far apart")

	// ErrSamplesDiverge means the two feeds disagree beyond the disparity
	// tolerance; the published consensus must be cleared.
	ErrSamplesDiverge = errors.New("rate samples diverge beyond tolerance")

	// ErrNoPayload means a message contained no balanced JSON object to price.
	ErrNoPayload = errors.New("message contains no balanced item object")
)
