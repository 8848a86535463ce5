package apperror

import (
	"errors"
	"fmt"
)

// Stable error codes, one per failure class.
const (
	CodeMalformedOrderPayload   = "ORD_001"
	CodeOrderNotFound           = "ORD_002"
	CodeMalformedFeedResponse   = "RATE_001"
	CodeRateDivergence          = "RATE_002"
	CodeRateStale               = "RATE_003"
	CodeNoConsensusRate         = "RATE_004"
	CodeMalformedWalletResponse = "WAL_001"
	CodeStoreFailure            = "STORE_001"
	CodeEncryptionFailure       = "SEC_001"
)

// As unwraps err to an AppError if one is in the chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

// AppError is a coded error used across the agent. Codes group failures by
// subsystem so log lines stay grep-able; none of them abort the process.
type AppError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Err     error  `json:"-"` // Wrapped internal error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ---- Order lifecycle (ORD) ----

func ErrMalformedOrderPayload(err error) *AppError {
	return Wrap(CodeMalformedOrderPayload, "Order payload contains no parseable item object", err)
}

func ErrOrderNotFound(id string) *AppError {
	return New(CodeOrderNotFound, fmt.Sprintf("Order %s not found", id))
}

// ---- Exchange rate consensus (RATE) ----

func ErrMalformedFeedResponse(source string, err error) *AppError {
	return Wrap(CodeMalformedFeedResponse, fmt.Sprintf("Malformed response from rate feed %s", source), err)
}

func ErrRateDivergence(rateA, rateB string) *AppError {
	return New(CodeRateDivergence, fmt.Sprintf("Feed rates %s and %s diverge beyond tolerance", rateA, rateB))
}

func ErrRateStale() *AppError {
	return New(CodeRateStale, "Rate samples are too far apart in time")
}

func ErrNoConsensusRate() *AppError {
	return New(CodeNoConsensusRate, "No consensus exchange rate available")
}

// ---- Wallet RPC (WAL) ----

func ErrMalformedWalletResponse(method string, err error) *AppError {
	return Wrap(CodeMalformedWalletResponse, fmt.Sprintf("Wallet %s response missing expected fields", method), err)
}

// ---- Store & infrastructure (STORE / SEC) ----

func ErrStoreFailure(err error) *AppError {
	return Wrap(CodeStoreFailure, "Order store operation failed", err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap(CodeEncryptionFailure, "Encryption service failure", err)
}
