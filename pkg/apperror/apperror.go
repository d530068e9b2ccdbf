package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
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
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a generic request validation error. Validation
// failures are rejected before any ledger I/O happens.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ErrMissingFields reports absent required fields.
func ErrMissingFields() *AppError {
	return New("VAL_001", "Missing required fields", http.StatusBadRequest)
}

// ErrInvalidStatus reports a status string with no on-chain encoding.
func ErrInvalidStatus(status string) *AppError {
	return New("VAL_002", fmt.Sprintf("Invalid status: %s", status), http.StatusBadRequest)
}

// ErrInvalidTagText reports a malformed NFC tag payload.
func ErrInvalidTagText(message string) *AppError {
	return New("VAL_003", message, http.StatusBadRequest)
}

// ---- Ledger (LED) ----

// LedgerExecution reports a state-mutating contract call that failed or
// reverted. Never retried; the underlying message is surfaced verbatim so
// the caller can make an explicit retry decision.
func LedgerExecution(err error) *AppError {
	return Wrap("LED_001", err.Error(), http.StatusInternalServerError, err)
}

// LedgerRead reports a read call that still failed after the retry budget
// was exhausted.
func LedgerRead(err error) *AppError {
	return Wrap("LED_002", err.Error(), http.StatusInternalServerError, err)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an unexpected internal failure.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
