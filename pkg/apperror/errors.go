package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string         `json:"error_code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"` // Wrapped internal error (not exposed to client)
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

// WithDetail attaches a diagnostic value returned to the client.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
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

// Validation returns a VAL_001 error for malformed or missing input.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_002", "Invalid amount", http.StatusBadRequest)
}

func ErrInvalidGrams() *AppError {
	return New("VAL_003", "Grams must be greater than zero", http.StatusBadRequest)
}

// ---- Not found (NF) ----

func ErrNotFound(entity string) *AppError {
	return New("NF_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrUnknownCustomer() *AppError {
	return New("NF_002", "Customer not found", http.StatusNotFound)
}

func ErrNoConfirmedWallet() *AppError {
	return New("NF_003", "No confirmed wallet found for customer", http.StatusNotFound)
}

func ErrNotPending() *AppError {
	return New("NF_004", "No pending payment found", http.StatusNotFound)
}

// ---- State machine conflicts (CONF) ----

func ErrAlreadyApproved() *AppError {
	return New("CONF_001", "Already confirmed", http.StatusConflict)
}

func ErrAlreadyCancelled() *AppError {
	return New("CONF_002", "Already cancelled", http.StatusConflict)
}

func ErrInvalidState(message string) *AppError {
	return New("CONF_003", message, http.StatusConflict)
}

func ErrStaleSample() *AppError {
	return New("CONF_004", "Rate sample is not newer than the latest stored sample", http.StatusConflict)
}

func ErrConcurrentUpdate(err error) *AppError {
	return Wrap("CONF_005", "Balance was modified concurrently, retry the request", http.StatusConflict, err)
}

// ---- Funds & gold (FUND) ----

func ErrExceedsBalance() *AppError {
	return New("FUND_001", "Amount exceeds the maximum sellable amount", http.StatusBadRequest)
}

func ErrInsufficientBalance() *AppError {
	return New("FUND_002", "Insufficient balance in wallet", http.StatusBadRequest)
}

func ErrInsufficientGold() *AppError {
	return New("FUND_003", "Insufficient gold in wallet", http.StatusBadRequest)
}

func ErrInsufficientGrams() *AppError {
	return New("FUND_004", "Requested grams exceed available grams", http.StatusBadRequest)
}

// ---- Upstream (UPS) ----

func ErrRateUnavailable() *AppError {
	return New("UPS_001", "Current gold rate not available", http.StatusInternalServerError)
}

func ErrStaleRate(err error) *AppError {
	return Wrap("UPS_002", "Gold price feed unavailable", http.StatusBadGateway, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_002", "Operator role required", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
