package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("FUND_002", "Insufficient balance", http.StatusBadRequest),
			expected: "[FUND_002] Insufficient balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, New("VAL_001", "test", http.StatusBadRequest).Unwrap())
}

func TestAppError_WithDetail(t *testing.T) {
	err := ErrExceedsBalance().WithDetail("max_sellable_amount", "7920.00")

	assert.Equal(t, "7920.00", err.Details["max_sellable_amount"])
	assert.Nil(t, ErrExceedsBalance().Details, "constructors return fresh values")
}

func TestErrorCatalog(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Validation", Validation("bad"), "VAL_001", 400},
		{"InvalidAmount", ErrInvalidAmount(), "VAL_002", 400},
		{"InvalidGrams", ErrInvalidGrams(), "VAL_003", 400},
		{"NotFound", ErrNotFound("Deposit"), "NF_001", 404},
		{"UnknownCustomer", ErrUnknownCustomer(), "NF_002", 404},
		{"NoConfirmedWallet", ErrNoConfirmedWallet(), "NF_003", 404},
		{"NotPending", ErrNotPending(), "NF_004", 404},
		{"AlreadyApproved", ErrAlreadyApproved(), "CONF_001", 409},
		{"AlreadyCancelled", ErrAlreadyCancelled(), "CONF_002", 409},
		{"InvalidState", ErrInvalidState("nope"), "CONF_003", 409},
		{"StaleSample", ErrStaleSample(), "CONF_004", 409},
		{"ExceedsBalance", ErrExceedsBalance(), "FUND_001", 400},
		{"InsufficientBalance", ErrInsufficientBalance(), "FUND_002", 400},
		{"InsufficientGold", ErrInsufficientGold(), "FUND_003", 400},
		{"InsufficientGrams", ErrInsufficientGrams(), "FUND_004", 400},
		{"RateUnavailable", ErrRateUnavailable(), "UPS_001", 500},
		{"InvalidToken", ErrInvalidToken(), "AUTH_001", 401},
		{"Forbidden", ErrForbidden(), "AUTH_002", 403},
		{"RateLimit", ErrRateLimitExceeded(), "RATE_001", 429},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestWrappingErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")

	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.True(t, errors.Is(dbErr, inner))

	lockErr := ErrLockTimeout(inner)
	assert.Equal(t, "SYS_002", lockErr.Code)
	assert.Equal(t, 503, lockErr.HTTPStatus)

	staleErr := ErrStaleRate(inner)
	assert.Equal(t, "UPS_002", staleErr.Code)
	assert.Equal(t, 502, staleErr.HTTPStatus)
	assert.True(t, errors.Is(staleErr, inner))

	conflict := ErrConcurrentUpdate(inner)
	assert.Equal(t, "CONF_005", conflict.Code)
	assert.Equal(t, 409, conflict.HTTPStatus)
}
