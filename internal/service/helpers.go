package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"
	"gold-ledger/pkg/apperror"
)

var errBalanceRowMissing = errors.New("balance row missing after ensure")

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// storeErr maps a repository failure onto an AppError. AppErrors pass
// through unchanged.
func storeErr(op string, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	wrapped := fmt.Errorf("%s: %w", op, err)
	switch {
	case errors.Is(err, ports.ErrVersionConflict):
		return apperror.ErrConcurrentUpdate(wrapped)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return apperror.ErrLockTimeout(wrapped)
	default:
		return apperror.ErrDatabaseError(wrapped)
	}
}

// normalizeFilter applies paging defaults and checks the status filter
// against the allowed values.
func normalizeFilter(f domain.HistoryFilter, statuses ...string) (domain.HistoryFilter, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = defaultPageLimit
	}
	if f.Limit > maxPageLimit {
		f.Limit = maxPageLimit
	}
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return f, apperror.Validation("from must not be after to")
	}
	if f.Status == "" {
		return f, nil
	}
	for _, s := range statuses {
		if f.Status == s {
			return f, nil
		}
	}
	return f, apperror.Validation(fmt.Sprintf("unknown status filter %q", f.Status))
}

func utcNow() time.Time {
	return time.Now().UTC()
}
