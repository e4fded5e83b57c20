//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

package ports

import (
	"context"
	"errors"
	"time"

	"gold-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ErrVersionConflict is returned when a balance row changed between read and write.
var ErrVersionConflict = errors.New("balance version conflict")

// ErrStaleRateSample is returned when a rate sample is not newer than the
// latest stored one.
var ErrStaleRateSample = errors.New("rate sample not newer than latest")

// CustomerRepository is the customer directory, keyed by phone.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	Exists(ctx context.Context, phone string) (bool, error)
}

// BalanceRepository persists the per-customer balance aggregate.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic locking.
type BalanceRepository interface {
	GetByCustomer(ctx context.Context, customerID string) (*domain.Balance, error)
	EnsureExists(ctx context.Context, tx pgx.Tx, customerID string) error
	GetForUpdate(ctx context.Context, tx pgx.Tx, customerID string) (*domain.Balance, error)
	// Update writes cash and grams when the stored version still equals
	// b.Version and increments b.Version. It returns ErrVersionConflict otherwise.
	Update(ctx context.Context, tx pgx.Tx, b *domain.Balance) error
}

// WalletEntryRepository persists deposit entries.
type WalletEntryRepository interface {
	Create(ctx context.Context, entry *domain.WalletEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletEntry, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletEntry, error)
	UpdateState(ctx context.Context, tx pgx.Tx, entry *domain.WalletEntry) error
	SumConfirmed(ctx context.Context, customerID string) (domain.LedgerTotals, error)
	ListByCustomer(ctx context.Context, customerID string, filter domain.HistoryFilter) ([]*domain.WalletEntry, int, error)
	ListConfirmed(ctx context.Context, customerID string, from, to *time.Time) ([]*domain.WalletEntry, error)
}

// SellEntryRepository persists sell entries.
type SellEntryRepository interface {
	Create(ctx context.Context, entry *domain.SellEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SellEntry, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.SellEntry, error)
	UpdateState(ctx context.Context, tx pgx.Tx, entry *domain.SellEntry) error
	ListConfirmed(ctx context.Context, customerID string, from, to *time.Time) ([]*domain.SellEntry, error)
}

// CoinPurchaseRepository persists coin purchases.
type CoinPurchaseRepository interface {
	Create(ctx context.Context, entry *domain.CoinPurchaseEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CoinPurchaseEntry, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.CoinPurchaseEntry, error)
	UpdateState(ctx context.Context, tx pgx.Tx, entry *domain.CoinPurchaseEntry) error
	ListConfirmed(ctx context.Context, customerID string, from, to *time.Time) ([]*domain.CoinPurchaseEntry, error)
	ListByCustomer(ctx context.Context, customerID string, filter domain.HistoryFilter) ([]*domain.CoinPurchaseEntry, error)
	Summarize(ctx context.Context, customerID string, filter domain.HistoryFilter) (domain.CoinHistorySummary, error)
}

// AllotmentRepository persists allotments.
type AllotmentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, allotment *domain.Allotment) error
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Allotment, error)
	SumGrams(ctx context.Context, customerID string) (decimal.Decimal, error)
}

// RateRepository persists gold rate samples.
type RateRepository interface {
	// Create appends sample. It returns ErrStaleRateSample and stores nothing
	// when sample.Timestamp is not after the newest stored sample.
	Create(ctx context.Context, sample *domain.RateSample) error
	Latest(ctx context.Context) (*domain.RateSample, error)
	At(ctx context.Context, ts int64) (*domain.RateSample, error)
	Earliest(ctx context.Context) (*domain.RateSample, error)
	History(ctx context.Context) (domain.RateHistory, error)
}

// ChargesRepository reads the single-row charge settings.
type ChargesRepository interface {
	Get(ctx context.Context) (*domain.ChargeSettings, error)
}

// AuditRepository persists audit records.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
