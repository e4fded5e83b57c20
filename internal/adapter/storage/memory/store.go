// Package memory is a process-local storage driver. It keeps every table in
// maps and emulates row locks with per-key semaphores held until the
// transaction ends. Writes are applied immediately and are not undone by
// Rollback.
package memory

import (
	"context"
	"errors"
	"sync"

	"gold-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var errUnsupported = errors.New("memory: operation not supported")

// Store holds all tables of the memory driver.
type Store struct {
	mu         sync.RWMutex
	customers  map[string]*domain.Customer
	balances   map[string]*domain.Balance
	entries    map[uuid.UUID]*domain.WalletEntry
	sells      map[uuid.UUID]*domain.SellEntry
	coins      map[uuid.UUID]*domain.CoinPurchaseEntry
	allotments []*domain.Allotment
	rates      domain.RateHistory
	charges    domain.ChargeSettings
	audits     []*domain.AuditLog

	locksMu sync.Mutex
	locks   map[string]chan struct{}
}

// NewStore creates an empty store with the given charge settings.
func NewStore(charges domain.ChargeSettings) *Store {
	return &Store{
		customers: make(map[string]*domain.Customer),
		balances:  make(map[string]*domain.Balance),
		entries:   make(map[uuid.UUID]*domain.WalletEntry),
		sells:     make(map[uuid.UUID]*domain.SellEntry),
		coins:     make(map[uuid.UUID]*domain.CoinPurchaseEntry),
		charges:   charges,
		locks:     make(map[string]chan struct{}),
	}
}

// SetCharges replaces the charge settings.
func (s *Store) SetCharges(c domain.ChargeSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.charges = c
}

// AuditLogs returns a snapshot of recorded audit entries.
func (s *Store) AuditLogs() []domain.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AuditLog, 0, len(s.audits))
	for _, l := range s.audits {
		out = append(out, *l)
	}
	return out
}

func (s *Store) rowLock(key string) chan struct{} {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = make(chan struct{}, 1)
		s.locks[key] = l
	}
	return l
}

// lock acquires the row lock for key on behalf of tx. A nil or foreign tx
// reads without locking.
func (s *Store) lock(ctx context.Context, tx pgx.Tx, key string) error {
	t, ok := tx.(*memTx)
	if !ok {
		return nil
	}
	return t.acquire(ctx, key)
}

// Transactor implements ports.DBTransactor for the memory driver.
type Transactor struct {
	store *Store
}

// NewTransactor creates a Transactor over store.
func NewTransactor(store *Store) *Transactor {
	return &Transactor{store: store}
}

// Begin starts a transaction. Row locks taken through it are released on
// Commit or Rollback.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &memTx{store: t.store, held: make(map[string]chan struct{})}, nil
}

// memTx is a pgx.Tx whose only meaningful state is the set of held row locks.
type memTx struct {
	store *Store
	mu    sync.Mutex
	held  map[string]chan struct{}
	done  bool
}

func (t *memTx) acquire(ctx context.Context, key string) error {
	t.mu.Lock()
	if t.done {
		t.mu.Unlock()
		return pgx.ErrTxClosed
	}
	if _, ok := t.held[key]; ok {
		t.mu.Unlock()
		return nil
	}
	t.mu.Unlock()

	l := t.store.rowLock(key)
	select {
	case l <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	t.mu.Lock()
	t.held[key] = l
	t.mu.Unlock()
	return nil
}

func (t *memTx) release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return
	}
	t.done = true
	for _, l := range t.held {
		<-l
	}
	t.held = nil
}

func (t *memTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *memTx) Commit(ctx context.Context) error {
	t.mu.Lock()
	closed := t.done
	t.mu.Unlock()
	if closed {
		return pgx.ErrTxClosed
	}
	t.release()
	return nil
}

// Rollback releases held locks. It is a no-op after Commit.
func (t *memTx) Rollback(ctx context.Context) error {
	t.release()
	return nil
}

func (t *memTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, errUnsupported
}
func (t *memTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *memTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *memTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, errUnsupported
}
func (t *memTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errUnsupported
}
func (t *memTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errUnsupported
}
func (t *memTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *memTx) Conn() *pgx.Conn                                               { return nil }

// HealthCheck implements ports.HealthChecker; the memory driver is always up.
type HealthCheck struct{}

// Ping always succeeds.
func (HealthCheck) Ping(ctx context.Context) error { return nil }

// Name returns the dependency name.
func (HealthCheck) Name() string { return "memory" }
