package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gold-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletEntryRepo implements ports.WalletEntryRepository.
type WalletEntryRepo struct {
	pool Pool
}

// NewWalletEntryRepo creates a new WalletEntryRepo.
func NewWalletEntryRepo(pool Pool) *WalletEntryRepo {
	return &WalletEntryRepo{pool: pool}
}

const walletEntryColumns = `id, customer_id, cash_amount, allocated_amount, grams, allocated_grams,
	gold_allocated, tax_amount, delivery_charge, total_with_tax, status, total_amount, total_grams,
	created_at, confirmed_at`

func scanWalletEntry(row pgx.Row) (*domain.WalletEntry, error) {
	e := &domain.WalletEntry{}
	err := row.Scan(
		&e.ID, &e.CustomerID, &e.CashAmount, &e.AllocatedAmount, &e.Grams, &e.AllocatedGrams,
		&e.GoldAllocated, &e.TaxAmount, &e.DeliveryCharge, &e.TotalWithTax, &e.Status,
		&e.TotalAmount, &e.TotalGrams, &e.CreatedAt, &e.ConfirmedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create inserts a new wallet entry.
func (r *WalletEntryRepo) Create(ctx context.Context, e *domain.WalletEntry) error {
	query := `INSERT INTO wallet_entries (` + walletEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.CustomerID, e.CashAmount, e.AllocatedAmount, e.Grams, e.AllocatedGrams,
		e.GoldAllocated, e.TaxAmount, e.DeliveryCharge, e.TotalWithTax, string(e.Status),
		e.TotalAmount, e.TotalGrams, e.CreatedAt, e.ConfirmedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet entry: %w", err)
	}
	return nil
}

// GetByID fetches an entry without locking.
func (r *WalletEntryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletEntry, error) {
	e, err := scanWalletEntry(r.pool.QueryRow(ctx,
		`SELECT `+walletEntryColumns+` FROM wallet_entries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet entry: %w", err)
	}
	return e, nil
}

// GetByIDForUpdate fetches an entry with pessimistic locking.
// This MUST be called within a transaction.
func (r *WalletEntryRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletEntry, error) {
	e, err := scanWalletEntry(tx.QueryRow(ctx,
		`SELECT `+walletEntryColumns+` FROM wallet_entries WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet entry for update: %w", err)
	}
	return e, nil
}

// UpdateState persists status, allocation and running-total snapshot.
func (r *WalletEntryRepo) UpdateState(ctx context.Context, tx pgx.Tx, e *domain.WalletEntry) error {
	tag, err := tx.Exec(ctx,
		`UPDATE wallet_entries SET status = $1, gold_allocated = $2, total_amount = $3,
		 total_grams = $4, confirmed_at = $5 WHERE id = $6`,
		string(e.Status), e.GoldAllocated, e.TotalAmount, e.TotalGrams, e.ConfirmedAt, e.ID,
	)
	if err != nil {
		return fmt.Errorf("update wallet entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet entry not found: %s", e.ID)
	}
	return nil
}

// SumConfirmed totals the effective cash and credited grams of confirmed entries.
func (r *WalletEntryRepo) SumConfirmed(ctx context.Context, customerID string) (domain.LedgerTotals, error) {
	var totals domain.LedgerTotals
	err := r.pool.QueryRow(ctx,
		`SELECT
			COALESCE(SUM(CASE WHEN cash_amount = 0 AND grams > 0 THEN allocated_amount ELSE cash_amount END), 0),
			COALESCE(SUM(CASE WHEN grams + allocated_grams > 0 THEN grams + allocated_grams ELSE gold_allocated END), 0)
		 FROM wallet_entries WHERE customer_id = $1 AND status = 'CONFIRMED'`, customerID,
	).Scan(&totals.Cash, &totals.Grams)
	if err != nil {
		return domain.LedgerTotals{}, fmt.Errorf("sum confirmed entries: %w", err)
	}
	return totals, nil
}

// ListByCustomer returns one page of a customer's entries, newest first, and the match count.
func (r *WalletEntryRepo) ListByCustomer(ctx context.Context, customerID string, f domain.HistoryFilter) ([]*domain.WalletEntry, int, error) {
	where := historyWhere(customerID, f, "created_at")

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM wallet_entries "+where.String(), where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count wallet entries: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM wallet_entries %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		walletEntryColumns, where.String(), where.next(), where.next()+1)
	args := append(where.args, f.Limit, f.Offset())

	entries, err := r.list(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// ListConfirmed returns confirmed entries settled in [from, to], oldest first.
func (r *WalletEntryRepo) ListConfirmed(ctx context.Context, customerID string, from, to *time.Time) ([]*domain.WalletEntry, error) {
	where := settledWhere(customerID, from, to, "confirmed_at")
	return r.list(ctx,
		`SELECT `+walletEntryColumns+` FROM wallet_entries `+where.String()+` ORDER BY confirmed_at, created_at`,
		where.args...)
}

func (r *WalletEntryRepo) list(ctx context.Context, query string, args ...any) ([]*domain.WalletEntry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list wallet entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.WalletEntry
	for rows.Next() {
		e, err := scanWalletEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan wallet entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet entry rows: %w", err)
	}
	return entries, nil
}
