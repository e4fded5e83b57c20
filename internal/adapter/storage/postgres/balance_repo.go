package postgres

import (
	"context"
	"errors"
	"fmt"

	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// BalanceRepo implements ports.BalanceRepository.
type BalanceRepo struct {
	pool Pool
}

// NewBalanceRepo creates a new BalanceRepo.
func NewBalanceRepo(pool Pool) *BalanceRepo {
	return &BalanceRepo{pool: pool}
}

const balanceColumns = `customer_id, cash, grams, version, updated_at`

func scanBalance(row pgx.Row) (*domain.Balance, error) {
	b := &domain.Balance{}
	if err := row.Scan(&b.CustomerID, &b.Cash, &b.Grams, &b.Version, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return b, nil
}

// GetByCustomer reads the balance without locking. Returns nil when the
// customer has never been credited.
func (r *BalanceRepo) GetByCustomer(ctx context.Context, customerID string) (*domain.Balance, error) {
	b, err := scanBalance(r.pool.QueryRow(ctx,
		`SELECT `+balanceColumns+` FROM balances WHERE customer_id = $1`, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return b, nil
}

// EnsureExists inserts a zero balance row if the customer has none.
func (r *BalanceRepo) EnsureExists(ctx context.Context, tx pgx.Tx, customerID string) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO balances (customer_id, cash, grams, version, updated_at)
		 VALUES ($1, 0, 0, 0, NOW()) ON CONFLICT (customer_id) DO NOTHING`, customerID)
	if err != nil {
		return fmt.Errorf("ensure balance row: %w", err)
	}
	return nil
}

// GetForUpdate reads the balance with pessimistic locking.
// This MUST be called within a transaction.
func (r *BalanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, customerID string) (*domain.Balance, error) {
	b, err := scanBalance(tx.QueryRow(ctx,
		`SELECT `+balanceColumns+` FROM balances WHERE customer_id = $1 FOR UPDATE`, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get balance for update: %w", err)
	}
	return b, nil
}

// Update writes the new totals guarded by the version read under lock.
func (r *BalanceRepo) Update(ctx context.Context, tx pgx.Tx, b *domain.Balance) error {
	tag, err := tx.Exec(ctx,
		`UPDATE balances SET cash = $1, grams = $2, version = version + 1, updated_at = NOW()
		 WHERE customer_id = $3 AND version = $4`,
		b.Cash, b.Grams, b.CustomerID, b.Version,
	)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrVersionConflict
	}
	b.Version++
	return nil
}
