package postgres

import (
	"context"
	"fmt"

	"gold-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AllotmentRepo implements ports.AllotmentRepository.
type AllotmentRepo struct {
	pool Pool
}

// NewAllotmentRepo creates a new AllotmentRepo.
func NewAllotmentRepo(pool Pool) *AllotmentRepo {
	return &AllotmentRepo{pool: pool}
}

// Create inserts an allotment inside the caller's transaction.
func (r *AllotmentRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.Allotment) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO allotments (id, customer_id, grams, created_at) VALUES ($1, $2, $3, $4)`,
		a.ID, a.CustomerID, a.Grams, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert allotment: %w", err)
	}
	return nil
}

// ListByCustomer returns the customer's allotments, newest first.
func (r *AllotmentRepo) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Allotment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, customer_id, grams, created_at FROM allotments
		 WHERE customer_id = $1 ORDER BY created_at DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list allotments: %w", err)
	}
	defer rows.Close()

	var allotments []*domain.Allotment
	for rows.Next() {
		a := &domain.Allotment{}
		if err := rows.Scan(&a.ID, &a.CustomerID, &a.Grams, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan allotment row: %w", err)
		}
		allotments = append(allotments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate allotment rows: %w", err)
	}
	return allotments, nil
}

// SumGrams totals every allotment of the customer.
func (r *AllotmentRepo) SumGrams(ctx context.Context, customerID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(grams), 0) FROM allotments WHERE customer_id = $1`, customerID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum allotments: %w", err)
	}
	return total, nil
}
