package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gold-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CoinPurchaseRepo implements ports.CoinPurchaseRepository.
type CoinPurchaseRepo struct {
	pool Pool
}

// NewCoinPurchaseRepo creates a new CoinPurchaseRepo.
func NewCoinPurchaseRepo(pool Pool) *CoinPurchaseRepo {
	return &CoinPurchaseRepo{pool: pool}
}

const coinPurchaseColumns = `id, customer_id, items, total_amount, tax_amount, delivery_charge,
	amount_payable, invest_amount, address_line, city, post_code, status, applied_rate,
	grams_deducted, deduction_model, created_at, processed_at`

func scanCoinPurchase(row pgx.Row) (*domain.CoinPurchaseEntry, error) {
	c := &domain.CoinPurchaseEntry{}
	var items []byte
	var model string
	err := row.Scan(
		&c.ID, &c.CustomerID, &items, &c.TotalAmount, &c.TaxAmount, &c.DeliveryCharge,
		&c.AmountPayable, &c.InvestAmount, &c.Address.Line, &c.Address.City, &c.Address.PostCode,
		&c.Status, &c.AppliedRate, &c.GramsDeducted, &model, &c.CreatedAt, &c.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &c.Items); err != nil {
			return nil, fmt.Errorf("decode coin items: %w", err)
		}
	}
	c.DeductionModel = domain.DeductionModel(model)
	return c, nil
}

// Create inserts a new coin purchase.
func (r *CoinPurchaseRepo) Create(ctx context.Context, c *domain.CoinPurchaseEntry) error {
	items, err := json.Marshal(c.Items)
	if err != nil {
		return fmt.Errorf("encode coin items: %w", err)
	}

	query := `INSERT INTO coin_purchases (` + coinPurchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err = r.pool.Exec(ctx, query,
		c.ID, c.CustomerID, items, c.TotalAmount, c.TaxAmount, c.DeliveryCharge,
		c.AmountPayable, c.InvestAmount, c.Address.Line, c.Address.City, c.Address.PostCode,
		string(c.Status), c.AppliedRate, c.GramsDeducted, string(c.DeductionModel),
		c.CreatedAt, c.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("insert coin purchase: %w", err)
	}
	return nil
}

// GetByID fetches a coin purchase without locking.
func (r *CoinPurchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CoinPurchaseEntry, error) {
	c, err := scanCoinPurchase(r.pool.QueryRow(ctx,
		`SELECT `+coinPurchaseColumns+` FROM coin_purchases WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get coin purchase: %w", err)
	}
	return c, nil
}

// GetByIDForUpdate fetches a coin purchase with pessimistic locking.
func (r *CoinPurchaseRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.CoinPurchaseEntry, error) {
	c, err := scanCoinPurchase(tx.QueryRow(ctx,
		`SELECT `+coinPurchaseColumns+` FROM coin_purchases WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get coin purchase for update: %w", err)
	}
	return c, nil
}

// UpdateState persists the status and settlement data.
func (r *CoinPurchaseRepo) UpdateState(ctx context.Context, tx pgx.Tx, c *domain.CoinPurchaseEntry) error {
	tag, err := tx.Exec(ctx,
		`UPDATE coin_purchases SET status = $1, applied_rate = $2, grams_deducted = $3,
		 deduction_model = $4, processed_at = $5 WHERE id = $6`,
		string(c.Status), c.AppliedRate, c.GramsDeducted, string(c.DeductionModel), c.ProcessedAt, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update coin purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("coin purchase not found: %s", c.ID)
	}
	return nil
}

// ListConfirmed returns confirmed purchases processed in [from, to], oldest first.
func (r *CoinPurchaseRepo) ListConfirmed(ctx context.Context, customerID string, from, to *time.Time) ([]*domain.CoinPurchaseEntry, error) {
	where := settledWhere(customerID, from, to, "processed_at")
	return r.list(ctx,
		`SELECT `+coinPurchaseColumns+` FROM coin_purchases `+where.String()+` ORDER BY processed_at, created_at`,
		where.args...)
}

// ListByCustomer returns one page of a customer's purchases, newest first.
func (r *CoinPurchaseRepo) ListByCustomer(ctx context.Context, customerID string, f domain.HistoryFilter) ([]*domain.CoinPurchaseEntry, error) {
	where := historyWhere(customerID, f, "created_at")
	query := fmt.Sprintf(`SELECT %s FROM coin_purchases %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		coinPurchaseColumns, where.String(), where.next(), where.next()+1)
	return r.list(ctx, query, append(where.args, f.Limit, f.Offset())...)
}

// Summarize totals every purchase matching the filter, ignoring pagination.
func (r *CoinPurchaseRepo) Summarize(ctx context.Context, customerID string, f domain.HistoryFilter) (domain.CoinHistorySummary, error) {
	where := historyWhere(customerID, f, "created_at")
	var s domain.CoinHistorySummary
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total_amount), 0), COALESCE(SUM(amount_payable), 0),
		 COALESCE(SUM(invest_amount), 0) FROM coin_purchases `+where.String(),
		where.args...,
	).Scan(&s.Count, &s.TotalAmount, &s.TotalPayable, &s.TotalInvest)
	if err != nil {
		return domain.CoinHistorySummary{}, fmt.Errorf("summarize coin purchases: %w", err)
	}
	return s, nil
}

func (r *CoinPurchaseRepo) list(ctx context.Context, query string, args ...any) ([]*domain.CoinPurchaseEntry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list coin purchases: %w", err)
	}
	defer rows.Close()

	var entries []*domain.CoinPurchaseEntry
	for rows.Next() {
		c, err := scanCoinPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan coin purchase row: %w", err)
		}
		entries = append(entries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coin purchase rows: %w", err)
	}
	return entries, nil
}
