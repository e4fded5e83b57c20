package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gold-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SellEntryRepo implements ports.SellEntryRepository.
type SellEntryRepo struct {
	pool Pool
}

// NewSellEntryRepo creates a new SellEntryRepo.
func NewSellEntryRepo(pool Pool) *SellEntryRepo {
	return &SellEntryRepo{pool: pool}
}

const sellEntryColumns = `id, customer_id, cash_amount, gold_grams, gateway_charge, tax_amount,
	other_charges, status, applied_rate, grams_deducted, deduction_model, created_at, processed_at`

func scanSellEntry(row pgx.Row) (*domain.SellEntry, error) {
	s := &domain.SellEntry{}
	var grams decimal.NullDecimal
	var model string
	err := row.Scan(
		&s.ID, &s.CustomerID, &s.CashAmount, &grams, &s.GatewayCharge, &s.TaxAmount,
		&s.OtherCharges, &s.Status, &s.AppliedRate, &s.GramsDeducted, &model,
		&s.CreatedAt, &s.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	if grams.Valid {
		g := grams.Decimal
		s.GoldGrams = &g
	}
	s.DeductionModel = domain.DeductionModel(model)
	return s, nil
}

func nullGrams(g *decimal.Decimal) decimal.NullDecimal {
	if g == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *g, Valid: true}
}

// Create inserts a new sell entry.
func (r *SellEntryRepo) Create(ctx context.Context, s *domain.SellEntry) error {
	query := `INSERT INTO sell_entries (` + sellEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.CustomerID, s.CashAmount, nullGrams(s.GoldGrams), s.GatewayCharge, s.TaxAmount,
		s.OtherCharges, string(s.Status), s.AppliedRate, s.GramsDeducted, string(s.DeductionModel),
		s.CreatedAt, s.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sell entry: %w", err)
	}
	return nil
}

// GetByID fetches a sell entry without locking.
func (r *SellEntryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SellEntry, error) {
	s, err := scanSellEntry(r.pool.QueryRow(ctx,
		`SELECT `+sellEntryColumns+` FROM sell_entries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sell entry: %w", err)
	}
	return s, nil
}

// GetByIDForUpdate fetches a sell entry with pessimistic locking.
func (r *SellEntryRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.SellEntry, error) {
	s, err := scanSellEntry(tx.QueryRow(ctx,
		`SELECT `+sellEntryColumns+` FROM sell_entries WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sell entry for update: %w", err)
	}
	return s, nil
}

// UpdateState persists the status and settlement data.
func (r *SellEntryRepo) UpdateState(ctx context.Context, tx pgx.Tx, s *domain.SellEntry) error {
	tag, err := tx.Exec(ctx,
		`UPDATE sell_entries SET status = $1, applied_rate = $2, grams_deducted = $3,
		 deduction_model = $4, processed_at = $5 WHERE id = $6`,
		string(s.Status), s.AppliedRate, s.GramsDeducted, string(s.DeductionModel), s.ProcessedAt, s.ID,
	)
	if err != nil {
		return fmt.Errorf("update sell entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sell entry not found: %s", s.ID)
	}
	return nil
}

// ListConfirmed returns confirmed sells processed in [from, to], oldest first.
func (r *SellEntryRepo) ListConfirmed(ctx context.Context, customerID string, from, to *time.Time) ([]*domain.SellEntry, error) {
	where := settledWhere(customerID, from, to, "processed_at")
	rows, err := r.pool.Query(ctx,
		`SELECT `+sellEntryColumns+` FROM sell_entries `+where.String()+` ORDER BY processed_at, created_at`,
		where.args...)
	if err != nil {
		return nil, fmt.Errorf("list sell entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.SellEntry
	for rows.Next() {
		s, err := scanSellEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sell entry row: %w", err)
		}
		entries = append(entries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sell entry rows: %w", err)
	}
	return entries, nil
}
