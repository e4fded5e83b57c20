package postgres

import (
	"context"
	"errors"
	"fmt"

	"gold-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ChargesRepo implements ports.ChargesRepository.
type ChargesRepo struct {
	pool Pool
}

// NewChargesRepo creates a new ChargesRepo.
func NewChargesRepo(pool Pool) *ChargesRepo {
	return &ChargesRepo{pool: pool}
}

// Get reads the single settings row. A missing row yields zero charges.
func (r *ChargesRepo) Get(ctx context.Context) (*domain.ChargeSettings, error) {
	s := &domain.ChargeSettings{}
	err := r.pool.QueryRow(ctx,
		`SELECT tax_percent, delivery_charge, gateway_charge, other_charges, support_contact, updated_at
		 FROM charge_settings WHERE id = 1`,
	).Scan(&s.TaxPercent, &s.DeliveryCharge, &s.GatewayCharge, &s.OtherCharges, &s.SupportContact, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.ChargeSettings{}, nil
		}
		return nil, fmt.Errorf("get charge settings: %w", err)
	}
	return s, nil
}
