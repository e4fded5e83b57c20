package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SellEntry is a request to sell gold back for cash. Settlement fields are
// filled on approval and used to replay the deduction exactly.
type SellEntry struct {
	ID             uuid.UUID        `json:"id"`
	CustomerID     string           `json:"customer_id"`
	CashAmount     decimal.Decimal  `json:"cash_amount"`
	GoldGrams      *decimal.Decimal `json:"gold_grams,omitempty"`
	GatewayCharge  decimal.Decimal  `json:"gateway_charge"`
	TaxAmount      decimal.Decimal  `json:"tax_amount"`
	OtherCharges   decimal.Decimal  `json:"other_charges"`
	Status         EntryStatus      `json:"status"`
	AppliedRate    decimal.Decimal  `json:"applied_rate"`
	GramsDeducted  decimal.Decimal  `json:"grams_deducted"`
	DeductionModel DeductionModel   `json:"deduction_model,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	ProcessedAt    *time.Time       `json:"processed_at,omitempty"`
}

// Charges is the sum of all non-principal deductions.
func (s *SellEntry) Charges() decimal.Decimal {
	return s.GatewayCharge.Add(s.TaxAmount).Add(s.OtherCharges)
}

// TotalDeduction is the cash removed from the wallet on approval.
func (s *SellEntry) TotalDeduction() decimal.Decimal {
	return s.CashAmount.Add(s.Charges())
}

// SettledAt is when the sell took effect on the balance.
func (s *SellEntry) SettledAt() time.Time {
	if s.ProcessedAt != nil {
		return *s.ProcessedAt
	}
	return s.CreatedAt
}
