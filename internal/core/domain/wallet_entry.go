package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryStatus is the lifecycle state of a deposit or sell entry.
type EntryStatus string

const (
	EntryStatusPending   EntryStatus = "PENDING"
	EntryStatusConfirmed EntryStatus = "CONFIRMED"
	EntryStatusCancelled EntryStatus = "CANCELLED"
)

// WalletEntry is one buy transaction. TotalAmount and TotalGrams hold the
// pending preview until confirmation and the running-total snapshot after.
type WalletEntry struct {
	ID              uuid.UUID       `json:"id"`
	CustomerID      string          `json:"customer_id"`
	CashAmount      decimal.Decimal `json:"cash_amount"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	Grams           decimal.Decimal `json:"grams"`
	AllocatedGrams  decimal.Decimal `json:"allocated_grams"`
	GoldAllocated   decimal.Decimal `json:"gold_allocated"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	DeliveryCharge  decimal.Decimal `json:"delivery_charge"`
	TotalWithTax    decimal.Decimal `json:"total_with_tax"`
	Status          EntryStatus     `json:"status"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	TotalGrams      decimal.Decimal `json:"total_grams"`
	CreatedAt       time.Time       `json:"created_at"`
	ConfirmedAt     *time.Time      `json:"confirmed_at,omitempty"`
}

// EffectiveAmount is the cash this entry contributes to the running total.
// A grams-only purchase contributes its allocated amount instead.
func (e *WalletEntry) EffectiveAmount() decimal.Decimal {
	if e.CashAmount.IsZero() && e.Grams.IsPositive() {
		return e.AllocatedAmount
	}
	return e.CashAmount
}

// CreditedGrams is the gold this entry contributes once confirmed.
func (e *WalletEntry) CreditedGrams() decimal.Decimal {
	direct := e.Grams.Add(e.AllocatedGrams)
	if direct.IsPositive() {
		return direct
	}
	return e.GoldAllocated
}

// CanConfirm reports whether the entry may move to CONFIRMED.
// Cancelled entries may be re-confirmed.
func (e *WalletEntry) CanConfirm() bool {
	return e.Status == EntryStatusPending || e.Status == EntryStatusCancelled
}

// SettledAt is when the entry took effect on the balance.
func (e *WalletEntry) SettledAt() time.Time {
	if e.ConfirmedAt != nil {
		return *e.ConfirmedAt
	}
	return e.CreatedAt
}
