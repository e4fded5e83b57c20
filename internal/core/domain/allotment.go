package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Allotment reserves grams against a customer's gross confirmed grams.
type Allotment struct {
	ID         uuid.UUID       `json:"id"`
	CustomerID string          `json:"customer_id"`
	Grams      decimal.Decimal `json:"grams"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AllotmentResult is returned by an allotment request.
type AllotmentResult struct {
	Allotment      *Allotment      `json:"allotment"`
	RemainingGrams decimal.Decimal `json:"remaining_grams"`
	RemainingCash  decimal.Decimal `json:"remaining_cash"`
	RequestedGrams decimal.Decimal `json:"requested_grams"`
	AvailableGrams decimal.Decimal `json:"available_grams"`
	GrossGrams     decimal.Decimal `json:"gross_grams"`
	TotalAllotted  decimal.Decimal `json:"total_allotted"`
}

// AllotmentView is an allotment with the cash it consumed at the blended
// average purchase rate.
type AllotmentView struct {
	Allotment
	AmountReduced decimal.Decimal `json:"amount_reduced"`
}

// LedgerTotals aggregates confirmed deposits for a customer.
type LedgerTotals struct {
	Cash  decimal.Decimal
	Grams decimal.Decimal
}
