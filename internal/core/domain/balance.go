package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeductionModel selects how gold grams shrink when cash leaves a wallet.
type DeductionModel string

const (
	// DeductionRate removes amount / rate grams at the applied gold rate.
	DeductionRate DeductionModel = "rate"
	// DeductionRatio scales grams by newCash / oldCash (blended purchase rate).
	DeductionRatio DeductionModel = "ratio"
)

// ParseDeductionModel maps a config value to a model, defaulting to ratio.
func ParseDeductionModel(s string) DeductionModel {
	if DeductionModel(s) == DeductionRate {
		return DeductionRate
	}
	return DeductionRatio
}

// Balance is the live cash and gold position of one customer. It is the
// only mutable wallet row; ledger entries keep immutable snapshots.
type Balance struct {
	CustomerID string          `json:"customer_id"`
	Cash       decimal.Decimal `json:"cash"`
	Grams      decimal.Decimal `json:"grams"`
	Version    int64           `json:"version"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// IsEmpty reports whether nothing has ever been credited.
func (b *Balance) IsEmpty() bool {
	return b == nil || b.Version == 0
}

// Credit returns the balance after a confirmed deposit.
func (b Balance) Credit(cash, grams decimal.Decimal) Balance {
	b.Cash = RoundMoney(b.Cash.Add(cash))
	b.Grams = TruncGrams(b.Grams.Add(grams))
	return b
}

// Deduct returns the balance after amount leaves the wallet. Cash is
// clamped at zero and an emptied wallet drops its grams too. A rate model
// without a usable rate falls back to ratio scaling.
func (b Balance) Deduct(amount decimal.Decimal, model DeductionModel, rate decimal.Decimal) Balance {
	newCash := RoundMoney(b.Cash.Sub(amount))
	if !newCash.IsPositive() {
		b.Cash = decimal.Zero
		b.Grams = decimal.Zero
		return b
	}

	var newGrams decimal.Decimal
	if model == DeductionRate && rate.IsPositive() {
		newGrams = b.Grams.Sub(amount.Div(rate))
	} else {
		newGrams = b.Grams.Mul(newCash).Div(b.Cash)
	}

	b.Cash = newCash
	b.Grams = NonNegative(TruncGrams(newGrams))
	return b
}
