package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CoinStatus is the lifecycle state of a coin purchase.
type CoinStatus string

const (
	CoinStatusApprovalPending CoinStatus = "APPROVAL_PENDING"
	CoinStatusConfirmed       CoinStatus = "CONFIRMED"
	CoinStatusCancelled       CoinStatus = "CANCELLED"
)

// CoinItem is one coin line of a purchase.
type CoinItem struct {
	CoinGrams decimal.Decimal `json:"coin_grams"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
}

// DeliveryAddress is where purchased coins are shipped.
type DeliveryAddress struct {
	Line     string `json:"line"`
	City     string `json:"city"`
	PostCode string `json:"post_code"`
}

// CoinPurchaseEntry buys physical coins, partly paid from the wallet
// (InvestAmount) and partly externally.
type CoinPurchaseEntry struct {
	ID             uuid.UUID       `json:"id"`
	CustomerID     string          `json:"customer_id"`
	Items          []CoinItem      `json:"items"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	AmountPayable  decimal.Decimal `json:"amount_payable"`
	InvestAmount   decimal.Decimal `json:"invest_amount"`
	Address        DeliveryAddress `json:"address"`
	Status         CoinStatus      `json:"status"`
	AppliedRate    decimal.Decimal `json:"applied_rate"`
	GramsDeducted  decimal.Decimal `json:"grams_deducted"`
	DeductionModel DeductionModel  `json:"deduction_model,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	ProcessedAt    *time.Time      `json:"processed_at,omitempty"`
}

// ItemsTotal is Σ item.Amount.
func (c *CoinPurchaseEntry) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Amount)
	}
	return total
}

// CoinGrams is Σ item.CoinGrams × item.Quantity.
func (c *CoinPurchaseEntry) CoinGrams() decimal.Decimal {
	grams := decimal.Zero
	for _, it := range c.Items {
		grams = grams.Add(it.CoinGrams.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return grams
}

// ExpectedPayable is TotalAmount + TaxAmount + DeliveryCharge.
func (c *CoinPurchaseEntry) ExpectedPayable() decimal.Decimal {
	return c.TotalAmount.Add(c.TaxAmount).Add(c.DeliveryCharge)
}

// SettledAt is when the purchase took effect on the balance.
func (c *CoinPurchaseEntry) SettledAt() time.Time {
	if c.ProcessedAt != nil {
		return *c.ProcessedAt
	}
	return c.CreatedAt
}
