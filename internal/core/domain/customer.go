package domain

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// ValidPhone reports whether s is a 10-digit phone identity.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// Customer is identified by phone number.
type Customer struct {
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ChargeSettings is the single-row charge configuration read at deposit
// and sell time.
type ChargeSettings struct {
	TaxPercent     decimal.Decimal `json:"tax_percent"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	GatewayCharge  decimal.Decimal `json:"gateway_charge"`
	OtherCharges   decimal.Decimal `json:"other_charges"`
	SupportContact string          `json:"support_contact,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// HistoryFilter narrows a paginated history query.
type HistoryFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

// Offset returns the row offset for the requested page.
func (f HistoryFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// DepositPage is one page of a customer's deposits.
type DepositPage struct {
	Items []*WalletEntry `json:"items"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// CoinHistorySummary totals the coin purchases matching a filter.
type CoinHistorySummary struct {
	Count        int             `json:"count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalPayable decimal.Decimal `json:"total_payable"`
	TotalInvest  decimal.Decimal `json:"total_invest"`
}

// CoinHistory is one page of coin purchases plus a summary of all matches.
type CoinHistory struct {
	Items   []*CoinPurchaseEntry `json:"items"`
	Summary CoinHistorySummary   `json:"summary"`
	Page    int                  `json:"page"`
	Limit   int                  `json:"limit"`
}
