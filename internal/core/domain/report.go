package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventKind identifies the ledger entry behind a report row.
type EventKind string

const (
	EventBuy  EventKind = "BUY"
	EventSell EventKind = "SELL"
	EventCoin EventKind = "COIN"
)

// ReportRow is one replayed ledger event.
type ReportRow struct {
	Serial         int             `json:"serial"`
	Kind           EventKind       `json:"kind"`
	EntryID        string          `json:"entry_id"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	Rate           decimal.Decimal `json:"rate"`
	GoldBefore     decimal.Decimal `json:"gold_before"`
	Bought         decimal.Decimal `json:"bought"`
	Sold           decimal.Decimal `json:"sold"`
	CoinPurchased  decimal.Decimal `json:"coin_purchased"`
	Cost           decimal.Decimal `json:"cost"`
	Tax            decimal.Decimal `json:"tax"`
	Gateway        decimal.Decimal `json:"gateway"`
	Other          decimal.Decimal `json:"other"`
	Total          decimal.Decimal `json:"total"`
	ChargesInGrams decimal.Decimal `json:"charges_in_grams"`
	GoldAfter      decimal.Decimal `json:"gold_after"`
}

// ReportSummary closes a replay. Stored* and Reconciled are only set when
// the replay covered the whole history.
type ReportSummary struct {
	FinalGold   decimal.Decimal  `json:"final_gold"`
	FinalCash   decimal.Decimal  `json:"final_cash"`
	StoredGold  *decimal.Decimal `json:"stored_gold,omitempty"`
	StoredCash  *decimal.Decimal `json:"stored_cash,omitempty"`
	Reconciled  *bool            `json:"reconciled,omitempty"`
	EventCount  int              `json:"event_count"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// Report is the from-zero reconstruction of a customer's ledger.
type Report struct {
	CustomerID string        `json:"customer_id"`
	StartDate  string        `json:"start_date,omitempty"`
	EndDate    string        `json:"end_date,omitempty"`
	Rows       []ReportRow   `json:"rows"`
	Warnings   []string      `json:"warnings,omitempty"`
	Summary    ReportSummary `json:"summary"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalRows  int           `json:"total_rows"`
}

// ReportRequest selects the customer, optional civil-date range and page.
type ReportRequest struct {
	CustomerID string
	StartDate  string // YYYY-MM-DD, report zone
	EndDate    string
	Page       int
	PageSize   int
}
