package dto

import (
	"github.com/shopspring/decimal"
)

// RegisterCustomerRequest is the request body for customer registration.
type RegisterCustomerRequest struct {
	Phone string `json:"phone" binding:"required,phone"`
	Name  string `json:"name" binding:"required,min=1,max=100"`
}

// DepositRequest is the request body for a deposit. Either cash_amount or
// grams must be positive; charges default to the charge settings.
type DepositRequest struct {
	CustomerID      string           `json:"customer_id" binding:"required,phone"`
	CashAmount      decimal.Decimal  `json:"cash_amount"`
	Grams           decimal.Decimal  `json:"grams"`
	AllocatedGrams  decimal.Decimal  `json:"allocated_grams"`
	AllocatedAmount decimal.Decimal  `json:"allocated_amount"`
	TaxAmount       *decimal.Decimal `json:"tax_amount,omitempty"`
	DeliveryCharge  *decimal.Decimal `json:"delivery_charge,omitempty"`
}

// SellRequest is the request body for a sell.
type SellRequest struct {
	CustomerID    string           `json:"customer_id" binding:"required,phone"`
	CashAmount    decimal.Decimal  `json:"cash_amount"`
	GoldGrams     *decimal.Decimal `json:"gold_grams,omitempty"`
	GatewayCharge *decimal.Decimal `json:"gateway_charge,omitempty"`
	TaxAmount     *decimal.Decimal `json:"tax_amount,omitempty"`
	OtherCharges  *decimal.Decimal `json:"other_charges,omitempty"`
}

// CoinItemRequest is one coin line.
type CoinItemRequest struct {
	CoinGrams decimal.Decimal `json:"coin_grams"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	Amount    decimal.Decimal `json:"amount"`
}

// AddressRequest is the delivery address of a coin purchase.
type AddressRequest struct {
	Line     string `json:"line" binding:"required,max=200"`
	City     string `json:"city" binding:"required,max=100"`
	PostCode string `json:"post_code" binding:"required,max=20"`
}

// CoinPurchaseRequest is the request body for a coin purchase.
type CoinPurchaseRequest struct {
	CustomerID     string            `json:"customer_id" binding:"required,phone"`
	Items          []CoinItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalAmount    decimal.Decimal   `json:"total_amount"`
	TaxAmount      decimal.Decimal   `json:"tax_amount"`
	DeliveryCharge decimal.Decimal   `json:"delivery_charge"`
	AmountPayable  decimal.Decimal   `json:"amount_payable"`
	InvestAmount   decimal.Decimal   `json:"invest_amount"`
	Address        AddressRequest    `json:"address"`
}

// AllotRequest is the request body for a gram allotment.
type AllotRequest struct {
	CustomerID string          `json:"customer_id" binding:"required,phone"`
	Grams      decimal.Decimal `json:"grams"`
}

// RecordRateRequest is the request body for a manual rate sample. A zero
// timestamp means now.
type RecordRateRequest struct {
	PricePerGram decimal.Decimal `json:"price_per_gram"`
	Timestamp    int64           `json:"timestamp" binding:"gte=0"`
}

// HistoryQuery is the query string of the paginated history endpoints.
// The limit bound matches the service page cap.
type HistoryQuery struct {
	Status string `form:"status" binding:"omitempty,max=20"`
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ReportQuery is the query string of the report endpoint.
type ReportQuery struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=1000"`
}

// BalanceResponse is the response for a balance query.
type BalanceResponse struct {
	CustomerID string          `json:"customer_id"`
	Cash       decimal.Decimal `json:"cash"`
	Grams      decimal.Decimal `json:"grams"`
	Version    int64           `json:"version"`
	UpdatedAt  *string         `json:"updated_at,omitempty"`
}

// DependencyStatus is the health of one external dependency.
type DependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse reports per-dependency health.
type HealthResponse struct {
	Status       string                      `json:"status"`
	Storage      string                      `json:"storage"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}
