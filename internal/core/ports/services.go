//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

package ports

import (
	"context"
	"time"

	"gold-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Infrastructure Ports ---

// TokenService handles operator JWT operations.
type TokenService interface {
	Generate(subject string, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
	Role    string
}

// RoleOperator is the role allowed to settle entries and allot grams.
const RoleOperator = "operator"

// RateCache is the Redis-layer cache of the current gold rate.
type RateCache interface {
	Get(ctx context.Context) (*domain.RateSample, error) // nil on miss
	Set(ctx context.Context, sample *domain.RateSample) error
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// RateLimiter counts requests per key inside fixed windows.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// PriceQuote is one spot price observation from the external feed.
type PriceQuote struct {
	Timestamp    int64
	PricePerGram decimal.Decimal
}

// PriceFeed fetches the current spot gold price per gram.
type PriceFeed interface {
	Fetch(ctx context.Context) (*PriceQuote, error)
}

// --- Service Ports (Business Logic) ---

// RateOracle owns the gold rate history.
type RateOracle interface {
	RecordRate(ctx context.Context, pricePerGram decimal.Decimal, ts int64) (*domain.RateSample, error)
	RefreshRate(ctx context.Context) (*domain.RateSample, error)
	CurrentRate(ctx context.Context) (*domain.RateSample, error)
	RateAt(ctx context.Context, ts int64) (*domain.RateSample, error)
	History(ctx context.Context) (domain.RateHistory, error)
	ConvertGrams(ctx context.Context, grams decimal.Decimal) (*GramConversion, error)
}

// GramConversion is the cash value of a gram quantity at the current rate.
type GramConversion struct {
	Grams  decimal.Decimal `json:"grams"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// WalletService is the wallet balance engine: deposits, sells and coin
// purchases, each settled against the customer's balance.
type WalletService interface {
	RegisterCustomer(ctx context.Context, phone, name string) (*domain.Customer, error)
	RecordDeposit(ctx context.Context, req DepositRequest) (*domain.WalletEntry, error)
	ConfirmDeposit(ctx context.Context, id uuid.UUID) (*domain.WalletEntry, error)
	CancelDeposit(ctx context.Context, id uuid.UUID) (*domain.WalletEntry, error)
	LatestBalance(ctx context.Context, customerID string) (*domain.Balance, error)
	ListDeposits(ctx context.Context, customerID string, filter domain.HistoryFilter) (*domain.DepositPage, error)

	RecordSell(ctx context.Context, req SellRequest) (*domain.SellEntry, error)
	ApproveSell(ctx context.Context, id uuid.UUID) (*SellApproval, error)
	CancelSell(ctx context.Context, id uuid.UUID) (*domain.SellEntry, error)

	CreateCoinPurchase(ctx context.Context, req CoinPurchaseRequest) (*domain.CoinPurchaseEntry, error)
	ApproveCoinPurchase(ctx context.Context, id uuid.UUID) (*domain.CoinPurchaseEntry, error)
	CancelCoinPurchase(ctx context.Context, id uuid.UUID) (*domain.CoinPurchaseEntry, error)
	CoinHistory(ctx context.Context, customerID string, filter domain.HistoryFilter) (*domain.CoinHistory, error)

	Charges(ctx context.Context) (*domain.ChargeSettings, error)
}

// DepositRequest holds validated input for a deposit. Nil charges are
// filled from the charge settings.
type DepositRequest struct {
	CustomerID      string
	CashAmount      decimal.Decimal
	Grams           decimal.Decimal
	AllocatedGrams  decimal.Decimal
	AllocatedAmount decimal.Decimal
	TaxAmount       *decimal.Decimal
	DeliveryCharge  *decimal.Decimal
}

// SellRequest holds validated input for a sell. Nil charges are filled
// from the charge settings.
type SellRequest struct {
	CustomerID    string
	CashAmount    decimal.Decimal
	GoldGrams     *decimal.Decimal
	GatewayCharge *decimal.Decimal
	TaxAmount     *decimal.Decimal
	OtherCharges  *decimal.Decimal
}

// SellApproval is the approved sell plus the customer's new balance.
type SellApproval struct {
	Sell    *domain.SellEntry `json:"sell"`
	Balance *domain.Balance   `json:"balance"`
}

// CoinPurchaseRequest holds input for a coin purchase.
type CoinPurchaseRequest struct {
	CustomerID     string
	Items          []domain.CoinItem
	TotalAmount    decimal.Decimal
	TaxAmount      decimal.Decimal
	DeliveryCharge decimal.Decimal
	AmountPayable  decimal.Decimal
	InvestAmount   decimal.Decimal
	Address        domain.DeliveryAddress
}

// AllotmentService reserves grams against a customer's gross grams.
type AllotmentService interface {
	Allot(ctx context.Context, customerID string, grams decimal.Decimal) (*domain.AllotmentResult, error)
	ByCustomer(ctx context.Context, customerID string) ([]domain.AllotmentView, error)
}

// ReportService rebuilds a customer's ledger from zero.
type ReportService interface {
	Generate(ctx context.Context, req domain.ReportRequest) (*domain.Report, error)
}

// AuditService records operator actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// HealthChecker checks external dependency health.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "postgresql", "redis").
	Name() string
}
