package service

import (
	"context"
	"time"

	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"
	"gold-ledger/pkg/apperror"
	"gold-ledger/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type allotmentService struct {
	customers  ports.CustomerRepository
	balances   ports.BalanceRepository
	entries    ports.WalletEntryRepository
	allotments ports.AllotmentRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
	now        func() time.Time
}

// NewAllotmentService creates the allotment tracker.
func NewAllotmentService(
	customers ports.CustomerRepository,
	balances ports.BalanceRepository,
	entries ports.WalletEntryRepository,
	allotments ports.AllotmentRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) ports.AllotmentService {
	return &allotmentService{
		customers:  customers,
		balances:   balances,
		entries:    entries,
		allotments: allotments,
		transactor: transactor,
		log:        logger.Component(log, "allotment"),
		now:        utcNow,
	}
}

// Allot reserves grams against the customer's gross confirmed grams. The
// check and the insert run under the customer's balance lock.
func (s *allotmentService) Allot(ctx context.Context, customerID string, grams decimal.Decimal) (*domain.AllotmentResult, error) {
	grams = domain.TruncGrams(grams)
	if !grams.IsPositive() {
		return nil, apperror.ErrInvalidGrams()
	}
	if !domain.ValidPhone(customerID) {
		return nil, apperror.Validation("phone must be exactly 10 digits")
	}
	exists, err := s.customers.Exists(ctx, customerID)
	if err != nil {
		return nil, storeErr("check customer", err)
	}
	if !exists {
		return nil, apperror.ErrUnknownCustomer()
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, storeErr("begin tx", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.balances.EnsureExists(ctx, tx, customerID); err != nil {
		return nil, storeErr("ensure balance", err)
	}
	if _, err := s.balances.GetForUpdate(ctx, tx, customerID); err != nil {
		return nil, storeErr("lock balance", err)
	}

	totals, err := s.entries.SumConfirmed(ctx, customerID)
	if err != nil {
		return nil, storeErr("sum confirmed deposits", err)
	}
	allotted, err := s.allotments.SumGrams(ctx, customerID)
	if err != nil {
		return nil, storeErr("sum allotments", err)
	}

	available := domain.NonNegative(totals.Grams.Sub(allotted))
	if grams.GreaterThan(available.Add(domain.GramEpsilon)) {
		return nil, apperror.ErrInsufficientGrams().
			WithDetail("available_grams", available.StringFixed(domain.GramPlaces)).
			WithDetail("requested_grams", grams.StringFixed(domain.GramPlaces))
	}
	if grams.Sub(available).Abs().LessThanOrEqual(domain.GramEpsilon) {
		grams = available
	}
	if !grams.IsPositive() {
		return nil, apperror.ErrInsufficientGrams().
			WithDetail("available_grams", available.StringFixed(domain.GramPlaces))
	}

	a := &domain.Allotment{
		ID:         uuid.New(),
		CustomerID: customerID,
		Grams:      grams,
		CreatedAt:  s.now(),
	}
	if err := s.allotments.Create(ctx, tx, a); err != nil {
		return nil, storeErr("create allotment", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, storeErr("commit tx", err)
	}

	totalAllotted := allotted.Add(grams)
	remaining := domain.NonNegative(available.Sub(grams))
	result := &domain.AllotmentResult{
		Allotment:      a,
		RemainingGrams: remaining,
		RemainingCash:  proportionalCash(totals, remaining),
		RequestedGrams: grams,
		AvailableGrams: available,
		GrossGrams:     totals.Grams,
		TotalAllotted:  totalAllotted,
	}

	s.log.Info().
		Str("allotment_id", a.ID.String()).
		Str("customer_id", customerID).
		Str("grams", grams.String()).
		Str("remaining_grams", remaining.String()).
		Msg("grams allotted")

	return result, nil
}

// ByCustomer lists allotments with the cash each one consumed at the
// blended average purchase rate.
func (s *allotmentService) ByCustomer(ctx context.Context, customerID string) ([]domain.AllotmentView, error) {
	if !domain.ValidPhone(customerID) {
		return nil, apperror.Validation("phone must be exactly 10 digits")
	}
	list, err := s.allotments.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, storeErr("list allotments", err)
	}
	totals, err := s.entries.SumConfirmed(ctx, customerID)
	if err != nil {
		return nil, storeErr("sum confirmed deposits", err)
	}

	views := make([]domain.AllotmentView, 0, len(list))
	for _, a := range list {
		views = append(views, domain.AllotmentView{
			Allotment:     *a,
			AmountReduced: proportionalCash(totals, a.Grams),
		})
	}
	return views, nil
}

// proportionalCash is totalCash × grams / gross, zero without gross grams.
func proportionalCash(totals domain.LedgerTotals, grams decimal.Decimal) decimal.Decimal {
	if !totals.Grams.IsPositive() {
		return decimal.Zero
	}
	return domain.RoundMoney(totals.Cash.Mul(grams).Div(totals.Grams))
}
