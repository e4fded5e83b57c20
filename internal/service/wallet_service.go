package service

import (
	"context"
	"time"

	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"
	"gold-ledger/pkg/apperror"
	"gold-ledger/pkg/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// WalletRepos groups the repositories the wallet engine writes through.
type WalletRepos struct {
	Customers ports.CustomerRepository
	Balances  ports.BalanceRepository
	Entries   ports.WalletEntryRepository
	Sells     ports.SellEntryRepository
	Coins     ports.CoinPurchaseRepository
	Charges   ports.ChargesRepository
}

// WalletServiceImpl implements ports.WalletService. Every settlement runs
// in one transaction that locks the entry first and the customer's
// balance row second.
type WalletServiceImpl struct {
	customers  ports.CustomerRepository
	balances   ports.BalanceRepository
	entries    ports.WalletEntryRepository
	sells      ports.SellEntryRepository
	coins      ports.CoinPurchaseRepository
	charges    ports.ChargesRepository
	rates      ports.RateOracle
	transactor ports.DBTransactor
	sellModel  domain.DeductionModel
	coinModel  domain.DeductionModel
	log        zerolog.Logger
	now        func() time.Time
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	repos WalletRepos,
	rates ports.RateOracle,
	transactor ports.DBTransactor,
	sellModel, coinModel domain.DeductionModel,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		customers:  repos.Customers,
		balances:   repos.Balances,
		entries:    repos.Entries,
		sells:      repos.Sells,
		coins:      repos.Coins,
		charges:    repos.Charges,
		rates:      rates,
		transactor: transactor,
		sellModel:  sellModel,
		coinModel:  coinModel,
		log:        logger.Component(log, "wallet"),
		now:        utcNow,
	}
}

// RegisterCustomer adds a customer keyed by a 10-digit phone.
func (s *WalletServiceImpl) RegisterCustomer(ctx context.Context, phone, name string) (*domain.Customer, error) {
	if !domain.ValidPhone(phone) {
		return nil, apperror.Validation("phone must be exactly 10 digits")
	}
	exists, err := s.customers.Exists(ctx, phone)
	if err != nil {
		return nil, storeErr("check customer", err)
	}
	if exists {
		return nil, apperror.ErrInvalidState("customer already registered")
	}

	c := &domain.Customer{Phone: phone, Name: name, CreatedAt: s.now()}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, storeErr("create customer", err)
	}
	s.log.Info().Str("customer_id", phone).Msg("customer registered")
	return c, nil
}

func (s *WalletServiceImpl) requireCustomer(ctx context.Context, phone string) error {
	if !domain.ValidPhone(phone) {
		return apperror.Validation("phone must be exactly 10 digits")
	}
	exists, err := s.customers.Exists(ctx, phone)
	if err != nil {
		return storeErr("check customer", err)
	}
	if !exists {
		return apperror.ErrUnknownCustomer()
	}
	return nil
}

// RecordDeposit stores a PENDING buy with a preview of the running totals.
func (s *WalletServiceImpl) RecordDeposit(ctx context.Context, req ports.DepositRequest) (*domain.WalletEntry, error) {
	if err := s.requireCustomer(ctx, req.CustomerID); err != nil {
		return nil, err
	}
	if req.CashAmount.IsNegative() || req.AllocatedAmount.IsNegative() {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Grams.IsNegative() || req.AllocatedGrams.IsNegative() {
		return nil, apperror.ErrInvalidGrams()
	}
	if !req.CashAmount.IsPositive() && !req.Grams.IsPositive() {
		return nil, apperror.Validation("either cash_amount or grams must be positive")
	}

	settings, err := s.charges.Get(ctx)
	if err != nil {
		return nil, storeErr("charge settings", err)
	}

	entry := &domain.WalletEntry{
		ID:              uuid.New(),
		CustomerID:      req.CustomerID,
		CashAmount:      domain.RoundMoney(req.CashAmount),
		AllocatedAmount: domain.RoundMoney(req.AllocatedAmount),
		Grams:           domain.TruncGrams(req.Grams),
		AllocatedGrams:  domain.TruncGrams(req.AllocatedGrams),
		Status:          domain.EntryStatusPending,
		CreatedAt:       s.now(),
	}

	// A grams-only purchase without a quoted amount is priced at the current rate.
	if entry.CashAmount.IsZero() && entry.AllocatedAmount.IsZero() {
		rate, err := s.rates.CurrentRate(ctx)
		if err != nil {
			return nil, err
		}
		entry.AllocatedAmount = domain.RoundMoney(entry.Grams.Mul(rate.PricePerGram))
	}
	effective := entry.EffectiveAmount()

	if req.TaxAmount != nil {
		if req.TaxAmount.IsNegative() {
			return nil, apperror.Validation("tax_amount must not be negative")
		}
		entry.TaxAmount = domain.RoundMoney(*req.TaxAmount)
	} else {
		entry.TaxAmount = domain.Percent(effective, settings.TaxPercent)
	}
	if req.DeliveryCharge != nil {
		if req.DeliveryCharge.IsNegative() {
			return nil, apperror.Validation("delivery_charge must not be negative")
		}
		entry.DeliveryCharge = domain.RoundMoney(*req.DeliveryCharge)
	} else {
		entry.DeliveryCharge = settings.DeliveryCharge
	}
	entry.TotalWithTax = domain.RoundMoney(effective.Add(entry.TaxAmount).Add(entry.DeliveryCharge))

	totals, err := s.entries.SumConfirmed(ctx, req.CustomerID)
	if err != nil {
		return nil, storeErr("sum confirmed deposits", err)
	}
	entry.TotalAmount = domain.RoundMoney(totals.Cash.Add(effective))
	entry.TotalGrams = domain.TruncGrams(totals.Grams.Add(entry.CreditedGrams()))

	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, storeErr("create deposit", err)
	}

	s.log.Info().
		Str("entry_id", entry.ID.String()).
		Str("customer_id", entry.CustomerID).
		Str("amount", effective.String()).
		Msg("deposit recorded")

	return entry, nil
}

// ConfirmDeposit allocates gold at the current rate and credits the balance.
// A cancelled deposit may be confirmed again.
func (s *WalletServiceImpl) ConfirmDeposit(ctx context.Context, id uuid.UUID) (*domain.WalletEntry, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, storeErr("begin tx", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	entry, err := s.entries.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, storeErr("lock deposit", err)
	}
	if entry == nil {
		return nil, apperror.ErrNotFound("deposit")
	}
	if !entry.CanConfirm() {
		return nil, apperror.ErrNotPending()
	}

	rate, err := s.rates.CurrentRate(ctx)
	if err != nil {
		return nil, err
	}
	if entry.CashAmount.IsPositive() {
		entry.GoldAllocated = domain.TruncGrams(entry.CashAmount.Div(rate.PricePerGram))
	}

	balance, err := s.lockBalance(ctx, tx, entry.CustomerID, true)
	if err != nil {
		return nil, err
	}
	next := balance.Credit(entry.EffectiveAmount(), entry.CreditedGrams())
	if err := s.balances.Update(ctx, tx, &next); err != nil {
		return nil, storeErr("update balance", err)
	}

	now := s.now()
	entry.Status = domain.EntryStatusConfirmed
	entry.ConfirmedAt = &now
	entry.TotalAmount = next.Cash
	entry.TotalGrams = next.Grams
	if err := s.entries.UpdateState(ctx, tx, entry); err != nil {
		return nil, storeErr("update deposit", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storeErr("commit tx", err)
	}

	s.log.Info().
		Str("entry_id", entry.ID.String()).
		Str("customer_id", entry.CustomerID).
		Str("rate", rate.PricePerGram.String()).
		Str("gold_allocated", entry.GoldAllocated.String()).
		Str("total_amount", next.Cash.String()).
		Str("total_grams", next.Grams.String()).
		Msg("deposit confirmed")

	return entry, nil
}

// CancelDeposit cancels a pending deposit. Cancelling twice returns the
// entry unchanged.
func (s *WalletServiceImpl) CancelDeposit(ctx context.Context, id uuid.UUID) (*domain.WalletEntry, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, storeErr("begin tx", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	entry, err := s.entries.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, storeErr("lock deposit", err)
	}
	if entry == nil {
		return nil, apperror.ErrNotFound("deposit")
	}

	switch entry.Status {
	case domain.EntryStatusCancelled:
		return entry, nil
	case domain.EntryStatusConfirmed:
		return nil, apperror.ErrInvalidState("confirmed deposit cannot be cancelled")
	}

	entry.Status = domain.EntryStatusCancelled
	if err := s.entries.UpdateState(ctx, tx, entry); err != nil {
		return nil, storeErr("update deposit", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, storeErr("commit tx", err)
	}

	s.log.Info().Str("entry_id", entry.ID.String()).Msg("deposit cancelled")
	return entry, nil
}

// LatestBalance returns the customer's balance, zero when nothing was ever
// credited.
func (s *WalletServiceImpl) LatestBalance(ctx context.Context, customerID string) (*domain.Balance, error) {
	if !domain.ValidPhone(customerID) {
		return nil, apperror.Validation("phone must be exactly 10 digits")
	}
	b, err := s.balances.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, storeErr("get balance", err)
	}
	if b == nil {
		return &domain.Balance{CustomerID: customerID, Cash: decimal.Zero, Grams: decimal.Zero}, nil
	}
	return b, nil
}

// ListDeposits returns one page of the customer's deposits, newest first.
func (s *WalletServiceImpl) ListDeposits(ctx context.Context, customerID string, filter domain.HistoryFilter) (*domain.DepositPage, error) {
	if !domain.ValidPhone(customerID) {
		return nil, apperror.Validation("phone must be exactly 10 digits")
	}
	filter, err := normalizeFilter(filter,
		string(domain.EntryStatusPending), string(domain.EntryStatusConfirmed), string(domain.EntryStatusCancelled))
	if err != nil {
		return nil, err
	}

	items, total, err := s.entries.ListByCustomer(ctx, customerID, filter)
	if err != nil {
		return nil, storeErr("list deposits", err)
	}
	if items == nil {
		items = []*domain.WalletEntry{}
	}
	return &domain.DepositPage{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// Charges returns the configured charge settings.
func (s *WalletServiceImpl) Charges(ctx context.Context) (*domain.ChargeSettings, error) {
	c, err := s.charges.Get(ctx)
	if err != nil {
		return nil, storeErr("charge settings", err)
	}
	return c, nil
}

// lockBalance takes the customer's balance row lock. With ensure the row is
// created first so a first deposit has something to lock.
func (s *WalletServiceImpl) lockBalance(ctx context.Context, tx pgx.Tx, customerID string, ensure bool) (*domain.Balance, error) {
	if ensure {
		if err := s.balances.EnsureExists(ctx, tx, customerID); err != nil {
			return nil, storeErr("ensure balance", err)
		}
	}
	b, err := s.balances.GetForUpdate(ctx, tx, customerID)
	if err != nil {
		return nil, storeErr("lock balance", err)
	}
	if b == nil && ensure {
		return nil, apperror.InternalError(errBalanceRowMissing)
	}
	return b, nil
}
