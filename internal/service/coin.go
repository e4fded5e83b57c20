package service

import (
	"context"
	"fmt"
	"strings"

	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"
	"gold-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func validateCoinRequest(req ports.CoinPurchaseRequest) error {
	if len(req.Items) == 0 {
		return apperror.Validation("at least one coin item is required")
	}
	sum := decimal.Zero
	for i, it := range req.Items {
		if it.CoinGrams.IsNegative() {
			return apperror.Validation(fmt.Sprintf("items[%d].coin_grams must not be negative", i))
		}
		if it.Quantity < 1 {
			return apperror.Validation(fmt.Sprintf("items[%d].quantity must be at least 1", i))
		}
		if it.Amount.IsNegative() {
			return apperror.Validation(fmt.Sprintf("items[%d].amount must not be negative", i))
		}
		sum = sum.Add(it.Amount)
	}
	if req.TaxAmount.IsNegative() || req.DeliveryCharge.IsNegative() {
		return apperror.Validation("tax_amount and delivery_charge must not be negative")
	}
	if !domain.RoundMoney(sum).Equal(domain.RoundMoney(req.TotalAmount)) {
		return apperror.Validation("total_amount must equal the sum of item amounts").
			WithDetail("expected_total_amount", domain.RoundMoney(sum).StringFixed(domain.MoneyPlaces))
	}
	payable := domain.RoundMoney(req.TotalAmount.Add(req.TaxAmount).Add(req.DeliveryCharge))
	if !payable.Equal(domain.RoundMoney(req.AmountPayable)) {
		return apperror.Validation("amount_payable must equal total_amount + tax_amount + delivery_charge").
			WithDetail("expected_amount_payable", payable.StringFixed(domain.MoneyPlaces))
	}
	if req.InvestAmount.IsNegative() || req.InvestAmount.GreaterThan(req.AmountPayable) {
		return apperror.Validation("invest_amount must be between 0 and amount_payable")
	}
	if strings.TrimSpace(req.Address.Line) == "" || strings.TrimSpace(req.Address.City) == "" ||
		strings.TrimSpace(req.Address.PostCode) == "" {
		return apperror.Validation("delivery address line, city and post code are required")
	}
	return nil
}

// CreateCoinPurchase stores an APPROVAL_PENDING coin purchase.
func (s *WalletServiceImpl) CreateCoinPurchase(ctx context.Context, req ports.CoinPurchaseRequest) (*domain.CoinPurchaseEntry, error) {
	if err := validateCoinRequest(req); err != nil {
		return nil, err
	}
	if err := s.requireCustomer(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	coin := &domain.CoinPurchaseEntry{
		ID:             uuid.New(),
		CustomerID:     req.CustomerID,
		Items:          req.Items,
		TotalAmount:    domain.RoundMoney(req.TotalAmount),
		TaxAmount:      domain.RoundMoney(req.TaxAmount),
		DeliveryCharge: domain.RoundMoney(req.DeliveryCharge),
		AmountPayable:  domain.RoundMoney(req.AmountPayable),
		InvestAmount:   domain.RoundMoney(req.InvestAmount),
		Address:        req.Address,
		Status:         domain.CoinStatusApprovalPending,
		CreatedAt:      s.now(),
	}
	if err := s.coins.Create(ctx, coin); err != nil {
		return nil, storeErr("create coin purchase", err)
	}

	s.log.Info().
		Str("coin_id", coin.ID.String()).
		Str("customer_id", coin.CustomerID).
		Str("amount_payable", coin.AmountPayable.String()).
		Msg("coin purchase created")

	return coin, nil
}

// ApproveCoinPurchase deducts the invested amount from the balance with
// the configured coin deduction model, clamping at zero.
func (s *WalletServiceImpl) ApproveCoinPurchase(ctx context.Context, id uuid.UUID) (*domain.CoinPurchaseEntry, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, storeErr("begin tx", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	coin, err := s.coins.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, storeErr("lock coin purchase", err)
	}
	if coin == nil {
		return nil, apperror.ErrNotFound("coin purchase")
	}
	switch coin.Status {
	case domain.CoinStatusConfirmed:
		return nil, apperror.ErrAlreadyApproved()
	case domain.CoinStatusCancelled:
		return nil, apperror.ErrAlreadyCancelled()
	}

	rate := decimal.Zero
	if current, err := s.rates.CurrentRate(ctx); err == nil {
		rate = current.PricePerGram
	} else if s.coinModel == domain.DeductionRate && coin.InvestAmount.IsPositive() {
		return nil, err
	}

	if coin.InvestAmount.IsPositive() {
		balance, err := s.lockBalance(ctx, tx, coin.CustomerID, false)
		if err != nil {
			return nil, err
		}
		if !balance.IsEmpty() {
			next := balance.Deduct(coin.InvestAmount, s.coinModel, rate)
			if err := s.balances.Update(ctx, tx, &next); err != nil {
				return nil, storeErr("update balance", err)
			}
			coin.GramsDeducted = balance.Grams.Sub(next.Grams)
		}
	}

	now := s.now()
	coin.Status = domain.CoinStatusConfirmed
	coin.ProcessedAt = &now
	coin.AppliedRate = rate
	coin.DeductionModel = s.coinModel
	if err := s.coins.UpdateState(ctx, tx, coin); err != nil {
		return nil, storeErr("update coin purchase", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storeErr("commit tx", err)
	}

	s.log.Info().
		Str("coin_id", coin.ID.String()).
		Str("customer_id", coin.CustomerID).
		Str("invest_amount", coin.InvestAmount.String()).
		Str("grams_deducted", coin.GramsDeducted.String()).
		Msg("coin purchase approved")

	return coin, nil
}

// CancelCoinPurchase cancels a pending coin purchase.
func (s *WalletServiceImpl) CancelCoinPurchase(ctx context.Context, id uuid.UUID) (*domain.CoinPurchaseEntry, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, storeErr("begin tx", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	coin, err := s.coins.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, storeErr("lock coin purchase", err)
	}
	if coin == nil {
		return nil, apperror.ErrNotFound("coin purchase")
	}
	switch coin.Status {
	case domain.CoinStatusCancelled:
		return nil, apperror.ErrAlreadyCancelled()
	case domain.CoinStatusConfirmed:
		return nil, apperror.ErrAlreadyApproved()
	}

	coin.Status = domain.CoinStatusCancelled
	if err := s.coins.UpdateState(ctx, tx, coin); err != nil {
		return nil, storeErr("update coin purchase", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, storeErr("commit tx", err)
	}

	s.log.Info().Str("coin_id", coin.ID.String()).Msg("coin purchase cancelled")
	return coin, nil
}

// CoinHistory returns one page of coin purchases and a summary of every
// purchase matching the filter.
func (s *WalletServiceImpl) CoinHistory(ctx context.Context, customerID string, filter domain.HistoryFilter) (*domain.CoinHistory, error) {
	if !domain.ValidPhone(customerID) {
		return nil, apperror.Validation("phone must be exactly 10 digits")
	}
	filter, err := normalizeFilter(filter,
		string(domain.CoinStatusApprovalPending), string(domain.CoinStatusConfirmed), string(domain.CoinStatusCancelled))
	if err != nil {
		return nil, err
	}

	items, err := s.coins.ListByCustomer(ctx, customerID, filter)
	if err != nil {
		return nil, storeErr("list coin purchases", err)
	}
	summary, err := s.coins.Summarize(ctx, customerID, filter)
	if err != nil {
		return nil, storeErr("summarize coin purchases", err)
	}
	if items == nil {
		items = []*domain.CoinPurchaseEntry{}
	}
	return &domain.CoinHistory{Items: items, Summary: summary, Page: filter.Page, Limit: filter.Limit}, nil
}
