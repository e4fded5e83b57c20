package service

import (
	"context"

	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"
	"gold-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func chargeOrDefault(v *decimal.Decimal, def decimal.Decimal, field string) (decimal.Decimal, error) {
	if v == nil {
		return def, nil
	}
	if v.IsNegative() {
		return decimal.Zero, apperror.Validation(field + " must not be negative")
	}
	return domain.RoundMoney(*v), nil
}

// RecordSell stores a PENDING sell after checking it against the current
// balance.
func (s *WalletServiceImpl) RecordSell(ctx context.Context, req ports.SellRequest) (*domain.SellEntry, error) {
	if err := s.requireCustomer(ctx, req.CustomerID); err != nil {
		return nil, err
	}
	if !req.CashAmount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	settings, err := s.charges.Get(ctx)
	if err != nil {
		return nil, storeErr("charge settings", err)
	}

	sell := &domain.SellEntry{
		ID:         uuid.New(),
		CustomerID: req.CustomerID,
		CashAmount: domain.RoundMoney(req.CashAmount),
		Status:     domain.EntryStatusPending,
		CreatedAt:  s.now(),
	}
	if sell.GatewayCharge, err = chargeOrDefault(req.GatewayCharge, settings.GatewayCharge, "gateway_charge"); err != nil {
		return nil, err
	}
	if sell.TaxAmount, err = chargeOrDefault(req.TaxAmount, domain.Percent(sell.CashAmount, settings.TaxPercent), "tax_amount"); err != nil {
		return nil, err
	}
	if sell.OtherCharges, err = chargeOrDefault(req.OtherCharges, settings.OtherCharges, "other_charges"); err != nil {
		return nil, err
	}

	balance, err := s.balances.GetByCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, storeErr("get balance", err)
	}
	if balance == nil {
		balance = &domain.Balance{CustomerID: req.CustomerID}
	}

	charges := sell.Charges()
	maxSellable := domain.NonNegative(domain.RoundMoney(balance.Cash.Sub(charges)))
	if sell.CashAmount.GreaterThan(maxSellable) {
		return nil, apperror.ErrExceedsBalance().
			WithDetail("max_sellable_amount", maxSellable.StringFixed(domain.MoneyPlaces)).
			WithDetail("charges", charges.StringFixed(domain.MoneyPlaces))
	}

	if req.GoldGrams != nil {
		grams := domain.TruncGrams(*req.GoldGrams)
		if !grams.IsPositive() {
			return nil, apperror.ErrInvalidGrams()
		}
		maxGrams := decimal.Zero
		if balance.Cash.IsPositive() {
			chargeGrams := charges.Div(balance.Cash).Mul(balance.Grams)
			maxGrams = domain.NonNegative(domain.TruncGrams(balance.Grams.Sub(chargeGrams)))
		}
		if grams.GreaterThan(maxGrams) {
			return nil, apperror.ErrInsufficientGold().
				WithDetail("max_sellable_grams", maxGrams.StringFixed(domain.GramPlaces))
		}
		sell.GoldGrams = &grams
	}

	if err := s.sells.Create(ctx, sell); err != nil {
		return nil, storeErr("create sell", err)
	}

	s.log.Info().
		Str("sell_id", sell.ID.String()).
		Str("customer_id", sell.CustomerID).
		Str("cash_amount", sell.CashAmount.String()).
		Msg("sell recorded")

	return sell, nil
}

// ApproveSell deducts cash plus charges from the balance and the matching
// grams under the configured sell deduction model.
func (s *WalletServiceImpl) ApproveSell(ctx context.Context, id uuid.UUID) (*ports.SellApproval, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, storeErr("begin tx", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	sell, err := s.sells.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, storeErr("lock sell", err)
	}
	if sell == nil {
		return nil, apperror.ErrNotFound("sell")
	}
	switch sell.Status {
	case domain.EntryStatusConfirmed:
		return nil, apperror.ErrAlreadyApproved()
	case domain.EntryStatusCancelled:
		return nil, apperror.ErrAlreadyCancelled()
	}

	balance, err := s.lockBalance(ctx, tx, sell.CustomerID, false)
	if err != nil {
		return nil, err
	}
	if balance.IsEmpty() {
		return nil, apperror.ErrNoConfirmedWallet()
	}

	total := sell.TotalDeduction()
	if total.GreaterThan(balance.Cash) {
		return nil, apperror.ErrInsufficientBalance().
			WithDetail("required", total.StringFixed(domain.MoneyPlaces)).
			WithDetail("available", balance.Cash.StringFixed(domain.MoneyPlaces))
	}

	rate, err := s.rates.CurrentRate(ctx)
	if err != nil {
		return nil, err
	}
	required := domain.TruncGrams(total.Div(rate.PricePerGram))
	if required.GreaterThan(balance.Grams) {
		return nil, apperror.ErrInsufficientGold().
			WithDetail("required_grams", required.StringFixed(domain.GramPlaces)).
			WithDetail("available_grams", balance.Grams.StringFixed(domain.GramPlaces))
	}

	next := balance.Deduct(total, s.sellModel, rate.PricePerGram)
	if err := s.balances.Update(ctx, tx, &next); err != nil {
		return nil, storeErr("update balance", err)
	}

	now := s.now()
	sell.Status = domain.EntryStatusConfirmed
	sell.ProcessedAt = &now
	sell.AppliedRate = rate.PricePerGram
	sell.GramsDeducted = balance.Grams.Sub(next.Grams)
	sell.DeductionModel = s.sellModel
	if err := s.sells.UpdateState(ctx, tx, sell); err != nil {
		return nil, storeErr("update sell", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, storeErr("commit tx", err)
	}

	s.log.Info().
		Str("sell_id", sell.ID.String()).
		Str("customer_id", sell.CustomerID).
		Str("deducted", total.String()).
		Str("grams_deducted", sell.GramsDeducted.String()).
		Str("model", string(s.sellModel)).
		Msg("sell approved")

	return &ports.SellApproval{Sell: sell, Balance: &next}, nil
}

// CancelSell cancels a pending sell.
func (s *WalletServiceImpl) CancelSell(ctx context.Context, id uuid.UUID) (*domain.SellEntry, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, storeErr("begin tx", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	sell, err := s.sells.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, storeErr("lock sell", err)
	}
	if sell == nil {
		return nil, apperror.ErrNotFound("sell")
	}
	switch sell.Status {
	case domain.EntryStatusCancelled:
		return nil, apperror.ErrAlreadyCancelled()
	case domain.EntryStatusConfirmed:
		return nil, apperror.ErrAlreadyApproved()
	}

	sell.Status = domain.EntryStatusCancelled
	if err := s.sells.UpdateState(ctx, tx, sell); err != nil {
		return nil, storeErr("update sell", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, storeErr("commit tx", err)
	}

	s.log.Info().Str("sell_id", sell.ID.String()).Msg("sell cancelled")
	return sell, nil
}
