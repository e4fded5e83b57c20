package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"
	"gold-ledger/pkg/apperror"
	"gold-ledger/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const reportDateLayout = "2006-01-02"

// ReportRepos groups the read side the reconstructor replays from.
type ReportRepos struct {
	Customers ports.CustomerRepository
	Balances  ports.BalanceRepository
	Entries   ports.WalletEntryRepository
	Sells     ports.SellEntryRepository
	Coins     ports.CoinPurchaseRepository
}

// ReportOptions bounds a replay.
type ReportOptions struct {
	MaxEvents       int
	DefaultPageSize int
	SellModel       domain.DeductionModel // used for entries settled without a recorded model
	CoinModel       domain.DeductionModel
}

type reportService struct {
	repos ReportRepos
	rates ports.RateOracle
	opts  ReportOptions
	log   zerolog.Logger
	now   func() time.Time
}

// NewReportService creates the transaction reconstructor.
func NewReportService(repos ReportRepos, rates ports.RateOracle, opts ReportOptions, log zerolog.Logger) ports.ReportService {
	if opts.MaxEvents <= 0 {
		opts.MaxEvents = 5000
	}
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = 100
	}
	if opts.SellModel == "" {
		opts.SellModel = domain.DeductionRate
	}
	if opts.CoinModel == "" {
		opts.CoinModel = domain.DeductionRatio
	}
	return &reportService{
		repos: repos,
		rates: rates,
		opts:  opts,
		log:   logger.Component(log, "report"),
		now:   utcNow,
	}
}

// ledgerEvent is one settled entry on the merged timeline.
type ledgerEvent struct {
	at   time.Time
	buy  *domain.WalletEntry
	sell *domain.SellEntry
	coin *domain.CoinPurchaseEntry
}

func (e ledgerEvent) kind() domain.EventKind {
	switch {
	case e.buy != nil:
		return domain.EventBuy
	case e.sell != nil:
		return domain.EventSell
	default:
		return domain.EventCoin
	}
}

func (e ledgerEvent) id() string {
	switch {
	case e.buy != nil:
		return e.buy.ID.String()
	case e.sell != nil:
		return e.sell.ID.String()
	default:
		return e.coin.ID.String()
	}
}

// Generate rebuilds the customer's ledger from zero by replaying every
// settled entry in settlement order.
func (s *reportService) Generate(ctx context.Context, req domain.ReportRequest) (*domain.Report, error) {
	if !domain.ValidPhone(req.CustomerID) {
		return nil, apperror.Validation("phone must be exactly 10 digits")
	}
	from, to, err := parseReportRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	exists, err := s.repos.Customers.Exists(ctx, req.CustomerID)
	if err != nil {
		return nil, storeErr("check customer", err)
	}
	if !exists {
		return nil, apperror.ErrUnknownCustomer()
	}

	events, err := s.collect(ctx, req.CustomerID, from, to)
	if err != nil {
		return nil, err
	}
	if len(events) > s.opts.MaxEvents {
		return nil, apperror.Validation("too many ledger events, narrow the date range").
			WithDetail("event_count", len(events)).
			WithDetail("max_events", s.opts.MaxEvents)
	}

	history, err := s.rates.History(ctx)
	if err != nil {
		return nil, err
	}

	rows, warnings, final := s.replay(events, history)

	report := &domain.Report{
		CustomerID: req.CustomerID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Warnings:   warnings,
		TotalRows:  len(rows),
		Summary: domain.ReportSummary{
			FinalGold:   final.Grams,
			FinalCash:   final.Cash,
			EventCount:  len(events),
			GeneratedAt: s.now(),
		},
	}

	if from == nil && to == nil {
		stored, err := s.repos.Balances.GetByCustomer(ctx, req.CustomerID)
		if err != nil {
			return nil, storeErr("get balance", err)
		}
		cash, grams := decimal.Zero, decimal.Zero
		if stored != nil {
			cash, grams = stored.Cash, stored.Grams
		}
		reconciled := cash.Equal(final.Cash) && grams.Equal(final.Grams)
		report.Summary.StoredCash = &cash
		report.Summary.StoredGold = &grams
		report.Summary.Reconciled = &reconciled
		if !reconciled {
			s.log.Warn().
				Str("customer_id", req.CustomerID).
				Str("replay_cash", final.Cash.String()).
				Str("stored_cash", cash.String()).
				Str("replay_grams", final.Grams.String()).
				Str("stored_grams", grams.String()).
				Msg("replay does not match stored balance")
		}
	}

	report.Page, report.PageSize, report.Rows = s.page(rows, req.Page, req.PageSize)
	return report, nil
}

func (s *reportService) collect(ctx context.Context, customerID string, from, to *time.Time) ([]ledgerEvent, error) {
	buys, err := s.repos.Entries.ListConfirmed(ctx, customerID, from, to)
	if err != nil {
		return nil, storeErr("list confirmed deposits", err)
	}
	sells, err := s.repos.Sells.ListConfirmed(ctx, customerID, from, to)
	if err != nil {
		return nil, storeErr("list confirmed sells", err)
	}
	coins, err := s.repos.Coins.ListConfirmed(ctx, customerID, from, to)
	if err != nil {
		return nil, storeErr("list confirmed coin purchases", err)
	}

	events := make([]ledgerEvent, 0, len(buys)+len(sells)+len(coins))
	for _, b := range buys {
		events = append(events, ledgerEvent{at: b.SettledAt(), buy: b})
	}
	for _, c := range coins {
		events = append(events, ledgerEvent{at: c.SettledAt(), coin: c})
	}
	for _, sl := range sells {
		events = append(events, ledgerEvent{at: sl.SettledAt(), sell: sl})
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].at.Before(events[j].at)
	})
	return events, nil
}

// replay walks the timeline with the same Balance arithmetic the engine
// applies on settlement.
func (s *reportService) replay(events []ledgerEvent, history domain.RateHistory) ([]domain.ReportRow, []string, domain.Balance) {
	var (
		balance  domain.Balance
		rows     = make([]domain.ReportRow, 0, len(events))
		warnings []string
	)

	for i, ev := range events {
		rate := decimal.Zero
		sample, fallback, ok := history.At(ev.at.Unix())
		switch {
		case !ok:
			warnings = append(warnings, fmt.Sprintf("%s %s: no rate sample recorded, rate shown as 0", ev.kind(), ev.id()))
		case fallback:
			rate = sample.PricePerGram
			warnings = append(warnings, fmt.Sprintf("%s %s: settled before the first rate sample, using rate from %s",
				ev.kind(), ev.id(), sample.Time().In(domain.ReportZone).Format(time.RFC3339)))
			s.log.Warn().
				Str("entry_id", ev.id()).
				Int64("settled_at", ev.at.Unix()).
				Int64("fallback_ts", sample.Timestamp).
				Msg("rate lookup fell back to earliest sample")
		default:
			rate = sample.PricePerGram
		}

		local := ev.at.In(domain.ReportZone)
		row := domain.ReportRow{
			Serial:        i + 1,
			Kind:          ev.kind(),
			EntryID:       ev.id(),
			Date:          local.Format(reportDateLayout),
			Time:          local.Format("15:04:05"),
			Rate:          rate,
			GoldBefore:    balance.Grams,
			Bought:        decimal.Zero,
			Sold:          decimal.Zero,
			CoinPurchased: decimal.Zero,
			Gateway:       decimal.Zero,
			Other:         decimal.Zero,
		}

		switch {
		case ev.buy != nil:
			b := ev.buy
			row.Bought = b.CreditedGrams()
			row.Cost = b.EffectiveAmount()
			row.Tax = b.TaxAmount
			row.Other = b.DeliveryCharge
			row.Total = b.TotalWithTax
			balance = balance.Credit(b.EffectiveAmount(), b.CreditedGrams())

		case ev.coin != nil:
			c := ev.coin
			coinGrams := c.CoinGrams()
			row.CoinPurchased = coinGrams
			row.Cost = domain.RoundMoney(coinGrams.Mul(rate))
			row.Tax = c.TaxAmount
			row.Other = c.DeliveryCharge
			row.Total = domain.RoundMoney(row.Cost.Add(c.TaxAmount).Add(c.DeliveryCharge))
			if c.InvestAmount.IsPositive() && !balance.Cash.IsZero() {
				balance = balance.Deduct(c.InvestAmount, modelOr(c.DeductionModel, s.opts.CoinModel), rateOr(c.AppliedRate, rate))
			}

		case ev.sell != nil:
			sl := ev.sell
			before := balance.Grams
			balance = balance.Deduct(sl.TotalDeduction(), modelOr(sl.DeductionModel, s.opts.SellModel), rateOr(sl.AppliedRate, rate))
			row.Sold = before.Sub(balance.Grams)
			row.Cost = sl.CashAmount
			row.Tax = sl.TaxAmount
			row.Gateway = sl.GatewayCharge
			row.Other = sl.OtherCharges
			row.Total = sl.TotalDeduction()
			if rate.IsPositive() {
				row.ChargesInGrams = domain.TruncGrams(sl.Charges().Div(rate))
			}
		}

		row.GoldAfter = balance.Grams
		rows = append(rows, row)
	}
	return rows, warnings, balance
}

func (s *reportService) page(rows []domain.ReportRow, page, size int) (int, int, []domain.ReportRow) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = s.opts.DefaultPageSize
	}
	if size > s.opts.MaxEvents {
		size = s.opts.MaxEvents
	}
	start := (page - 1) * size
	if start >= len(rows) {
		return page, size, []domain.ReportRow{}
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return page, size, rows[start:end]
}

// parseReportRange turns civil dates in the report zone into an inclusive
// time range. Either bound may be empty.
func parseReportRange(start, end string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if start != "" {
		t, err := time.ParseInLocation(reportDateLayout, start, domain.ReportZone)
		if err != nil {
			return nil, nil, apperror.Validation("start_date must be YYYY-MM-DD")
		}
		from = &t
	}
	if end != "" {
		t, err := time.ParseInLocation(reportDateLayout, end, domain.ReportZone)
		if err != nil {
			return nil, nil, apperror.Validation("end_date must be YYYY-MM-DD")
		}
		t = t.Add(24*time.Hour - time.Millisecond)
		to = &t
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, apperror.Validation("start_date must not be after end_date")
	}
	return from, to, nil
}

func modelOr(m, fallback domain.DeductionModel) domain.DeductionModel {
	if m == "" {
		return fallback
	}
	return m
}

func rateOr(recorded, fallback decimal.Decimal) decimal.Decimal {
	if recorded.IsPositive() {
		return recorded
	}
	return fallback
}
