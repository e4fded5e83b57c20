package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// --- Customers ---

// CustomerRepo implements ports.CustomerRepository.
type CustomerRepo struct{ s *Store }

// NewCustomerRepo creates a CustomerRepo over store.
func NewCustomerRepo(store *Store) *CustomerRepo { return &CustomerRepo{s: store} }

func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[c.Phone]; ok {
		return fmt.Errorf("customer %s already exists", c.Phone)
	}
	cp := *c
	r.s.customers[c.Phone] = &cp
	return nil
}

func (r *CustomerRepo) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.customers[phone]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *CustomerRepo) Exists(ctx context.Context, phone string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.customers[phone]
	return ok, nil
}

// --- Balances ---

// BalanceRepo implements ports.BalanceRepository.
type BalanceRepo struct{ s *Store }

// NewBalanceRepo creates a BalanceRepo over store.
func NewBalanceRepo(store *Store) *BalanceRepo { return &BalanceRepo{s: store} }

func (r *BalanceRepo) GetByCustomer(ctx context.Context, customerID string) (*domain.Balance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.balances[customerID]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *BalanceRepo) EnsureExists(ctx context.Context, tx pgx.Tx, customerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.balances[customerID]; !ok {
		r.s.balances[customerID] = &domain.Balance{CustomerID: customerID, UpdatedAt: time.Now().UTC()}
	}
	return nil
}

func (r *BalanceRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, customerID string) (*domain.Balance, error) {
	if err := r.s.lock(ctx, tx, "balance:"+customerID); err != nil {
		return nil, fmt.Errorf("lock balance: %w", err)
	}
	return r.GetByCustomer(ctx, customerID)
}

func (r *BalanceRepo) Update(ctx context.Context, tx pgx.Tx, b *domain.Balance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.balances[b.CustomerID]
	if !ok || cur.Version != b.Version {
		return ports.ErrVersionConflict
	}
	b.Version++
	b.UpdatedAt = time.Now().UTC()
	cp := *b
	r.s.balances[b.CustomerID] = &cp
	return nil
}

// --- Wallet entries ---

// WalletEntryRepo implements ports.WalletEntryRepository.
type WalletEntryRepo struct{ s *Store }

// NewWalletEntryRepo creates a WalletEntryRepo over store.
func NewWalletEntryRepo(store *Store) *WalletEntryRepo { return &WalletEntryRepo{s: store} }

func (r *WalletEntryRepo) Create(ctx context.Context, e *domain.WalletEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *e
	r.s.entries[e.ID] = &cp
	return nil
}

func (r *WalletEntryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WalletEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *WalletEntryRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.WalletEntry, error) {
	if err := r.s.lock(ctx, tx, "entry:"+id.String()); err != nil {
		return nil, fmt.Errorf("lock wallet entry: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *WalletEntryRepo) UpdateState(ctx context.Context, tx pgx.Tx, e *domain.WalletEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.entries[e.ID]; !ok {
		return fmt.Errorf("wallet entry not found: %s", e.ID)
	}
	cp := *e
	r.s.entries[e.ID] = &cp
	return nil
}

func (r *WalletEntryRepo) SumConfirmed(ctx context.Context, customerID string) (domain.LedgerTotals, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	totals := domain.LedgerTotals{Cash: decimal.Zero, Grams: decimal.Zero}
	for _, e := range r.s.entries {
		if e.CustomerID != customerID || e.Status != domain.EntryStatusConfirmed {
			continue
		}
		totals.Cash = totals.Cash.Add(e.EffectiveAmount())
		totals.Grams = totals.Grams.Add(e.CreditedGrams())
	}
	return totals, nil
}

func (r *WalletEntryRepo) ListByCustomer(ctx context.Context, customerID string, f domain.HistoryFilter) ([]*domain.WalletEntry, int, error) {
	r.s.mu.RLock()
	var matched []*domain.WalletEntry
	for _, e := range r.s.entries {
		if e.CustomerID == customerID && matchesHistory(f, string(e.Status), e.CreatedAt) {
			cp := *e
			matched = append(matched, &cp)
		}
	}
	r.s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return paginate(matched, f), len(matched), nil
}

func (r *WalletEntryRepo) ListConfirmed(ctx context.Context, customerID string, from, to *time.Time) ([]*domain.WalletEntry, error) {
	r.s.mu.RLock()
	var out []*domain.WalletEntry
	for _, e := range r.s.entries {
		if e.CustomerID == customerID && e.Status == domain.EntryStatusConfirmed && inRange(e.SettledAt(), from, to) {
			cp := *e
			out = append(out, &cp)
		}
	}
	r.s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].SettledAt().Before(out[j].SettledAt()) })
	return out, nil
}

// --- Sell entries ---

// SellEntryRepo implements ports.SellEntryRepository.
type SellEntryRepo struct{ s *Store }

// NewSellEntryRepo creates a SellEntryRepo over store.
func NewSellEntryRepo(store *Store) *SellEntryRepo { return &SellEntryRepo{s: store} }

func (r *SellEntryRepo) Create(ctx context.Context, e *domain.SellEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *e
	r.s.sells[e.ID] = &cp
	return nil
}

func (r *SellEntryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SellEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.sells[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *SellEntryRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.SellEntry, error) {
	if err := r.s.lock(ctx, tx, "sell:"+id.String()); err != nil {
		return nil, fmt.Errorf("lock sell entry: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *SellEntryRepo) UpdateState(ctx context.Context, tx pgx.Tx, e *domain.SellEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sells[e.ID]; !ok {
		return fmt.Errorf("sell entry not found: %s", e.ID)
	}
	cp := *e
	r.s.sells[e.ID] = &cp
	return nil
}

func (r *SellEntryRepo) ListConfirmed(ctx context.Context, customerID string, from, to *time.Time) ([]*domain.SellEntry, error) {
	r.s.mu.RLock()
	var out []*domain.SellEntry
	for _, e := range r.s.sells {
		if e.CustomerID == customerID && e.Status == domain.EntryStatusConfirmed && inRange(e.SettledAt(), from, to) {
			cp := *e
			out = append(out, &cp)
		}
	}
	r.s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].SettledAt().Before(out[j].SettledAt()) })
	return out, nil
}

// --- Coin purchases ---

// CoinPurchaseRepo implements ports.CoinPurchaseRepository.
type CoinPurchaseRepo struct{ s *Store }

// NewCoinPurchaseRepo creates a CoinPurchaseRepo over store.
func NewCoinPurchaseRepo(store *Store) *CoinPurchaseRepo { return &CoinPurchaseRepo{s: store} }

func copyCoin(c *domain.CoinPurchaseEntry) *domain.CoinPurchaseEntry {
	cp := *c
	cp.Items = append([]domain.CoinItem(nil), c.Items...)
	return &cp
}

func (r *CoinPurchaseRepo) Create(ctx context.Context, c *domain.CoinPurchaseEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.coins[c.ID] = copyCoin(c)
	return nil
}

func (r *CoinPurchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CoinPurchaseEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.coins[id]
	if !ok {
		return nil, nil
	}
	return copyCoin(c), nil
}

func (r *CoinPurchaseRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.CoinPurchaseEntry, error) {
	if err := r.s.lock(ctx, tx, "coin:"+id.String()); err != nil {
		return nil, fmt.Errorf("lock coin purchase: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *CoinPurchaseRepo) UpdateState(ctx context.Context, tx pgx.Tx, c *domain.CoinPurchaseEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.coins[c.ID]; !ok {
		return fmt.Errorf("coin purchase not found: %s", c.ID)
	}
	r.s.coins[c.ID] = copyCoin(c)
	return nil
}

func (r *CoinPurchaseRepo) ListConfirmed(ctx context.Context, customerID string, from, to *time.Time) ([]*domain.CoinPurchaseEntry, error) {
	r.s.mu.RLock()
	var out []*domain.CoinPurchaseEntry
	for _, c := range r.s.coins {
		if c.CustomerID == customerID && c.Status == domain.CoinStatusConfirmed && inRange(c.SettledAt(), from, to) {
			out = append(out, copyCoin(c))
		}
	}
	r.s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].SettledAt().Before(out[j].SettledAt()) })
	return out, nil
}

func (r *CoinPurchaseRepo) matching(customerID string, f domain.HistoryFilter) []*domain.CoinPurchaseEntry {
	r.s.mu.RLock()
	var out []*domain.CoinPurchaseEntry
	for _, c := range r.s.coins {
		if c.CustomerID == customerID && matchesHistory(f, string(c.Status), c.CreatedAt) {
			out = append(out, copyCoin(c))
		}
	}
	r.s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *CoinPurchaseRepo) ListByCustomer(ctx context.Context, customerID string, f domain.HistoryFilter) ([]*domain.CoinPurchaseEntry, error) {
	return paginate(r.matching(customerID, f), f), nil
}

func (r *CoinPurchaseRepo) Summarize(ctx context.Context, customerID string, f domain.HistoryFilter) (domain.CoinHistorySummary, error) {
	s := domain.CoinHistorySummary{TotalAmount: decimal.Zero, TotalPayable: decimal.Zero, TotalInvest: decimal.Zero}
	for _, c := range r.matching(customerID, f) {
		s.Count++
		s.TotalAmount = s.TotalAmount.Add(c.TotalAmount)
		s.TotalPayable = s.TotalPayable.Add(c.AmountPayable)
		s.TotalInvest = s.TotalInvest.Add(c.InvestAmount)
	}
	return s, nil
}

// --- Allotments ---

// AllotmentRepo implements ports.AllotmentRepository.
type AllotmentRepo struct{ s *Store }

// NewAllotmentRepo creates an AllotmentRepo over store.
func NewAllotmentRepo(store *Store) *AllotmentRepo { return &AllotmentRepo{s: store} }

func (r *AllotmentRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.Allotment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *a
	r.s.allotments = append(r.s.allotments, &cp)
	return nil
}

func (r *AllotmentRepo) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Allotment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*domain.Allotment
	for i := len(r.s.allotments) - 1; i >= 0; i-- {
		if a := r.s.allotments[i]; a.CustomerID == customerID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *AllotmentRepo) SumGrams(ctx context.Context, customerID string) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	total := decimal.Zero
	for _, a := range r.s.allotments {
		if a.CustomerID == customerID {
			total = total.Add(a.Grams)
		}
	}
	return total, nil
}

// --- Rates ---

// RateRepo implements ports.RateRepository.
type RateRepo struct{ s *Store }

// NewRateRepo creates a RateRepo over store.
func NewRateRepo(store *Store) *RateRepo { return &RateRepo{s: store} }

// Create appends the sample. Timestamps must strictly increase.
func (r *RateRepo) Create(ctx context.Context, sample *domain.RateSample) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if n := len(r.s.rates); n > 0 && sample.Timestamp <= r.s.rates[n-1].Timestamp {
		return ports.ErrStaleRateSample
	}
	r.s.rates = append(r.s.rates, *sample)
	return nil
}

func (r *RateRepo) Latest(ctx context.Context) (*domain.RateSample, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if len(r.s.rates) == 0 {
		return nil, nil
	}
	s := r.s.rates[len(r.s.rates)-1]
	return &s, nil
}

func (r *RateRepo) At(ctx context.Context, ts int64) (*domain.RateSample, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	s, fallback, ok := r.s.rates.At(ts)
	if !ok || fallback {
		return nil, nil
	}
	return &s, nil
}

func (r *RateRepo) Earliest(ctx context.Context) (*domain.RateSample, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if len(r.s.rates) == 0 {
		return nil, nil
	}
	s := r.s.rates[0]
	return &s, nil
}

func (r *RateRepo) History(ctx context.Context) (domain.RateHistory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append(domain.RateHistory(nil), r.s.rates...), nil
}

// --- Charges and audit ---

// ChargesRepo implements ports.ChargesRepository.
type ChargesRepo struct{ s *Store }

// NewChargesRepo creates a ChargesRepo over store.
func NewChargesRepo(store *Store) *ChargesRepo { return &ChargesRepo{s: store} }

func (r *ChargesRepo) Get(ctx context.Context) (*domain.ChargeSettings, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c := r.s.charges
	return &c, nil
}

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct{ s *Store }

// NewAuditRepo creates an AuditRepo over store.
func NewAuditRepo(store *Store) *AuditRepo { return &AuditRepo{s: store} }

func (r *AuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *log
	r.s.audits = append(r.s.audits, &cp)
	return nil
}

// --- helpers ---

func matchesHistory(f domain.HistoryFilter, status string, created time.Time) bool {
	if f.Status != "" && f.Status != status {
		return false
	}
	return inRange(created, f.From, f.To)
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

func paginate[T any](items []T, f domain.HistoryFilter) []T {
	if f.Limit <= 0 {
		return items
	}
	start := f.Offset()
	if start >= len(items) {
		return nil
	}
	end := start + f.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
