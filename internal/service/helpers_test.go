package service

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"gold-ledger/internal/adapter/storage/memory"
	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"
	"gold-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPhone = "9876543210"

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func assertAppError(t *testing.T, err error, expectedCode string) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
	return appErr
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

// testClock hands out strictly increasing times one minute apart.
type testClock struct {
	mu  sync.Mutex
	cur time.Time
}

func newTestClock(start time.Time) *testClock {
	return &testClock{cur: start}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cur = c.cur.Add(time.Minute)
	return c.cur
}

// ledgerFixture wires every service over one in-memory store.
type ledgerFixture struct {
	store   *memory.Store
	rates   *RateOracleImpl
	wallet  *WalletServiceImpl
	allot   *allotmentService
	reports *reportService
	clock   *testClock
}

var fixtureStart = time.Date(2024, 3, 1, 4, 30, 0, 0, time.UTC)

func newLedgerFixture(t *testing.T, sellModel, coinModel domain.DeductionModel) *ledgerFixture {
	t.Helper()
	store := memory.NewStore(domain.ChargeSettings{
		TaxPercent:     dec("3"),
		DeliveryCharge: decimal.Zero,
		GatewayCharge:  decimal.Zero,
		OtherCharges:   decimal.Zero,
	})
	txr := memory.NewTransactor(store)
	log := newTestLogger()
	clock := newTestClock(fixtureStart)

	rates := NewRateOracle(memory.NewRateRepo(store), nil, nil, log)
	rates.now = clock.Now

	wallet := NewWalletService(WalletRepos{
		Customers: memory.NewCustomerRepo(store),
		Balances:  memory.NewBalanceRepo(store),
		Entries:   memory.NewWalletEntryRepo(store),
		Sells:     memory.NewSellEntryRepo(store),
		Coins:     memory.NewCoinPurchaseRepo(store),
		Charges:   memory.NewChargesRepo(store),
	}, rates, txr, sellModel, coinModel, log)
	wallet.now = clock.Now

	allot := NewAllotmentService(
		memory.NewCustomerRepo(store),
		memory.NewBalanceRepo(store),
		memory.NewWalletEntryRepo(store),
		memory.NewAllotmentRepo(store),
		txr, log,
	).(*allotmentService)
	allot.now = clock.Now

	reports := NewReportService(ReportRepos{
		Customers: memory.NewCustomerRepo(store),
		Balances:  memory.NewBalanceRepo(store),
		Entries:   memory.NewWalletEntryRepo(store),
		Sells:     memory.NewSellEntryRepo(store),
		Coins:     memory.NewCoinPurchaseRepo(store),
	}, rates, ReportOptions{SellModel: sellModel, CoinModel: coinModel}, log).(*reportService)
	reports.now = clock.Now

	return &ledgerFixture{store: store, rates: rates, wallet: wallet, allot: allot, reports: reports, clock: clock}
}

// setRate records a sample stamped with the next fixture clock tick, so it
// applies to every settlement that follows.
func (f *ledgerFixture) setRate(t *testing.T, price string) {
	t.Helper()
	_, err := f.rates.RecordRate(context.Background(), dec(price), f.clock.Now().Unix())
	require.NoError(t, err)
}

func (f *ledgerFixture) register(t *testing.T, phone string) {
	t.Helper()
	_, err := f.wallet.RegisterCustomer(context.Background(), phone, "Test Customer")
	require.NoError(t, err)
}

// deposit records and confirms a deposit.
func (f *ledgerFixture) deposit(t *testing.T, req ports.DepositRequest) *domain.WalletEntry {
	t.Helper()
	ctx := context.Background()
	if req.CustomerID == "" {
		req.CustomerID = testPhone
	}
	entry, err := f.wallet.RecordDeposit(ctx, req)
	require.NoError(t, err)
	confirmed, err := f.wallet.ConfirmDeposit(ctx, entry.ID)
	require.NoError(t, err)
	return confirmed
}

func (f *ledgerFixture) balance(t *testing.T) *domain.Balance {
	t.Helper()
	b, err := f.wallet.LatestBalance(context.Background(), testPhone)
	require.NoError(t, err)
	return b
}
