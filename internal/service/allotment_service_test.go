package service

import (
	"context"
	"sync"
	"testing"

	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allotFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	f := newLedgerFixture(t, domain.DeductionRate, domain.DeductionRatio)
	f.register(t, testPhone)
	f.setRate(t, "6000")
	f.deposit(t, ports.DepositRequest{CashAmount: dec("5000")})
	return f
}

func TestAllotmentService_Allot_ReportsRemaining(t *testing.T) {
	f := allotFixture(t)

	res, err := f.allot.Allot(context.Background(), testPhone, dec("0.5"))
	require.NoError(t, err)

	assert.Equal(t, "0.5", res.Allotment.Grams.String())
	assert.Equal(t, "0.3333", res.RemainingGrams.StringFixed(4))
	assert.Equal(t, "1999.88", res.RemainingCash.StringFixed(2))
	assert.Equal(t, "0.8333", res.AvailableGrams.StringFixed(4))
	assert.Equal(t, "0.8333", res.GrossGrams.StringFixed(4))
	assert.Equal(t, "0.5", res.TotalAllotted.String())
}

func TestAllotmentService_Allot_OverRequestReportsExactAvailable(t *testing.T) {
	f := allotFixture(t)
	ctx := context.Background()

	_, err := f.allot.Allot(ctx, testPhone, dec("0.5"))
	require.NoError(t, err)

	_, err = f.allot.Allot(ctx, testPhone, dec("0.4"))
	appErr := assertAppError(t, err, "FUND_004")
	assert.Equal(t, "0.3333", appErr.Details["available_grams"])

	list, err := f.allot.ByCustomer(ctx, testPhone)
	require.NoError(t, err)
	assert.Len(t, list, 1, "rejected allotment must not be stored")
}

func TestAllotmentService_Allot_SnapsToAvailableWithinEpsilon(t *testing.T) {
	f := allotFixture(t)
	ctx := context.Background()

	_, err := f.allot.Allot(ctx, testPhone, dec("0.5"))
	require.NoError(t, err)

	res, err := f.allot.Allot(ctx, testPhone, dec("0.3334"))
	require.NoError(t, err)
	assert.Equal(t, "0.3333", res.Allotment.Grams.StringFixed(4))
	assert.True(t, res.RemainingGrams.IsZero())
	assert.True(t, res.RemainingCash.IsZero())

	_, err = f.allot.Allot(ctx, testPhone, dec("0.0001"))
	assertAppError(t, err, "FUND_004")
}

func TestAllotmentService_Allot_Validation(t *testing.T) {
	f := allotFixture(t)
	ctx := context.Background()

	_, err := f.allot.Allot(ctx, testPhone, dec("0"))
	assertAppError(t, err, "VAL_003")
	_, err = f.allot.Allot(ctx, testPhone, dec("-1"))
	assertAppError(t, err, "VAL_003")
	_, err = f.allot.Allot(ctx, "1111111111", dec("0.1"))
	assertAppError(t, err, "NF_002")
}

func TestAllotmentService_Allot_NeverOverAllotsUnderContention(t *testing.T) {
	f := allotFixture(t)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.allot.Allot(ctx, testPhone, dec("0.1")); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 8, success)
	sum, err := f.allot.allotments.SumGrams(ctx, testPhone)
	require.NoError(t, err)
	assert.Equal(t, "0.8", sum.String())
}

func TestAllotmentService_ByCustomer_AmountReduced(t *testing.T) {
	f := allotFixture(t)
	ctx := context.Background()

	_, err := f.allot.Allot(ctx, testPhone, dec("0.5"))
	require.NoError(t, err)

	list, err := f.allot.ByCustomer(ctx, testPhone)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "3000.12", list[0].AmountReduced.StringFixed(2))

	empty, err := f.allot.ByCustomer(ctx, "1231231234")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
