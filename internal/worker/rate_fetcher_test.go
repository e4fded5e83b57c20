package worker

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubLock struct {
	acquired bool
	err      error
	calls    int
}

func (l *stubLock) TryAcquire(_ context.Context, job string, _ time.Duration) (bool, error) {
	l.calls++
	return l.acquired, l.err
}

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func sample() *domain.RateSample {
	return &domain.RateSample{Timestamp: 1_700_000_000, PricePerGram: decimal.NewFromInt(6000)}
}

func TestRateFetcher_RunOnce_RecordsQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mocks.NewMockRateOracle(ctrl)
	oracle.EXPECT().RefreshRate(gomock.Any()).Return(sample(), nil)

	f := NewRateFetcher(oracle, nil, "@every 1h", time.Second, newTestLogger())
	assert.NoError(t, f.RunOnce(context.Background()))
}

func TestRateFetcher_RunOnce_ReturnsFeedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mocks.NewMockRateOracle(ctrl)
	oracle.EXPECT().RefreshRate(gomock.Any()).Return(nil, errors.New("feed down"))

	f := NewRateFetcher(oracle, nil, "@every 1h", time.Second, newTestLogger())
	assert.EqualError(t, f.RunOnce(context.Background()), "feed down")
}

func TestRateFetcher_RunOnce_SkipsWhenLockHeldElsewhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mocks.NewMockRateOracle(ctrl)
	lock := &stubLock{acquired: false}

	f := NewRateFetcher(oracle, lock, "@every 1h", time.Second, newTestLogger())
	assert.NoError(t, f.RunOnce(context.Background()))
	assert.Equal(t, 1, lock.calls)
}

func TestRateFetcher_RunOnce_LockErrorStillFetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oracle := mocks.NewMockRateOracle(ctrl)
	oracle.EXPECT().RefreshRate(gomock.Any()).Return(sample(), nil)
	lock := &stubLock{err: errors.New("redis down")}

	f := NewRateFetcher(oracle, lock, "@every 1h", time.Second, newTestLogger())
	assert.NoError(t, f.RunOnce(context.Background()))
}

func TestRateFetcher_Start_InvalidSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := NewRateFetcher(mocks.NewMockRateOracle(ctrl), nil, "not a schedule", time.Second, newTestLogger())
	assert.Error(t, f.Start())
}

func TestRateFetcher_Start_FetchesImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetched := make(chan struct{}, 1)
	oracle := mocks.NewMockRateOracle(ctrl)
	oracle.EXPECT().RefreshRate(gomock.Any()).DoAndReturn(func(context.Context) (*domain.RateSample, error) {
		fetched <- struct{}{}
		return sample(), nil
	})

	f := NewRateFetcher(oracle, nil, "@every 1h", time.Second, newTestLogger())
	require.NoError(t, f.Start())

	select {
	case <-fetched:
	case <-time.After(2 * time.Second):
		t.Fatal("no fetch on start")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	f.Stop(ctx)
}
