package service

import (
	"context"
	"errors"
	"time"

	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"
	"gold-ledger/pkg/apperror"
	"gold-ledger/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var errFeedDisabled = errors.New("price feed disabled")

// RateOracleImpl implements ports.RateOracle. Samples are stored in the
// rate repository; the cache and feed are optional.
type RateOracleImpl struct {
	repo  ports.RateRepository
	cache ports.RateCache
	feed  ports.PriceFeed
	log   zerolog.Logger
	now   func() time.Time
}

// NewRateOracle creates a rate oracle. cache and feed may be nil.
func NewRateOracle(repo ports.RateRepository, cache ports.RateCache, feed ports.PriceFeed, log zerolog.Logger) *RateOracleImpl {
	return &RateOracleImpl{
		repo:  repo,
		cache: cache,
		feed:  feed,
		log:   logger.Component(log, "rate_oracle"),
		now:   utcNow,
	}
}

// RecordRate appends a sample. ts of zero means now. The timestamp must be
// strictly newer than the latest stored sample.
func (o *RateOracleImpl) RecordRate(ctx context.Context, pricePerGram decimal.Decimal, ts int64) (*domain.RateSample, error) {
	if !pricePerGram.IsPositive() {
		return nil, apperror.Validation("price_per_gram must be positive")
	}
	now := o.now()
	if ts == 0 {
		ts = now.Unix()
	}
	if ts < 0 {
		return nil, apperror.Validation("timestamp must be positive")
	}

	latest, err := o.repo.Latest(ctx)
	if err != nil {
		return nil, storeErr("latest rate", err)
	}
	if latest != nil && ts <= latest.Timestamp {
		return nil, apperror.ErrStaleSample().
			WithDetail("latest_timestamp", latest.Timestamp).
			WithDetail("timestamp", ts)
	}

	sample := &domain.RateSample{Timestamp: ts, PricePerGram: pricePerGram, CreatedAt: now}
	if err := o.repo.Create(ctx, sample); err != nil {
		if errors.Is(err, ports.ErrStaleRateSample) {
			// Another writer stored a sample at or after ts since Latest.
			return nil, apperror.ErrStaleSample().WithDetail("timestamp", ts)
		}
		return nil, storeErr("create rate sample", err)
	}

	if o.cache != nil {
		if err := o.cache.Set(ctx, sample); err != nil {
			o.log.Warn().Err(err).Int64("ts", ts).Msg("failed to cache rate sample")
		}
	}

	o.log.Info().
		Int64("ts", ts).
		Str("price_per_gram", pricePerGram.String()).
		Msg("rate sample recorded")

	return sample, nil
}

// RefreshRate pulls the spot price from the feed and records it.
func (o *RateOracleImpl) RefreshRate(ctx context.Context) (*domain.RateSample, error) {
	if o.feed == nil {
		return nil, apperror.ErrStaleRate(errFeedDisabled)
	}
	quote, err := o.feed.Fetch(ctx)
	if err != nil {
		return nil, apperror.ErrStaleRate(err)
	}
	return o.RecordRate(ctx, quote.PricePerGram, quote.Timestamp)
}

// CurrentRate returns the newest sample, preferring the cache.
func (o *RateOracleImpl) CurrentRate(ctx context.Context) (*domain.RateSample, error) {
	if o.cache != nil {
		cached, err := o.cache.Get(ctx)
		if err != nil {
			o.log.Warn().Err(err).Msg("rate cache read failed, falling through to store")
		}
		if cached != nil {
			return cached, nil
		}
	}

	latest, err := o.repo.Latest(ctx)
	if err != nil {
		return nil, storeErr("latest rate", err)
	}
	if latest == nil {
		return nil, apperror.ErrRateUnavailable()
	}

	if o.cache != nil {
		if err := o.cache.Set(ctx, latest); err != nil {
			o.log.Warn().Err(err).Msg("failed to refill rate cache")
		}
	}
	return latest, nil
}

// RateAt returns the sample in effect at ts, falling back to the earliest
// sample when ts predates the history.
func (o *RateOracleImpl) RateAt(ctx context.Context, ts int64) (*domain.RateSample, error) {
	sample, err := o.repo.At(ctx, ts)
	if err != nil {
		return nil, storeErr("rate at", err)
	}
	if sample != nil {
		return sample, nil
	}

	earliest, err := o.repo.Earliest(ctx)
	if err != nil {
		return nil, storeErr("earliest rate", err)
	}
	if earliest == nil {
		return nil, apperror.ErrRateUnavailable()
	}
	o.log.Warn().
		Int64("ts", ts).
		Int64("fallback_ts", earliest.Timestamp).
		Msg("no rate sample at or before timestamp, using earliest")
	return earliest, nil
}

// History returns every sample in ascending order.
func (o *RateOracleImpl) History(ctx context.Context) (domain.RateHistory, error) {
	h, err := o.repo.History(ctx)
	if err != nil {
		return nil, storeErr("rate history", err)
	}
	return h, nil
}

// ConvertGrams values grams at the current rate.
func (o *RateOracleImpl) ConvertGrams(ctx context.Context, grams decimal.Decimal) (*ports.GramConversion, error) {
	if !grams.IsPositive() {
		return nil, apperror.ErrInvalidGrams()
	}
	rate, err := o.CurrentRate(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.GramConversion{
		Grams:  grams,
		Rate:   rate.PricePerGram,
		Amount: domain.RoundMoney(grams.Mul(rate.PricePerGram)),
	}, nil
}
