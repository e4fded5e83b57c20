// Package worker runs the background jobs of the ledger service.
package worker

import (
	"context"
	"fmt"
	"time"

	"gold-ledger/internal/core/ports"
	"gold-ledger/pkg/logger"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const rateFetchJob = "rate-fetch"

// JobLock elects one replica per scheduled run. Implemented by the Redis
// fetch lock.
type JobLock interface {
	TryAcquire(ctx context.Context, job string, ttl time.Duration) (bool, error)
}

// RateFetcher polls the price feed on a cron schedule and records each
// quote through the rate oracle.
type RateFetcher struct {
	oracle   ports.RateOracle
	lock     JobLock
	schedule string
	timeout  time.Duration
	lockTTL  time.Duration
	cron     *cron.Cron
	log      zerolog.Logger
}

// NewRateFetcher creates a fetcher. lock may be nil for a single replica.
func NewRateFetcher(oracle ports.RateOracle, lock JobLock, schedule string, timeout time.Duration, log zerolog.Logger) *RateFetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	log = logger.Component(log, "rate_fetcher")
	return &RateFetcher{
		oracle:   oracle,
		lock:     lock,
		schedule: schedule,
		timeout:  timeout,
		lockTTL:  time.Minute,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.Recover(cronLogger{log}), cron.SkipIfStillRunning(cronLogger{log})),
			cron.WithLogger(cronLogger{log}),
		),
		log: log,
	}
}

// Start registers the schedule, runs one fetch immediately and starts the
// scheduler in its own goroutine.
func (f *RateFetcher) Start() error {
	if _, err := f.cron.AddFunc(f.schedule, f.tick); err != nil {
		return fmt.Errorf("invalid rate fetch schedule %q: %w", f.schedule, err)
	}
	go f.tick()
	f.cron.Start()
	f.log.Info().Str("schedule", f.schedule).Msg("rate fetcher started")
	return nil
}

// Stop halts the scheduler and waits for a running fetch to finish or ctx
// to expire.
func (f *RateFetcher) Stop(ctx context.Context) {
	done := f.cron.Stop()
	select {
	case <-done.Done():
		f.log.Info().Msg("rate fetcher stopped")
	case <-ctx.Done():
		f.log.Warn().Msg("rate fetcher stop timed out")
	}
}

func (f *RateFetcher) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()
	_ = f.RunOnce(ctx)
}

// RunOnce fetches and records one quote. Failures are logged; the next
// tick retries.
func (f *RateFetcher) RunOnce(ctx context.Context) error {
	if f.lock != nil {
		ok, err := f.lock.TryAcquire(ctx, rateFetchJob, f.lockTTL)
		if err != nil {
			f.log.Warn().Err(err).Msg("job lock unavailable, fetching anyway")
		} else if !ok {
			f.log.Debug().Msg("another replica holds the rate fetch lock")
			return nil
		}
	}

	start := time.Now()
	sample, err := f.oracle.RefreshRate(ctx)
	if err != nil {
		f.log.Error().Err(err).Dur("duration", time.Since(start)).Msg("rate fetch failed")
		return err
	}

	f.log.Info().
		Int64("ts", sample.Timestamp).
		Str("price_per_gram", sample.PricePerGram.String()).
		Dur("duration", time.Since(start)).
		Msg("gold rate updated")
	return nil
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
