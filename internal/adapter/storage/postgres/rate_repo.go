package postgres

import (
	"context"
	"errors"
	"fmt"

	"gold-ledger/internal/core/domain"
	"gold-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// RateRepo implements ports.RateRepository over the append-only rate_samples table.
type RateRepo struct {
	pool Pool
}

// NewRateRepo creates a new RateRepo.
func NewRateRepo(pool Pool) *RateRepo {
	return &RateRepo{pool: pool}
}

const rateColumns = `ts, price_per_gram, created_at`

// Create appends a sample only when it is newer than every stored one.
func (r *RateRepo) Create(ctx context.Context, s *domain.RateSample) error {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO rate_samples (ts, price_per_gram, created_at)
		 SELECT $1, $2, $3
		 WHERE $1 > (SELECT COALESCE(MAX(ts), -1) FROM rate_samples)
		 ON CONFLICT (ts) DO NOTHING`,
		s.Timestamp, s.PricePerGram, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rate sample: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrStaleRateSample
	}
	return nil
}

// Latest returns the newest sample, or nil when none exist.
func (r *RateRepo) Latest(ctx context.Context) (*domain.RateSample, error) {
	return r.one(ctx, `SELECT `+rateColumns+` FROM rate_samples ORDER BY ts DESC LIMIT 1`)
}

// At returns the newest sample with ts not after the given time, or nil.
func (r *RateRepo) At(ctx context.Context, ts int64) (*domain.RateSample, error) {
	return r.one(ctx, `SELECT `+rateColumns+` FROM rate_samples WHERE ts <= $1 ORDER BY ts DESC LIMIT 1`, ts)
}

// Earliest returns the oldest sample, or nil.
func (r *RateRepo) Earliest(ctx context.Context) (*domain.RateSample, error) {
	return r.one(ctx, `SELECT `+rateColumns+` FROM rate_samples ORDER BY ts ASC LIMIT 1`)
}

// History loads every sample in ascending order.
func (r *RateRepo) History(ctx context.Context) (domain.RateHistory, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+rateColumns+` FROM rate_samples ORDER BY ts ASC`)
	if err != nil {
		return nil, fmt.Errorf("list rate samples: %w", err)
	}
	defer rows.Close()

	var history domain.RateHistory
	for rows.Next() {
		var s domain.RateSample
		if err := rows.Scan(&s.Timestamp, &s.PricePerGram, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan rate sample row: %w", err)
		}
		history = append(history, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rate sample rows: %w", err)
	}
	return history, nil
}

func (r *RateRepo) one(ctx context.Context, query string, args ...any) (*domain.RateSample, error) {
	s := &domain.RateSample{}
	err := r.pool.QueryRow(ctx, query, args...).Scan(&s.Timestamp, &s.PricePerGram, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rate sample: %w", err)
	}
	return s, nil
}
