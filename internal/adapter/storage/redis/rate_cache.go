package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gold-ledger/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// RateCache implements ports.RateCache. It holds the latest gold rate
// sample as JSON under a single key.
type RateCache struct {
	client *goredis.Client
	key    string
	ttl    time.Duration
}

// NewRateCache creates a Redis-backed rate cache. A zero ttl keeps the
// value until it is overwritten.
func NewRateCache(client *goredis.Client, ttl time.Duration) *RateCache {
	return &RateCache{
		client: client,
		key:    "rate:current",
		ttl:    ttl,
	}
}

// Get returns the cached sample, or nil, nil on a miss.
func (c *RateCache) Get(ctx context.Context) (*domain.RateSample, error) {
	val, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis rate get: %w", err)
	}

	var sample domain.RateSample
	if err := json.Unmarshal(val, &sample); err != nil {
		return nil, fmt.Errorf("decode cached rate: %w", err)
	}
	return &sample, nil
}

// Set stores the sample unless the cache already holds a newer one.
func (c *RateCache) Set(ctx context.Context, sample *domain.RateSample) error {
	cur, err := c.Get(ctx)
	if err == nil && cur != nil && cur.Timestamp > sample.Timestamp {
		return nil
	}

	val, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("encode rate: %w", err)
	}
	if err := c.client.Set(ctx, c.key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis rate set: %w", err)
	}
	return nil
}
