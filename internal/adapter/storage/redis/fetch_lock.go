package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// FetchLock elects a single replica to run a scheduled job per window
// using SET NX with a TTL.
type FetchLock struct {
	client *goredis.Client
	prefix string
}

// NewFetchLock creates a Redis-backed job lock.
func NewFetchLock(client *goredis.Client) *FetchLock {
	return &FetchLock{
		client: client,
		prefix: "joblock:",
	}
}

// TryAcquire returns true if the caller now holds the lock for job.
// The lock is never released explicitly; it expires after ttl.
func (l *FetchLock) TryAcquire(ctx context.Context, job string, ttl time.Duration) (bool, error) {
	result, err := l.client.SetArgs(ctx, l.prefix+job, time.Now().Unix(), goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis job lock: %w", err)
	}
	return result == "OK", nil
}
