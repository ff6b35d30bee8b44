// Package cache provides an optional Redis-backed cache for scheduling
// results. Simulations are deterministic, so a workload plus a time quantum
// fully identifies its outcome and cached entries never go stale; the TTL
// only bounds memory use. Every operation fails open: a Redis error is a
// cache miss, never a request failure.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"schedsim/internal/core"
)

// opTimeout bounds each Redis round trip so a slow cache cannot stall
// request handling.
const opTimeout = 500 * time.Millisecond

// ResultCache stores serialized scheduling results keyed by workload.
type ResultCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New connects to Redis at addr. Entries expire after ttl.
func New(addr string, ttl time.Duration, logger *slog.Logger) *ResultCache {
	return &ResultCache{
		rdb:    redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
		logger: logger.With("component", "cache"),
	}
}

// Key derives a stable cache key from a workload and time quantum. Jobs are
// hashed in input order because process identity depends on input position.
func Key(jobs []core.Job, timeQuantum int) string {
	h := sha256.New()
	fmt.Fprintf(h, "q=%d", timeQuantum)
	for _, job := range jobs {
		fmt.Fprintf(h, ";%d,%d", job.ArrivalTime, job.BurstTime)
	}
	return fmt.Sprintf("schedsim:result:%x", h.Sum(nil))
}

// Get loads the entry for key into dest. It reports false on a miss or on
// any Redis or decoding error.
func (c *ResultCache) Get(ctx context.Context, key string, dest any) bool {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache get failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		c.logger.Warn("cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

// Set stores value under key. Failures are logged and otherwise ignored.
func (c *ResultCache) Set(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache encode failed", "key", key, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", "key", key, "error", err)
	}
}

// Ping verifies the Redis connection.
func (c *ResultCache) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

// Close releases the underlying Redis client.
func (c *ResultCache) Close() error {
	return c.rdb.Close()
}
