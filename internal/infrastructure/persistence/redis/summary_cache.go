// Package redis implements Redis-backed caching for the report queries.
// The cache is optional: the system runs fine without it, and every
// cache failure degrades to a fresh count instead of an error.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/passit-driving/school-hub/internal/domain/report"
	"github.com/passit-driving/school-hub/pkg/retry"
)

// summaryKey is where the serialized summary lives.
const summaryKey = "school:report:summary"

// DefaultSummaryTTL bounds how stale a cached summary may get.
const DefaultSummaryTTL = 5 * time.Minute

// SummaryCache caches the report summary in Redis with a TTL.
// It implements query.SummaryCache.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache connects to Redis at the given URL and verifies the
// connection. A non-positive ttl falls back to DefaultSummaryTTL.
func NewSummaryCache(ctx context.Context, url string, ttl time.Duration) (*SummaryCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: failed to parse URL: %w", err)
	}

	client := redis.NewClient(opts)
	ping := func(ctx context.Context) error { return client.Ping(ctx).Err() }
	if err := retry.Do(ctx, retry.DefaultConfig(), ping); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis: failed to ping: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultSummaryTTL
	}

	return &SummaryCache{client: client, ttl: ttl}, nil
}

// Get returns the cached summary, or ok=false on a miss.
func (c *SummaryCache) Get(ctx context.Context) (*report.Summary, bool, error) {
	data, err := c.client.Get(ctx, summaryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis: failed to read summary: %w", err)
	}

	var s report.Summary
	if err := json.Unmarshal(data, &s); err != nil {
		// A corrupt entry is a miss, not a failure - drop it.
		c.client.Del(ctx, summaryKey)
		return nil, false, nil
	}

	return &s, true, nil
}

// Set stores the summary until the TTL expires.
func (c *SummaryCache) Set(ctx context.Context, s *report.Summary) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("redis: failed to marshal summary: %w", err)
	}

	if err := c.client.Set(ctx, summaryKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis: failed to write summary: %w", err)
	}
	return nil
}

// Invalidate drops the cached summary immediately.
func (c *SummaryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, summaryKey).Err(); err != nil {
		return fmt.Errorf("redis: failed to invalidate summary: %w", err)
	}
	return nil
}

// Close releases the Redis client.
func (c *SummaryCache) Close() error {
	return c.client.Close()
}
