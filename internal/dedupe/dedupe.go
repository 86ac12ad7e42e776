// Package dedupe suppresses redelivered Slack events. Slack retries
// webhook deliveries on slow responses, so the same event_id can
// arrive more than once; replaying it would double-write log rows.
// The cache is Redis-backed and TTL-bounded, never an unbounded
// in-process set.
package dedupe

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "switchlog:event:"

// Cache is a bounded seen-set for event IDs.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a cache on an existing Redis client. Entries expire
// after ttl; Slack only retries within minutes, so a day is generous.
func New(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Cache{client: client, ttl: ttl}
}

// Seen records eventID and reports whether it had been recorded
// before. The check-and-set is atomic (SETNX), so concurrent
// deliveries of the same event race safely.
func (c *Cache) Seen(ctx context.Context, eventID string) (bool, error) {
	if eventID == "" {
		// Events without an ID can't be deduplicated; let them through.
		return false, nil
	}
	set, err := c.client.SetNX(ctx, keyPrefix+eventID, 1, c.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("dedupe check for event %s: %w", eventID, err)
	}
	return !set, nil
}

// Forget removes a recorded event ID. Used when enqueueing the
// event's job fails after the ID was recorded, so a Slack retry is not
// silently dropped.
func (c *Cache) Forget(ctx context.Context, eventID string) error {
	if eventID == "" {
		return nil
	}
	return c.client.Del(ctx, keyPrefix+eventID).Err()
}

// Ping checks the backing Redis connection.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
