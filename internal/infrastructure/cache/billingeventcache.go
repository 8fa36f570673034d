package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// BillingEventCache remembers which provider event IDs have already been
// processed. Stripe retries webhook deliveries until it sees a 2xx, so the
// same event can arrive more than once.
type BillingEventCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewBillingEventCache creates a cache keyed by event ID. The TTL only needs
// to outlive the provider's retry window (Stripe retries for up to 3 days).
func NewBillingEventCache(client *redis.Client, ttl time.Duration) *BillingEventCache {
	return &BillingEventCache{
		client: client,
		prefix: "billing:event:",
		ttl:    ttl,
	}
}

// MarkProcessed records the event ID and reports whether this is the first
// time it has been seen. SETNX makes the check-and-set atomic, so concurrent
// deliveries of the same event resolve to exactly one first-seen.
func (c *BillingEventCache) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	if eventID == "" {
		return false, errors.New("event id cannot be empty")
	}

	firstSeen, err := c.client.SetNX(ctx, c.prefix+eventID, 1, c.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to record billing event: %w", err)
	}
	return firstSeen, nil
}

// Forget drops the processed marker so a replayed event is handled again.
// Used when processing failed and we want the provider retry to go through.
func (c *BillingEventCache) Forget(ctx context.Context, eventID string) error {
	if eventID == "" {
		return errors.New("event id cannot be empty")
	}
	if err := c.client.Del(ctx, c.prefix+eventID).Err(); err != nil {
		return fmt.Errorf("failed to forget billing event: %w", err)
	}
	return nil
}
