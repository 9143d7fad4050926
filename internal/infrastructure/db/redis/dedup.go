package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// DedupChecker provides check-in idempotency backed by Redis. A terminal
// that retries a submission within the TTL window produces the same key
// and is skipped instead of inserting a second record.
// Key format: checkin:<user_id>:<schedule_id>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact check-in has already been processed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, userID string, scheduleID int64, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(userID, scheduleID, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this check-in has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, userID string, scheduleID int64, ts time.Time) error {
	return d.client.Set(ctx, d.key(userID, scheduleID, ts), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(userID string, scheduleID int64, ts time.Time) string {
	return fmt.Sprintf("checkin:%s:%d:%d", userID, scheduleID, ts.Unix())
}
