package redis

import (
	"context"
	"time"
)

const rateLimitArea = "rate_limit"

func RateLimitKey(scope string) string {
	return key(rateLimitArea, scope)
}

// IncrWithTTL bumps the window counter for scope. The expiry is set on the
// first hit, and again whenever the key is found without one.
func (c *Client) IncrWithTTL(ctx context.Context, scope string, ttl time.Duration) (int64, error) {
	if c == nil || c.cmd == nil {
		return 0, errNotConnected
	}
	k := RateLimitKey(scope)
	count, err := c.cmd.Incr(ctx, k).Result()
	if err != nil || ttl <= 0 {
		return count, err
	}
	if count > 1 {
		remaining, ttlErr := c.cmd.TTL(ctx, k).Result()
		if ttlErr != nil || remaining >= 0 {
			return count, ttlErr
		}
	}
	return count, c.cmd.Expire(ctx, k, ttl).Err()
}

// Allow reports whether another request fits in a fixed window of limit hits.
func (c *Client) Allow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error) {
	count, err := c.IncrWithTTL(ctx, scope, window)
	if err != nil {
		return false, count, err
	}
	return count <= limit, count, nil
}
