package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyArea = "idempotency"

// Record is a captured response kept for replay under an Idempotency-Key.
type Record struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type,omitempty"`
	Body        []byte `json:"body"`
	RequestHash string `json:"request_hash"`
}

// IdempotencyStore loads and saves replay records. Load returns nil, nil when
// nothing is stored for the key.
type IdempotencyStore interface {
	LoadRecord(ctx context.Context, scope, idemKey string) (*Record, error)
	SaveRecord(ctx context.Context, scope, idemKey string, rec Record, ttl time.Duration) (bool, error)
}

func IdempotencyKey(scope, idemKey string) string {
	return key(idempotencyArea, scope, idemKey)
}

func (c *Client) LoadRecord(ctx context.Context, scope, idemKey string) (*Record, error) {
	if c == nil || c.cmd == nil {
		return nil, errNotConnected
	}
	raw, err := c.cmd.Get(ctx, IdempotencyKey(scope, idemKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode idempotency record: %w", err)
	}
	return &rec, nil
}

// SaveRecord stores rec only if the key is free; the first writer wins.
func (c *Client) SaveRecord(ctx context.Context, scope, idemKey string, rec Record, ttl time.Duration) (bool, error) {
	if c == nil || c.cmd == nil {
		return false, errNotConnected
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return false, fmt.Errorf("encode idempotency record: %w", err)
	}
	return c.cmd.SetNX(ctx, IdempotencyKey(scope, idemKey), payload, ttl).Result()
}

// ForgetRecord drops a stored response so the key can be reused.
func (c *Client) ForgetRecord(ctx context.Context, scope, idemKey string) error {
	if c == nil || c.cmd == nil {
		return errNotConnected
	}
	return c.cmd.Del(ctx, IdempotencyKey(scope, idemKey)).Err()
}
