package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/invitation-backend/pkg/config"
)

func TestAllowFixedWindow(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCommands()
	client := &Client{cmd: fake}

	for i, want := range []bool{true, true, false} {
		allowed, count, err := client.Allow(ctx, "ip:concepts:1.2.3.4", 2, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, allowed, "call %d", i+1)
		assert.EqualValues(t, i+1, count)
	}
	assert.Len(t, fake.expireCalls, 1, "expiry set only on first hit")
	assert.Equal(t, "inv:rate_limit:ip:concepts:1.2.3.4", fake.expireCalls[0])
}

func TestIncrWithTTLRepairsMissingExpiry(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCommands()
	client := &Client{cmd: fake}
	k := RateLimitKey("email:inquiry:abc")
	fake.incr[k] = 4

	count, err := client.IncrWithTTL(ctx, "email:inquiry:abc", time.Minute)
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)
	assert.Equal(t, []string{k}, fake.expireCalls)
}

func TestRecordRoundTripFirstWriterWins(t *testing.T) {
	ctx := context.Background()
	client := &Client{cmd: newFakeCommands()}

	missing, err := client.LoadRecord(ctx, "ip|POST|/api/v1/orders", "key-1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	first := Record{Status: 202, ContentType: "application/json", Body: []byte(`{"ok":true}`), RequestHash: "h1"}
	ok, err := client.SaveRecord(ctx, "ip|POST|/api/v1/orders", "key-1", first, time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.SaveRecord(ctx, "ip|POST|/api/v1/orders", "key-1", Record{Status: 400}, time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := client.LoadRecord(ctx, "ip|POST|/api/v1/orders", "key-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first, *got)

	require.NoError(t, client.ForgetRecord(ctx, "ip|POST|/api/v1/orders", "key-1"))
	got, err = client.LoadRecord(ctx, "ip|POST|/api/v1/orders", "key-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUnconnectedClient(t *testing.T) {
	client := &Client{}
	assert.Error(t, client.Ping(context.Background()))
	assert.NoError(t, client.Close())
	_, err := client.IncrWithTTL(context.Background(), "x", time.Second)
	assert.Error(t, err)
}

func TestOptionsFromConfig(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://localhost:6380/2", PoolSize: 7, DialTimeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, "localhost:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 7, opts.PoolSize)
	assert.Equal(t, time.Second, opts.DialTimeout)

	opts, err = optionsFromConfig(config.RedisConfig{Address: "cache:6379", DB: 3})
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, 3, opts.DB)

	_, err = optionsFromConfig(config.RedisConfig{})
	assert.Error(t, err)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "inv:idempotency:scope:id", IdempotencyKey("scope", "id"))
	assert.Equal(t, "inv:idempotency:orders", IdempotencyKey("orders", " "))
	assert.Equal(t, "inv:rate_limit:scope", RateLimitKey("scope"))
}

type fakeCommands struct {
	data        map[string]string
	incr        map[string]int64
	expiring    map[string]bool
	expireCalls []string
}

func newFakeCommands() *fakeCommands {
	return &fakeCommands{
		data:     make(map[string]string),
		incr:     make(map[string]int64),
		expiring: make(map[string]bool),
	}
}

func (f *fakeCommands) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (f *fakeCommands) Get(_ context.Context, k string) *redis.StringCmd {
	v, ok := f.data[k]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeCommands) SetNX(_ context.Context, k string, value any, _ time.Duration) *redis.BoolCmd {
	if _, exists := f.data[k]; exists {
		return redis.NewBoolResult(false, nil)
	}
	switch v := value.(type) {
	case []byte:
		f.data[k] = string(v)
	default:
		f.data[k] = fmt.Sprint(v)
	}
	return redis.NewBoolResult(true, nil)
}

func (f *fakeCommands) Incr(_ context.Context, k string) *redis.IntCmd {
	f.incr[k]++
	return redis.NewIntResult(f.incr[k], nil)
}

func (f *fakeCommands) TTL(_ context.Context, k string) *redis.DurationCmd {
	if f.expiring[k] {
		return redis.NewDurationResult(time.Minute, nil)
	}
	return redis.NewDurationResult(-1, nil)
}

func (f *fakeCommands) Expire(_ context.Context, k string, _ time.Duration) *redis.BoolCmd {
	f.expiring[k] = true
	f.expireCalls = append(f.expireCalls, k)
	return redis.NewBoolResult(true, nil)
}

func (f *fakeCommands) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(f.data, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}
