package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) Increment(context.Context, string, time.Duration) (int64, time.Time, error) {
	return 0, time.Time{}, errors.New("connection refused")
}

func TestFixedWindowLimiterAllowsExactlyLimit(t *testing.T) {
	limiter := NewFixedWindowLimiter(NewMemoryStore(time.Minute), 5, time.Minute)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		decision := limiter.Take(ctx, "203.0.113.7")
		require.True(t, decision.Allowed, "hit %d should pass", i)
		assert.Equal(t, int64(5-i), decision.Remaining)
	}

	decision := limiter.Take(ctx, "203.0.113.7")
	assert.False(t, decision.Allowed)
	assert.Equal(t, int64(0), decision.Remaining)
	assert.Equal(t, int64(5), decision.Limit)

	other := limiter.Take(ctx, "198.51.100.1")
	assert.True(t, other.Allowed, "buckets are per key")
}

func TestMemoryStoreOpensNewWindowAfterReset(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	count, resetAt, err := store.Increment(context.Background(), "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, now.Add(time.Minute), resetAt)

	now = now.Add(30 * time.Second)
	count, _, _ = store.Increment(context.Background(), "k", time.Minute)
	assert.Equal(t, int64(2), count)

	now = now.Add(31 * time.Second)
	count, resetAt, _ = store.Increment(context.Background(), "k", time.Minute)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, now.Add(time.Minute), resetAt)
}

func TestFixedWindowLimiterFailsOpen(t *testing.T) {
	limiter := NewFixedWindowLimiter(failingStore{}, 1, time.Minute)
	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Take(context.Background(), "k").Allowed)
	}
}

func TestRedisStore(t *testing.T) {
	server := miniredis.RunT(t)
	store := NewRedisStore(server.Addr(), "")
	t.Cleanup(func() { _ = store.Close() })

	limiter := NewFixedWindowLimiter(store, 2, time.Minute)
	ctx := context.Background()
	assert.True(t, limiter.Take(ctx, "10.0.0.1").Allowed)
	assert.True(t, limiter.Take(ctx, "10.0.0.1").Allowed)
	assert.False(t, limiter.Take(ctx, "10.0.0.1").Allowed)

	ttl := server.TTL("rate_limit:10.0.0.1")
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	server.FastForward(time.Minute + time.Second)
	assert.True(t, limiter.Take(ctx, "10.0.0.1").Allowed)
}

func TestDecisionRetryAfter(t *testing.T) {
	now := time.Now()
	assert.Equal(t, int64(42), Decision{ResetAt: now.Add(42 * time.Second)}.RetryAfter(now))
	assert.Equal(t, int64(1), Decision{ResetAt: now.Add(-time.Second)}.RetryAfter(now))
}
