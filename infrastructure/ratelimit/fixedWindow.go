package ratelimit

import (
	"context"
	"time"

	"ohppos.io/infrastructure/logger"
)

const DEFAULT_WINDOW = time.Minute

type Decision struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   time.Time
}

// FixedWindowLimiter allows at most Limit hits per key inside each window.
type FixedWindowLimiter struct {
	store  CounterStore
	limit  int64
	window time.Duration
	now    func() time.Time
}

func NewFixedWindowLimiter(store CounterStore, limit int, window time.Duration) *FixedWindowLimiter {
	if window <= 0 {
		window = DEFAULT_WINDOW
	}
	return &FixedWindowLimiter{
		store:  store,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}
}

// Take counts one hit for key. A store failure lets the request through.
func (l *FixedWindowLimiter) Take(ctx context.Context, key string) Decision {
	count, resetAt, err := l.store.Increment(ctx, key, l.window)
	if err != nil {
		logger.Error("rate limit store unavailable, allowing request", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "client",
			Data: key,
		})
		return Decision{
			Allowed:   true,
			Limit:     l.limit,
			Remaining: l.limit,
			ResetAt:   l.now().Add(l.window),
		}
	}
	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   count <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}
}

// RetryAfter is the whole number of seconds until the window resets, at least 1.
func (d Decision) RetryAfter(now time.Time) int64 {
	seconds := int64(d.ResetAt.Sub(now).Round(time.Second) / time.Second)
	if seconds < 1 {
		return 1
	}
	return seconds
}
