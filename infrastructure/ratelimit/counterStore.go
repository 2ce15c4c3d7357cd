package ratelimit

import (
	"context"
	"time"
)

// CounterStore counts hits per key inside fixed windows.
type CounterStore interface {
	// Increment records one hit for key and returns the hit count of the current
	// window and the moment that window closes. A new window opens on the first hit
	// after the previous one expired.
	Increment(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)
}
