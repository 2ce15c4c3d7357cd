package ratelimit

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type windowCounter struct {
	count   int64
	resetAt time.Time
}

// MemoryStore keeps window counters in process memory. Expired windows are evicted by
// go-cache's janitor.
type MemoryStore struct {
	mu    sync.Mutex
	cache *gocache.Cache
	now   func() time.Time
}

func NewMemoryStore(window time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(window, 2*window),
		now:   time.Now,
	}
}

func (store *MemoryStore) Increment(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := store.now()
	var counter *windowCounter
	if item, found := store.cache.Get(key); found {
		counter = item.(*windowCounter)
	}
	if counter == nil || !now.Before(counter.resetAt) {
		counter = &windowCounter{resetAt: now.Add(window)}
		store.cache.Set(key, counter, window)
	}
	counter.count++
	return counter.count, counter.resetAt, nil
}
