package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares window counters between instances through redis.
type RedisStore struct {
	Client *redis.Client
	Prefix string
}

func NewRedisStore(addr string, password string) *RedisStore {
	return &RedisStore{
		Client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
			PoolSize: 10,
		}),
		Prefix: "rate_limit",
	}
}

func (store *RedisStore) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	redisKey := fmt.Sprintf("%s:%s", store.Prefix, key)

	// SETNX opens the window with its expiry exactly once, INCR never touches the TTL.
	pipe := store.Client.TxPipeline()
	pipe.SetNX(ctx, redisKey, 0, window)
	incrCmd := pipe.Incr(ctx, redisKey)
	ttlCmd := pipe.PTTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}

	ttl := ttlCmd.Val()
	if ttl <= 0 {
		// key lost its expiry somehow; put it back so the counter cannot live forever
		store.Client.PExpire(ctx, redisKey, window)
		ttl = window
	}
	return incrCmd.Val(), time.Now().Add(ttl), nil
}

func (store *RedisStore) Close() error {
	return store.Client.Close()
}
