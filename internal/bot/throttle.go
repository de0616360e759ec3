package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Throttle is the per-identity cooldown gate: at most one processed
// update per identity per cooldown window.
type Throttle interface {
	// Allow reports whether the update may be processed. A successful
	// call arms the cooldown marker for the identity.
	Allow(ctx context.Context, userID int64) (bool, error)
}

func throttleKey(userID int64) string {
	return fmt.Sprintf("throttling:%d:status", userID)
}

// RedisThrottle stores cooldown markers in Redis with a fixed expiry.
type RedisThrottle struct {
	client   *redis.Client
	cooldown time.Duration
}

func NewRedisThrottle(client *redis.Client, cooldown time.Duration) *RedisThrottle {
	return &RedisThrottle{client: client, cooldown: cooldown}
}

func (t *RedisThrottle) Allow(ctx context.Context, userID int64) (bool, error) {
	// SETNX is the whole gate: first writer in the window wins.
	return t.client.SetNX(ctx, throttleKey(userID), userID, t.cooldown).Result()
}

// MemoryThrottle is an in-process Throttle for tests and redis-less runs.
type MemoryThrottle struct {
	cache    *cache.Cache
	cooldown time.Duration
}

func NewMemoryThrottle(cooldown time.Duration) *MemoryThrottle {
	return &MemoryThrottle{
		cache:    cache.New(cooldown, time.Minute),
		cooldown: cooldown,
	}
}

func (t *MemoryThrottle) Allow(_ context.Context, userID int64) (bool, error) {
	err := t.cache.Add(throttleKey(userID), struct{}{}, t.cooldown)
	return err == nil, nil
}
