package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisViewCache implements ViewCache using Redis.
type RedisViewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisViewCache creates a new cache backed by Redis.
func NewRedisViewCache(addr, password string, db int, ttl time.Duration) *RedisViewCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisViewCache{client: rdb, ttl: ttl}
}

// Ping checks connectivity.
func (c *RedisViewCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisViewCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

func (c *RedisViewCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *RedisViewCache) Generation(ctx context.Context, businessProfileID string) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(businessProfileID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis generation %s: %w", businessProfileID, err)
	}
	return gen, nil
}

func (c *RedisViewCache) Invalidate(ctx context.Context, businessProfileID string) error {
	if err := c.client.Incr(ctx, generationKey(businessProfileID)).Err(); err != nil {
		return fmt.Errorf("redis invalidate %s: %w", businessProfileID, err)
	}
	return nil
}

func (c *RedisViewCache) Close() error {
	return c.client.Close()
}
