package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RoleCachePrefix is the prefix used for Redis role cache keys.
const RoleCachePrefix = "role:"

// RoleCacheTTL is the time-to-live for role cache entries.
const RoleCacheTTL = 10 * time.Minute

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return client, nil
}

// RedisRoleCache caches user roles keyed by email.
type RedisRoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRoleCache(client *redis.Client, ttl time.Duration) *RedisRoleCache {
	return &RedisRoleCache{client: client, ttl: ttl}
}

// Get returns the cached role and whether the key was present.
func (c *RedisRoleCache) Get(ctx context.Context, email string) (string, bool, error) {
	role, err := c.client.Get(ctx, RoleCachePrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read role cache for %s: %w", email, err)
	}
	return role, true, nil
}

func (c *RedisRoleCache) Set(ctx context.Context, email, role string) error {
	if err := c.client.Set(ctx, RoleCachePrefix+email, role, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write role cache for %s: %w", email, err)
	}
	return nil
}

func (c *RedisRoleCache) Invalidate(ctx context.Context, email string) error {
	if err := c.client.Del(ctx, RoleCachePrefix+email).Err(); err != nil {
		return fmt.Errorf("failed to invalidate role cache for %s: %w", email, err)
	}
	return nil
}
