package redisclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrCacheMiss = errors.New("cache miss")

// Cache stores JSON documents under a key prefix with a jittered TTL
type Cache struct {
	rdb     *redis.Client
	prefix  string
	baseTTL time.Duration
}

// NewCache creates a cache on top of the client
func (c *Client) NewCache(prefix string, baseTTL time.Duration) *Cache {
	return &Cache{rdb: c.rdb, prefix: prefix, baseTTL: baseTTL}
}

// Get decodes the cached document into dest or returns ErrCacheMiss
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.rdb.Get(ctx, c.cacheKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("unmarshal %s failed: %w", key, err)
	}
	return nil
}

// Set stores value as JSON
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s failed: %w", key, err)
	}

	ttl := c.baseTTL
	if ttl > 0 {
		ttl += time.Duration(rand.Int63n(int64(ttl/5) + 1))
	}

	if err := c.rdb.Set(ctx, c.cacheKey(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Delete removes a cached document
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, c.cacheKey(key)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (c *Cache) cacheKey(key string) string {
	return fmt.Sprintf("%s:%s", c.prefix, key)
}
