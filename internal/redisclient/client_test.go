package redisclient

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type document struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// setupTestRedis creates a miniredis server and a client pointing to it
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return Wrap(rdb), mr
}

func TestCacheMiss(t *testing.T) {
	client, _ := setupTestRedis(t)
	cache := client.NewCache("catalog", time.Minute)

	var doc document
	err := cache.Get(context.Background(), "countries", &doc)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCacheSetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	cache := client.NewCache("catalog", time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "countries", []document{{Code: "AU", Name: "Australia"}}))
	assert.True(t, mr.Exists("catalog:countries"))

	ttl := mr.TTL("catalog:countries")
	assert.GreaterOrEqual(t, ttl, time.Minute)
	assert.LessOrEqual(t, ttl, time.Minute+12*time.Second)

	var docs []document
	require.NoError(t, cache.Get(ctx, "countries", &docs))
	assert.Equal(t, []document{{Code: "AU", Name: "Australia"}}, docs)
}

func TestCacheExpires(t *testing.T) {
	client, mr := setupTestRedis(t)
	cache := client.NewCache("catalog", time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "config", document{Code: "x"}))
	mr.FastForward(2 * time.Minute)

	var doc document
	assert.ErrorIs(t, cache.Get(ctx, "config", &doc), ErrCacheMiss)
}

func TestCacheCorruptEntry(t *testing.T) {
	client, mr := setupTestRedis(t)
	cache := client.NewCache("catalog", time.Minute)

	require.NoError(t, mr.Set("catalog:config", "{not json"))

	var doc document
	err := cache.Get(context.Background(), "config", &doc)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestCacheDelete(t *testing.T) {
	client, mr := setupTestRedis(t)
	cache := client.NewCache("catalog", 0)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "config", document{Code: "x"}))
	require.NoError(t, cache.Delete(ctx, "config"))
	assert.False(t, mr.Exists("catalog:config"))
}

func TestIdempotencyKey(t *testing.T) {
	client, mr := setupTestRedis(t)
	ctx := context.Background()

	exists, err := client.CheckIdempotencyKey(ctx, "evt-1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, client.SetIdempotencyKey(ctx, "evt-1", "processed", time.Hour))
	exists, err = client.CheckIdempotencyKey(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, exists)

	mr.FastForward(2 * time.Hour)
	exists, err = client.CheckIdempotencyKey(ctx, "evt-1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLock(t *testing.T) {
	client, _ := setupTestRedis(t)
	ctx := context.Background()

	acquired, err := client.AcquireLock(ctx, "checkout:c1", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = client.AcquireLock(ctx, "checkout:c1", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	require.NoError(t, client.ReleaseLock(ctx, "checkout:c1"))
	acquired, err = client.AcquireLock(ctx, "checkout:c1", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}
