package sender

import (
	"context"
	"errors"

	"checkout-sdk/internal/redisclient"
	"checkout-sdk/internal/util"

	"go.uber.org/zap"
)

// Cache stores catalog documents that rarely change during a session
type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
}

// readThrough serves key from cache when possible and stores fresh results.
// Cache faults are logged and never fail the request.
func readThrough[T any](ctx context.Context, cache Cache, logger *zap.Logger, key, resource string, load func() (T, error)) (T, error) {
	if cache == nil {
		return load()
	}

	var cached T
	err := cache.Get(ctx, key, &cached)
	switch {
	case err == nil:
		util.CacheHitsTotal.WithLabelValues(resource).Inc()
		return cached, nil
	case errors.Is(err, redisclient.ErrCacheMiss):
		util.CacheMissesTotal.WithLabelValues(resource).Inc()
	default:
		util.CacheMissesTotal.WithLabelValues(resource).Inc()
		logger.Error("Failed to read cache", zap.String("key", key), zap.Error(err))
	}

	fresh, err := load()
	if err != nil {
		return fresh, err
	}

	if err := cache.Set(ctx, key, fresh); err != nil {
		logger.Error("Failed to write cache", zap.String("key", key), zap.Error(err))
	}

	return fresh, nil
}
