package utils

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dangqh/seafresh/config"
)

// CacheGet loads a cached JSON value into dest. Returns false on miss,
// decode failure, or when Redis is not configured.
func CacheGet(ctx context.Context, key string, dest interface{}) bool {
	if config.Redis == nil {
		return false
	}
	raw, err := config.Redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		LogDebug("Dropping undecodable cache entry %s: %v", key, err)
		_ = config.Redis.Del(ctx, key).Err()
		return false
	}
	return true
}

// CacheSet stores a value as JSON with a TTL. Failures are logged and
// swallowed: the cache is an optimization, never a dependency.
func CacheSet(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if config.Redis == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		LogDebug("Failed to marshal cache entry %s: %v", key, err)
		return
	}
	if err := config.Redis.Set(ctx, key, raw, ttl).Err(); err != nil {
		LogDebug("Failed to store cache entry %s: %v", key, err)
	}
}

// CacheInvalidate removes keys, ignoring errors
func CacheInvalidate(ctx context.Context, keys ...string) {
	if config.Redis == nil || len(keys) == 0 {
		return
	}
	if err := config.Redis.Del(ctx, keys...).Err(); err != nil {
		LogDebug("Failed to invalidate cache keys %v: %v", keys, err)
	}
}
