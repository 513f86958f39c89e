// File: utils/cache.go
package utils

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"cottagerec/config"
)

// CacheClient is the Redis client backing the optional response cache.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client. Only called when
// CACHE_ENABLED is set; a dead Redis at startup is a configuration error.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// ResponseCacheKey derives the cache key for a raw request body. Identical
// payloads score identically, so the body digest is the whole identity.
func ResponseCacheKey(body []byte) string {
	sum := sha256.Sum256(body)
	return "recommend:" + hex.EncodeToString(sum[:])
}

// GetCachedResponse looks up a previously served response. Cache errors are
// logged and treated as misses.
func GetCachedResponse(ctx context.Context, client *redis.Client, key string) ([]byte, bool) {
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			GetLogger().Warn("response cache lookup failed", zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

// SetCachedResponse stores a served response with the configured TTL.
func SetCachedResponse(ctx context.Context, client *redis.Client, key string, payload []byte) {
	ttl := time.Duration(config.AppConfig.CacheTTLSeconds) * time.Second
	if err := client.Set(ctx, key, payload, ttl).Err(); err != nil {
		GetLogger().Warn("response cache store failed", zap.Error(err))
	}
}
