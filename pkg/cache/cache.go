// Package cache provides cache-aside reads of hot API payloads. The
// production backend is Redis; when Redis is unreachable the package
// degrades to a no-op so the API keeps serving straight from MongoDB. An
// in-process memory backend exists for tests and cache-less deployments.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/vinayak/config"
	"github.com/shashiranjanraj/vinayak/pkg/metrics"
)

// Backend is the storage behind Get/Set/Del. Values are JSON strings.
type Backend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

var backend Backend

var Ctx = context.Background()

// Use swaps the active backend. Pass nil to disable caching entirely.
func Use(b Backend) { backend = b }

// Connect initialises the Redis backend and verifies it with a ping.
// Returns an error so the caller can react (log warning, fall back, or abort).
func Connect() error {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	if err := rdb.Ping(Ctx).Err(); err != nil {
		backend = nil // unavailable, Get/Set/Del no-op safely
		return fmt.Errorf("cache: redis ping: %w", err)
	}

	backend = redisBackend{rdb: rdb}
	return nil
}

type redisBackend struct {
	rdb *redis.Client
}

func (b redisBackend) Get(ctx context.Context, key string) (string, error) {
	return b.rdb.Get(ctx, key).Result()
}

func (b redisBackend) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return b.rdb.Set(ctx, key, value, ttl).Err()
}

func (b redisBackend) Del(ctx context.Context, keys ...string) error {
	return b.rdb.Del(ctx, keys...).Err()
}

// Get retrieves a cached value by key and unmarshals into dest.
// Returns true on a cache hit, false on miss or error.
func Get(key string, dest interface{}) bool {
	if backend == nil {
		return false
	}

	val, err := backend.Get(Ctx, key)
	if err != nil {
		metrics.CacheMisses.WithLabelValues("cache").Inc()
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		metrics.CacheMisses.WithLabelValues("cache").Inc()
		return false
	}

	metrics.CacheHits.WithLabelValues("cache").Inc()
	return true
}

// Set stores value under key for the given TTL.
func Set(key string, value interface{}, ttl time.Duration) error {
	if backend == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return backend.Set(Ctx, key, string(data), ttl)
}

// Del removes one or more keys. Used to invalidate the product listing
// after a write.
func Del(keys ...string) error {
	if backend == nil {
		return nil
	}
	return backend.Del(Ctx, keys...)
}
