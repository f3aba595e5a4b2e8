package external

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"prayertimes.app/internal/config"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

const redisScanBatch = 100

// RedisCacheProviderAdapter implements CacheProvider port using Redis
type RedisCacheProviderAdapter struct {
	client *redis.Client
	prefix string
	stats  struct {
		hits   int64
		misses int64
		mutex  sync.RWMutex
	}
}

// NewRedisCacheProviderAdapter connects to Redis; keys are namespaced by prefix
func NewRedisCacheProviderAdapter(cfg *config.RedisConfig, prefix string) (*RedisCacheProviderAdapter, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	pingTimeout := time.Duration(cfg.DialTimeout) * time.Second
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewExternalAPIError("failed to connect to Redis", err)
	}

	return &RedisCacheProviderAdapter{
		client: client,
		prefix: prefix,
	}, nil
}

func (r *RedisCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			r.RecordMiss()
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewExternalAPIError("redis get operation failed", err)
	}

	r.RecordHit()
	return val, nil
}

func (r *RedisCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	if err := r.client.Set(ctx, r.prefix+key, value, ttl).Err(); err != nil {
		return errors.NewExternalAPIError("redis set operation failed", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return errors.NewExternalAPIError("redis delete operation failed", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	count, err := r.client.Exists(ctx, r.prefix+key).Result()
	if err != nil {
		return false, errors.NewExternalAPIError("redis exists operation failed", err)
	}
	return count > 0, nil
}

// Clear removes the keys under this adapter's prefix, leaving the rest of the database alone
func (r *RedisCacheProviderAdapter) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.prefix+"*", redisScanBatch).Iterator()
	batch := make([]string, 0, redisScanBatch)

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == redisScanBatch {
			if err := r.client.Del(ctx, batch...).Err(); err != nil {
				return errors.NewExternalAPIError("redis clear operation failed", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return errors.NewExternalAPIError("redis scan operation failed", err)
	}
	if len(batch) > 0 {
		if err := r.client.Del(ctx, batch...).Err(); err != nil {
			return errors.NewExternalAPIError("redis clear operation failed", err)
		}
	}
	return nil
}

func (r *RedisCacheProviderAdapter) GetStats() ports.CacheStats {
	r.stats.mutex.RLock()
	defer r.stats.mutex.RUnlock()

	return buildCacheStats(r.stats.hits, r.stats.misses)
}

func (r *RedisCacheProviderAdapter) RecordHit() {
	r.stats.mutex.Lock()
	defer r.stats.mutex.Unlock()
	r.stats.hits++
}

func (r *RedisCacheProviderAdapter) RecordMiss() {
	r.stats.mutex.Lock()
	defer r.stats.mutex.Unlock()
	r.stats.misses++
}

// Close closes the Redis client connection
func (r *RedisCacheProviderAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewExternalAPIError("failed to close Redis connection", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisCacheProviderAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewExternalAPIError("Redis ping failed", err)
	}
	return nil
}
