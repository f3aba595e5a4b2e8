package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"prayertimes.app/internal/config"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

// setupMockRedis creates a mock Redis server for testing
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	redisConfig := &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		Password:     "",
		DB:           0,
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}

	return mockRedis, redisConfig
}

func newTestRedisAdapter(t *testing.T, prefix string) (*miniredis.Miniredis, *RedisCacheProviderAdapter) {
	t.Helper()

	mockRedis, redisConfig := setupMockRedis(t)
	adapter, err := NewRedisCacheProviderAdapter(redisConfig, prefix)
	require.NoError(t, err)
	t.Cleanup(func() { _ = adapter.Close() })

	return mockRedis, adapter
}

func TestRedisCacheProviderAdapter_NewRedisCacheProviderAdapter(t *testing.T) {
	t.Run("NilConfig", func(t *testing.T) {
		adapter, err := NewRedisCacheProviderAdapter(nil, "")
		assert.Nil(t, adapter)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("UnreachableServer", func(t *testing.T) {
		mockRedis, redisConfig := setupMockRedis(t)
		mockRedis.Close()
		redisConfig.DialTimeout = 1

		adapter, err := NewRedisCacheProviderAdapter(redisConfig, "")
		assert.Nil(t, adapter)

		var appErr *errors.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, errors.ErrorTypeExternalAPI, appErr.Type)
		}
	})
}

func TestRedisCacheProviderAdapter_Operations(t *testing.T) {
	mockRedis, adapter := newTestRedisAdapter(t, "prayertimes:")
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		value := []byte("test-value")

		require.NoError(t, adapter.Set(ctx, "test-key", value, time.Minute))

		retrieved, err := adapter.Get(ctx, "test-key")
		require.NoError(t, err)
		assert.Equal(t, value, retrieved)

		raw, err := mockRedis.Get("prayertimes:test-key")
		require.NoError(t, err)
		assert.Equal(t, "test-value", raw)
	})

	t.Run("GetNonExistentKey", func(t *testing.T) {
		retrieved, err := adapter.Get(ctx, "non-existent-key")
		assert.Nil(t, retrieved)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "delete-key", []byte("v"), time.Minute))
		require.NoError(t, adapter.Delete(ctx, "delete-key"))

		_, err := adapter.Get(ctx, "delete-key")
		assert.Error(t, err)
	})

	t.Run("Exists", func(t *testing.T) {
		exists, err := adapter.Exists(ctx, "exists-key")
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, adapter.Set(ctx, "exists-key", []byte("v"), time.Minute))

		exists, err = adapter.Exists(ctx, "exists-key")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("TTLExpiration", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "ttl-key", []byte("ttl-value"), 100*time.Millisecond))

		_, err := adapter.Get(ctx, "ttl-key")
		require.NoError(t, err)

		mockRedis.FastForward(150 * time.Millisecond)

		_, err = adapter.Get(ctx, "ttl-key")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("ClearKeepsForeignKeys", func(t *testing.T) {
		require.NoError(t, mockRedis.Set("other-app:key", "keep"))
		require.NoError(t, adapter.Set(ctx, "clear-a", []byte("a"), time.Minute))
		require.NoError(t, adapter.Set(ctx, "clear-b", []byte("b"), time.Minute))

		require.NoError(t, adapter.Clear(ctx))

		assert.False(t, mockRedis.Exists("prayertimes:clear-a"))
		assert.False(t, mockRedis.Exists("prayertimes:clear-b"))
		assert.True(t, mockRedis.Exists("other-app:key"))
	})
}

func TestRedisCacheProviderAdapter_ValidationErrors(t *testing.T) {
	_, adapter := newTestRedisAdapter(t, "")
	ctx := context.Background()

	tests := []struct {
		name      string
		operation func() error
	}{
		{name: "GetEmptyKey", operation: func() error { _, err := adapter.Get(ctx, ""); return err }},
		{name: "SetEmptyKey", operation: func() error { return adapter.Set(ctx, "", []byte("value"), time.Minute) }},
		{name: "SetNilValue", operation: func() error { return adapter.Set(ctx, "key", nil, time.Minute) }},
		{name: "SetNegativeTTL", operation: func() error { return adapter.Set(ctx, "key", []byte("value"), -time.Minute) }},
		{name: "DeleteEmptyKey", operation: func() error { return adapter.Delete(ctx, "") }},
		{name: "ExistsEmptyKey", operation: func() error { _, err := adapter.Exists(ctx, ""); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.IsValidationError(tt.operation()))
		})
	}
}

func TestRedisCacheProviderAdapter_Metrics(t *testing.T) {
	_, adapter := newTestRedisAdapter(t, "")
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "metrics-key", []byte("v"), time.Minute))

	_, err := adapter.Get(ctx, "metrics-key")
	require.NoError(t, err)
	_, err = adapter.Get(ctx, "non-existent")
	assert.Error(t, err)

	stats := adapter.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 0.5, stats.HitRatio)

	var _ ports.CacheProvider = adapter
	var _ ports.CacheMetrics = adapter
}

func TestRedisCacheProviderAdapter_ContextCancellation(t *testing.T) {
	_, adapter := newTestRedisAdapter(t, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.Get(ctx, "key")
	assert.Error(t, err)
	assert.Error(t, adapter.Set(ctx, "key", []byte("value"), time.Minute))
	assert.Error(t, adapter.Delete(ctx, "key"))
	_, err = adapter.Exists(ctx, "key")
	assert.Error(t, err)
	assert.Error(t, adapter.Clear(ctx))
}

func TestRedisCacheProviderAdapter_Ping(t *testing.T) {
	mockRedis, adapter := newTestRedisAdapter(t, "")

	assert.NoError(t, adapter.Ping(context.Background()))

	mockRedis.Close()
	assert.Error(t, adapter.Ping(context.Background()))
}
