package external

import (
	"context"
	"strings"
	"sync"
	"time"

	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

// MemoryCacheProvider implements CacheProvider port with an in-process map.
// Expired entries are dropped when they are next read.
type MemoryCacheProvider struct {
	prefix string
	data   map[string]memoryCacheItem
	mutex  sync.RWMutex
	stats  struct {
		hits   int64
		misses int64
		mutex  sync.RWMutex
	}
	now func() time.Time
}

type memoryCacheItem struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCacheProvider creates a memory cache whose keys are namespaced by prefix
func NewMemoryCacheProvider(prefix string) *MemoryCacheProvider {
	return &MemoryCacheProvider{
		prefix: prefix,
		data:   make(map[string]memoryCacheItem),
		now:    time.Now,
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	fullKey := c.prefix + key
	c.mutex.RLock()
	item, exists := c.data[fullKey]
	c.mutex.RUnlock()

	if !exists {
		c.RecordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}
	if c.now().After(item.expiresAt) {
		c.evict(fullKey, item.expiresAt)
		c.RecordMiss()
		return nil, errors.NewNotFoundError("cache miss")
	}

	c.RecordHit()
	value := make([]byte, len(item.data))
	copy(value, item.data)
	return value, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[c.prefix+key] = memoryCacheItem{
		data:      stored,
		expiresAt: c.now().Add(ttl),
	}
	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, c.prefix+key)
	return nil
}

func (c *MemoryCacheProvider) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.NewValidationError("cache key cannot be empty")
	}

	c.mutex.RLock()
	item, exists := c.data[c.prefix+key]
	c.mutex.RUnlock()

	return exists && !c.now().After(item.expiresAt), nil
}

// Clear removes every entry under this provider's prefix
func (c *MemoryCacheProvider) Clear(ctx context.Context) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for key := range c.data {
		if strings.HasPrefix(key, c.prefix) {
			delete(c.data, key)
		}
	}
	return nil
}

// Len returns the number of stored entries, expired ones included
func (c *MemoryCacheProvider) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.data)
}

func (c *MemoryCacheProvider) GetStats() ports.CacheStats {
	c.stats.mutex.RLock()
	defer c.stats.mutex.RUnlock()

	return buildCacheStats(c.stats.hits, c.stats.misses)
}

func (c *MemoryCacheProvider) RecordHit() {
	c.stats.mutex.Lock()
	defer c.stats.mutex.Unlock()
	c.stats.hits++
}

func (c *MemoryCacheProvider) RecordMiss() {
	c.stats.mutex.Lock()
	defer c.stats.mutex.Unlock()
	c.stats.misses++
}

// evict removes key unless it was rewritten after the expired read
func (c *MemoryCacheProvider) evict(key string, expiresAt time.Time) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if item, ok := c.data[key]; ok && item.expiresAt.Equal(expiresAt) {
		delete(c.data, key)
	}
}

func buildCacheStats(hits, misses int64) ports.CacheStats {
	total := hits + misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        hits,
		Misses:      misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}
