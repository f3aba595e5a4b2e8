package external

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

const geocodeCacheName = "geocode"

// CachedGeocodingAdapter caches geocoding results in a CacheProvider.
// Concurrent lookups for the same key share one upstream call.
type CachedGeocodingAdapter struct {
	gateway ports.GeocodingGateway
	cache   ports.CacheProvider
	ttl     time.Duration
	logger  ports.Logger
	metrics ports.MetricsCollector
	group   singleflight.Group
}

// CachedGeocodingParams holds parameters for creating the cached geocoder
type CachedGeocodingParams struct {
	Gateway ports.GeocodingGateway
	Cache   ports.CacheProvider
	TTL     time.Duration
	Logger  ports.Logger
	Metrics ports.MetricsCollector
}

// NewCachedGeocodingAdapter wraps a geocoding gateway with a result cache
func NewCachedGeocodingAdapter(params CachedGeocodingParams) (*CachedGeocodingAdapter, error) {
	if params.Gateway == nil {
		return nil, errors.NewConfigurationError("cached geocoder requires a gateway", nil)
	}
	if params.Cache == nil {
		return nil, errors.NewConfigurationError("cached geocoder requires a cache provider", nil)
	}
	if params.TTL <= 0 {
		return nil, errors.NewConfigurationError("geocode cache TTL must be positive", nil)
	}

	return &CachedGeocodingAdapter{
		gateway: params.Gateway,
		cache:   params.Cache,
		ttl:     params.TTL,
		logger:  params.Logger,
		metrics: params.Metrics,
	}, nil
}

// ReverseGeocode returns the cached label for the position, rounded to about 10 m
func (c *CachedGeocodingAdapter) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	key := fmt.Sprintf("geocode:reverse:%.4f,%.4f", lat, lon)

	var label string
	err := c.lookup(ctx, key, &label, func(fetchCtx context.Context) (interface{}, error) {
		return c.gateway.ReverseGeocode(fetchCtx, lat, lon)
	})
	return label, err
}

// SearchAddress returns the cached position for the normalized address text
func (c *CachedGeocodingAdapter) SearchAddress(ctx context.Context, address string) (ports.Coordinates, error) {
	normalized := strings.ToLower(strings.Join(strings.Fields(address), " "))
	if normalized == "" {
		return c.gateway.SearchAddress(ctx, address)
	}
	key := "geocode:search:" + normalized

	var position ports.Coordinates
	err := c.lookup(ctx, key, &position, func(fetchCtx context.Context) (interface{}, error) {
		return c.gateway.SearchAddress(fetchCtx, address)
	})
	return position, err
}

// lookup serves key from the cache or a shared upstream fetch. The shared fetch ignores
// caller cancellation; each caller stops waiting when its own ctx is done.
func (c *CachedGeocodingAdapter) lookup(ctx context.Context, key string, target interface{}, fetch func(context.Context) (interface{}, error)) error {
	if data, err := c.cache.Get(ctx, key); err == nil {
		if err := json.Unmarshal(data, target); err == nil {
			c.recordHit()
			return nil
		}
		c.logger.Warn("Discarding unreadable geocode cache entry", ports.F("key", key))
	} else if !errors.IsNotFoundError(err) {
		c.logger.Warn("Geocode cache read failed", ports.F("key", key), ports.F("error", err))
	}
	c.recordMiss()

	fetchCtx := context.WithoutCancel(ctx)
	results := c.group.DoChan(key, func() (interface{}, error) {
		result, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(result)
		if err == nil {
			err = c.cache.Set(fetchCtx, key, data, c.ttl)
		}
		if err != nil {
			c.logger.Warn("Failed to cache geocode result", ports.F("key", key), ports.F("error", err))
		}
		return data, nil
	})

	var res singleflight.Result
	select {
	case res = <-results:
	case <-ctx.Done():
		return ctx.Err()
	}
	if res.Err != nil {
		return res.Err
	}
	if res.Shared {
		c.logger.Debug("Geocode lookup shared with concurrent caller", ports.F("key", key))
	}

	data, ok := res.Val.([]byte)
	if !ok || data == nil {
		return errors.NewParseError("geocode result could not be encoded", nil)
	}
	return json.Unmarshal(data, target)
}

func (c *CachedGeocodingAdapter) recordHit() {
	if c.metrics != nil {
		c.metrics.RecordCacheHit(geocodeCacheName)
	}
}

func (c *CachedGeocodingAdapter) recordMiss() {
	if c.metrics != nil {
		c.metrics.RecordCacheMiss(geocodeCacheName)
	}
}
