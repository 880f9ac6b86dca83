package geocoding

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gp-senegal/smart-search/internal/domain"
)

// DefaultCacheTTL is how long resolved coordinates stay cached. City
// coordinates are effectively static, so a long TTL is safe.
const DefaultCacheTTL = 24 * time.Hour

// keyPrefix namespaces geocode entries in Redis.
const keyPrefix = "geocode:"

// CachedGeocoder decorates a Geocoder with a Redis-backed cross-request
// cache. The same cities recur heavily in searches, so caching saves most
// upstream calls. Cache failures are logged and fall through to the inner
// geocoder; the cache is an optimization, never a correctness dependency.
type CachedGeocoder struct {
	inner  domain.Geocoder
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewCachedGeocoder wraps the inner geocoder with a Redis cache.
func NewCachedGeocoder(inner domain.Geocoder, client *redis.Client, ttl time.Duration, log zerolog.Logger) *CachedGeocoder {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedGeocoder{
		inner:  inner,
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// Resolve implements domain.Geocoder. Only successful resolutions are
// cached; not-found and transient errors always hit the inner geocoder.
func (c *CachedGeocoder) Resolve(ctx context.Context, cityName string) (domain.GeoPoint, error) {
	key := cacheKey(cityName)

	if data, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var point domain.GeoPoint
		if err := json.Unmarshal(data, &point); err == nil {
			return point, nil
		}
		// Corrupt entry: drop it and fall through to the inner geocoder.
		c.client.Del(ctx, key)
	}

	point, err := c.inner.Resolve(ctx, cityName)
	if err != nil {
		return domain.GeoPoint{}, err
	}

	if data, err := json.Marshal(point); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Str("city", cityName).Msg("Failed to cache geocode result")
		}
	}

	return point, nil
}

// cacheKey folds the city name so "Dakar" and "dakar" share one entry.
func cacheKey(cityName string) string {
	return keyPrefix + strings.ToLower(strings.TrimSpace(cityName))
}

// Ensure CachedGeocoder implements domain.Geocoder at compile time.
var _ domain.Geocoder = (*CachedGeocoder)(nil)
