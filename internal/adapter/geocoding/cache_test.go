package geocoding

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gp-senegal/smart-search/internal/domain"
	"github.com/gp-senegal/smart-search/internal/infrastructure/logger"
)

// countingGeocoder records how often the inner geocoder is consulted.
type countingGeocoder struct {
	point domain.GeoPoint
	err   error
	calls int
}

func (c *countingGeocoder) Resolve(_ context.Context, _ string) (domain.GeoPoint, error) {
	c.calls++
	if c.err != nil {
		return domain.GeoPoint{}, c.err
	}
	return c.point, nil
}

// unreachableRedis returns a client pointed at a port nothing listens on.
// Every cache operation fails fast, which is exactly the degraded mode the
// decorator must survive.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestCachedGeocoder_FallsThroughWhenCacheUnreachable(t *testing.T) {
	inner := &countingGeocoder{point: domain.GeoPoint{Latitude: 14.7167, Longitude: -17.4677}}
	cached := NewCachedGeocoder(inner, unreachableRedis(), time.Hour, logger.Nop().Logger)

	point, err := cached.Resolve(context.Background(), "Dakar")

	require.NoError(t, err)
	assert.InDelta(t, 14.7167, point.Latitude, 1e-6)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedGeocoder_InnerErrorsPassThrough(t *testing.T) {
	inner := &countingGeocoder{err: domain.CityNotFoundError("Atlantis")}
	cached := NewCachedGeocoder(inner, unreachableRedis(), time.Hour, logger.Nop().Logger)

	_, err := cached.Resolve(context.Background(), "Atlantis")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCityNotFound)
}

func TestCacheKey_FoldsCaseAndWhitespace(t *testing.T) {
	assert.Equal(t, cacheKey("Dakar"), cacheKey("  dakar "))
	assert.Equal(t, "geocode:dakar", cacheKey("DAKAR"))
	assert.NotEqual(t, cacheKey("Dakar"), cacheKey("Thiès"))
}

func TestNewCachedGeocoder_DefaultsTTL(t *testing.T) {
	inner := &countingGeocoder{}
	cached := NewCachedGeocoder(inner, unreachableRedis(), 0, logger.Nop().Logger)

	assert.Equal(t, DefaultCacheTTL, cached.ttl)
}
