// Package geocoding provides the outbound adapter resolving free-text city
// names to coordinates via a Nominatim-compatible service, with an optional
// Redis cache layered on top.
package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gp-senegal/smart-search/internal/domain"
	"github.com/gp-senegal/smart-search/internal/infrastructure/retry"
)

// DefaultTimeout bounds a single geocoding HTTP call.
const DefaultTimeout = 3 * time.Second

// Config holds the Nominatim client settings.
type Config struct {
	// BaseURL is the service root, e.g. "https://nominatim.openstreetmap.org"
	BaseURL string

	// Timeout bounds each HTTP call
	Timeout time.Duration

	// UserAgent identifies this service to the upstream (Nominatim requires one)
	UserAgent string
}

// NominatimClient implements domain.Geocoder against a Nominatim-compatible
// HTTP API. One logical resolution is surfaced to the caller; transport
// errors get a single retry, a no-match response never does.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	retryCfg   retry.Config
}

// nominatimResult is the subset of the Nominatim search response we consume.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NewNominatimClient creates a geocoding client with the given configuration.
func NewNominatimClient(cfg Config) *NominatimClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &NominatimClient{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: timeout},
		retryCfg:   retry.GeocoderConfig,
	}
}

// Resolve implements domain.Geocoder. A city with no match yields a wrapped
// ErrCityNotFound; unreachable or erroring upstreams yield a wrapped
// ErrGeocoderUnavailable.
func (c *NominatimClient) Resolve(ctx context.Context, cityName string) (domain.GeoPoint, error) {
	point, err := retry.DoWithResult(ctx, func() (domain.GeoPoint, error) {
		return c.resolveOnce(ctx, cityName)
	}, c.retryCfg)
	if err != nil {
		// Unwrap the retry marker so callers match the domain sentinels.
		var permanent *retry.Permanent
		if errors.As(err, &permanent) {
			return domain.GeoPoint{}, permanent.Err
		}
		return domain.GeoPoint{}, err
	}
	return point, nil
}

func (c *NominatimClient) resolveOnce(ctx context.Context, cityName string) (domain.GeoPoint, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.baseURL, url.QueryEscape(cityName))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.GeoPoint{}, retry.NewPermanent(fmt.Errorf("%w: build request: %v", domain.ErrGeocoderUnavailable, err))
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("%w: %v", domain.ErrGeocoderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.GeoPoint{}, fmt.Errorf("%w: unexpected status %d", domain.ErrGeocoderUnavailable, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.GeoPoint{}, fmt.Errorf("%w: decode response: %v", domain.ErrGeocoderUnavailable, err)
	}

	if len(results) == 0 {
		return domain.GeoPoint{}, retry.NewPermanent(domain.CityNotFoundError(cityName))
	}

	point, err := toGeoPoint(results[0])
	if err != nil {
		return domain.GeoPoint{}, retry.NewPermanent(fmt.Errorf("%w: %v", domain.ErrGeocoderUnavailable, err))
	}
	return point, nil
}

// toGeoPoint parses the string coordinates Nominatim returns.
func toGeoPoint(r nominatimResult) (domain.GeoPoint, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("parse latitude %q: %v", r.Lat, err)
	}
	lng, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return domain.GeoPoint{}, fmt.Errorf("parse longitude %q: %v", r.Lon, err)
	}

	point := domain.GeoPoint{Latitude: lat, Longitude: lng}
	if !point.IsValid() {
		return domain.GeoPoint{}, fmt.Errorf("coordinates out of range: %v", point)
	}
	return point, nil
}

// Ensure NominatimClient implements domain.Geocoder at compile time.
var _ domain.Geocoder = (*NominatimClient)(nil)
