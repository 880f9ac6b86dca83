// Package mock provides test doubles for the smart search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/gp-senegal/smart-search/internal/domain"
)

// Geocoder is a configurable mock implementation of domain.Geocoder.
// It resolves city names from a fixed table and supports configurable
// delays and errors for testing timeout and failure scenarios.
type Geocoder struct {
	cities    map[string]domain.GeoPoint
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewGeocoder creates a new mock geocoder with an empty city table.
// The geocoder is configured using the builder pattern methods.
func NewGeocoder() *Geocoder {
	return &Geocoder{
		cities: make(map[string]domain.GeoPoint),
	}
}

// WithCity registers a resolvable city.
func (g *Geocoder) WithCity(name string, point domain.GeoPoint) *Geocoder {
	g.cities[normalize(name)] = point
	return g
}

// WithError configures the geocoder to return the given error for every call.
func (g *Geocoder) WithError(err error) *Geocoder {
	g.err = err
	return g
}

// WithDelay configures the geocoder to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (g *Geocoder) WithDelay(d time.Duration) *Geocoder {
	g.delay = d
	return g
}

// Resolve implements domain.Geocoder.Resolve.
// It respects context cancellation, applies configured delay, and resolves
// from the city table; unknown cities yield a wrapped ErrCityNotFound.
func (g *Geocoder) Resolve(ctx context.Context, cityName string) (domain.GeoPoint, error) {
	g.mu.Lock()
	g.callCount++
	g.mu.Unlock()

	if g.delay > 0 {
		select {
		case <-ctx.Done():
			return domain.GeoPoint{}, ctx.Err()
		case <-time.After(g.delay):
		}
	}

	if ctx.Err() != nil {
		return domain.GeoPoint{}, ctx.Err()
	}

	if g.err != nil {
		return domain.GeoPoint{}, g.err
	}

	point, ok := g.cities[normalize(cityName)]
	if !ok {
		return domain.GeoPoint{}, domain.CityNotFoundError(cityName)
	}
	return point, nil
}

// CallCount returns how many times Resolve was called.
func (g *Geocoder) CallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.callCount
}

func normalize(name string) string {
	result := make([]rune, 0, len(name))
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		result = append(result, r)
	}
	return string(result)
}

// Ensure Geocoder implements domain.Geocoder at compile time.
var _ domain.Geocoder = (*Geocoder)(nil)
