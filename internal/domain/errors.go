package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the search subsystem. Callers match them with
// errors.Is after arbitrary %w wrapping.
var (
	// ErrInvalidRequest indicates the search precondition was not met
	// (neither departure nor arrival city supplied). Maps to HTTP 400.
	ErrInvalidRequest = errors.New("invalid search request")

	// ErrCityNotFound indicates a supplied city name failed to geocode.
	// Treated as an input-validation failure, not a server error.
	ErrCityNotFound = errors.New("city not found")

	// ErrGeocoderUnavailable indicates the geocoding service was unreachable
	// or returned a server-side error. Maps to HTTP 503.
	ErrGeocoderUnavailable = errors.New("geocoding service unavailable")

	// ErrStoreUnavailable indicates the ad store query failed. Maps to HTTP 500.
	ErrStoreUnavailable = errors.New("ad store unavailable")
)

// CityNotFoundError wraps ErrCityNotFound with the city name that failed to
// resolve, so user-facing messages can name the problem.
func CityNotFoundError(city string) error {
	return fmt.Errorf("%w: %q", ErrCityNotFound, city)
}

// IsInvalidRequest reports whether the error is an input-validation failure,
// including geocoding not-found which the resolver treats the same way.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrCityNotFound)
}
