package domain

import (
	"context"
	"time"
)

// GeoCircle constrains a coordinate to lie within RadiusKm of Center.
type GeoCircle struct {
	Center   GeoPoint
	RadiusKm float64
}

// DateWindow constrains a calendar date to [Center-Days, Center+Days].
type DateWindow struct {
	Center time.Time
	Days   int
}

// AdFilter is the typed predicate passed to the ad store. Zero-valued fields
// are ignored. The resolver composes filters; it never assembles query
// strings itself.
type AdFilter struct {
	// DepartureCity filters on case-insensitive departure city equality
	DepartureCity string

	// ArrivalCity filters on case-insensitive destination city equality
	ArrivalCity string

	// DepartureWithin filters on departure coordinates inside a circle,
	// used by the geo-proximity tier instead of DepartureCity
	DepartureWithin *GeoCircle

	// ArrivalWithin filters on destination coordinates inside a circle
	ArrivalWithin *GeoCircle

	// Date filters on literal calendar-date equality
	Date *time.Time

	// DateWithin filters on the trip date falling inside a +/- day window
	DateWithin *DateWindow

	// PackageType filters on package-type tag containment
	PackageType string

	// NotBefore excludes ads whose trip date is earlier than this date.
	// The resolver always sets it to today, at every tier.
	NotBefore time.Time

	// Limit caps the number of returned rows when positive
	Limit int
}

// AdStore is the read interface over the ad persistence layer. The search
// subsystem queries ads but never writes them.
type AdStore interface {
	// FindAds returns the ads matching every set field of the filter.
	// An empty result is not an error.
	FindAds(ctx context.Context, filter AdFilter) ([]Ad, error)
}

// Geocoder resolves a free-text city name to coordinates. Implementations
// call an external service once per distinct name; a no-match result is
// reported as a wrapped ErrCityNotFound.
type Geocoder interface {
	Resolve(ctx context.Context, cityName string) (GeoPoint, error)
}
