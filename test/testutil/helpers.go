// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"testing"
	"time"

	"github.com/gp-senegal/smart-search/internal/domain"
)

// Known city coordinates used across tests. Thiès is roughly 59 km from
// Dakar; Saint-Louis roughly 186 km.
var (
	Dakar      = domain.GeoPoint{Latitude: 14.7167, Longitude: -17.4677}
	Thies      = domain.GeoPoint{Latitude: 14.7910, Longitude: -16.9256}
	SaintLouis = domain.GeoPoint{Latitude: 16.0326, Longitude: -16.4818}
	Ziguinchor = domain.GeoPoint{Latitude: 12.5833, Longitude: -16.2719}
	Paris      = domain.GeoPoint{Latitude: 48.8566, Longitude: 2.3522}
	Lyon       = domain.GeoPoint{Latitude: 45.7640, Longitude: 4.8357}
)

// MustParseDate parses a YYYY-MM-DD date string.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()

	parsed, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// NewAd builds a minimal valid ad for tests. Callers adjust fields as needed.
func NewAd(t *testing.T, departureCity string, departure domain.GeoPoint, arrivalCity string, arrival *domain.GeoPoint, date string) domain.Ad {
	t.Helper()

	return domain.Ad{
		OwnerID:           "owner-test",
		DepartureCity:     departureCity,
		DepartureLocation: departure,
		ArrivalCity:       arrivalCity,
		ArrivalLocation:   arrival,
		AvailableDate:     MustParseDate(t, date),
		PackageTypes:      []string{"colis"},
		PricePerKg:        5000,
		WhatsappNumber:    "+221770000000",
	}
}
