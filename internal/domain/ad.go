// Package domain contains the core business entities and rules for the GP
// Senegal smart search system. These entities are transport-agnostic and form
// the foundation upon which all other components are built.
package domain

import (
	"strings"
	"time"
)

// GeoPoint is a latitude/longitude pair in decimal degrees.
type GeoPoint struct {
	// Latitude is in the range [-90, 90]
	Latitude float64 `json:"latitude"`

	// Longitude is in the range [-180, 180]
	Longitude float64 `json:"longitude"`
}

// IsValid checks that the coordinates are within their legal ranges.
func (p GeoPoint) IsValid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// Ad represents a trip announcement posted by a traveler (livreur GP).
// The search subsystem only reads ads; creation and edition happen in the
// ad-management subsystem.
type Ad struct {
	// ID is the unique identifier of the ad
	ID string `json:"id"`

	// OwnerID references the traveler who posted the ad
	OwnerID string `json:"ownerId"`

	// DepartureCity is the free-text name of the departure city
	DepartureCity string `json:"departureCity"`

	// DepartureLocation holds the departure city coordinates
	DepartureLocation GeoPoint `json:"departureLocation"`

	// ArrivalCity is the free-text name of the destination city (optional)
	ArrivalCity string `json:"arrivalCity,omitempty"`

	// ArrivalLocation holds the destination coordinates when known
	ArrivalLocation *GeoPoint `json:"arrivalLocation,omitempty"`

	// AvailableDate is the calendar date of the trip (midnight UTC, no time component)
	AvailableDate time.Time `json:"availableDate"`

	// PackageTypes lists the package-type tags the traveler accepts (e.g., "colis", "document")
	PackageTypes []string `json:"packageTypes"`

	// PricePerKg is the advertised price per kilogram in CFA francs
	PricePerKg float64 `json:"pricePerKg"`

	// WhatsappNumber is the contact number shown to senders
	WhatsappNumber string `json:"whatsappNumber,omitempty"`
}

// AcceptsPackageType reports whether the ad carries the given package-type
// tag. Matching is case-insensitive.
func (a *Ad) AcceptsPackageType(packageType string) bool {
	for _, t := range a.PackageTypes {
		if strings.EqualFold(t, packageType) {
			return true
		}
	}
	return false
}

// DepartsFrom reports whether the ad departs from the given city.
// City matching is a case-insensitive exact compare, no fuzzy normalization.
func (a *Ad) DepartsFrom(city string) bool {
	return city != "" && strings.EqualFold(a.DepartureCity, city)
}

// ArrivesAt reports whether the ad's destination is the given city.
func (a *Ad) ArrivesAt(city string) bool {
	return city != "" && strings.EqualFold(a.ArrivalCity, city)
}

// IsExpired reports whether the ad's trip date is earlier than today.
// Expired ads are excluded from every search tier.
func (a *Ad) IsExpired(today time.Time) bool {
	return a.AvailableDate.Before(today)
}
