package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the wire format for calendar dates (no time component).
const DateFormat = "2006-01-02"

// SearchCriteria defines the parameters for a smart search request.
// At least one of DepartureCity/ArrivalCity must be present; this is a
// precondition checked by Validate, not enforced by the struct itself.
type SearchCriteria struct {
	// DepartureCity is the free-text departure city name (optional)
	DepartureCity string `json:"departureCity,omitempty"`

	// ArrivalCity is the free-text destination city name (optional)
	ArrivalCity string `json:"arrivalCity,omitempty"`

	// Date is the requested trip date (optional, midnight UTC)
	Date *time.Time `json:"date,omitempty"`

	// PackageType is the requested package-type tag (optional, e.g., "colis")
	PackageType string `json:"packageType,omitempty"`
}

// Validate checks the search precondition: at least one city must be given.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (c *SearchCriteria) Validate() error {
	if strings.TrimSpace(c.DepartureCity) == "" && strings.TrimSpace(c.ArrivalCity) == "" {
		return fmt.Errorf("%w: at least one of departureCity or arrivalCity is required", ErrInvalidRequest)
	}
	return nil
}

// Normalize trims surrounding whitespace from the free-text fields.
// City matching stays case-insensitive downstream; no case folding here so
// the original spelling can be echoed back in messages.
func (c *SearchCriteria) Normalize() {
	c.DepartureCity = strings.TrimSpace(c.DepartureCity)
	c.ArrivalCity = strings.TrimSpace(c.ArrivalCity)
	c.PackageType = strings.TrimSpace(c.PackageType)
}

// HasDate reports whether a trip date was supplied.
func (c *SearchCriteria) HasDate() bool {
	return c.Date != nil
}
