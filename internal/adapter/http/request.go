// Package http provides the HTTP handler layer for the smart search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"regexp"
	"strings"
	"time"

	"github.com/gp-senegal/smart-search/internal/domain"
)

// SearchAdsRequest represents the request body for an ad search.
// At least one of departureCity and arrivalCity must be provided; the other
// criteria are optional and progressively relaxed by the search engine.
type SearchAdsRequest struct {
	// DepartureCity is the free-text departure city name (e.g., "Dakar")
	DepartureCity string `json:"departureCity,omitempty"`

	// ArrivalCity is the free-text arrival city name (e.g., "Paris")
	ArrivalCity string `json:"arrivalCity,omitempty"`

	// Date is the desired travel date in YYYY-MM-DD format (optional)
	Date string `json:"date,omitempty"`

	// PackageType is the kind of package to send, e.g. "colis" (optional)
	PackageType string `json:"packageType,omitempty"`
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// maxCityNameLength bounds free-text city input before it reaches the geocoder.
const maxCityNameLength = 100

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
// City names are trimmed in place.
func (r *SearchAdsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.DepartureCity = strings.TrimSpace(r.DepartureCity)
	r.ArrivalCity = strings.TrimSpace(r.ArrivalCity)

	r.validateCities(errs)
	r.validateDate(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchAdsRequest) validateCities(errs *ValidationErrors) {
	if r.DepartureCity == "" && r.ArrivalCity == "" {
		errs.Add("departureCity", "at least one of departureCity and arrivalCity is required")
		return
	}

	if len(r.DepartureCity) > maxCityNameLength {
		errs.Add("departureCity", "departureCity is too long")
	}
	if len(r.ArrivalCity) > maxCityNameLength {
		errs.Add("arrivalCity", "arrivalCity is too long")
	}
}

func (r *SearchAdsRequest) validateDate(errs *ValidationErrors) {
	if r.Date == "" {
		return
	}

	if !datePattern.MatchString(r.Date) {
		errs.Add("date", "date must be in YYYY-MM-DD format")
		return
	}

	if _, err := time.Parse(domain.DateFormat, r.Date); err != nil {
		errs.Add("date", "date is not a valid date")
	}
}

// ToDomainCriteria converts a validated request to domain search criteria.
func ToDomainCriteria(r *SearchAdsRequest) domain.SearchCriteria {
	criteria := domain.SearchCriteria{
		DepartureCity: r.DepartureCity,
		ArrivalCity:   r.ArrivalCity,
		PackageType:   strings.TrimSpace(r.PackageType),
	}

	if r.Date != "" {
		// Validate guarantees the format parses.
		if date, err := time.Parse(domain.DateFormat, r.Date); err == nil {
			criteria.Date = &date
		}
	}

	return criteria
}
