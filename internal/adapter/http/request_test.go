package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchAdsRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       SearchAdsRequest
		wantField string
	}{
		{
			name: "both cities",
			req:  SearchAdsRequest{DepartureCity: "Dakar", ArrivalCity: "Paris"},
		},
		{
			name: "departure only",
			req:  SearchAdsRequest{DepartureCity: "Dakar"},
		},
		{
			name: "arrival only",
			req:  SearchAdsRequest{ArrivalCity: "Paris"},
		},
		{
			name: "full criteria",
			req:  SearchAdsRequest{DepartureCity: "Dakar", ArrivalCity: "Paris", Date: "2026-01-15", PackageType: "colis"},
		},
		{
			name:      "no cities",
			req:       SearchAdsRequest{Date: "2026-01-15", PackageType: "colis"},
			wantField: "departureCity",
		},
		{
			name:      "whitespace-only cities",
			req:       SearchAdsRequest{DepartureCity: "   ", ArrivalCity: "\t"},
			wantField: "departureCity",
		},
		{
			name:      "bad date format",
			req:       SearchAdsRequest{DepartureCity: "Dakar", Date: "15/01/2026"},
			wantField: "date",
		},
		{
			name:      "impossible date",
			req:       SearchAdsRequest{DepartureCity: "Dakar", Date: "2026-02-30"},
			wantField: "date",
		},
		{
			name:      "city too long",
			req:       SearchAdsRequest{DepartureCity: string(make([]byte, 150))},
			wantField: "departureCity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}

func TestSearchAdsRequest_ValidateTrimsCities(t *testing.T) {
	req := SearchAdsRequest{DepartureCity: "  Dakar  ", ArrivalCity: " Paris "}

	require.NoError(t, req.Validate())
	assert.Equal(t, "Dakar", req.DepartureCity)
	assert.Equal(t, "Paris", req.ArrivalCity)
}

func TestToDomainCriteria(t *testing.T) {
	req := SearchAdsRequest{
		DepartureCity: "Dakar",
		ArrivalCity:   "Paris",
		Date:          "2026-01-15",
		PackageType:   " colis ",
	}
	require.NoError(t, req.Validate())

	criteria := ToDomainCriteria(&req)

	assert.Equal(t, "Dakar", criteria.DepartureCity)
	assert.Equal(t, "Paris", criteria.ArrivalCity)
	assert.Equal(t, "colis", criteria.PackageType)
	require.NotNil(t, criteria.Date)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), criteria.Date.UTC())
}

func TestToDomainCriteria_NoDate(t *testing.T) {
	req := SearchAdsRequest{DepartureCity: "Dakar"}
	require.NoError(t, req.Validate())

	criteria := ToDomainCriteria(&req)
	assert.Nil(t, criteria.Date)
}
