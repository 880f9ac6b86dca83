package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCriteria_Validate(t *testing.T) {
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		criteria SearchCriteria
		wantErr  bool
	}{
		{
			name:     "departure city only",
			criteria: SearchCriteria{DepartureCity: "Dakar"},
			wantErr:  false,
		},
		{
			name:     "arrival city only",
			criteria: SearchCriteria{ArrivalCity: "Paris"},
			wantErr:  false,
		},
		{
			name:     "both cities",
			criteria: SearchCriteria{DepartureCity: "Dakar", ArrivalCity: "Paris"},
			wantErr:  false,
		},
		{
			name:     "no city at all",
			criteria: SearchCriteria{Date: &date, PackageType: "colis"},
			wantErr:  true,
		},
		{
			name:     "whitespace-only cities",
			criteria: SearchCriteria{DepartureCity: "  ", ArrivalCity: "\t"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.criteria.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRequest))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchCriteria_Normalize(t *testing.T) {
	c := SearchCriteria{
		DepartureCity: "  Dakar ",
		ArrivalCity:   "Paris\t",
		PackageType:   " colis",
	}
	c.Normalize()

	assert.Equal(t, "Dakar", c.DepartureCity)
	assert.Equal(t, "Paris", c.ArrivalCity)
	assert.Equal(t, "colis", c.PackageType)
}

func TestSearchCriteria_HasDate(t *testing.T) {
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.False(t, (&SearchCriteria{DepartureCity: "Dakar"}).HasDate())
	assert.True(t, (&SearchCriteria{DepartureCity: "Dakar", Date: &date}).HasDate())
}
