package http

import (
	"github.com/gp-senegal/smart-search/internal/domain"
)

// SearchResponseDTO is the data transfer object for search responses.
// It matches the expected API output format with snake_case fields.
type SearchResponseDTO struct {
	SearchCriteria SearchCriteriaDTO `json:"search_criteria"`
	Tier           string            `json:"tier"`
	Message        *string           `json:"message,omitempty"`
	RadiusKm       *int              `json:"radius_km,omitempty"`
	DateWindowDays *int              `json:"date_window_days,omitempty"`
	Total          int               `json:"total"`
	Results        []SearchResultDTO `json:"results"`
}

// SearchCriteriaDTO echoes the criteria the search was resolved against.
type SearchCriteriaDTO struct {
	DepartureCity string `json:"departure_city,omitempty"`
	ArrivalCity   string `json:"arrival_city,omitempty"`
	Date          string `json:"date,omitempty"`
	PackageType   string `json:"package_type,omitempty"`
}

// SearchResultDTO pairs an ad with its relevance annotation.
type SearchResultDTO struct {
	Ad        AdDTO        `json:"ad"`
	Relevance RelevanceDTO `json:"relevance"`
}

// AdDTO is the data transfer object for traveler ads.
type AdDTO struct {
	ID                string       `json:"id"`
	OwnerID           string       `json:"owner_id"`
	DepartureCity     string       `json:"departure_city"`
	DepartureLocation GeoPointDTO  `json:"departure_location"`
	ArrivalCity       string       `json:"arrival_city,omitempty"`
	ArrivalLocation   *GeoPointDTO `json:"arrival_location,omitempty"`
	AvailableDate     string       `json:"available_date"`
	PackageTypes      []string     `json:"package_types"`
	PricePerKg        float64      `json:"price_per_kg"`
	WhatsappNumber    string       `json:"whatsapp_number,omitempty"`
}

// GeoPointDTO represents a coordinate pair.
type GeoPointDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RelevanceDTO explains why an ad was returned and how well it matches.
type RelevanceDTO struct {
	Score                   int      `json:"score"`
	DistanceFromDepartureKm *float64 `json:"distance_from_departure_km,omitempty"`
	DistanceFromArrivalKm   *float64 `json:"distance_from_arrival_km,omitempty"`
	DateDifferenceDays      int      `json:"date_difference_days"`
	IsExactMatch            bool     `json:"is_exact_match"`
}

// ToSearchResponseDTO converts a domain search outcome to the API shape.
func ToSearchResponseDTO(criteria domain.SearchCriteria, outcome *domain.SearchOutcome) *SearchResponseDTO {
	results := make([]SearchResultDTO, 0, len(outcome.Results))
	for _, r := range outcome.Results {
		results = append(results, SearchResultDTO{
			Ad:        toAdDTO(r.Ad),
			Relevance: toRelevanceDTO(r.Relevance),
		})
	}

	return &SearchResponseDTO{
		SearchCriteria: toCriteriaDTO(criteria),
		Tier:           string(outcome.Tier),
		Message:        outcome.HumanMessage,
		RadiusKm:       outcome.RadiusKm,
		DateWindowDays: outcome.DateWindowDays,
		Total:          outcome.Total,
		Results:        results,
	}
}

func toCriteriaDTO(criteria domain.SearchCriteria) SearchCriteriaDTO {
	dto := SearchCriteriaDTO{
		DepartureCity: criteria.DepartureCity,
		ArrivalCity:   criteria.ArrivalCity,
		PackageType:   criteria.PackageType,
	}
	if criteria.Date != nil {
		dto.Date = criteria.Date.Format(domain.DateFormat)
	}
	return dto
}

func toAdDTO(ad domain.Ad) AdDTO {
	dto := AdDTO{
		ID:            ad.ID,
		OwnerID:       ad.OwnerID,
		DepartureCity: ad.DepartureCity,
		DepartureLocation: GeoPointDTO{
			Latitude:  ad.DepartureLocation.Latitude,
			Longitude: ad.DepartureLocation.Longitude,
		},
		ArrivalCity:    ad.ArrivalCity,
		AvailableDate:  ad.AvailableDate.Format(domain.DateFormat),
		PackageTypes:   ad.PackageTypes,
		PricePerKg:     ad.PricePerKg,
		WhatsappNumber: ad.WhatsappNumber,
	}

	if ad.ArrivalLocation != nil {
		dto.ArrivalLocation = &GeoPointDTO{
			Latitude:  ad.ArrivalLocation.Latitude,
			Longitude: ad.ArrivalLocation.Longitude,
		}
	}

	return dto
}

func toRelevanceDTO(r domain.RelevanceAnnotation) RelevanceDTO {
	return RelevanceDTO{
		Score:                   r.Score,
		DistanceFromDepartureKm: r.DistanceFromDepartureKm,
		DistanceFromArrivalKm:   r.DistanceFromArrivalKm,
		DateDifferenceDays:      r.DateDifferenceDays,
		IsExactMatch:            r.IsExactMatch,
	}
}
