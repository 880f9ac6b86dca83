// Package usecase contains the business logic for the smart search system:
// the relevance scorer and the tiered search resolver that cascades through
// progressively looser matching criteria.
package usecase

import (
	"math"

	"github.com/gp-senegal/smart-search/internal/domain"
)

// Scoring component caps. Departure and arrival city matches carry the most
// weight; the date component breaks ties between equally located trips.
const (
	// cityMatchPoints is awarded for an exact (case-insensitive) city match.
	cityMatchPoints = 40

	// proximityMaxPoints is the ceiling for a distance-based city component.
	// It decays linearly to zero at proximityCutoffKm.
	proximityMaxPoints = 30

	// proximityCutoffKm is the distance at which a proximity component
	// reaches zero.
	proximityCutoffKm = 100.0

	// dateMatchPoints is awarded when the trip date equals the requested date.
	dateMatchPoints = 20

	// datePenaltyPerDay is subtracted from dateMatchPoints per day of
	// difference, reaching zero at a 10-day gap.
	datePenaltyPerDay = 2

	// maxScore bounds the final score.
	maxScore = 100
)

// Distances carries the precomputed great-circle distances between an ad's
// endpoints and the requested cities. A nil entry means the distance is
// unknown (city not requested, or the ad has no coordinates for that side).
type Distances struct {
	DepartureKm *float64
	ArrivalKm   *float64
}

// Score computes the 0-100 relevance of an ad against the original search
// criteria. Components are additive: up to 40 for each city side, up to 20
// for the date. A criterion absent from the criteria contributes nothing, so
// partial searches cap below 100 even for perfect results.
func Score(ad domain.Ad, criteria domain.SearchCriteria, distances Distances) int {
	total := 0.0

	total += cityComponent(ad.DepartsFrom(criteria.DepartureCity), criteria.DepartureCity, distances.DepartureKm)
	total += cityComponent(ad.ArrivesAt(criteria.ArrivalCity), criteria.ArrivalCity, distances.ArrivalKm)
	total += dateComponent(ad, criteria)

	score := int(math.Round(total))
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

// cityComponent scores one city side of the criteria: full points for a name
// match, a distance-decayed contribution otherwise, nothing when the city was
// not requested or no distance is known.
func cityComponent(nameMatches bool, requestedCity string, distanceKm *float64) float64 {
	if requestedCity == "" {
		return 0
	}
	if nameMatches {
		return cityMatchPoints
	}
	if distanceKm == nil {
		return 0
	}
	return math.Max(0, proximityMaxPoints*(1-*distanceKm/proximityCutoffKm))
}

// dateComponent scores the date criterion: full points for the exact date,
// linear decay per day of difference, nothing when no date was requested.
func dateComponent(ad domain.Ad, criteria domain.SearchCriteria) float64 {
	if criteria.Date == nil || ad.AvailableDate.IsZero() {
		return 0
	}
	dayDiff := absDayDifference(ad, criteria)
	if dayDiff == 0 {
		return dateMatchPoints
	}
	return math.Max(0, float64(dateMatchPoints-datePenaltyPerDay*dayDiff))
}

func absDayDifference(ad domain.Ad, criteria domain.SearchCriteria) int {
	diff := dayDifference(ad, criteria)
	if diff < 0 {
		return -diff
	}
	return diff
}
