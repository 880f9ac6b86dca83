package domain

// SearchTier identifies the cascade stage that produced a search outcome.
type SearchTier string

// Cascade tiers in strict evaluation order.
const (
	// TierExact matched all supplied criteria literally
	TierExact SearchTier = "exact"

	// TierGeoProximity matched within a radius of the requested cities
	TierGeoProximity SearchTier = "geo_proximity"

	// TierDateProximity matched within a window around the requested date
	TierDateProximity SearchTier = "date_proximity"

	// TierFallback matched on package type only
	TierFallback SearchTier = "fallback"

	// TierEmpty means no ad matched even the loosest filter
	TierEmpty SearchTier = "empty"
)

// RelevanceAnnotation describes how well an ad matches the original search
// criteria. It is computed per search and never stored.
type RelevanceAnnotation struct {
	// Score is the 0-100 relevance score
	Score int `json:"score"`

	// DistanceFromDepartureKm is the great-circle distance between the ad's
	// departure point and the requested departure city, when both are known
	DistanceFromDepartureKm *float64 `json:"distanceFromDepartureKm"`

	// DistanceFromArrivalKm is the equivalent distance on the arrival side
	DistanceFromArrivalKm *float64 `json:"distanceFromArrivalKm"`

	// DateDifferenceDays is the absolute day difference between the
	// requested date and the ad's trip date
	DateDifferenceDays int `json:"dateDifferenceDays"`

	// IsExactMatch is true only for results produced by the exact tier
	IsExactMatch bool `json:"isExactMatch"`
}

// SearchResult pairs an ad with its relevance annotation.
type SearchResult struct {
	Ad        Ad                  `json:"ad"`
	Relevance RelevanceAnnotation `json:"relevance"`
}

// SearchOutcome is the full result of one smart search invocation.
type SearchOutcome struct {
	// Tier is the cascade stage that produced the results
	Tier SearchTier `json:"tier"`

	// HumanMessage explains a relaxed result set to the user (French),
	// nil for exact matches
	HumanMessage *string `json:"humanMessage"`

	// Results is the ordered result sequence, best score first for relaxed tiers
	Results []SearchResult `json:"results"`

	// Total is the number of results returned
	Total int `json:"total"`

	// RadiusKm carries the radius that produced a geo-proximity outcome
	RadiusKm *int `json:"radiusKm,omitempty"`

	// DateWindowDays carries the window that produced a date-proximity outcome
	DateWindowDays *int `json:"dateWindowDays,omitempty"`
}

// NewSearchOutcome builds an outcome for the given tier, normalizing a nil
// result slice to an empty one so the JSON output is always an array.
func NewSearchOutcome(tier SearchTier, results []SearchResult, message *string) SearchOutcome {
	if results == nil {
		results = []SearchResult{}
	}
	return SearchOutcome{
		Tier:         tier,
		HumanMessage: message,
		Results:      results,
		Total:        len(results),
	}
}
