package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gp-senegal/smart-search/internal/domain"
	"github.com/gp-senegal/smart-search/internal/infrastructure/geoutil"
	"github.com/gp-senegal/smart-search/internal/infrastructure/timeutil"
)

// Cascade defaults. Radii and windows are tried in ascending order; the
// first step that yields results wins.
var (
	// DefaultGeoRadiiKm are the geo-proximity radius thresholds.
	DefaultGeoRadiiKm = []int{20, 50, 100}

	// DefaultDateWindowsDays are the date-proximity windows (+/- days).
	DefaultDateWindowsDays = []int{1, 3, 7}
)

// DefaultFallbackLimit caps the fallback tier's result count.
const DefaultFallbackLimit = 20

// User-facing messages for relaxed result sets (French, per product copy).
const (
	msgGeoProximity  = "Aucun trajet exact trouvé. Voici des trajets à moins de %d km de votre recherche."
	msgDateProximity = "Aucun trajet à la date demandée. Voici des trajets à plus ou moins %d jours."
	msgFallback      = "Aucun trajet proche de vos critères. Voici d'autres annonces susceptibles de vous intéresser."
	msgEmpty         = "Aucune annonce disponible pour le moment. Créez une alerte pour être averti dès qu'un trajet correspond à votre recherche."
)

// SearchResolver defines the interface for smart search operations.
type SearchResolver interface {
	// Search runs the tiered cascade for the given criteria and returns the
	// outcome of the first non-empty tier. Precondition failures (no city
	// supplied, a city that fails to geocode) are returned as errors, not
	// folded into the outcome.
	Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchOutcome, error)
}

// Config contains configuration options for the resolver.
type Config struct {
	GeoRadiiKm      []int
	DateWindowsDays []int
	FallbackLimit   int
}

// DefaultConfig returns the default cascade configuration.
func DefaultConfig() Config {
	return Config{
		GeoRadiiKm:      DefaultGeoRadiiKm,
		DateWindowsDays: DefaultDateWindowsDays,
		FallbackLimit:   DefaultFallbackLimit,
	}
}

// searchResolver implements SearchResolver as a deterministic five-tier
// cascade: exact, geo proximity, date proximity, fallback, empty.
type searchResolver struct {
	store    domain.AdStore
	geocoder domain.Geocoder
	clock    timeutil.Clock
	cfg      Config
}

// NewSearchResolver creates a SearchResolver with the given dependencies.
// If config is nil, default cascade parameters are used.
func NewSearchResolver(store domain.AdStore, geocoder domain.Geocoder, clock timeutil.Clock, config *Config) SearchResolver {
	cfg := DefaultConfig()
	if config != nil {
		if len(config.GeoRadiiKm) > 0 {
			cfg.GeoRadiiKm = config.GeoRadiiKm
		}
		if len(config.DateWindowsDays) > 0 {
			cfg.DateWindowsDays = config.DateWindowsDays
		}
		if config.FallbackLimit > 0 {
			cfg.FallbackLimit = config.FallbackLimit
		}
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}

	return &searchResolver{
		store:    store,
		geocoder: geocoder,
		clock:    clock,
		cfg:      cfg,
	}
}

// resolvedCriteria bundles the request criteria with the geocoded points so
// every tier reuses the same coordinates. At most two geocoding calls happen
// per search, before any tier runs.
type resolvedCriteria struct {
	domain.SearchCriteria
	departurePoint *domain.GeoPoint
	arrivalPoint   *domain.GeoPoint
}

// Search implements SearchResolver.
func (r *searchResolver) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchOutcome, error) {
	criteria.Normalize()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	resolved, err := r.resolveCities(ctx, criteria)
	if err != nil {
		return nil, err
	}

	today := timeutil.Today(r.clock)

	outcome, err := r.exactTier(ctx, resolved, today)
	if err != nil || outcome != nil {
		return outcome, err
	}

	outcome, err = r.geoProximityTier(ctx, resolved, today)
	if err != nil || outcome != nil {
		return outcome, err
	}

	outcome, err = r.dateProximityTier(ctx, resolved, today)
	if err != nil || outcome != nil {
		return outcome, err
	}

	outcome, err = r.fallbackTier(ctx, resolved, today)
	if err != nil || outcome != nil {
		return outcome, err
	}

	msg := msgEmpty
	empty := domain.NewSearchOutcome(domain.TierEmpty, nil, &msg)
	return &empty, nil
}

// resolveCities geocodes the supplied city names, departure first. A city
// that fails to resolve aborts the whole search; the filters never degrade.
func (r *searchResolver) resolveCities(ctx context.Context, criteria domain.SearchCriteria) (resolvedCriteria, error) {
	resolved := resolvedCriteria{SearchCriteria: criteria}

	if criteria.DepartureCity != "" {
		point, err := r.geocoder.Resolve(ctx, criteria.DepartureCity)
		if err != nil {
			return resolved, fmt.Errorf("resolve departure city: %w", err)
		}
		resolved.departurePoint = &point
	}

	if criteria.ArrivalCity != "" {
		point, err := r.geocoder.Resolve(ctx, criteria.ArrivalCity)
		if err != nil {
			return resolved, fmt.Errorf("resolve arrival city: %w", err)
		}
		resolved.arrivalPoint = &point
	}

	return resolved, nil
}

// exactTier queries for ads matching every supplied criterion literally.
// Exact matches are unconditionally scored 100, overriding the scorer.
func (r *searchResolver) exactTier(ctx context.Context, rc resolvedCriteria, today time.Time) (*domain.SearchOutcome, error) {
	filter := domain.AdFilter{
		DepartureCity: rc.DepartureCity,
		ArrivalCity:   rc.ArrivalCity,
		Date:          rc.Date,
		PackageType:   rc.PackageType,
		NotBefore:     today,
	}

	ads, err := r.store.FindAds(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("exact tier query: %w", err)
	}
	if len(ads) == 0 {
		return nil, nil
	}

	zero := 0.0
	results := make([]domain.SearchResult, len(ads))
	for i, ad := range ads {
		results[i] = domain.SearchResult{
			Ad: ad,
			Relevance: domain.RelevanceAnnotation{
				Score:                   maxScore,
				DistanceFromDepartureKm: &zero,
				DistanceFromArrivalKm:   &zero,
				DateDifferenceDays:      0,
				IsExactMatch:            true,
			},
		}
	}

	outcome := domain.NewSearchOutcome(domain.TierExact, results, nil)
	return &outcome, nil
}

// geoProximityTier widens the city constraints to circles of increasing
// radius around the geocoded points. Date and package-type filters from the
// request stay applied at every radius.
func (r *searchResolver) geoProximityTier(ctx context.Context, rc resolvedCriteria, today time.Time) (*domain.SearchOutcome, error) {
	if rc.departurePoint == nil && rc.arrivalPoint == nil {
		return nil, nil
	}

	for _, radius := range r.cfg.GeoRadiiKm {
		filter := domain.AdFilter{
			Date:        rc.Date,
			PackageType: rc.PackageType,
			NotBefore:   today,
		}
		if rc.departurePoint != nil {
			filter.DepartureWithin = &domain.GeoCircle{Center: *rc.departurePoint, RadiusKm: float64(radius)}
		}
		if rc.arrivalPoint != nil {
			filter.ArrivalWithin = &domain.GeoCircle{Center: *rc.arrivalPoint, RadiusKm: float64(radius)}
		}

		ads, err := r.store.FindAds(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("geo tier query (radius %d km): %w", radius, err)
		}
		if len(ads) == 0 {
			continue
		}

		results := r.scoreAndSort(ads, rc)
		msg := fmt.Sprintf(msgGeoProximity, radius)
		outcome := domain.NewSearchOutcome(domain.TierGeoProximity, results, &msg)
		matchedRadius := radius
		outcome.RadiusKm = &matchedRadius
		return &outcome, nil
	}

	return nil, nil
}

// dateProximityTier relaxes the date constraint to widening +/- day windows,
// keeping the literal city and package-type filters. Skipped entirely when no
// date was requested.
func (r *searchResolver) dateProximityTier(ctx context.Context, rc resolvedCriteria, today time.Time) (*domain.SearchOutcome, error) {
	if !rc.HasDate() {
		return nil, nil
	}

	for _, window := range r.cfg.DateWindowsDays {
		filter := domain.AdFilter{
			DepartureCity: rc.DepartureCity,
			ArrivalCity:   rc.ArrivalCity,
			DateWithin:    &domain.DateWindow{Center: *rc.Date, Days: window},
			PackageType:   rc.PackageType,
			NotBefore:     today,
		}

		ads, err := r.store.FindAds(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("date tier query (window %d days): %w", window, err)
		}
		if len(ads) == 0 {
			continue
		}

		results := r.scoreAndSort(ads, rc)
		msg := fmt.Sprintf(msgDateProximity, window)
		outcome := domain.NewSearchOutcome(domain.TierDateProximity, results, &msg)
		matchedWindow := window
		outcome.DateWindowDays = &matchedWindow
		return &outcome, nil
	}

	return nil, nil
}

// fallbackTier ignores cities and date entirely, keeping only the package
// type. Results are scored against the original criteria and truncated to
// the configured cap.
func (r *searchResolver) fallbackTier(ctx context.Context, rc resolvedCriteria, today time.Time) (*domain.SearchOutcome, error) {
	filter := domain.AdFilter{
		PackageType: rc.PackageType,
		NotBefore:   today,
	}

	ads, err := r.store.FindAds(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("fallback tier query: %w", err)
	}
	if len(ads) == 0 {
		return nil, nil
	}

	results := r.scoreAndSort(ads, rc)
	if len(results) > r.cfg.FallbackLimit {
		results = results[:r.cfg.FallbackLimit]
	}

	msg := msgFallback
	outcome := domain.NewSearchOutcome(domain.TierFallback, results, &msg)
	return &outcome, nil
}

// scoreAndSort annotates every ad with its relevance against the original
// criteria and orders the results by descending score. The sort is stable so
// equally scored ads keep their store order.
func (r *searchResolver) scoreAndSort(ads []domain.Ad, rc resolvedCriteria) []domain.SearchResult {
	results := make([]domain.SearchResult, len(ads))
	for i, ad := range ads {
		results[i] = domain.SearchResult{
			Ad:        ad,
			Relevance: r.annotate(ad, rc),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance.Score > results[j].Relevance.Score
	})

	return results
}

// annotate computes the relevance annotation for one ad: great-circle
// distances where both sides have coordinates, the day-difference magnitude,
// and the composite score.
func (r *searchResolver) annotate(ad domain.Ad, rc resolvedCriteria) domain.RelevanceAnnotation {
	var distances Distances

	if rc.departurePoint != nil {
		d := geoutil.DistanceKm(*rc.departurePoint, ad.DepartureLocation)
		distances.DepartureKm = &d
	}
	if rc.arrivalPoint != nil && ad.ArrivalLocation != nil {
		d := geoutil.DistanceKm(*rc.arrivalPoint, *ad.ArrivalLocation)
		distances.ArrivalKm = &d
	}

	// The annotation reports how many days off the trip is, regardless of
	// direction: an ad five days early and one five days late both show 5.
	dateDiff := 0
	if rc.HasDate() {
		dateDiff = timeutil.DaysBetween(*rc.Date, ad.AvailableDate)
		if dateDiff < 0 {
			dateDiff = -dateDiff
		}
	}

	return domain.RelevanceAnnotation{
		Score:                   Score(ad, rc.SearchCriteria, distances),
		DistanceFromDepartureKm: distances.DepartureKm,
		DistanceFromArrivalKm:   distances.ArrivalKm,
		DateDifferenceDays:      dateDiff,
		IsExactMatch:            false,
	}
}

// dayDifference is the signed day difference between the requested date and
// the ad's trip date, used by the scorer's date component.
func dayDifference(ad domain.Ad, criteria domain.SearchCriteria) int {
	return timeutil.DaysBetween(*criteria.Date, ad.AvailableDate)
}

// Ensure searchResolver implements SearchResolver at compile time.
var _ SearchResolver = (*searchResolver)(nil)
