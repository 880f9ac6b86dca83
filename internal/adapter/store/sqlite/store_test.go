package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gp-senegal/smart-search/internal/domain"
)

var (
	dakar  = domain.GeoPoint{Latitude: 14.7167, Longitude: -17.4677}
	thies  = domain.GeoPoint{Latitude: 14.7910, Longitude: -16.9256}
	paris  = domain.GeoPoint{Latitude: 48.8566, Longitude: 2.3522}
	ziguin = domain.GeoPoint{Latitude: 12.5833, Longitude: -16.2719}
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(filepath.Join(t.TempDir(), "ads.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	date, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return date
}

func seedAd(t *testing.T, store *Store, ad domain.Ad) domain.Ad {
	t.Helper()

	created, err := store.CreateAd(context.Background(), ad)
	require.NoError(t, err)
	return created
}

func TestStore_CreateAndFind(t *testing.T) {
	store := newTestStore(t)

	arrival := paris
	created := seedAd(t, store, domain.Ad{
		OwnerID:           "owner-1",
		DepartureCity:     "Dakar",
		DepartureLocation: dakar,
		ArrivalCity:       "Paris",
		ArrivalLocation:   &arrival,
		AvailableDate:     mustDate(t, "2026-01-15"),
		PackageTypes:      []string{"colis", "document"},
		PricePerKg:        5000,
		WhatsappNumber:    "+221771234567",
	})
	assert.NotEmpty(t, created.ID)

	ads, err := store.FindAds(context.Background(), domain.AdFilter{})
	require.NoError(t, err)
	require.Len(t, ads, 1)

	got := ads[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Dakar", got.DepartureCity)
	assert.Equal(t, "Paris", got.ArrivalCity)
	require.NotNil(t, got.ArrivalLocation)
	assert.InDelta(t, paris.Latitude, got.ArrivalLocation.Latitude, 1e-6)
	assert.Equal(t, []string{"colis", "document"}, got.PackageTypes)
	assert.Equal(t, "+221771234567", got.WhatsappNumber)
}

func TestStore_FindAds_CityFilterIsCaseInsensitive(t *testing.T) {
	store := newTestStore(t)

	seedAd(t, store, domain.Ad{
		OwnerID:           "owner-1",
		DepartureCity:     "Dakar",
		DepartureLocation: dakar,
		ArrivalCity:       "Paris",
		AvailableDate:     mustDate(t, "2026-01-15"),
		PackageTypes:      []string{"colis"},
	})
	seedAd(t, store, domain.Ad{
		OwnerID:           "owner-2",
		DepartureCity:     "Thiès",
		DepartureLocation: thies,
		ArrivalCity:       "Paris",
		AvailableDate:     mustDate(t, "2026-01-15"),
		PackageTypes:      []string{"colis"},
	})

	ads, err := store.FindAds(context.Background(), domain.AdFilter{DepartureCity: "dakar"})
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "Dakar", ads[0].DepartureCity)
}

func TestStore_FindAds_CityFilterFoldsAccentedCase(t *testing.T) {
	store := newTestStore(t)

	seedAd(t, store, domain.Ad{
		OwnerID:           "owner-1",
		DepartureCity:     "Thiès",
		DepartureLocation: thies,
		ArrivalCity:       "Sédhiou",
		AvailableDate:     mustDate(t, "2026-01-15"),
		PackageTypes:      []string{"colis"},
	})

	// Case folding must cover non-ASCII letters: È ↔ è, É ↔ é.
	tests := []struct {
		name   string
		filter domain.AdFilter
	}{
		{name: "uppercase accented departure", filter: domain.AdFilter{DepartureCity: "THIÈS"}},
		{name: "lowercase departure", filter: domain.AdFilter{DepartureCity: "thiès"}},
		{name: "uppercase accented arrival", filter: domain.AdFilter{ArrivalCity: "SÉDHIOU"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ads, err := store.FindAds(context.Background(), tt.filter)
			require.NoError(t, err)
			require.Len(t, ads, 1)
			assert.Equal(t, "Thiès", ads[0].DepartureCity)
		})
	}
}

func TestStore_FindAds_ExactDate(t *testing.T) {
	store := newTestStore(t)

	seedAd(t, store, domain.Ad{
		OwnerID:           "owner-1",
		DepartureCity:     "Dakar",
		DepartureLocation: dakar,
		AvailableDate:     mustDate(t, "2026-01-15"),
		PackageTypes:      []string{"colis"},
	})
	seedAd(t, store, domain.Ad{
		OwnerID:           "owner-2",
		DepartureCity:     "Dakar",
		DepartureLocation: dakar,
		AvailableDate:     mustDate(t, "2026-01-16"),
		PackageTypes:      []string{"colis"},
	})

	date := mustDate(t, "2026-01-15")
	ads, err := store.FindAds(context.Background(), domain.AdFilter{Date: &date})
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "owner-1", ads[0].OwnerID)
}

func TestStore_FindAds_DateWindow(t *testing.T) {
	store := newTestStore(t)

	for _, day := range []string{"2026-01-10", "2026-01-14", "2026-01-18", "2026-01-25"} {
		seedAd(t, store, domain.Ad{
			OwnerID:           "owner-" + day,
			DepartureCity:     "Dakar",
			DepartureLocation: dakar,
			AvailableDate:     mustDate(t, day),
			PackageTypes:      []string{"colis"},
		})
	}

	ads, err := store.FindAds(context.Background(), domain.AdFilter{
		DateWithin: &domain.DateWindow{Center: mustDate(t, "2026-01-15"), Days: 3},
	})
	require.NoError(t, err)
	require.Len(t, ads, 2)
	assert.Equal(t, "2026-01-14", ads[0].AvailableDate.Format(domain.DateFormat))
	assert.Equal(t, "2026-01-18", ads[1].AvailableDate.Format(domain.DateFormat))
}

func TestStore_FindAds_PackageType(t *testing.T) {
	store := newTestStore(t)

	seedAd(t, store, domain.Ad{
		OwnerID:           "owner-1",
		DepartureCity:     "Dakar",
		DepartureLocation: dakar,
		AvailableDate:     mustDate(t, "2026-01-15"),
		PackageTypes:      []string{"Colis", "Document"},
	})
	seedAd(t, store, domain.Ad{
		OwnerID:           "owner-2",
		DepartureCity:     "Dakar",
		DepartureLocation: dakar,
		AvailableDate:     mustDate(t, "2026-01-15"),
		PackageTypes:      []string{"vehicule"},
	})

	ads, err := store.FindAds(context.Background(), domain.AdFilter{PackageType: "DOCUMENT"})
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "owner-1", ads[0].OwnerID)
}

func TestStore_FindAds_NotBeforeExcludesPastDates(t *testing.T) {
	store := newTestStore(t)

	seedAd(t, store, domain.Ad{
		OwnerID:           "expired",
		DepartureCity:     "Dakar",
		DepartureLocation: dakar,
		AvailableDate:     mustDate(t, "2026-01-05"),
		PackageTypes:      []string{"colis"},
	})
	seedAd(t, store, domain.Ad{
		OwnerID:           "upcoming",
		DepartureCity:     "Dakar",
		DepartureLocation: dakar,
		AvailableDate:     mustDate(t, "2026-01-20"),
		PackageTypes:      []string{"colis"},
	})

	ads, err := store.FindAds(context.Background(), domain.AdFilter{
		NotBefore: mustDate(t, "2026-01-10"),
	})
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "upcoming", ads[0].OwnerID)
}

func TestStore_FindAds_DepartureCircle(t *testing.T) {
	store := newTestStore(t)

	// Thiès is ~59 km from Dakar, Ziguinchor ~270 km.
	seedAd(t, store, domain.Ad{
		OwnerID:           "from-thies",
		DepartureCity:     "Thiès",
		DepartureLocation: thies,
		AvailableDate:     mustDate(t, "2026-01-15"),
		PackageTypes:      []string{"colis"},
	})
	seedAd(t, store, domain.Ad{
		OwnerID:           "from-ziguinchor",
		DepartureCity:     "Ziguinchor",
		DepartureLocation: ziguin,
		AvailableDate:     mustDate(t, "2026-01-15"),
		PackageTypes:      []string{"colis"},
	})

	tests := []struct {
		name     string
		radiusKm float64
		want     []string
	}{
		{name: "tight radius misses both", radiusKm: 20, want: nil},
		{name: "medium radius catches Thiès", radiusKm: 100, want: []string{"from-thies"}},
		{name: "wide radius catches both", radiusKm: 400, want: []string{"from-thies", "from-ziguinchor"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ads, err := store.FindAds(context.Background(), domain.AdFilter{
				DepartureWithin: &domain.GeoCircle{Center: dakar, RadiusKm: tt.radiusKm},
			})
			require.NoError(t, err)

			var owners []string
			for _, ad := range ads {
				owners = append(owners, ad.OwnerID)
			}
			assert.ElementsMatch(t, tt.want, owners)
		})
	}
}

func TestStore_FindAds_ArrivalCircleExcludesAdsWithoutCoordinates(t *testing.T) {
	store := newTestStore(t)

	arrival := paris
	seedAd(t, store, domain.Ad{
		OwnerID:           "with-arrival",
		DepartureCity:     "Dakar",
		DepartureLocation: dakar,
		ArrivalCity:       "Paris",
		ArrivalLocation:   &arrival,
		AvailableDate:     mustDate(t, "2026-01-15"),
		PackageTypes:      []string{"colis"},
	})
	seedAd(t, store, domain.Ad{
		OwnerID:           "no-arrival-coords",
		DepartureCity:     "Dakar",
		DepartureLocation: dakar,
		ArrivalCity:       "Paris",
		AvailableDate:     mustDate(t, "2026-01-15"),
		PackageTypes:      []string{"colis"},
	})

	ads, err := store.FindAds(context.Background(), domain.AdFilter{
		ArrivalWithin: &domain.GeoCircle{Center: paris, RadiusKm: 50},
	})
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "with-arrival", ads[0].OwnerID)
}

func TestStore_FindAds_LimitAppliesAfterGeoFilter(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 5; i++ {
		seedAd(t, store, domain.Ad{
			OwnerID:           "owner",
			DepartureCity:     "Thiès",
			DepartureLocation: thies,
			AvailableDate:     mustDate(t, "2026-01-15"),
			PackageTypes:      []string{"colis"},
		})
	}

	ads, err := store.FindAds(context.Background(), domain.AdFilter{
		DepartureWithin: &domain.GeoCircle{Center: dakar, RadiusKm: 100},
		Limit:           3,
	})
	require.NoError(t, err)
	assert.Len(t, ads, 3)
}

func TestStore_FindAds_CombinedFilters(t *testing.T) {
	store := newTestStore(t)

	seedAd(t, store, domain.Ad{
		OwnerID:           "match",
		DepartureCity:     "Dakar",
		DepartureLocation: dakar,
		ArrivalCity:       "Paris",
		AvailableDate:     mustDate(t, "2026-01-15"),
		PackageTypes:      []string{"colis"},
	})
	seedAd(t, store, domain.Ad{
		OwnerID:           "wrong-type",
		DepartureCity:     "Dakar",
		DepartureLocation: dakar,
		ArrivalCity:       "Paris",
		AvailableDate:     mustDate(t, "2026-01-15"),
		PackageTypes:      []string{"vehicule"},
	})
	seedAd(t, store, domain.Ad{
		OwnerID:           "wrong-arrival",
		DepartureCity:     "Dakar",
		DepartureLocation: dakar,
		ArrivalCity:       "Lyon",
		AvailableDate:     mustDate(t, "2026-01-15"),
		PackageTypes:      []string{"colis"},
	})

	date := mustDate(t, "2026-01-15")
	ads, err := store.FindAds(context.Background(), domain.AdFilter{
		DepartureCity: "Dakar",
		ArrivalCity:   "Paris",
		Date:          &date,
		PackageType:   "colis",
	})
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "match", ads[0].OwnerID)
}

func TestStore_DeleteAd(t *testing.T) {
	store := newTestStore(t)

	created := seedAd(t, store, domain.Ad{
		OwnerID:           "owner-1",
		DepartureCity:     "Dakar",
		DepartureLocation: dakar,
		AvailableDate:     mustDate(t, "2026-01-15"),
		PackageTypes:      []string{"colis"},
	})

	require.NoError(t, store.DeleteAd(context.Background(), created.ID))

	err := store.DeleteAd(context.Background(), created.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStore_Seed(t *testing.T) {
	store := newTestStore(t)

	ads := []domain.Ad{
		{
			ID:                "seed-1",
			OwnerID:           "owner-1",
			DepartureCity:     "Dakar",
			DepartureLocation: dakar,
			ArrivalCity:       "Paris",
			AvailableDate:     mustDate(t, "2026-01-15"),
			PackageTypes:      []string{"colis"},
		},
		{
			ID:                "seed-2",
			OwnerID:           "owner-2",
			DepartureCity:     "Thiès",
			DepartureLocation: thies,
			AvailableDate:     mustDate(t, "2026-01-16"),
			PackageTypes:      []string{"document"},
		},
	}

	data, err := json.Marshal(ads)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	inserted, err := store.Seed(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	// Re-seeding is idempotent for ads that carry an explicit ID.
	inserted, err = store.Seed(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}
