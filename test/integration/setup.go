// Package integration contains end-to-end tests that exercise the full
// search stack: HTTP handler, tiered resolver, real SQLite store, and a
// configurable mock geocoder.
package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	searchhttp "github.com/gp-senegal/smart-search/internal/adapter/http"
	"github.com/gp-senegal/smart-search/internal/adapter/store/sqlite"
	"github.com/gp-senegal/smart-search/internal/domain"
	"github.com/gp-senegal/smart-search/internal/infrastructure/timeutil"
	"github.com/gp-senegal/smart-search/internal/usecase"
	"github.com/gp-senegal/smart-search/test/mock"
	"github.com/gp-senegal/smart-search/test/testutil"
)

// frozenNow pins "today" for every integration test.
const frozenNow = "2026-01-10T08:00:00Z"

// env bundles everything an integration test needs.
type env struct {
	store    *sqlite.Store
	geocoder *mock.Geocoder
	resolver usecase.SearchResolver
	echo     *echo.Echo
}

// newEnv builds a full stack on a fresh temp database. The mock geocoder
// knows the cities the tests use; everything else is the production wiring.
func newEnv(t *testing.T) *env {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "ads.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	geocoder := mock.NewGeocoder().
		WithCity("Dakar", testutil.Dakar).
		WithCity("Thiès", testutil.Thies).
		WithCity("Saint-Louis", testutil.SaintLouis).
		WithCity("Ziguinchor", testutil.Ziguinchor).
		WithCity("Paris", testutil.Paris).
		WithCity("Lyon", testutil.Lyon)

	clock := timeutil.NewMockClockFromString(frozenNow)
	resolver := usecase.NewSearchResolver(store, geocoder, clock, nil)

	e := echo.New()
	handler := searchhttp.NewSearchHandler(resolver)
	searchhttp.RegisterRoutes(e, handler)

	return &env{
		store:    store,
		geocoder: geocoder,
		resolver: resolver,
		echo:     e,
	}
}

// seed inserts ads into the environment's store.
func (e *env) seed(t *testing.T, ads ...domain.Ad) {
	t.Helper()

	for _, ad := range ads {
		_, err := e.store.CreateAd(context.Background(), ad)
		require.NoError(t, err)
	}
}
