// Package sqlite implements the ad store over a SQLite database.
// Filters arrive as typed predicates and are assembled into parameterized
// SQL here; callers never build query strings.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/gp-senegal/smart-search/internal/domain"
	"github.com/gp-senegal/smart-search/internal/infrastructure/geoutil"
)

// kmPerDegreeLat approximates the north-south span of one degree of latitude.
// Used only for the bounding-box prefilter; exact distances are recomputed
// with the haversine formula after the scan.
const kmPerDegreeLat = 111.0

// Store is a SQLite-backed implementation of domain.AdStore.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at the given path and ensures
// the schema exists.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return s, nil
}

// init creates the ads table and its indexes if they don't exist.
func (s *Store) init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS ads (
			id                  TEXT PRIMARY KEY,
			owner_id            TEXT NOT NULL,
			departure_city      TEXT NOT NULL,
			departure_city_norm TEXT NOT NULL,
			departure_lat       REAL NOT NULL,
			departure_lng       REAL NOT NULL,
			arrival_city        TEXT,
			arrival_city_norm   TEXT,
			arrival_lat         REAL,
			arrival_lng         REAL,
			available_date      TEXT NOT NULL,
			package_types       TEXT NOT NULL,
			price_per_kg        REAL NOT NULL DEFAULT 0,
			whatsapp_number     TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_ads_departure_city ON ads(departure_city_norm);
		CREATE INDEX IF NOT EXISTS idx_ads_arrival_city ON ads(arrival_city_norm);
		CREATE INDEX IF NOT EXISTS idx_ads_available_date ON ads(available_date);
	`)
	return err
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// FindAds implements domain.AdStore. Geo circles are prefiltered with a
// bounding box in SQL, then verified with exact great-circle distances.
func (s *Store) FindAds(ctx context.Context, filter domain.AdFilter) ([]domain.Ad, error) {
	query, args := buildQuery(filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var ads []domain.Ad
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan row: %v", domain.ErrStoreUnavailable, err)
		}
		if !withinCircles(ad, filter) {
			continue
		}
		ads = append(ads, ad)
		if filter.Limit > 0 && len(ads) == filter.Limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	return ads, nil
}

// buildQuery assembles the parameterized SELECT for a filter.
func buildQuery(filter domain.AdFilter) (string, []any) {
	var conds []string
	var args []any

	// City equality compares the *_norm columns, folded with Go's
	// Unicode-aware ToLower at write time. SQLite's NOCASE collation only
	// folds ASCII, which would miss accented names like "Thiès".
	if filter.DepartureCity != "" {
		conds = append(conds, "departure_city_norm = ?")
		args = append(args, strings.ToLower(filter.DepartureCity))
	}
	if filter.ArrivalCity != "" {
		conds = append(conds, "arrival_city_norm = ?")
		args = append(args, strings.ToLower(filter.ArrivalCity))
	}

	if circle := filter.DepartureWithin; circle != nil {
		c, a := boundingBox("departure_lat", "departure_lng", *circle)
		conds = append(conds, c)
		args = append(args, a...)
	}
	if circle := filter.ArrivalWithin; circle != nil {
		c, a := boundingBox("arrival_lat", "arrival_lng", *circle)
		conds = append(conds, c)
		args = append(args, a...)
	}

	if filter.Date != nil {
		conds = append(conds, "available_date = ?")
		args = append(args, filter.Date.Format(domain.DateFormat))
	}
	if window := filter.DateWithin; window != nil {
		conds = append(conds, "available_date BETWEEN ? AND ?")
		args = append(args,
			window.Center.AddDate(0, 0, -window.Days).Format(domain.DateFormat),
			window.Center.AddDate(0, 0, window.Days).Format(domain.DateFormat),
		)
	}

	if filter.PackageType != "" {
		// package_types holds a lowercase JSON array; containment is a
		// quoted-substring check.
		conds = append(conds, "instr(lower(package_types), ?) > 0")
		args = append(args, `"`+strings.ToLower(filter.PackageType)+`"`)
	}

	if !filter.NotBefore.IsZero() {
		conds = append(conds, "available_date >= ?")
		args = append(args, filter.NotBefore.Format(domain.DateFormat))
	}

	query := `SELECT id, owner_id, departure_city, departure_lat, departure_lng,
		arrival_city, arrival_lat, arrival_lng, available_date, package_types,
		price_per_kg, whatsapp_number FROM ads`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY available_date ASC, id ASC"

	return query, args
}

// boundingBox returns a lat/lng box condition enclosing the circle. The box
// over-selects near the poles; withinCircles removes the excess.
func boundingBox(latCol, lngCol string, circle domain.GeoCircle) (string, []any) {
	dLat := circle.RadiusKm / kmPerDegreeLat
	cosLat := math.Cos(circle.Center.Latitude * math.Pi / 180)
	dLng := 180.0
	if cosLat > 1e-6 {
		dLng = circle.RadiusKm / (kmPerDegreeLat * cosLat)
	}

	cond := fmt.Sprintf("(%s BETWEEN ? AND ? AND %s BETWEEN ? AND ?)", latCol, lngCol)
	return cond, []any{
		circle.Center.Latitude - dLat, circle.Center.Latitude + dLat,
		circle.Center.Longitude - dLng, circle.Center.Longitude + dLng,
	}
}

// withinCircles verifies the exact great-circle constraints a bounding box
// can only approximate. An ad without arrival coordinates cannot satisfy an
// arrival circle.
func withinCircles(ad domain.Ad, filter domain.AdFilter) bool {
	if circle := filter.DepartureWithin; circle != nil {
		if geoutil.DistanceKm(circle.Center, ad.DepartureLocation) > circle.RadiusKm {
			return false
		}
	}
	if circle := filter.ArrivalWithin; circle != nil {
		if ad.ArrivalLocation == nil {
			return false
		}
		if geoutil.DistanceKm(circle.Center, *ad.ArrivalLocation) > circle.RadiusKm {
			return false
		}
	}
	return true
}

// scanAd maps one result row to a domain Ad.
func scanAd(rows *sql.Rows) (domain.Ad, error) {
	var (
		ad           domain.Ad
		arrivalCity  sql.NullString
		arrivalLat   sql.NullFloat64
		arrivalLng   sql.NullFloat64
		dateStr      string
		typesJSON    string
		whatsapp     sql.NullString
	)

	err := rows.Scan(&ad.ID, &ad.OwnerID, &ad.DepartureCity,
		&ad.DepartureLocation.Latitude, &ad.DepartureLocation.Longitude,
		&arrivalCity, &arrivalLat, &arrivalLng, &dateStr, &typesJSON,
		&ad.PricePerKg, &whatsapp)
	if err != nil {
		return domain.Ad{}, err
	}

	if arrivalCity.Valid {
		ad.ArrivalCity = arrivalCity.String
	}
	if arrivalLat.Valid && arrivalLng.Valid {
		ad.ArrivalLocation = &domain.GeoPoint{Latitude: arrivalLat.Float64, Longitude: arrivalLng.Float64}
	}
	if whatsapp.Valid {
		ad.WhatsappNumber = whatsapp.String
	}

	ad.AvailableDate, err = time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return domain.Ad{}, fmt.Errorf("parse available_date %q: %v", dateStr, err)
	}

	if err := json.Unmarshal([]byte(typesJSON), &ad.PackageTypes); err != nil {
		return domain.Ad{}, fmt.Errorf("parse package_types %q: %v", typesJSON, err)
	}

	return ad, nil
}

// CreateAd inserts an ad, generating an ID when none is set. Writes belong
// to the ad-management subsystem; the search service uses this only for
// seeding and tests.
func (s *Store) CreateAd(ctx context.Context, ad domain.Ad) (domain.Ad, error) {
	if ad.ID == "" {
		ad.ID = uuid.New().String()
	}

	types := make([]string, len(ad.PackageTypes))
	for i, t := range ad.PackageTypes {
		types[i] = strings.ToLower(t)
	}
	typesJSON, err := json.Marshal(types)
	if err != nil {
		return domain.Ad{}, fmt.Errorf("encode package types: %w", err)
	}

	var arrivalCity, arrivalCityNorm, whatsapp any
	var arrivalLat, arrivalLng any
	if ad.ArrivalCity != "" {
		arrivalCity = ad.ArrivalCity
		arrivalCityNorm = strings.ToLower(ad.ArrivalCity)
	}
	if ad.ArrivalLocation != nil {
		arrivalLat = ad.ArrivalLocation.Latitude
		arrivalLng = ad.ArrivalLocation.Longitude
	}
	if ad.WhatsappNumber != "" {
		whatsapp = ad.WhatsappNumber
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO ads (id, owner_id, departure_city, departure_city_norm,
			departure_lat, departure_lng, arrival_city, arrival_city_norm,
			arrival_lat, arrival_lng, available_date, package_types,
			price_per_kg, whatsapp_number)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ad.ID, ad.OwnerID, ad.DepartureCity, strings.ToLower(ad.DepartureCity),
		ad.DepartureLocation.Latitude, ad.DepartureLocation.Longitude,
		arrivalCity, arrivalCityNorm, arrivalLat, arrivalLng,
		ad.AvailableDate.Format(domain.DateFormat), string(typesJSON),
		ad.PricePerKg, whatsapp)
	if err != nil {
		return domain.Ad{}, fmt.Errorf("%w: insert ad: %v", domain.ErrStoreUnavailable, err)
	}

	return ad, nil
}

// DeleteAd removes an ad by ID. Used by the ad-management subsystem and tests.
func (s *Store) DeleteAd(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM ads WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%w: delete ad: %v", domain.ErrStoreUnavailable, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Seed loads ads from a JSON file into the store, skipping rows whose ID
// already exists. The file holds an array of ads in the domain JSON shape.
func (s *Store) Seed(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var ads []domain.Ad
	if err := json.Unmarshal(data, &ads); err != nil {
		return 0, fmt.Errorf("parse seed file: %w", err)
	}

	inserted := 0
	for _, ad := range ads {
		if ad.ID != "" {
			var exists int
			if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM ads WHERE id = ?", ad.ID).Scan(&exists); err == nil && exists > 0 {
				continue
			}
		}
		if _, err := s.CreateAd(ctx, ad); err != nil {
			return inserted, err
		}
		inserted++
	}

	return inserted, nil
}

// Ensure Store implements domain.AdStore at compile time.
var _ domain.AdStore = (*Store)(nil)
