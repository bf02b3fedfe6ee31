// Package db provides SQL storage for internship listings and candidate profiles.
// PostgreSQL is reached through pgxpool; SQLite files through database/sql.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/internship-matcher/internal/types"
)

// Supported URL schemes.
const (
	schemePostgres   = "postgres://"
	schemePostgreSQL = "postgresql://"
	schemeSQLite     = "sqlite://"
	schemeFile       = "file:"
)

// backend is implemented once per SQL dialect.
type backend interface {
	migrate(ctx context.Context) error
	listings(ctx context.Context, category string) ([][]byte, error)
	listing(ctx context.Context, id string) ([]byte, error)
	upsertListing(ctx context.Context, id, category string, data []byte) error
	profile(ctx context.Context, id string) ([]byte, error)
	upsertProfile(ctx context.Context, id string, data []byte) error
	close()
}

// DB stores listings and profiles as JSON documents keyed by ID.
type DB struct {
	backend backend
	driver  string
}

// Open connects to the database named by databaseURL and creates the schema
// if it does not exist. postgres:// URLs are normalised to postgresql://.
func Open(ctx context.Context, databaseURL string) (*DB, error) {
	driver, dsn, err := ParseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	var b backend
	switch driver {
	case DriverPostgres:
		b, err = connectPostgres(ctx, dsn)
	case DriverSQLite:
		b, err = openSQLite(ctx, dsn)
	}
	if err != nil {
		return nil, err
	}

	if err := b.migrate(ctx); err != nil {
		b.close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{backend: b, driver: driver}, nil
}

// Driver names returned by ParseURL.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ParseURL maps a database URL to a driver name and a driver-specific DSN.
// sqlite:///./app.db becomes the path ./app.db and sqlite:////abs.db becomes /abs.db.
func ParseURL(databaseURL string) (driver, dsn string, err error) {
	u := strings.TrimSpace(databaseURL)
	switch {
	case u == "":
		return "", "", fmt.Errorf("database URL is empty")
	case strings.HasPrefix(u, schemePostgres):
		return DriverPostgres, schemePostgreSQL + strings.TrimPrefix(u, schemePostgres), nil
	case strings.HasPrefix(u, schemePostgreSQL):
		return DriverPostgres, u, nil
	case strings.HasPrefix(u, schemeSQLite):
		path := strings.TrimPrefix(u, schemeSQLite)
		path = strings.TrimPrefix(path, "/")
		if path == "" {
			return "", "", fmt.Errorf("sqlite URL has no path: %s", databaseURL)
		}
		return DriverSQLite, path, nil
	case strings.HasPrefix(u, schemeFile):
		return DriverSQLite, u, nil
	default:
		return "", "", fmt.Errorf("unsupported database URL scheme: %s", databaseURL)
	}
}

// Driver returns the driver name in use.
func (db *DB) Driver() string {
	return db.driver
}

// Close releases the underlying connections.
func (db *DB) Close() {
	if db.backend != nil {
		db.backend.close()
	}
}

// Listings returns all listings, restricted to category (case-insensitive) when
// it is non-empty. Listings are returned in ID order.
func (db *DB) Listings(ctx context.Context, category string) ([]types.Listing, error) {
	rows, err := db.backend.listings(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}

	listings := make([]types.Listing, 0, len(rows))
	for _, data := range rows {
		var l types.Listing
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("failed to decode listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// Listing returns the listing with the given ID, or nil when it does not exist.
func (db *DB) Listing(ctx context.Context, id string) (*types.Listing, error) {
	data, err := db.backend.listing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get listing %s: %w", id, err)
	}
	if data == nil {
		return nil, nil
	}

	var l types.Listing
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to decode listing %s: %w", id, err)
	}
	return &l, nil
}

// SaveListing inserts or replaces a listing.
func (db *DB) SaveListing(ctx context.Context, l *types.Listing) error {
	if l == nil || l.ID == "" {
		return fmt.Errorf("listing ID is required")
	}
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to marshal listing: %w", err)
	}
	if err := db.backend.upsertListing(ctx, l.ID, l.Category, data); err != nil {
		return fmt.Errorf("failed to save listing %s: %w", l.ID, err)
	}
	return nil
}

// SaveListings saves each listing in order and returns how many were saved
// before the first failure.
func (db *DB) SaveListings(ctx context.Context, listings []types.Listing) (int, error) {
	for i := range listings {
		if err := db.SaveListing(ctx, &listings[i]); err != nil {
			return i, err
		}
	}
	return len(listings), nil
}

// Profile returns the profile with the given ID, or nil when it does not exist.
func (db *DB) Profile(ctx context.Context, id string) (*types.CandidateProfile, error) {
	data, err := db.backend.profile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %s: %w", id, err)
	}
	if data == nil {
		return nil, nil
	}

	var p types.CandidateProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", id, err)
	}
	return &p, nil
}

// SaveProfile inserts or replaces a profile.
func (db *DB) SaveProfile(ctx context.Context, p *types.CandidateProfile) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("profile ID is required")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := db.backend.upsertProfile(ctx, p.ID, data); err != nil {
		return fmt.Errorf("failed to save profile %s: %w", p.ID, err)
	}
	return nil
}

// ProfileSource returns a provider that always loads the profile with the given ID.
func (db *DB) ProfileSource(id string) *ProfileSource {
	return &ProfileSource{db: db, id: id}
}

// ProfileSource adapts a stored profile to the engine's profile provider.
type ProfileSource struct {
	db *DB
	id string
}

// Profile loads the stored profile. A missing profile yields (nil, nil).
func (s *ProfileSource) Profile(ctx context.Context) (*types.CandidateProfile, error) {
	return s.db.Profile(ctx, s.id)
}
