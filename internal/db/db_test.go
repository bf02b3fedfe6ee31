package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/internship-matcher/internal/types"
)

func openMemory(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), "sqlite:///:memory:")
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func TestParseURL(t *testing.T) {
	tests := []struct {
		url        string
		wantDriver string
		wantDSN    string
		wantErr    bool
	}{
		{"postgres://u:p@localhost:5432/app", DriverPostgres, "postgresql://u:p@localhost:5432/app", false},
		{"postgresql://localhost/app", DriverPostgres, "postgresql://localhost/app", false},
		{"sqlite:///./app.db", DriverSQLite, "./app.db", false},
		{"sqlite:////var/data/app.db", DriverSQLite, "/var/data/app.db", false},
		{"sqlite:///:memory:", DriverSQLite, ":memory:", false},
		{"file:test.db?cache=shared", DriverSQLite, "file:test.db?cache=shared", false},
		{"sqlite://", "", "", true},
		{"mysql://localhost/app", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			driver, dsn, err := ParseURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDriver, driver)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}
}

func TestOpen_UnsupportedScheme(t *testing.T) {
	_, err := Open(context.Background(), "redis://localhost")
	assert.Error(t, err)
}

func TestListings_SaveAndFilter(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	listings := []types.Listing{
		{ID: "b", Title: "Data Intern", Category: "Data", Skills: []string{"SQL"}, Requirements: []string{"Student"}},
		{ID: "a", Title: "Frontend Intern", Category: "technology", Skills: []string{"React"}},
		{ID: "c", Title: "Designer", Category: "design"},
	}
	n, err := db.SaveListings(ctx, listings)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	all, err := db.Listings(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, []string{"SQL"}, all[1].Skills)

	data, err := db.Listings(ctx, "data")
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, "b", data[0].ID)

	none, err := db.Listings(ctx, "finance")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListing_GetAndReplace(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	require.NoError(t, db.SaveListing(ctx, &types.Listing{ID: "x", Title: "Old", Category: "a"}))
	require.NoError(t, db.SaveListing(ctx, &types.Listing{ID: "x", Title: "New", Category: "b"}))

	got, err := db.Listing(ctx, "x")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "New", got.Title)

	byCategory, err := db.Listings(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, byCategory)

	missing, err := db.Listing(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSaveListing_RequiresID(t *testing.T) {
	db := openMemory(t)
	assert.Error(t, db.SaveListing(context.Background(), &types.Listing{Title: "No ID"}))
	assert.Error(t, db.SaveListing(context.Background(), nil))
}

func TestProfiles(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	profile := &types.CandidateProfile{
		ID:         "student-1",
		Skills:     []string{"Go", "SQL"},
		Major:      "Computer Science",
		Experience: []types.Experience{{Title: "Tutor", Description: "Taught programming"}},
	}
	require.NoError(t, db.SaveProfile(ctx, profile))

	got, err := db.Profile(ctx, "student-1")
	require.NoError(t, err)
	assert.Equal(t, profile, got)

	source := db.ProfileSource("student-1")
	viaSource, err := source.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile, viaSource)

	missing, err := db.ProfileSource("nobody").Profile(ctx)
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.Error(t, db.SaveProfile(ctx, &types.CandidateProfile{}))
}

func TestOpen_SQLiteFilePersists(t *testing.T) {
	ctx := context.Background()
	url := "sqlite:///" + filepath.Join(t.TempDir(), "matcher.db")

	first, err := Open(ctx, url)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, first.Driver())
	require.NoError(t, first.SaveListing(ctx, &types.Listing{ID: "keep", Title: "Kept"}))
	first.Close()

	second, err := Open(ctx, url)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Listing(ctx, "keep")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Kept", got.Title)
}
