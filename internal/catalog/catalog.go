// Package catalog loads listings and candidate profiles from JSON files.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	schemafiles "github.com/jonathan/internship-matcher/schemas"

	"github.com/jonathan/internship-matcher/internal/schemas"
	"github.com/jonathan/internship-matcher/internal/types"
)

// LoadListings reads and validates a JSON array of listings.
func LoadListings(path string) ([]types.Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read listings file %s: %w", path, err)
	}
	listings, err := ParseListings(data)
	if err != nil {
		return nil, fmt.Errorf("invalid listings file %s: %w", path, err)
	}
	return listings, nil
}

// ParseListings validates and decodes a JSON array of listings.
func ParseListings(data []byte) ([]types.Listing, error) {
	if err := schemas.ValidateBytes("listings", schemafiles.Listings, data); err != nil {
		return nil, err
	}

	var listings []types.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("failed to parse listings JSON: %w", err)
	}
	return listings, nil
}

// LoadProfile reads and validates a single candidate profile.
func LoadProfile(path string) (*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	if err := schemas.ValidateBytes("profile", schemafiles.Profile, data); err != nil {
		return nil, fmt.Errorf("invalid profile file %s: %w", path, err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &profile, nil
}

// LoadProfiles reads and validates a JSON array of candidate profiles.
func LoadProfiles(path string) ([]types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles file %s: %w", path, err)
	}
	if err := schemas.ValidateBytes("profiles", schemafiles.Profiles, data); err != nil {
		return nil, fmt.Errorf("invalid profiles file %s: %w", path, err)
	}

	var profiles []types.CandidateProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse profiles JSON: %w", err)
	}
	return profiles, nil
}

// Listings serves an in-memory corpus. It satisfies the engine's listing provider.
type Listings struct {
	items []types.Listing
}

// NewListings wraps a fixed corpus.
func NewListings(items []types.Listing) *Listings {
	return &Listings{items: items}
}

// OpenListings loads a listings file into memory.
func OpenListings(path string) (*Listings, error) {
	items, err := LoadListings(path)
	if err != nil {
		return nil, err
	}
	return NewListings(items), nil
}

// Listings returns a copy of the corpus, restricted to category when non-empty.
func (c *Listings) Listings(ctx context.Context, category string) ([]types.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]types.Listing, 0, len(c.items))
	for _, l := range c.items {
		if category == "" || strings.EqualFold(l.Category, category) {
			out = append(out, l)
		}
	}
	return out, nil
}

// Listing returns the listing with the given ID, or nil when absent.
func (c *Listings) Listing(ctx context.Context, id string) (*types.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range c.items {
		if c.items[i].ID == id {
			l := c.items[i]
			return &l, nil
		}
	}
	return nil, nil
}

// Len returns the corpus size.
func (c *Listings) Len() int {
	return len(c.items)
}

// ProfileFile loads the candidate profile from a file on every call so edits
// are picked up. A missing file yields (nil, nil).
type ProfileFile struct {
	Path string
}

// Profile loads the profile file.
func (f ProfileFile) Profile(context.Context) (*types.CandidateProfile, error) {
	if f.Path == "" {
		return nil, nil
	}
	if _, err := os.Stat(f.Path); os.IsNotExist(err) {
		return nil, nil
	}
	return LoadProfile(f.Path)
}
