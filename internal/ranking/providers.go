package ranking

import (
	"context"

	"github.com/jonathan/internship-matcher/internal/types"
)

// ListingProvider supplies the listing corpus.
type ListingProvider interface {
	// Listings returns all listings, restricted to category when it is non-empty.
	Listings(ctx context.Context, category string) ([]types.Listing, error)
	// Listing returns one listing, or (nil, nil) when it does not exist.
	Listing(ctx context.Context, id string) (*types.Listing, error)
}

// ProfileProvider supplies the current candidate profile. It may return
// (nil, nil) when no profile has been saved.
type ProfileProvider interface {
	Profile(ctx context.Context) (*types.CandidateProfile, error)
}
