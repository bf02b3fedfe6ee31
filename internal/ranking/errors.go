package ranking

import (
	"context"
	"errors"
	"fmt"
)

// CorpusFetchError reports that the listing provider failed or timed out.
type CorpusFetchError struct {
	Cause error
}

func (e *CorpusFetchError) Error() string {
	if errors.Is(e.Cause, context.DeadlineExceeded) {
		return "failed to fetch listings: timed out"
	}
	return fmt.Sprintf("failed to fetch listings: %v", e.Cause)
}

func (e *CorpusFetchError) Unwrap() error {
	return e.Cause
}

// ListingNotFoundError reports that the provider has no listing with the given ID.
type ListingNotFoundError struct {
	ID string
}

func (e *ListingNotFoundError) Error() string {
	return fmt.Sprintf("listing not found: %s", e.ID)
}

// ScoringError reports that scoring one listing failed. It is logged, never returned
// from a ranking pass.
type ScoringError struct {
	ListingID string
	Message   string
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("scoring listing %q failed: %s", e.ListingID, e.Message)
}
