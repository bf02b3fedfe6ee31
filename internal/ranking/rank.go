package ranking

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/internship-matcher/internal/types"
)

// categoryAll disables category filtering.
const categoryAll = "all"

// Rank scores every listing in the corpus for the profile and returns those at
// or above the minimum score, best first. A nil profile is resolved through the
// profile provider, falling back to the default profile. Rank never returns an
// error: failures are reported in the response envelope.
func (e *Engine) Rank(ctx context.Context, profile *types.CandidateProfile, opts types.RankOptions) types.RankResponse {
	if err := opts.Validate(); err != nil {
		return types.RankResponse{Error: fmt.Sprintf("invalid options: %v", err)}
	}
	profile = e.resolveProfile(ctx, profile)

	category := normalizeCategory(opts.Category)
	listings, err := e.fetchCorpus(ctx, category)
	if err != nil {
		e.logger.Error("failed to fetch listings", "category", category, "error", err)
		return types.RankResponse{Error: err.Error()}
	}
	listings = filterCategory(listings, category)

	batch := NewBatch(profile, listings)
	e.lastVocabularySize.Store(int64(batch.VocabularySize()))
	weights := e.Weights()
	minScore := opts.EffectiveMinMatchScore()
	limit := opts.EffectiveLimit()

	results := make([]types.RecommendationResult, 0, len(listings))
	for i := range listings {
		listing := &listings[i]
		scored := e.scorer.Score(profile, listing, batch, weights)
		if scored.Error != "" {
			e.logger.Warn("scoring failed", "error", &ScoringError{ListingID: listing.ID, Message: scored.Error})
		}
		if scored.TotalScore < minScore {
			continue
		}
		result := types.RecommendationResult{
			Listing: *listing,
			Match:   scored.TotalScore,
		}
		if scored.Breakdown != nil {
			result.MatchBreakdown = *scored.Breakdown
		}
		results = append(results, result)
	}
	filtered := len(results)

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Match > results[j].Match
	})
	if len(results) > limit {
		results = results[:limit]
	}

	if opts.IncludeExplanations {
		for i := range results {
			explanation := Explain(results[i].Match, results[i].MatchBreakdown, profile.Major)
			results[i].Explanation = &explanation
		}
	}

	e.logger.Debug("ranked listings",
		"profile_id", profile.ID,
		"evaluated", len(listings),
		"filtered", filtered,
		"returned", len(results))

	return types.RankResponse{
		Success: true,
		Data:    results,
		Metadata: &types.RankMetadata{
			Algorithm:      Algorithm,
			Weights:        weights,
			Profile:        profile.Summary(),
			TotalEvaluated: len(listings),
			Filtered:       filtered,
			VocabularySize: batch.VocabularySize(),
			Filters: types.RankFilters{
				Category:      category,
				MinMatchScore: minScore,
				Limit:         limit,
			},
			GeneratedAt: e.now(),
		},
	}
}

// RankBatch ranks listings for several profiles concurrently. Results keep the
// input order. One profile failing does not affect the others.
func (e *Engine) RankBatch(ctx context.Context, profiles []types.CandidateProfile, opts types.RankOptions) []types.BatchResult {
	results := make([]types.BatchResult, len(profiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.BatchConcurrency)
	for i := range profiles {
		profile := &profiles[i]
		g.Go(func() error {
			results[i] = types.BatchResult{
				ProfileID:       profile.ID,
				Recommendations: e.Rank(gctx, profile, opts),
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// resolveProfile returns profile when set, otherwise the provider's profile,
// otherwise the default profile.
func (e *Engine) resolveProfile(ctx context.Context, profile *types.CandidateProfile) *types.CandidateProfile {
	if profile != nil {
		return profile
	}
	if e.profiles != nil {
		p, err := e.profiles.Profile(ctx)
		if err != nil {
			e.logger.Warn("failed to load profile, using default", "error", err)
		} else if p != nil {
			return p
		}
	}
	return types.DefaultProfile()
}

type corpusResult struct {
	listings []types.Listing
	err      error
}

// fetchCorpus calls the listing provider under the configured timeout. The
// provider call is abandoned, not awaited, when the deadline passes.
func (e *Engine) fetchCorpus(ctx context.Context, category string) ([]types.Listing, error) {
	if e.listings == nil {
		return nil, &CorpusFetchError{Cause: fmt.Errorf("no listing provider configured")}
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.FetchTimeout)
	defer cancel()

	done := make(chan corpusResult, 1)
	go func() {
		listings, err := e.listings.Listings(ctx, category)
		done <- corpusResult{listings: listings, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, &CorpusFetchError{Cause: ctx.Err()}
	case r := <-done:
		if r.err != nil {
			return nil, &CorpusFetchError{Cause: r.err}
		}
		return r.listings, nil
	}
}

// fetchListing looks up one listing under the configured timeout.
func (e *Engine) fetchListing(ctx context.Context, id string) (*types.Listing, error) {
	if e.listings == nil {
		return nil, &CorpusFetchError{Cause: fmt.Errorf("no listing provider configured")}
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.FetchTimeout)
	defer cancel()

	listing, err := e.listings.Listing(ctx, id)
	if err != nil {
		return nil, &CorpusFetchError{Cause: err}
	}
	if listing == nil {
		return nil, &ListingNotFoundError{ID: id}
	}
	return listing, nil
}

func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if strings.EqualFold(category, categoryAll) {
		return ""
	}
	return category
}

// filterCategory keeps listings in category. Providers are expected to filter
// already; this guards against ones that ignore the argument.
func filterCategory(listings []types.Listing, category string) []types.Listing {
	if category == "" {
		return listings
	}
	kept := make([]types.Listing, 0, len(listings))
	for _, l := range listings {
		if strings.EqualFold(l.Category, category) {
			kept = append(kept, l)
		}
	}
	return kept
}
