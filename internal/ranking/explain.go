package ranking

import (
	"context"
	"fmt"

	"github.com/jonathan/internship-matcher/internal/types"
)

// Recommendation labels, from strongest to weakest.
const (
	LabelHighlyRecommended = "Highly Recommended"
	LabelGoodMatch         = "Good Match"
	LabelWorthConsidering  = "Worth Considering"
	LabelLimitedMatch      = "Limited Match"
)

// FallbackExplanation is emitted when no component crosses its threshold.
const FallbackExplanation = "This internship could help you develop new skills and experience"

// Label maps a total score to a qualitative recommendation.
func Label(score int) string {
	switch {
	case score > 75:
		return LabelHighlyRecommended
	case score > 55:
		return LabelGoodMatch
	case score > 35:
		return LabelWorthConsidering
	default:
		return LabelLimitedMatch
	}
}

// Explain turns a score and its breakdown into ordered rationale lines. It
// always returns at least one line.
func Explain(score int, b types.ScoreBreakdown, major string) types.Explanation {
	lines := make([]string, 0, 7)

	if b.SkillMatch > 70 {
		lines = append(lines, fmt.Sprintf("Strong skill match (%d%%) - your skills align well with the requirements", b.SkillMatch))
	} else if b.SkillMatch > 40 {
		lines = append(lines, fmt.Sprintf("Good skill overlap (%d%%)", b.SkillMatch))
	}
	if b.ContentSimilarity > 60 {
		lines = append(lines, fmt.Sprintf("High content similarity (%d%%) - your profile closely matches this role", b.ContentSimilarity))
	}
	if b.ExperienceRelevance > 60 {
		lines = append(lines, fmt.Sprintf("Your experience is relevant (%d%%)", b.ExperienceRelevance))
	}
	if b.EducationRelevance > 70 {
		lines = append(lines, fmt.Sprintf("Strong field match (%d%%) - your %s major is highly relevant", b.EducationRelevance, majorOrDefault(major)))
	}
	if b.LocationScore > 80 {
		lines = append(lines, fmt.Sprintf("Great location match (%d%%)", b.LocationScore))
	}
	if b.CategoryScore > 80 {
		lines = append(lines, fmt.Sprintf("Matches your preferred category (%d%%)", b.CategoryScore))
	}
	if b.ExperienceLevelScore > 80 {
		lines = append(lines, fmt.Sprintf("Experience level fits (%d%%)", b.ExperienceLevelScore))
	}

	if len(lines) == 0 {
		lines = append(lines, FallbackExplanation)
	}

	return types.Explanation{
		Score:          score,
		Breakdown:      b,
		Explanations:   lines,
		Recommendation: Label(score),
	}
}

func majorOrDefault(major string) string {
	if major == "" {
		return "field of study"
	}
	return major
}

// Explain scores one listing for the profile and explains the result. The
// listing alone forms the IDF corpus; use ExplainInCorpus for ranking parity.
// A nil profile is resolved the same way Rank resolves it.
func (e *Engine) Explain(ctx context.Context, profile *types.CandidateProfile, listing *types.Listing) types.Explanation {
	return e.ExplainInCorpus(ctx, profile, listing, nil)
}

// ExplainInCorpus explains a listing scored against the given corpus.
func (e *Engine) ExplainInCorpus(ctx context.Context, profile *types.CandidateProfile, listing *types.Listing, corpus []types.Listing) types.Explanation {
	profile = e.resolveProfile(ctx, profile)
	result := e.Score(profile, listing, corpus)
	var breakdown types.ScoreBreakdown
	if result.Breakdown != nil {
		breakdown = *result.Breakdown
	}
	return Explain(result.TotalScore, breakdown, profile.Major)
}

// ExplainByID looks up a listing by ID and explains it against the full corpus.
// When the corpus cannot be fetched the listing is explained on its own.
func (e *Engine) ExplainByID(ctx context.Context, profile *types.CandidateProfile, id string) (*types.Explanation, error) {
	profile = e.resolveProfile(ctx, profile)

	listing, err := e.fetchListing(ctx, id)
	if err != nil {
		return nil, err
	}

	corpus, err := e.fetchCorpus(ctx, "")
	if err != nil {
		e.logger.Warn("explaining listing without corpus", "listing_id", id, "error", err)
		corpus = nil
	}

	explanation := e.ExplainInCorpus(ctx, profile, listing, corpus)
	return &explanation, nil
}
