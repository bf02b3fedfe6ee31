package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Ranking defaults.
const (
	DefaultLimit         = 10
	DefaultMinMatchScore = 30
)

// RankOptions controls a ranking request.
// A zero Limit means DefaultLimit; a nil MinMatchScore means DefaultMinMatchScore.
type RankOptions struct {
	Limit               int    `json:"limit,omitempty" validate:"gte=0,lte=100"`
	MinMatchScore       *int   `json:"minMatchScore,omitempty" validate:"omitempty,gte=0,lte=100"`
	Category            string `json:"category,omitempty"`
	IncludeExplanations bool   `json:"includeExplanations,omitempty"`
}

// Validate validates the RankOptions using the validator.
func (o *RankOptions) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}

// EffectiveLimit returns the limit with defaults applied.
func (o RankOptions) EffectiveLimit() int {
	if o.Limit <= 0 {
		return DefaultLimit
	}
	return o.Limit
}

// EffectiveMinMatchScore returns the minimum score with defaults applied.
func (o RankOptions) EffectiveMinMatchScore() int {
	if o.MinMatchScore == nil {
		return DefaultMinMatchScore
	}
	return *o.MinMatchScore
}

// Explanation is the human-readable rationale for one listing's score.
type Explanation struct {
	Score          int            `json:"score"`
	Breakdown      ScoreBreakdown `json:"breakdown"`
	Explanations   []string       `json:"explanations"`
	Recommendation string         `json:"recommendation"`
}

// RecommendationResult is a listing with its score and breakdown.
type RecommendationResult struct {
	Listing
	Match          int            `json:"match"`
	MatchBreakdown ScoreBreakdown `json:"matchBreakdown"`
	Explanation    *Explanation   `json:"explanation,omitempty"`
}

// RankFilters echoes the filters applied to a ranking request.
type RankFilters struct {
	Category      string `json:"category,omitempty"`
	MinMatchScore int    `json:"minMatchScore"`
	Limit         int    `json:"limit"`
}

// RankMetadata describes how a ranking was produced.
type RankMetadata struct {
	Algorithm      string         `json:"algorithm"`
	Weights        Weights        `json:"weights"`
	Profile        ProfileSummary `json:"userProfile"`
	TotalEvaluated int            `json:"totalEvaluated"`
	Filtered       int            `json:"filtered"`
	VocabularySize int            `json:"vocabularySize"`
	Filters        RankFilters    `json:"filters"`
	GeneratedAt    time.Time      `json:"generatedAt"`
}

// RankResponse is the envelope returned to ranking callers. Exactly one of
// Data/Metadata or Error is meaningful, selected by Success.
type RankResponse struct {
	Success  bool                   `json:"success"`
	Data     []RecommendationResult `json:"data,omitempty"`
	Metadata *RankMetadata          `json:"metadata,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

// BatchResult is one profile's entry in a batch ranking.
type BatchResult struct {
	ProfileID       string       `json:"userId"`
	Recommendations RankResponse `json:"recommendations"`
}
