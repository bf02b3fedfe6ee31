package types

import "math"

// ScoreBreakdown holds the seven scoring components as integer percentages (0-100).
type ScoreBreakdown struct {
	ContentSimilarity    int `json:"contentSimilarity"`
	SkillMatch           int `json:"skillMatch"`
	ExperienceRelevance  int `json:"experienceRelevance"`
	EducationRelevance   int `json:"educationRelevance"`
	LocationScore        int `json:"locationScore"`
	CategoryScore        int `json:"categoryScore"`
	ExperienceLevelScore int `json:"experienceLevelScore"`
}

// ComponentScores holds the raw, unrounded component values.
type ComponentScores struct {
	ContentSimilarity    float64
	SkillMatch           float64
	ExperienceRelevance  float64
	EducationRelevance   float64
	LocationScore        float64
	CategoryScore        float64
	ExperienceLevelScore float64
}

// Percent converts the raw components into a display breakdown.
func (c ComponentScores) Percent() ScoreBreakdown {
	return ScoreBreakdown{
		ContentSimilarity:    ToPercent(c.ContentSimilarity),
		SkillMatch:           ToPercent(c.SkillMatch),
		ExperienceRelevance:  ToPercent(c.ExperienceRelevance),
		EducationRelevance:   ToPercent(c.EducationRelevance),
		LocationScore:        ToPercent(c.LocationScore),
		CategoryScore:        ToPercent(c.CategoryScore),
		ExperienceLevelScore: ToPercent(c.ExperienceLevelScore),
	}
}

// ToPercent rounds a 0-1 value to an integer percentage. Values outside 0-1 are not clamped.
func ToPercent(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v * 100))
}

// Weights is the weight vector applied to the component scores.
// Values are treated as immutable once published to an engine.
type Weights struct {
	ContentSimilarity    float64 `json:"contentSimilarity" validate:"gte=0,lte=1"`
	SkillMatch           float64 `json:"skillMatch" validate:"gte=0,lte=1"`
	ExperienceRelevance  float64 `json:"experienceRelevance" validate:"gte=0,lte=1"`
	EducationRelevance   float64 `json:"educationRelevance" validate:"gte=0,lte=1"`
	LocationScore        float64 `json:"locationScore" validate:"gte=0,lte=1"`
	CategoryScore        float64 `json:"categoryScore" validate:"gte=0,lte=1"`
	ExperienceLevelScore float64 `json:"experienceLevelScore" validate:"gte=0,lte=1"`
}

// DefaultWeights returns the legacy weight vector. It sums to 1.30, not 1.0.
func DefaultWeights() Weights {
	return Weights{
		ContentSimilarity:    0.20,
		SkillMatch:           0.40,
		ExperienceRelevance:  0.25,
		EducationRelevance:   0.15,
		LocationScore:        0.10,
		CategoryScore:        0.10,
		ExperienceLevelScore: 0.10,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.ContentSimilarity + w.SkillMatch + w.ExperienceRelevance + w.EducationRelevance +
		w.LocationScore + w.CategoryScore + w.ExperienceLevelScore
}

// IsZero reports whether every weight is zero.
func (w Weights) IsZero() bool {
	return w == Weights{}
}

// Apply returns the weighted sum of the component scores.
func (w Weights) Apply(c ComponentScores) float64 {
	return c.ContentSimilarity*w.ContentSimilarity +
		c.SkillMatch*w.SkillMatch +
		c.ExperienceRelevance*w.ExperienceRelevance +
		c.EducationRelevance*w.EducationRelevance +
		c.LocationScore*w.LocationScore +
		c.CategoryScore*w.CategoryScore +
		c.ExperienceLevelScore*w.ExperienceLevelScore
}

// ScoreResult is the Master Scorer output for one listing.
// Breakdown is nil when scoring failed.
type ScoreResult struct {
	TotalScore int             `json:"totalScore"`
	Breakdown  *ScoreBreakdown `json:"breakdown"`
	Error      string          `json:"error,omitempty"`
}
