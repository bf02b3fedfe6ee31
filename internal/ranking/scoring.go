package ranking

import (
	"fmt"
	"math"

	"github.com/jonathan/internship-matcher/internal/skills"
	"github.com/jonathan/internship-matcher/internal/types"
)

// Scorer computes the component scores and the combined match score for one
// profile and listing. It holds no mutable state.
type Scorer struct {
	homeRegion       string
	normalizeWeights bool
	skillOptions     skills.Options
}

// NewScorer returns a scorer using the heuristics settings from cfg.
func NewScorer(cfg Config) *Scorer {
	cfg = cfg.withDefaults()
	return &Scorer{
		homeRegion:       cfg.HomeRegion,
		normalizeWeights: cfg.NormalizeWeights,
		skillOptions:     skills.Options{CapPartialCredit: cfg.CapPartialSkillCredit},
	}
}

// Components computes the seven raw component scores. When batch is nil a
// single-listing batch is built, so content similarity has no IDF contrast.
func (s *Scorer) Components(p *types.CandidateProfile, l *types.Listing, batch *Batch) types.ComponentScores {
	if batch == nil {
		batch = NewBatch(p, []types.Listing{*l})
	}
	return types.ComponentScores{
		ContentSimilarity:    batch.ContentSimilarity(l),
		SkillMatch:           skills.Match(p.Skills, l.Skills, s.skillOptions).Score,
		ExperienceRelevance:  experienceRelevance(p, l),
		EducationRelevance:   educationRelevance(p, l),
		LocationScore:        locationScore(p, l, s.homeRegion),
		CategoryScore:        categoryScore(p, l),
		ExperienceLevelScore: experienceLevelScore(p, l),
	}
}

// Score combines the components with weights into a 0-100 total. It never
// panics: any failure yields a zero score with no breakdown and an error message.
func (s *Scorer) Score(p *types.CandidateProfile, l *types.Listing, batch *Batch, w types.Weights) (result types.ScoreResult) {
	defer func() {
		if r := recover(); r != nil {
			result = types.ScoreResult{Error: fmt.Sprint(r)}
		}
	}()

	if p == nil || l == nil {
		return types.ScoreResult{Error: "profile and listing are required"}
	}

	components := s.Components(p, l, batch)
	breakdown := components.Percent()
	return types.ScoreResult{
		TotalScore: s.combine(components, w),
		Breakdown:  &breakdown,
	}
}

// combine applies the weights and clamps the rounded percentage to 0-100.
func (s *Scorer) combine(c types.ComponentScores, w types.Weights) int {
	raw := w.Apply(c)
	if s.normalizeWeights {
		if sum := w.Sum(); sum > 0 {
			raw /= sum
		}
	}
	if math.IsNaN(raw) {
		return 0
	}
	return clampPercent(math.Round(raw * 100))
}

func clampPercent(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
