// Package ranking scores internship listings against a candidate profile and
// ranks, explains and adapts those scores.
package ranking

import (
	"strings"
	"time"

	"github.com/jonathan/internship-matcher/internal/types"
)

// Algorithm names the scoring pipeline in response metadata.
const Algorithm = "TF-IDF + Cosine Similarity + Multi-factor Scoring"

// Default engine settings.
const (
	DefaultHomeRegion       = "singapore"
	DefaultFetchTimeout     = 5 * time.Second
	DefaultBatchConcurrency = 4
)

// Config is the single configuration of the scoring pipeline.
type Config struct {
	// Weights is the initial weight vector. Feedback adjusts a copy at runtime.
	Weights types.Weights
	// HomeRegion is the region keyword that earns a near-match location score.
	HomeRegion string
	// NormalizeWeights divides the weighted sum by the weight total before
	// converting to a percentage. The legacy weights sum to 1.30, so with this
	// off scores are biased upward before the final clamp.
	NormalizeWeights bool
	// CapPartialSkillCredit limits substring skill credit to once per listing skill.
	CapPartialSkillCredit bool
	// FetchTimeout bounds each call to the listing provider.
	FetchTimeout time.Duration
	// BatchConcurrency bounds concurrent profiles in RankBatch.
	BatchConcurrency int
}

// DefaultConfig returns the legacy-compatible configuration.
func DefaultConfig() Config {
	return Config{
		Weights:          types.DefaultWeights(),
		HomeRegion:       DefaultHomeRegion,
		FetchTimeout:     DefaultFetchTimeout,
		BatchConcurrency: DefaultBatchConcurrency,
	}
}

// withDefaults fills zero-valued fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Weights.IsZero() {
		c.Weights = d.Weights
	}
	c.HomeRegion = strings.ToLower(strings.TrimSpace(c.HomeRegion))
	if c.HomeRegion == "" {
		c.HomeRegion = d.HomeRegion
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = d.FetchTimeout
	}
	if c.BatchConcurrency <= 0 {
		c.BatchConcurrency = d.BatchConcurrency
	}
	return c
}
