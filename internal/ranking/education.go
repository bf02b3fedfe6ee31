package ranking

import (
	"strings"

	"github.com/jonathan/internship-matcher/internal/parsing"
	"github.com/jonathan/internship-matcher/internal/types"
)

// fieldKeywords maps a field of study to listing keywords that signal relevance.
// Order matters only for readability; every field contained in the major contributes.
var fieldKeywords = []struct {
	field    string
	keywords []string
}{
	{"computer science", []string{"software", "programming", "technology", "it"}},
	{"business", []string{"marketing", "management", "finance", "consulting"}},
	{"engineering", []string{"technical", "development", "systems"}},
	{"design", []string{"ui", "ux", "creative", "visual"}},
	{"data science", []string{"analytics", "machine learning", "ai", "statistics"}},
}

// educationRelevance scores the candidate's major against the listing's
// requirements and description. Keywords are matched as substrings, so short
// ones like "it" and "ai" also hit inside longer words.
func educationRelevance(p *types.CandidateProfile, l *types.Listing) float64 {
	if p.Major == "" && len(p.Education) == 0 {
		return 0.5
	}

	major := strings.ToLower(p.Major)
	requirements := parsing.LowerJoin(l.Requirements...)
	description := strings.ToLower(l.Description)

	score := 0.0
	for _, f := range fieldKeywords {
		if !strings.Contains(major, f.field) {
			continue
		}
		hits := 0
		for _, kw := range f.keywords {
			if strings.Contains(requirements, kw) || strings.Contains(description, kw) {
				hits++
			}
		}
		score += float64(hits) / float64(len(f.keywords))
	}
	return min(score, 1)
}
