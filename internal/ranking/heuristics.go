package ranking

import (
	"strings"

	"github.com/jonathan/internship-matcher/internal/parsing"
	"github.com/jonathan/internship-matcher/internal/types"
)

// Experience levels recognised by the experience-level heuristic.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
)

// beginnerKeywords mark a listing as open to candidates without experience.
var beginnerKeywords = []string{"student", "entry", "beginner", "no experience", "fresh", "graduate"}

// categoryByMajor infers a preferred category from the major when the candidate
// has stated none. The first entry whose key is contained in the major applies.
var categoryByMajor = []struct {
	major    string
	category string
}{
	{"computer science", "technology"},
	{"business", "business"},
	{"design", "design"},
	{"data", "data"},
}

// experienceRelevance scores prior experience against the listing. Candidates
// with no experience get 0.8 for beginner-friendly listings and 0.4 otherwise.
func experienceRelevance(p *types.CandidateProfile, l *types.Listing) float64 {
	if len(p.Experience) == 0 {
		requirements := parsing.LowerJoin(l.Requirements...)
		description := strings.ToLower(l.Description)
		if parsing.ContainsAny(requirements, beginnerKeywords...) ||
			parsing.ContainsAny(description, beginnerKeywords...) {
			return 0.8
		}
		return 0.4
	}

	listingWords := parsing.TokenizeAll(l.Title, l.Description, strings.Join(l.Requirements, " "))
	present := make(map[string]struct{}, len(listingWords))
	for _, w := range listingWords {
		present[w] = struct{}{}
	}
	denominator := float64(max(len(listingWords), 1))

	total := 0.0
	for _, exp := range p.Experience {
		common := 0
		for _, w := range parsing.Tokenize(exp.Title + " " + exp.Description) {
			if _, ok := present[w]; ok {
				common++
			}
		}
		total += float64(common) / denominator
	}
	return min(total/float64(len(p.Experience)), 1)
}

// locationScore compares locations case-insensitively.
func locationScore(p *types.CandidateProfile, l *types.Listing, homeRegion string) float64 {
	if p.Location == "" || l.Location == "" {
		return 0.5
	}
	candidate := strings.ToLower(p.Location)
	listing := strings.ToLower(l.Location)

	switch {
	case candidate == listing:
		return 1.0
	case homeRegion != "" && strings.Contains(candidate, homeRegion) && strings.Contains(listing, homeRegion):
		return 0.9
	case strings.Contains(listing, "remote"):
		return 1.0
	default:
		return 0.3
	}
}

// categoryScore is 1.0 when the listing category is preferred, 0.5 otherwise.
func categoryScore(p *types.CandidateProfile, l *types.Listing) float64 {
	if len(p.PreferredCategories) > 0 {
		for _, c := range p.PreferredCategories {
			if c != "" && strings.EqualFold(c, l.Category) {
				return 1.0
			}
		}
		return 0.5
	}

	major := strings.ToLower(p.Major)
	for _, m := range categoryByMajor {
		if strings.Contains(major, m.major) && strings.EqualFold(l.Category, m.category) {
			return 1.0
		}
	}
	return 0.5
}

// experienceLevelScore defaults to 0.7. A blank level is treated as beginner.
func experienceLevelScore(p *types.CandidateProfile, l *types.Listing) float64 {
	level := strings.ToLower(strings.TrimSpace(p.ExperienceLevel))
	if level == "" {
		level = LevelBeginner
	}
	requirements := parsing.LowerJoin(l.Requirements...)

	switch {
	case level == LevelBeginner && parsing.ContainsAny(requirements, "entry", "student"):
		return 1.0
	case level == LevelIntermediate && strings.Contains(requirements, "experience") &&
		!strings.Contains(requirements, "senior"):
		return 1.0
	default:
		return 0.7
	}
}
