package skills

import "strings"

// Credit awarded per tier.
const (
	ExactCredit   = 1.0
	SynonymCredit = 0.8
	PartialCredit = 0.5
)

// Tier identifies how a listing skill was matched.
type Tier string

const (
	TierExact   Tier = "exact"
	TierSynonym Tier = "synonym"
	TierPartial Tier = "partial"
)

// Options tunes the matcher.
type Options struct {
	// CapPartialCredit awards partial credit at most once per listing skill.
	// When false, every candidate skill that overlaps the listing skill adds
	// PartialCredit, so one listing skill can earn more than 1.0.
	CapPartialCredit bool
}

// MatchedSkill records the credit one listing skill earned.
type MatchedSkill struct {
	Skill  string  `json:"skill"`
	Tier   Tier    `json:"tier"`
	Credit float64 `json:"credit"`
}

// Result is the outcome of matching a candidate against a listing.
type Result struct {
	// Score is total credit divided by the number of listing skills. It is not clamped.
	Score   float64
	Matched []MatchedSkill
}

// MatchedNames returns the listing skills that earned any credit.
func (r Result) MatchedNames() []string {
	names := make([]string, 0, len(r.Matched))
	for _, m := range r.Matched {
		names = append(names, m.Skill)
	}
	return names
}

// Match scores candidateSkills against listingSkills. The denominator is the
// number of listing skills: the score measures how much of what the listing
// asks for the candidate has. Each listing skill is credited at the first tier
// that applies: exact (case-insensitive), synonym group, then substring
// containment in either direction.
func Match(candidateSkills, listingSkills []string, opts Options) Result {
	if len(candidateSkills) == 0 || len(listingSkills) == 0 {
		return Result{}
	}

	candidates := make([]string, 0, len(candidateSkills))
	for _, s := range candidateSkills {
		if s == "" {
			continue
		}
		candidates = append(candidates, strings.ToLower(s))
	}

	total := 0.0
	matched := make([]MatchedSkill, 0)
	for _, listingSkill := range listingSkills {
		wanted := strings.ToLower(listingSkill)
		if wanted == "" {
			continue
		}

		if credit, tier, ok := creditFor(wanted, candidates, opts); ok {
			total += credit
			matched = append(matched, MatchedSkill{Skill: listingSkill, Tier: tier, Credit: credit})
		}
	}

	return Result{
		Score:   total / float64(len(listingSkills)),
		Matched: matched,
	}
}

// creditFor returns the credit for one lowercase listing skill.
func creditFor(wanted string, candidates []string, opts Options) (float64, Tier, bool) {
	for _, c := range candidates {
		if c == wanted {
			return ExactCredit, TierExact, true
		}
	}

	for _, group := range synonymTable {
		if !group.Contains(wanted) {
			continue
		}
		for _, c := range candidates {
			if group.Contains(c) {
				return SynonymCredit, TierSynonym, true
			}
		}
	}

	credit := 0.0
	for _, c := range candidates {
		if strings.Contains(c, wanted) || strings.Contains(wanted, c) {
			credit += PartialCredit
			if opts.CapPartialCredit {
				break
			}
		}
	}
	if credit > 0 {
		return credit, TierPartial, true
	}
	return 0, "", false
}
