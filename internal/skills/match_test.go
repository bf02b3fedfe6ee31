package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_ExactMatchIdenticalSets(t *testing.T) {
	// Disjoint skills so no substring overlap inflates the score.
	skills := []string{"Python", "Excel", "Figma"}

	result := Match(skills, skills, Options{})

	assert.InDelta(t, 1.0, result.Score, 1e-9)
	require.Len(t, result.Matched, 3)
	for _, m := range result.Matched {
		assert.Equal(t, TierExact, m.Tier)
	}
}

func TestMatch_CaseInsensitive(t *testing.T) {
	result := Match([]string{"REACT", "css"}, []string{"React", "CSS"}, Options{})
	assert.InDelta(t, 1.0, result.Score, 1e-9)
}

func TestMatch_EmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, Match(nil, []string{"Go"}, Options{}).Score)
	assert.Equal(t, 0.0, Match([]string{"Go"}, nil, Options{}).Score)
	assert.Equal(t, 0.0, Match([]string{}, []string{}, Options{}).Score)
}

func TestMatch_SynonymTier(t *testing.T) {
	result := Match([]string{"JS"}, []string{"Angular"}, Options{})

	assert.InDelta(t, SynonymCredit, result.Score, 1e-9)
	require.Len(t, result.Matched, 1)
	assert.Equal(t, TierSynonym, result.Matched[0].Tier)
}

func TestMatch_DenominatorIsListingSkills(t *testing.T) {
	candidate := []string{"Python", "Excel", "Figma", "Tableau"}
	listing := []string{"Python", "Kotlin"}

	result := Match(candidate, listing, Options{})

	assert.InDelta(t, 0.5, result.Score, 1e-9)
	assert.Equal(t, []string{"Python"}, result.MatchedNames())
}

func TestMatch_PartialCreditAccumulates(t *testing.T) {
	// "sql" has no exact or synonym-pair match with these candidates, but
	// is a substring of three of them.
	candidate := []string{"MySQL", "PostgreSQL", "SQLite"}
	listing := []string{"sql"}

	legacy := Match(candidate, listing, Options{})
	assert.InDelta(t, 1.5, legacy.Score, 1e-9, "legacy mode credits every overlapping candidate skill")

	capped := Match(candidate, listing, Options{CapPartialCredit: true})
	assert.InDelta(t, 0.5, capped.Score, 1e-9)
}

func TestMatch_NoOverlap(t *testing.T) {
	result := Match([]string{"Photoshop"}, []string{"Kotlin", "Swift"}, Options{})
	assert.Equal(t, 0.0, result.Score)
	assert.Empty(t, result.Matched)
}

func TestMatch_EmptyCandidateSkillIgnored(t *testing.T) {
	result := Match([]string{""}, []string{"Kotlin"}, Options{})
	assert.Equal(t, 0.0, result.Score)
}

func TestSynonymGroup_Contains(t *testing.T) {
	group := SynonymGroup{Canonical: "javascript", Synonyms: []string{"js"}}
	assert.True(t, group.Contains("javascript"))
	assert.True(t, group.Contains("js"))
	assert.False(t, group.Contains("java"))
	assert.Len(t, SynonymTable(), len(synonymTable))
}
