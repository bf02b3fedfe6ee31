package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/internship-matcher/internal/types"
)

func TestNewBatch_VocabularySize(t *testing.T) {
	batch := NewBatch(frontendProfile(), corpus())
	assert.Equal(t, 36, batch.VocabularySize())
}

func TestNewBatch_EmptyCorpus(t *testing.T) {
	batch := NewBatch(&types.CandidateProfile{}, nil)
	assert.Equal(t, 0, batch.VocabularySize())

	listing := types.Listing{}
	assert.Equal(t, 0.0, batch.ContentSimilarity(&listing))
}

func TestContentSimilarity_SharedTermsScoreHigher(t *testing.T) {
	profile := frontendProfile()
	listings := corpus()
	batch := NewBatch(profile, listings)

	related := batch.ContentSimilarity(&listings[0])
	unrelated := batch.ContentSimilarity(&listings[1])

	assert.Greater(t, related, 0.0)
	assert.LessOrEqual(t, related, 1.0)
	assert.Equal(t, 0.0, unrelated)
}

func TestContentSimilarity_NoContrastInSingleListingBatch(t *testing.T) {
	profile := &types.CandidateProfile{Skills: []string{"Go"}}
	listing := types.Listing{Skills: []string{"go"}}

	// every term appears in every document, so every IDF is zero
	batch := NewBatch(profile, []types.Listing{listing})
	assert.Equal(t, 0.0, batch.ContentSimilarity(&listing))
}

func TestNewBatch_IsolatedPerRequest(t *testing.T) {
	first := NewBatch(frontendProfile(), corpus())
	second := NewBatch(&types.CandidateProfile{Skills: []string{"Rust"}}, []types.Listing{marketingListing()})

	assert.Equal(t, 36, first.VocabularySize())
	assert.NotEqual(t, first.VocabularySize(), second.VocabularySize())
}
