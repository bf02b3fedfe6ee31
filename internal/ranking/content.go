package ranking

import (
	"github.com/jonathan/internship-matcher/internal/parsing"
	"github.com/jonathan/internship-matcher/internal/tfidf"
	"github.com/jonathan/internship-matcher/internal/types"
)

// Batch is the term space for scoring one profile against one corpus.
// It is built per request and never shared between requests.
type Batch struct {
	vocab         *tfidf.Vocabulary
	corpus        *tfidf.Corpus
	profileVector []float64
}

// NewBatch builds the vocabulary from the profile and every listing, and the
// IDF corpus from the profile plus each listing's skills, title and description.
func NewBatch(profile *types.CandidateProfile, listings []types.Listing) *Batch {
	pTerms := profileTerms(profile)

	vocabDocs := make([][]string, 0, len(listings)+1)
	vocabDocs = append(vocabDocs, pTerms)
	idfDocs := make([][]string, 0, len(listings)+1)
	idfDocs = append(idfDocs, pTerms)
	for i := range listings {
		vocabDocs = append(vocabDocs, listingTerms(&listings[i]))
		idfDocs = append(idfDocs, listingCoreTerms(&listings[i]))
	}

	b := &Batch{
		vocab:  tfidf.BuildVocabulary(vocabDocs...),
		corpus: tfidf.NewCorpus(idfDocs),
	}
	b.profileVector = b.corpus.Vectorize(b.vocab, pTerms)
	return b
}

// VocabularySize returns the number of distinct terms in the batch.
func (b *Batch) VocabularySize() int {
	return b.vocab.Len()
}

// ContentSimilarity returns the cosine similarity of the profile and listing TF-IDF vectors.
func (b *Batch) ContentSimilarity(listing *types.Listing) float64 {
	vector := b.corpus.Vectorize(b.vocab, listingTerms(listing))
	return tfidf.CosineSimilarity(b.profileVector, vector)
}

func profileTerms(p *types.CandidateProfile) []string {
	terms := parsing.SkillTerms(p.Skills)
	terms = append(terms, parsing.Tokenize(p.Major)...)
	terms = append(terms, parsing.Tokenize(p.Bio)...)
	for _, exp := range p.Experience {
		terms = append(terms, parsing.Tokenize(exp.Title+" "+exp.Description)...)
	}
	return terms
}

func listingTerms(l *types.Listing) []string {
	terms := listingCoreTerms(l)
	terms = append(terms, parsing.Tokenize(l.Category)...)
	for _, req := range l.Requirements {
		terms = append(terms, parsing.Tokenize(req)...)
	}
	return terms
}

// listingCoreTerms is the subset of listing terms used for document frequencies.
func listingCoreTerms(l *types.Listing) []string {
	terms := parsing.SkillTerms(l.Skills)
	terms = append(terms, parsing.Tokenize(l.Title)...)
	terms = append(terms, parsing.Tokenize(l.Description)...)
	return terms
}
