// Package tfidf builds per-batch vocabularies and TF-IDF vectors, and compares
// vectors with cosine similarity.
//
// A Vocabulary is the coordinate system for one scoring batch. Vectors built
// from different vocabularies are not comparable, so callers build a fresh
// vocabulary for every batch instead of caching one across requests.
package tfidf

// Vocabulary is an ordered set of distinct terms.
type Vocabulary struct {
	terms []string
	index map[string]int
}

// NewVocabulary returns an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{index: make(map[string]int)}
}

// BuildVocabulary unions the given documents' terms in first-seen order.
func BuildVocabulary(documents ...[]string) *Vocabulary {
	v := NewVocabulary()
	for _, doc := range documents {
		v.Add(doc...)
	}
	return v
}

// Add appends terms not already present, preserving first-seen order.
func (v *Vocabulary) Add(terms ...string) {
	for _, term := range terms {
		if term == "" {
			continue
		}
		if _, ok := v.index[term]; ok {
			continue
		}
		v.index[term] = len(v.terms)
		v.terms = append(v.terms, term)
	}
}

// Len returns the number of distinct terms.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.terms)
}

// Terms returns the terms in vocabulary order. The slice must not be modified.
func (v *Vocabulary) Terms() []string {
	if v == nil {
		return nil
	}
	return v.terms
}

// Contains reports whether term is in the vocabulary.
func (v *Vocabulary) Contains(term string) bool {
	if v == nil {
		return false
	}
	_, ok := v.index[term]
	return ok
}
