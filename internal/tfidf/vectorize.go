package tfidf

import "math"

// TF returns the relative frequency of term in tokens, or 0 for an empty sequence.
func TF(term string, tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	count := 0
	for _, t := range tokens {
		if t == term {
			count++
		}
	}
	return float64(count) / float64(len(tokens))
}

// Corpus holds document frequencies for a set of token sequences.
type Corpus struct {
	docFrequencies map[string]int
	totalDocuments int
}

// NewCorpus counts, for every term, how many documents contain it at least once.
func NewCorpus(documents [][]string) *Corpus {
	c := &Corpus{
		docFrequencies: make(map[string]int),
		totalDocuments: len(documents),
	}
	for _, doc := range documents {
		seen := make(map[string]struct{}, len(doc))
		for _, term := range doc {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			c.docFrequencies[term]++
		}
	}
	return c
}

// Size returns the number of documents in the corpus.
func (c *Corpus) Size() int {
	return c.totalDocuments
}

// IDF returns ln(N/df). Terms that appear in no document get 0 rather than +Inf,
// which removes them from every vector built against this corpus.
func (c *Corpus) IDF(term string) float64 {
	df := c.docFrequencies[term]
	if df == 0 || c.totalDocuments == 0 {
		return 0
	}
	return math.Log(float64(c.totalDocuments) / float64(df))
}

// Vectorize returns the dense TF-IDF vector of tokens over vocab, in vocabulary order.
func (c *Corpus) Vectorize(vocab *Vocabulary, tokens []string) []float64 {
	terms := vocab.Terms()
	vector := make([]float64, len(terms))
	if len(tokens) == 0 {
		return vector
	}

	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	n := float64(len(tokens))
	for i, term := range terms {
		count := counts[term]
		if count == 0 {
			continue
		}
		vector[i] = (float64(count) / n) * c.IDF(term)
	}
	return vector
}
