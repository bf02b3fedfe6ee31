// Package parsing turns free text and skill lists into normalized tokens for matching.
package parsing

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minTokenLength is the shortest token kept; shorter tokens are noise.
const minTokenLength = 3

// stopWords is the closed list of English function words dropped from token streams.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {}, "to": {},
	"for": {}, "of": {}, "with": {}, "by": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "have": {}, "has": {}, "had": {}, "will": {}, "would": {},
	"could": {}, "should": {}, "may": {}, "might": {}, "can": {}, "shall": {},
}

// IsStopWord reports whether word is on the stop-word list. word must already be lowercase.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// Tokenize lowercases text, strips punctuation and accents, and returns the
// remaining words longer than two characters that are not stop words.
// Empty input yields an empty, non-nil slice.
func Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}

	folded := strings.ToLower(foldAccents(text))
	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !isWordRune(r)
	})

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) < minTokenLength || IsStopWord(w) {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// TokenizeAll tokenizes each text in order and concatenates the results.
func TokenizeAll(texts ...string) []string {
	tokens := make([]string, 0)
	for _, text := range texts {
		tokens = append(tokens, Tokenize(text)...)
	}
	return tokens
}

// isWordRune matches ASCII letters, digits and underscore.
func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
}

// foldAccents removes combining marks so "résumé" tokenizes as "resume".
func foldAccents(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return result
}
