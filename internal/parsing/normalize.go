package parsing

import "strings"

// SkillTerm lowercases a skill name verbatim. Skills are not tokenized, so
// "Node.js" stays a single term "node.js".
func SkillTerm(skill string) string {
	return strings.ToLower(skill)
}

// SkillTerms lowercases every skill, dropping empty entries.
func SkillTerms(skills []string) []string {
	terms := make([]string, 0, len(skills))
	for _, s := range skills {
		if s == "" {
			continue
		}
		terms = append(terms, SkillTerm(s))
	}
	return terms
}

// LowerJoin lowercases and joins texts with a single space, for keyword containment checks.
func LowerJoin(texts ...string) string {
	return strings.ToLower(strings.Join(texts, " "))
}

// ContainsAny reports whether text contains any of the keywords as a substring.
func ContainsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
