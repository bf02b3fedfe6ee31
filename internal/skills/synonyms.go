// Package skills scores how much of a listing's required skill set a candidate covers.
package skills

// SynonymGroup is a canonical skill and the terms accepted as equivalent to it.
type SynonymGroup struct {
	Canonical string
	Synonyms  []string
}

// Contains reports whether term (lowercase) is the canonical name or one of its synonyms.
func (g SynonymGroup) Contains(term string) bool {
	if term == g.Canonical {
		return true
	}
	for _, s := range g.Synonyms {
		if term == s {
			return true
		}
	}
	return false
}

// synonymTable is searched in order; the first group containing both skills wins.
var synonymTable = []SynonymGroup{
	{"javascript", []string{"js", "node.js", "nodejs", "react", "vue", "angular"}},
	{"python", []string{"django", "flask", "machine learning", "data science", "ai"}},
	{"java", []string{"spring", "android", "backend"}},
	{"react", []string{"frontend", "ui", "javascript"}},
	{"machine learning", []string{"ml", "ai", "data science", "python"}},
	{"web development", []string{"html", "css", "javascript", "frontend"}},
	{"data analysis", []string{"sql", "python", "statistics", "excel"}},
	{"mobile development", []string{"android", "ios", "react native", "flutter"}},
}

// SynonymTable returns a copy of the built-in synonym table.
func SynonymTable() []SynonymGroup {
	table := make([]SynonymGroup, len(synonymTable))
	copy(table, synonymTable)
	return table
}
