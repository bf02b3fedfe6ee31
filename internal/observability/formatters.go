// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/internship-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// PrintProfile outputs a summary of the candidate profile used for matching.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	if profile.ID != "" {
		sb.WriteString(fmt.Sprintf("ID:        %s\n", profile.ID))
	}
	sb.WriteString(fmt.Sprintf("Major:     %s\n", valueOr(profile.Major, "-")))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", valueOr(profile.Location, "-")))
	sb.WriteString(fmt.Sprintf("Level:     %s\n", valueOr(profile.ExperienceLevel, "beginner")))
	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills:    %s\n", strings.Join(profile.Skills, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Experience entries: %d", len(profile.Experience)))

	p.printBox("CANDIDATE PROFILE", sb.String())
}

// PrintRecommendations outputs the top recommendations with scores and labels.
func (p *Printer) PrintRecommendations(resp *types.RankResponse) {
	if resp == nil {
		return
	}
	if !resp.Success {
		p.printBox("RECOMMENDATIONS", "Error: "+resp.Error)
		return
	}

	var sb strings.Builder
	if resp.Metadata != nil {
		sb.WriteString(fmt.Sprintf("Evaluated: %d  Matched: %d  Vocabulary: %d\n",
			resp.Metadata.TotalEvaluated, resp.Metadata.Filtered, resp.Metadata.VocabularySize))
		sb.WriteString(fmt.Sprintf("Min score: %d  Limit: %d\n\n",
			resp.Metadata.Filters.MinMatchScore, resp.Metadata.Filters.Limit))
	}

	if len(resp.Data) == 0 {
		sb.WriteString("No listings met the minimum match score")
		p.printBox("RECOMMENDATIONS", sb.String())
		return
	}

	count := min(len(resp.Data), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := resp.Data[i]
		sb.WriteString(fmt.Sprintf("#%d  %s", i+1, r.Title))
		if r.Company != "" {
			sb.WriteString(fmt.Sprintf(" @ %s", r.Company))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Match: %d%%  Skills: %d%%  Content: %d%%\n",
			r.Match, r.MatchBreakdown.SkillMatch, r.MatchBreakdown.ContentSimilarity))
		if r.Explanation != nil {
			sb.WriteString(fmt.Sprintf("    %s\n", r.Explanation.Recommendation))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(resp.Data) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(resp.Data)-maxItemsToShow))
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExplanation outputs a score breakdown and its rationale lines.
func (p *Printer) PrintExplanation(title string, explanation *types.Explanation) {
	if explanation == nil {
		return
	}

	b := explanation.Breakdown
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d%%  (%s)\n\n", explanation.Score, explanation.Recommendation))
	sb.WriteString(fmt.Sprintf("  Content similarity  %3d%%\n", b.ContentSimilarity))
	sb.WriteString(fmt.Sprintf("  Skill match         %3d%%\n", b.SkillMatch))
	sb.WriteString(fmt.Sprintf("  Experience          %3d%%\n", b.ExperienceRelevance))
	sb.WriteString(fmt.Sprintf("  Education           %3d%%\n", b.EducationRelevance))
	sb.WriteString(fmt.Sprintf("  Location            %3d%%\n", b.LocationScore))
	sb.WriteString(fmt.Sprintf("  Category            %3d%%\n", b.CategoryScore))
	sb.WriteString(fmt.Sprintf("  Experience level    %3d%%\n", b.ExperienceLevelScore))
	sb.WriteString("\n")
	for _, line := range explanation.Explanations {
		sb.WriteString(fmt.Sprintf("  • %s\n", line))
	}

	if title == "" {
		title = "MATCH EXPLANATION"
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMetrics outputs feedback counts and the current weights.
func (p *Printer) PrintMetrics(m *types.Metrics) {
	if m == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total feedback: %d\n", m.TotalFeedback))
	kinds := make([]string, 0, len(m.FeedbackBreakdown))
	for k := range m.FeedbackBreakdown {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, t := range kinds {
		sb.WriteString(fmt.Sprintf("  %-12s %d\n", t, m.FeedbackBreakdown[t]))
	}
	sb.WriteString(fmt.Sprintf("Average match score: %.1f\n", m.AverageMatchScore))
	sb.WriteString(fmt.Sprintf("Vocabulary size: %d\n", m.VocabularySize))
	w := m.CurrentWeights
	sb.WriteString(fmt.Sprintf("Weights: skill %.3f  category %.3f  content %.3f",
		w.SkillMatch, w.CategoryScore, w.ContentSimilarity))

	p.printBox("MATCHING METRICS", sb.String())
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
