package ranking

import (
	"github.com/jonathan/internship-matcher/internal/types"
)

// Feedback adjustment steps and ceilings.
const (
	appliedScoreThreshold = 70.0
	skillMatchStep        = 0.01
	skillMatchCeiling     = 0.45
	categoryStep          = 0.005
	categoryCeiling       = 0.15
)

// RecordFeedback appends the event to the feedback log and nudges the weights.
// The event's ID and timestamp are always assigned here. Returns the stored event.
func (e *Engine) RecordFeedback(ev types.FeedbackEvent) types.FeedbackEvent {
	ev.ID = e.newID()
	ev.Timestamp = e.now()

	e.mu.Lock()
	e.feedback = append(e.feedback, ev)
	e.mu.Unlock()

	e.logger.Info("recorded feedback", "id", ev.ID, "type", ev.Type, "listing_id", ev.ListingID)

	for {
		current := e.weights.Load()
		next, changed := nudge(*current, ev)
		if !changed {
			return ev
		}
		if e.weights.CompareAndSwap(current, &next) {
			e.logger.Debug("weights updated",
				"skill_match", next.SkillMatch,
				"category_score", next.CategoryScore)
			return ev
		}
	}
}

// nudge returns the weights adjusted for one event, and whether anything changed.
func nudge(w types.Weights, ev types.FeedbackEvent) (types.Weights, bool) {
	next := w
	switch ev.Type {
	case types.FeedbackApplied:
		if ev.MatchScore != nil && *ev.MatchScore > appliedScoreThreshold {
			next.SkillMatch = min(w.SkillMatch+skillMatchStep, skillMatchCeiling)
		}
	case types.FeedbackBookmarked:
		if ev.Category != "" {
			next.CategoryScore = min(w.CategoryScore+categoryStep, categoryCeiling)
		}
	}
	return next, next != w
}

// FeedbackLog returns a copy of all recorded events in arrival order.
func (e *Engine) FeedbackLog() []types.FeedbackEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]types.FeedbackEvent, len(e.feedback))
	copy(out, e.feedback)
	return out
}

// Metrics summarises the feedback log and current engine state.
func (e *Engine) Metrics() types.Metrics {
	e.mu.Lock()
	events := make([]types.FeedbackEvent, len(e.feedback))
	copy(events, e.feedback)
	e.mu.Unlock()

	breakdown := make(map[string]int)
	sum, scored := 0.0, 0
	for _, ev := range events {
		breakdown[ev.Type]++
		if ev.MatchScore != nil {
			sum += *ev.MatchScore
			scored++
		}
	}
	avg := 0.0
	if scored > 0 {
		avg = sum / float64(scored)
	}

	return types.Metrics{
		TotalFeedback:     len(events),
		FeedbackBreakdown: breakdown,
		AverageMatchScore: avg,
		CurrentWeights:    e.Weights(),
		VocabularySize:    int(e.lastVocabularySize.Load()),
		LastUpdated:       e.now(),
		Algorithm:         Algorithm,
	}
}
