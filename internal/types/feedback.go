package types

import "time"

// Feedback event types that adjust weights. Other types are recorded but ignored.
const (
	FeedbackApplied    = "applied"
	FeedbackBookmarked = "bookmarked"
	FeedbackSkipped    = "skipped"
)

// FeedbackEvent is an implicit user signal about a listing.
// MatchScore is nil when the caller did not report one.
type FeedbackEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	MatchScore *float64  `json:"matchScore,omitempty"`
	Category   string    `json:"category,omitempty"`
	ListingID  string    `json:"listingId,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// FeedbackRequest is the inbound shape of a feedback event. It is recorded
// as sent; only the weight updates it triggers are guarded.
type FeedbackRequest struct {
	Type       string   `json:"type"`
	MatchScore *float64 `json:"matchScore,omitempty"`
	Category   string   `json:"category,omitempty"`
	ListingID  string   `json:"listingId,omitempty"`
}

// Event converts the request into an unrecorded event.
func (r *FeedbackRequest) Event() FeedbackEvent {
	return FeedbackEvent{
		Type:       r.Type,
		MatchScore: r.MatchScore,
		Category:   r.Category,
		ListingID:  r.ListingID,
	}
}

// Metrics summarises feedback received and the current engine state.
type Metrics struct {
	TotalFeedback     int            `json:"totalFeedback"`
	FeedbackBreakdown map[string]int `json:"feedbackBreakdown"`
	AverageMatchScore float64        `json:"averageMatchScore"`
	CurrentWeights    Weights        `json:"currentWeights"`
	VocabularySize    int            `json:"vocabularySize"`
	LastUpdated       time.Time      `json:"lastUpdated"`
	Algorithm         string         `json:"algorithm"`
}
