package models

import "time"

// Feedback kinds accepted by the workbench.
const (
	FeedbackTypeCorrection    = "correction"
	FeedbackTypeClarification = "clarification"
	FeedbackTypeApproval      = "approval"
	FeedbackTypeRejection     = "rejection"
)

// FeedbackRecord is one entry in the append-only feedback log. IDs are
// sequential per log; records are never mutated after submission.
type FeedbackRecord struct {
	ID                   int       `json:"id"`
	Timestamp            time.Time `json:"timestamp"`
	PropertyAddress      string    `json:"property_address"`
	FeedbackType         string    `json:"feedback_type"`
	FeedbackContent      string    `json:"feedback_content"`
	AnalystName          string    `json:"analyst_name"`
	ConfidenceAdjustment float64   `json:"confidence_adjustment"`
	Status               string    `json:"status"`
}

// FeedbackStats summarizes the whole feedback log.
type FeedbackStats struct {
	TotalFeedback    int            `json:"total_feedback"`
	FeedbackByType   map[string]int `json:"feedback_by_type"`
	UniqueProperties int            `json:"unique_properties"`
	UniqueAnalysts   int            `json:"unique_analysts"`
}
