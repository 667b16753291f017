package models

import "time"

// ApprovalStatus is the review state of an analysis.
type ApprovalStatus string

const (
	ApprovalStatusPending         ApprovalStatus = "pending"
	ApprovalStatusReviewing       ApprovalStatus = "reviewing"
	ApprovalStatusApproved        ApprovalStatus = "approved"
	ApprovalStatusRejected        ApprovalStatus = "rejected"
	ApprovalStatusRevisionsNeeded ApprovalStatus = "revisions_needed"
)

// ApprovalAction is one entry in an approval record's history.
type ApprovalAction struct {
	Action        string    `json:"action"`
	By            string    `json:"by"`
	Notes         string    `json:"notes,omitempty"`
	RevisionCount int       `json:"revision_count,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// ApprovalRecord tracks the review lifecycle of one analysis. Transitions are
// deliberately unguarded: any state is reachable from any state, matching the
// review tooling this replaces. History is append-only.
type ApprovalRecord struct {
	AnalysisID      string           `json:"analysis_id"`
	PropertyAddress string           `json:"property_address"`
	Status          ApprovalStatus   `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	RequestedBy     string           `json:"requested_by"`
	ReviewedBy      string           `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time       `json:"reviewed_at,omitempty"`
	ApprovalNotes   string           `json:"approval_notes"`
	EstimatedValue  float64          `json:"estimated_value"`
	InvestmentScore int              `json:"investment_score"`
	ROIPercentage   float64          `json:"roi_percentage"`
	RevisionCount   int              `json:"revision_count"`
	History         []ApprovalAction `json:"approval_history"`
}

// ApprovalStats summarizes the approval table.
type ApprovalStats struct {
	TotalApprovals       int            `json:"total_approvals"`
	ByStatus             map[string]int `json:"by_status"`
	PendingCount         int            `json:"pending_count"`
	ApprovedCount        int            `json:"approved_count"`
	RejectedCount        int            `json:"rejected_count"`
	RevisionsNeededCount int            `json:"revisions_needed_count"`
}
