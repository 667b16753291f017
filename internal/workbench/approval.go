package workbench

import (
	"fmt"
	"log"
	"sync"
	"time"

	"real-estate-intelligence/internal/models"
)

// ErrNotFound marks an operation against an unknown analysis id. It is a
// reported error, never a panic; handlers translate it to a 404 envelope.
type ErrNotFound struct {
	AnalysisID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("analysis %s not found", e.AnalysisID)
}

// ApprovalWorkflow holds one approval record per analysis id. Creating a
// request for an id that already exists overwrites the old record.
// Transitions are unguarded: a terminal record can still be rejected or sent
// back for revisions, matching the review process this models.
type ApprovalWorkflow struct {
	mu        sync.Mutex
	approvals map[string]*models.ApprovalRecord
}

// NewApprovalWorkflow creates an empty approval table.
func NewApprovalWorkflow() *ApprovalWorkflow {
	return &ApprovalWorkflow{approvals: make(map[string]*models.ApprovalRecord)}
}

// CreateRequest registers a new approval request in the pending state.
func (w *ApprovalWorkflow) CreateRequest(analysisID string, a models.AnalysisRecord, requestedBy string) models.ApprovalRecord {
	w.mu.Lock()
	defer w.mu.Unlock()

	if requestedBy == "" {
		requestedBy = "System"
	}

	record := &models.ApprovalRecord{
		AnalysisID:      analysisID,
		PropertyAddress: a.BasicInfo.Address,
		Status:          models.ApprovalStatusPending,
		CreatedAt:       time.Now(),
		RequestedBy:     requestedBy,
		EstimatedValue:  a.Valuation.EstimatedValue,
		InvestmentScore: a.InvestmentAnalysis.InvestmentScore,
		ROIPercentage:   a.InvestmentAnalysis.ROIPercentage,
		History:         []models.ApprovalAction{},
	}

	w.approvals[analysisID] = record
	log.Printf("Workbench: approval request created for %s", analysisID)

	return *record
}

// SubmitForReview moves a record to the reviewing state.
func (w *ApprovalWorkflow) SubmitForReview(analysisID, reviewer string) (models.ApprovalRecord, error) {
	return w.transition(analysisID, models.ApprovalStatusReviewing, reviewer, "", "submitted_for_review", false)
}

// Approve marks an analysis approved.
func (w *ApprovalWorkflow) Approve(analysisID, reviewer, notes string) (models.ApprovalRecord, error) {
	return w.transition(analysisID, models.ApprovalStatusApproved, reviewer, notes, "approved", false)
}

// Reject marks an analysis rejected with a reason.
func (w *ApprovalWorkflow) Reject(analysisID, reviewer, reason string) (models.ApprovalRecord, error) {
	return w.transition(analysisID, models.ApprovalStatusRejected, reviewer, reason, "rejected", false)
}

// RequestRevisions sends an analysis back for rework and increments the
// revision counter.
func (w *ApprovalWorkflow) RequestRevisions(analysisID, reviewer, notes string) (models.ApprovalRecord, error) {
	return w.transition(analysisID, models.ApprovalStatusRevisionsNeeded, reviewer, notes, "revisions_requested", true)
}

func (w *ApprovalWorkflow) transition(analysisID string, status models.ApprovalStatus, reviewer, notes, action string, countRevision bool) (models.ApprovalRecord, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	record, ok := w.approvals[analysisID]
	if !ok {
		return models.ApprovalRecord{}, &ErrNotFound{AnalysisID: analysisID}
	}

	now := time.Now()
	record.Status = status
	record.ReviewedBy = reviewer
	record.ReviewedAt = &now
	if notes != "" {
		record.ApprovalNotes = notes
	}

	entry := models.ApprovalAction{
		Action:    action,
		By:        reviewer,
		Notes:     notes,
		Timestamp: now,
	}
	if countRevision {
		record.RevisionCount++
		entry.RevisionCount = record.RevisionCount
	}
	record.History = append(record.History, entry)

	log.Printf("Workbench: analysis %s %s by %s", analysisID, action, reviewer)
	return *record, nil
}

// Status returns the current approval record for an id.
func (w *ApprovalWorkflow) Status(analysisID string) (models.ApprovalRecord, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	record, ok := w.approvals[analysisID]
	if !ok {
		return models.ApprovalRecord{}, &ErrNotFound{AnalysisID: analysisID}
	}
	return *record, nil
}

// Pending returns all records still in the pending state.
func (w *ApprovalWorkflow) Pending() []models.ApprovalRecord {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]models.ApprovalRecord, 0)
	for _, record := range w.approvals {
		if record.Status == models.ApprovalStatusPending {
			out = append(out, *record)
		}
	}
	return out
}

// Stats summarizes the approval table by status.
func (w *ApprovalWorkflow) Stats() models.ApprovalStats {
	w.mu.Lock()
	defer w.mu.Unlock()

	byStatus := make(map[string]int)
	for _, record := range w.approvals {
		byStatus[string(record.Status)]++
	}

	return models.ApprovalStats{
		TotalApprovals:       len(w.approvals),
		ByStatus:             byStatus,
		PendingCount:         byStatus[string(models.ApprovalStatusPending)],
		ApprovedCount:        byStatus[string(models.ApprovalStatusApproved)],
		RejectedCount:        byStatus[string(models.ApprovalStatusRejected)],
		RevisionsNeededCount: byStatus[string(models.ApprovalStatusRevisionsNeeded)],
	}
}

// Clear removes all approval records.
func (w *ApprovalWorkflow) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.approvals = make(map[string]*models.ApprovalRecord)
	log.Printf("Workbench: all approval records cleared")
}
