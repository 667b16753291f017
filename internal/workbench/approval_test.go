package workbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"real-estate-intelligence/internal/models"
)

func sampleAnalysis() models.AnalysisRecord {
	a := models.AnalysisRecord{ID: "a1"}
	a.BasicInfo.Address = "123 Oak Street"
	a.Valuation.EstimatedValue = 495000
	a.InvestmentAnalysis.InvestmentScore = 7
	a.InvestmentAnalysis.ROIPercentage = 8.5
	return a
}

func TestCreateRequestStartsPending(t *testing.T) {
	w := NewApprovalWorkflow()

	record := w.CreateRequest("a1", sampleAnalysis(), "")

	assert.Equal(t, models.ApprovalStatusPending, record.Status)
	assert.Equal(t, "System", record.RequestedBy)
	assert.Equal(t, "123 Oak Street", record.PropertyAddress)
	assert.Equal(t, 495000.0, record.EstimatedValue)
	assert.Empty(t, record.History)
	assert.Nil(t, record.ReviewedAt)
}

func TestApproveRecordsHistory(t *testing.T) {
	w := NewApprovalWorkflow()
	w.CreateRequest("a1", sampleAnalysis(), "System")

	record, err := w.Approve("a1", "Alice", "Figures check out")
	require.NoError(t, err)

	assert.Equal(t, models.ApprovalStatusApproved, record.Status)
	assert.Equal(t, "Alice", record.ReviewedBy)
	assert.NotNil(t, record.ReviewedAt)
	assert.Equal(t, "Figures check out", record.ApprovalNotes)
	require.Len(t, record.History, 1)
	assert.Equal(t, "approved", record.History[0].Action)
}

func TestFullReviewCycle(t *testing.T) {
	w := NewApprovalWorkflow()
	w.CreateRequest("a1", sampleAnalysis(), "System")

	_, err := w.SubmitForReview("a1", "Alice")
	require.NoError(t, err)

	record, err := w.RequestRevisions("a1", "Alice", "Confidence too low")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusRevisionsNeeded, record.Status)
	assert.Equal(t, 1, record.RevisionCount)

	record, err = w.Approve("a1", "Alice", "")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusApproved, record.Status)
	assert.Len(t, record.History, 3)
}

func TestTransitionsAreUnguarded(t *testing.T) {
	w := NewApprovalWorkflow()
	w.CreateRequest("a1", sampleAnalysis(), "System")

	_, err := w.Approve("a1", "Alice", "")
	require.NoError(t, err)

	// A terminal record can still be rejected.
	record, err := w.Reject("a1", "Bob", "Second look disagrees")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalStatusRejected, record.Status)
}

func TestUnknownAnalysisReturnsErrNotFound(t *testing.T) {
	w := NewApprovalWorkflow()

	_, err := w.Approve("missing", "Alice", "")
	require.Error(t, err)

	var notFound *ErrNotFound
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.AnalysisID)

	_, err = w.Status("missing")
	assert.ErrorAs(t, err, &notFound)
}

func TestCreateRequestOverwrites(t *testing.T) {
	w := NewApprovalWorkflow()
	w.CreateRequest("a1", sampleAnalysis(), "System")
	_, err := w.Approve("a1", "Alice", "")
	require.NoError(t, err)

	record := w.CreateRequest("a1", sampleAnalysis(), "System")
	assert.Equal(t, models.ApprovalStatusPending, record.Status)
	assert.Empty(t, record.History)
}

func TestPendingAndStats(t *testing.T) {
	w := NewApprovalWorkflow()
	w.CreateRequest("a1", sampleAnalysis(), "System")
	w.CreateRequest("a2", sampleAnalysis(), "System")
	w.CreateRequest("a3", sampleAnalysis(), "System")

	_, err := w.Approve("a2", "Alice", "")
	require.NoError(t, err)
	_, err = w.Reject("a3", "Alice", "bad numbers")
	require.NoError(t, err)

	pending := w.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, "a1", pending[0].AnalysisID)

	stats := w.Stats()
	assert.Equal(t, 3, stats.TotalApprovals)
	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 1, stats.ApprovedCount)
	assert.Equal(t, 1, stats.RejectedCount)
	assert.Equal(t, 0, stats.RevisionsNeededCount)
}

func TestClearApprovals(t *testing.T) {
	w := NewApprovalWorkflow()
	w.CreateRequest("a1", sampleAnalysis(), "System")

	w.Clear()

	assert.Equal(t, 0, w.Stats().TotalApprovals)
	_, err := w.Status("a1")
	assert.Error(t, err)
}
