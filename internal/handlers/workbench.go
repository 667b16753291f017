package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"real-estate-intelligence/internal/models"
	"real-estate-intelligence/internal/validation"
	"real-estate-intelligence/internal/workbench"
)

// WorkbenchHandler serves the human-review endpoints: feedback, approvals,
// and analysis shape validation.
type WorkbenchHandler struct {
	feedback  *workbench.FeedbackLog
	approvals *workbench.ApprovalWorkflow
}

// NewWorkbenchHandler creates a workbench handler around the given stores
func NewWorkbenchHandler(feedback *workbench.FeedbackLog, approvals *workbench.ApprovalWorkflow) *WorkbenchHandler {
	return &WorkbenchHandler{
		feedback:  feedback,
		approvals: approvals,
	}
}

// SubmitFeedback records reviewer feedback for a property
func (h *WorkbenchHandler) SubmitFeedback(c *gin.Context) {
	var req struct {
		PropertyAddress      string  `json:"property_address" binding:"required"`
		FeedbackType         string  `json:"feedback_type" binding:"required"`
		FeedbackContent      string  `json:"feedback_content"`
		AnalystName          string  `json:"analyst_name"`
		ConfidenceAdjustment float64 `json:"confidence_adjustment"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}

	record := h.feedback.Submit(req.PropertyAddress, req.FeedbackType,
		req.FeedbackContent, req.AnalystName, req.ConfidenceAdjustment)

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"feedback":  record,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GetFeedback returns all feedback for a property
func (h *WorkbenchHandler) GetFeedback(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"error":  "Query parameter 'address' is required",
		})
		return
	}

	records := h.feedback.ForProperty(address)
	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"address":  address,
		"feedback": records,
		"count":    len(records),
	})
}

// FeedbackSummary returns aggregate feedback statistics
func (h *WorkbenchHandler) FeedbackSummary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"summary": h.feedback.Stats(),
	})
}

// ApplyFeedback adjusts an analysis with the stored feedback for its address
func (h *WorkbenchHandler) ApplyFeedback(c *gin.Context) {
	var req struct {
		Analysis models.AnalysisRecord `json:"analysis" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}

	records := h.feedback.ForProperty(req.Analysis.BasicInfo.Address)
	adjusted := workbench.ApplyFeedback(req.Analysis, records)

	c.JSON(http.StatusOK, gin.H{
		"status":           "success",
		"analysis":         adjusted,
		"feedback_applied": len(records),
		"timestamp":        time.Now().Format(time.RFC3339),
	})
}

// ClearFeedback removes all feedback history
func (h *WorkbenchHandler) ClearFeedback(c *gin.Context) {
	h.feedback.Clear()
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Feedback history cleared"})
}

// ValidateAnalysis shape-checks a submitted analysis and returns a report
func (h *WorkbenchHandler) ValidateAnalysis(c *gin.Context) {
	var record models.AnalysisRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}

	report := validation.Report(record)
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"report": report,
	})
}

// CreateApproval registers an approval request for an analysis
func (h *WorkbenchHandler) CreateApproval(c *gin.Context) {
	var req struct {
		Analysis    models.AnalysisRecord `json:"analysis" binding:"required"`
		RequestedBy string                `json:"requested_by"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}

	if req.Analysis.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"error":  "Analysis must carry an analysis_id",
		})
		return
	}

	record := h.approvals.CreateRequest(req.Analysis.ID, req.Analysis, req.RequestedBy)
	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"approval": record,
	})
}

type reviewRequest struct {
	Reviewer string `json:"reviewer" binding:"required"`
	Notes    string `json:"notes"`
	Reason   string `json:"reason"`
}

// SubmitForReview moves an approval to the reviewing state
func (h *WorkbenchHandler) SubmitForReview(c *gin.Context) {
	h.transition(c, func(id string, req reviewRequest) (models.ApprovalRecord, error) {
		return h.approvals.SubmitForReview(id, req.Reviewer)
	})
}

// Approve marks an analysis approved
func (h *WorkbenchHandler) Approve(c *gin.Context) {
	h.transition(c, func(id string, req reviewRequest) (models.ApprovalRecord, error) {
		return h.approvals.Approve(id, req.Reviewer, req.Notes)
	})
}

// Reject marks an analysis rejected
func (h *WorkbenchHandler) Reject(c *gin.Context) {
	h.transition(c, func(id string, req reviewRequest) (models.ApprovalRecord, error) {
		reason := req.Reason
		if reason == "" {
			reason = req.Notes
		}
		return h.approvals.Reject(id, req.Reviewer, reason)
	})
}

// RequestRevisions sends an analysis back for rework
func (h *WorkbenchHandler) RequestRevisions(c *gin.Context) {
	h.transition(c, func(id string, req reviewRequest) (models.ApprovalRecord, error) {
		return h.approvals.RequestRevisions(id, req.Reviewer, req.Notes)
	})
}

func (h *WorkbenchHandler) transition(c *gin.Context, fn func(string, reviewRequest) (models.ApprovalRecord, error)) {
	id := c.Param("id")

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": err.Error()})
		return
	}

	record, err := fn(id, req)
	if err != nil {
		h.approvalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"approval": record,
	})
}

// ApprovalStatus returns the current approval record for an analysis
func (h *WorkbenchHandler) ApprovalStatus(c *gin.Context) {
	record, err := h.approvals.Status(c.Param("id"))
	if err != nil {
		h.approvalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"approval": record,
	})
}

// PendingApprovals lists approvals still waiting for review
func (h *WorkbenchHandler) PendingApprovals(c *gin.Context) {
	pending := h.approvals.Pending()
	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"approvals": pending,
		"count":     len(pending),
	})
}

// ApprovalStats returns approval statistics by status
func (h *WorkbenchHandler) ApprovalStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"stats":  h.approvals.Stats(),
	})
}

// ClearApprovals removes all approval records
func (h *WorkbenchHandler) ClearApprovals(c *gin.Context) {
	h.approvals.Clear()
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Approval records cleared"})
}

func (h *WorkbenchHandler) approvalError(c *gin.Context, err error) {
	var notFound *workbench.ErrNotFound
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
}
