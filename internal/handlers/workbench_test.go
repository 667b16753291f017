package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"real-estate-intelligence/internal/models"
	"real-estate-intelligence/internal/workbench"
)

func sampleApprovalAnalysis() models.AnalysisRecord {
	a := models.AnalysisRecord{ID: "a1"}
	a.BasicInfo.Address = "123 Oak Street"
	a.Valuation.EstimatedValue = 495000
	return a
}

func newWorkbenchRouter() (*gin.Engine, *workbench.FeedbackLog, *workbench.ApprovalWorkflow) {
	gin.SetMode(gin.TestMode)

	feedback := workbench.NewFeedbackLog()
	approvals := workbench.NewApprovalWorkflow()
	h := NewWorkbenchHandler(feedback, approvals)

	r := gin.New()
	wb := r.Group("/api/workbench")
	{
		wb.POST("/feedback", h.SubmitFeedback)
		wb.GET("/feedback", h.GetFeedback)
		wb.GET("/feedback/summary", h.FeedbackSummary)
		wb.POST("/feedback/apply", h.ApplyFeedback)
		wb.DELETE("/feedback", h.ClearFeedback)
		wb.POST("/validate", h.ValidateAnalysis)
		wb.POST("/approvals", h.CreateApproval)
		wb.GET("/approvals", h.PendingApprovals)
		wb.GET("/approvals/stats", h.ApprovalStats)
		wb.DELETE("/approvals", h.ClearApprovals)
		wb.GET("/approvals/:id", h.ApprovalStatus)
		wb.POST("/approvals/:id/review", h.SubmitForReview)
		wb.POST("/approvals/:id/approve", h.Approve)
		wb.POST("/approvals/:id/reject", h.Reject)
		wb.POST("/approvals/:id/revisions", h.RequestRevisions)
	}

	return r, feedback, approvals
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestSubmitFeedbackEndpoint(t *testing.T) {
	r, feedback, _ := newWorkbenchRouter()

	w, body := doJSON(t, r, http.MethodPost, "/api/workbench/feedback", `{
		"property_address": "123 Oak Street",
		"feedback_type": "valuation",
		"feedback_content": "Looks 5% high",
		"analyst_name": "Jane",
		"confidence_adjustment": -0.05
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", body["status"])
	assert.Len(t, feedback.ForProperty("123 Oak Street"), 1)
}

func TestSubmitFeedbackRequiresFields(t *testing.T) {
	r, _, _ := newWorkbenchRouter()

	w, body := doJSON(t, r, http.MethodPost, "/api/workbench/feedback", `{"property_address": "123 Oak Street"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", body["status"])
}

func TestGetFeedbackEndpoint(t *testing.T) {
	r, feedback, _ := newWorkbenchRouter()
	feedback.Submit("123 Oak Street", "valuation", "note", "Jane", 0)

	w, body := doJSON(t, r, http.MethodGet, "/api/workbench/feedback?address=123+Oak+Street", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["count"])

	w, _ = doJSON(t, r, http.MethodGet, "/api/workbench/feedback", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedbackSummaryEndpoint(t *testing.T) {
	r, feedback, _ := newWorkbenchRouter()
	feedback.Submit("123 Oak Street", "valuation", "", "Jane", 0)
	feedback.Submit("456 Elm Street", "market", "", "Ken", 0)

	w, body := doJSON(t, r, http.MethodGet, "/api/workbench/feedback/summary", "")
	assert.Equal(t, http.StatusOK, w.Code)

	summary := body["summary"].(map[string]interface{})
	assert.Equal(t, float64(2), summary["total_feedback"])
}

func TestApplyFeedbackEndpoint(t *testing.T) {
	r, feedback, _ := newWorkbenchRouter()
	feedback.Submit("123 Oak Street", "valuation", "", "Jane", 0.04)

	w, body := doJSON(t, r, http.MethodPost, "/api/workbench/feedback/apply", `{
		"analysis": {
			"analysis_id": "a1",
			"basic_info": {"address": "123 Oak Street"},
			"valuation": {"confidence_score": 0.9}
		}
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["feedback_applied"])

	analysis := body["analysis"].(map[string]interface{})
	valuation := analysis["valuation"].(map[string]interface{})
	assert.InDelta(t, 0.94, valuation["confidence_score"].(float64), 1e-9)
}

func TestClearFeedbackEndpoint(t *testing.T) {
	r, feedback, _ := newWorkbenchRouter()
	feedback.Submit("123 Oak Street", "valuation", "", "Jane", 0)

	w, _ := doJSON(t, r, http.MethodDelete, "/api/workbench/feedback", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, feedback.Stats().TotalFeedback)
}

func TestValidateEndpoint(t *testing.T) {
	r, _, _ := newWorkbenchRouter()

	w, body := doJSON(t, r, http.MethodPost, "/api/workbench/validate", `{"analysis_id": "a1"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	report := body["report"].(map[string]interface{})
	assert.Equal(t, false, report["is_valid"])
}

func TestApprovalLifecycleOverHTTP(t *testing.T) {
	r, _, approvals := newWorkbenchRouter()

	w, _ := doJSON(t, r, http.MethodPost, "/api/workbench/approvals", `{
		"analysis": {
			"analysis_id": "a1",
			"basic_info": {"address": "123 Oak Street"},
			"valuation": {"estimated_value": 495000}
		},
		"requested_by": "pipeline"
	}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/workbench/approvals/a1/review", `{"reviewer": "Alice"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w, body := doJSON(t, r, http.MethodPost, "/api/workbench/approvals/a1/approve", `{"reviewer": "Alice", "notes": "ok"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	approval := body["approval"].(map[string]interface{})
	assert.Equal(t, "approved", approval["status"])

	record, err := approvals.Status("a1")
	require.NoError(t, err)
	assert.Equal(t, 2, len(record.History))
}

func TestCreateApprovalRequiresID(t *testing.T) {
	r, _, _ := newWorkbenchRouter()

	w, _ := doJSON(t, r, http.MethodPost, "/api/workbench/approvals", `{
		"analysis": {"basic_info": {"address": "123 Oak Street"}}
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransitionRequiresReviewer(t *testing.T) {
	r, _, approvals := newWorkbenchRouter()
	approvals.CreateRequest("a1", sampleApprovalAnalysis(), "pipeline")

	w, _ := doJSON(t, r, http.MethodPost, "/api/workbench/approvals/a1/approve", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownApprovalReturns404(t *testing.T) {
	r, _, _ := newWorkbenchRouter()

	w, _ := doJSON(t, r, http.MethodPost, "/api/workbench/approvals/missing/approve", `{"reviewer": "Alice"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/workbench/approvals/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPendingAndStatsEndpoints(t *testing.T) {
	r, _, approvals := newWorkbenchRouter()
	approvals.CreateRequest("a1", sampleApprovalAnalysis(), "pipeline")
	approvals.CreateRequest("a2", sampleApprovalAnalysis(), "pipeline")
	_, err := approvals.Approve("a2", "Alice", "")
	require.NoError(t, err)

	w, body := doJSON(t, r, http.MethodGet, "/api/workbench/approvals", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["count"])

	w, body = doJSON(t, r, http.MethodGet, "/api/workbench/approvals/stats", "")
	assert.Equal(t, http.StatusOK, w.Code)

	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, float64(2), stats["total_approvals"])
	assert.Equal(t, float64(1), stats["approved_count"])
}
