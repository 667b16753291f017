package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"real-estate-intelligence/internal/analysis"
	"real-estate-intelligence/internal/config"
	"real-estate-intelligence/internal/enrich"
	"real-estate-intelligence/internal/history"
	"real-estate-intelligence/internal/models"
	"real-estate-intelligence/internal/ratelimit"
	"real-estate-intelligence/internal/search"
	"real-estate-intelligence/internal/validation"
)

// AnalysisHandler serves the analysis pipeline endpoints. History, search,
// and enrichment are all optional; a nil dependency disables the
// corresponding behavior without failing requests.
type AnalysisHandler struct {
	assembler *analysis.Assembler
	enricher  *enrich.Adapter
	history   *history.Service
	search    *search.SearchClient
	limiter   *ratelimit.RateLimiter
	config    *config.Config
}

// NewAnalysisHandler creates the analysis handler
func NewAnalysisHandler(
	assembler *analysis.Assembler,
	enricher *enrich.Adapter,
	historyService *history.Service,
	searchClient *search.SearchClient,
	limiter *ratelimit.RateLimiter,
	cfg *config.Config,
) *AnalysisHandler {
	return &AnalysisHandler{
		assembler: assembler,
		enricher:  enricher,
		history:   historyService,
		search:    searchClient,
		limiter:   limiter,
		config:    cfg,
	}
}

// Root returns the capability listing
func (h *AnalysisHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "Real Estate Intelligence API",
		"status":  "running",
		"capabilities": []string{
			"property_valuation",
			"investment_analysis",
			"risk_assessment",
			"market_comparables",
			"future_projections",
			"human_review_workbench",
		},
		"endpoints": []string{
			"GET /health",
			"GET /info",
			"POST /api/analyze",
			"POST /api/sample-analyze",
			"GET /api/analyses/history",
			"GET /api/search",
		},
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Health returns liveness status
func (h *AnalysisHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Info echoes the static configuration
func (h *AnalysisHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":            "Real Estate Intelligence API",
		"currency":           h.config.Analysis.Currency,
		"database":           h.config.Database.Type,
		"search_enabled":     h.config.Search.Enabled,
		"enrichment_enabled": h.enricher.Enabled(),
		"enrichment_model":   h.config.Enrichment.Model,
		"variance_enabled":   h.config.Analysis.VarianceEnabled,
		"retention_days":     h.config.Analysis.RetentionDays,
		"timestamp":          time.Now().Format(time.RFC3339),
	})
}

// Analyze runs the full pipeline for a submitted property
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	if h.limiter != nil && !h.limiter.AllowRequest() {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"status": "error",
			"error":  "Rate limit exceeded, try again later",
		})
		return
	}

	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"error":  "Invalid request body: " + err.Error(),
		})
		return
	}

	h.runPipeline(c, req.Property)
}

// SampleAnalyze runs the pipeline against the hardcoded sample property
func (h *AnalysisHandler) SampleAnalyze(c *gin.Context) {
	h.runPipeline(c, models.SampleProperty())
}

func (h *AnalysisHandler) runPipeline(c *gin.Context, property models.PropertyInput) {
	property = validation.NormalizeProperty(property)

	valid, issues := validation.ValidateProperty(property)
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"error":  "Property validation failed",
			"issues": issues,
		})
		return
	}

	record := h.assembler.Analyze(property)

	if h.enricher.Enabled() {
		record = h.enricher.Enrich(c.Request.Context(), record)
	}

	h.persist(record)

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"analysis":  record,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// persist saves and indexes the completed analysis. Failures are logged and
// never surface to the client.
func (h *AnalysisHandler) persist(record models.AnalysisRecord) {
	if h.history != nil {
		if err := h.history.RecordAnalysis(record); err != nil {
			log.Printf("API: failed to persist analysis %s: %v", record.ID, err)
		}
	}

	if h.search != nil {
		row, err := history.ToRow(record)
		if err == nil {
			err = h.search.IndexAnalysis(&row)
		}
		if err != nil {
			log.Printf("API: failed to index analysis %s: %v", record.ID, err)
		}
	}
}

// History returns stored analyses and valuation changes for an address
func (h *AnalysisHandler) History(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "History requires a configured database",
		})
		return
	}

	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"error":  "Query parameter 'address' is required",
		})
		return
	}

	limitStr := c.DefaultQuery("limit", "20")
	limit, _ := strconv.Atoi(limitStr)

	analyses, err := h.history.ForAddress(address, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
		return
	}

	changes, err := h.history.Changes(address, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"address":   address,
		"analyses":  analyses,
		"changes":   changes,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Search queries the analysis index
func (h *AnalysisHandler) Search(c *gin.Context) {
	if h.search == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "Search is not enabled",
		})
		return
	}

	query := c.Query("q")
	limitStr := c.DefaultQuery("limit", "20")
	limit, _ := strconv.ParseInt(limitStr, 10, 64)

	req := search.SearchRequest{Query: query, Limit: limit}
	if filter := c.Query("filter"); filter != "" {
		req.Filter = []string{filter}
	}
	if sort := c.Query("sort"); sort != "" {
		req.Sort = []string{sort}
	}

	result, err := h.search.AdvancedSearch(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":             "success",
		"hits":               result.Hits,
		"total_hits":         result.TotalHits,
		"processing_time_ms": result.ProcessingTime,
		"timestamp":          time.Now().Format(time.RFC3339),
	})
}

// Reindex rebuilds the search index from the store
func (h *AnalysisHandler) Reindex(c *gin.Context) {
	if h.search == nil || h.history == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "Reindex requires both search and a configured database",
		})
		return
	}

	rows, err := h.history.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
		return
	}

	if err := h.search.IndexAnalyses(rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
		return
	}

	log.Printf("API: reindexed %d analyses", len(rows))
	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"indexed":   len(rows),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// RateLimitStats returns current limiter statistics
func (h *AnalysisHandler) RateLimitStats(c *gin.Context) {
	if h.limiter == nil {
		c.JSON(http.StatusOK, ratelimit.Stats{Enabled: false})
		return
	}
	c.JSON(http.StatusOK, h.limiter.GetStats())
}
