package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"real-estate-intelligence/internal/models"
)

func completeAnalysis() models.AnalysisRecord {
	return models.AnalysisRecord{
		ID: "abc-123",
		Valuation: models.ValuationResult{
			EstimatedValue:  495000,
			ConfidenceScore: 0.9,
		},
		InvestmentAnalysis: models.InvestmentAnalysis{
			InvestmentScore: 7,
			Recommendation:  "RECOMMENDED - Good investment with solid returns",
		},
		MarketAnalysis: models.MarketAnalysis{
			MarketTrend:          "stable",
			ComparableProperties: []models.ComparableProperty{{Address: "Nearby Property 1"}},
		},
		RiskAssessment: models.RiskAssessment{
			LocationRisk:    "low-moderate",
			MaintenanceRisk: "low-moderate",
			MarketRisk:      "low-moderate",
			LiquidityRisk:   "low",
			OverallRisk:     "low",
		},
		AnalysisSummary: models.AnalysisSummary{
			PropertyName: "123 Oak Street, Downtown District",
		},
	}
}

func TestValidateAnalysisAccepts(t *testing.T) {
	valid, issues := ValidateAnalysis(completeAnalysis())
	assert.True(t, valid)
	assert.Empty(t, issues)
}

func TestValidateAnalysisFlagsMissingSections(t *testing.T) {
	a := completeAnalysis()
	a.Valuation.EstimatedValue = 0
	a.Valuation.ConfidenceScore = 1.4
	a.InvestmentAnalysis.InvestmentScore = 0
	a.MarketAnalysis.ComparableProperties = nil
	a.RiskAssessment.OverallRisk = ""

	valid, issues := ValidateAnalysis(a)
	assert.False(t, valid)
	assert.Len(t, issues, 5)
}

func TestValidateAnalysisIsPure(t *testing.T) {
	a := completeAnalysis()

	_, first := ValidateAnalysis(a)
	_, second := ValidateAnalysis(a)
	assert.Equal(t, first, second)
}

func TestReport(t *testing.T) {
	report := Report(completeAnalysis())

	assert.True(t, report.IsValid)
	assert.Equal(t, 0, report.TotalIssues)
	assert.NotNil(t, report.Issues)
	assert.Equal(t, "123 Oak Street, Downtown District", report.Property)
	assert.Equal(t, "Ready for use", report.Recommendation)
	assert.False(t, report.ValidationTimestamp.IsZero())
}

func TestReportNeedsReview(t *testing.T) {
	a := completeAnalysis()
	a.AnalysisSummary.PropertyName = ""
	a.Valuation.EstimatedValue = -1

	report := Report(a)

	assert.False(t, report.IsValid)
	assert.Equal(t, report.TotalIssues, len(report.Issues))
	assert.Equal(t, "Unknown", report.Property)
	assert.Equal(t, "Needs review", report.Recommendation)
}
