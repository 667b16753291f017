package validation

import (
	"time"

	"real-estate-intelligence/internal/models"
)

// ValidateAnalysis shape-checks a completed analysis before human review.
// Pure function of its input: calling it twice on the same record yields the
// same result, and it never fails; issues come back as a structured list.
func ValidateAnalysis(a models.AnalysisRecord) (bool, []string) {
	var issues []string

	if a.AnalysisSummary.PropertyName == "" {
		issues = append(issues, "Summary: Missing property_name")
	}

	if a.Valuation.EstimatedValue <= 0 {
		issues = append(issues, "Valuation: estimated_value must be positive number")
	}
	if a.Valuation.ConfidenceScore < 0 || a.Valuation.ConfidenceScore > 1 {
		issues = append(issues, "Valuation: confidence_score must be between 0 and 1")
	}

	if a.InvestmentAnalysis.InvestmentScore < 1 || a.InvestmentAnalysis.InvestmentScore > 10 {
		issues = append(issues, "Investment: investment_score must be between 1 and 10")
	}
	if a.InvestmentAnalysis.Recommendation == "" {
		issues = append(issues, "Investment: Missing recommendation")
	}

	if a.MarketAnalysis.MarketTrend == "" {
		issues = append(issues, "Market: Missing market_trend")
	}
	if len(a.MarketAnalysis.ComparableProperties) == 0 {
		issues = append(issues, "Market: Missing comparable_properties")
	}

	if a.RiskAssessment.LocationRisk == "" {
		issues = append(issues, "Risk: Missing location_risk")
	}
	if a.RiskAssessment.MaintenanceRisk == "" {
		issues = append(issues, "Risk: Missing maintenance_risk")
	}
	if a.RiskAssessment.OverallRisk == "" {
		issues = append(issues, "Risk: Missing overall_risk")
	}

	return len(issues) == 0, issues
}

// ValidationReport wraps ValidateAnalysis output for the workbench UI.
type ValidationReport struct {
	IsValid             bool      `json:"is_valid"`
	TotalIssues         int       `json:"total_issues"`
	Issues              []string  `json:"issues"`
	Property            string    `json:"property"`
	ValidationTimestamp time.Time `json:"validation_timestamp"`
	Recommendation      string    `json:"recommendation"`
}

// Report produces a detailed validation report for an analysis.
func Report(a models.AnalysisRecord) ValidationReport {
	valid, issues := ValidateAnalysis(a)

	property := a.AnalysisSummary.PropertyName
	if property == "" {
		property = "Unknown"
	}

	recommendation := "Ready for use"
	if !valid {
		recommendation = "Needs review"
	}

	if issues == nil {
		issues = []string{}
	}

	return ValidationReport{
		IsValid:             valid,
		TotalIssues:         len(issues),
		Issues:              issues,
		Property:            property,
		ValidationTimestamp: time.Now(),
		Recommendation:      recommendation,
	}
}
