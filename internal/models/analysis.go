package models

import "time"

// ValuationResult holds the deterministic valuation output. It is recomputed
// on every request and never cached.
type ValuationResult struct {
	EstimatedValue  float64   `json:"estimated_value"`
	PricePerSqft    float64   `json:"price_per_sqft"`
	ConfidenceScore float64   `json:"confidence_score"`
	ValuationDate   time.Time `json:"valuation_date"`
}

// InvestmentAnalysis holds return and scoring figures derived from a valuation.
// PaybackPeriodYears is +Inf when the total annual return is non-positive;
// it serializes as the string "inf" to keep the JSON valid.
type InvestmentAnalysis struct {
	AnnualRentalPotential float64     `json:"annual_rental_potential"`
	AnnualAppreciation    float64     `json:"annual_appreciation"`
	TotalAnnualReturn     float64     `json:"total_annual_return"`
	ROIPercentage         float64     `json:"roi_percentage"`
	ROICategory           string      `json:"roi_category"`
	InvestmentScore       int         `json:"investment_score"`
	Recommendation        string      `json:"recommendation"`
	PaybackPeriodYears    JSONFloat64 `json:"payback_period_years"`
}

// RiskAssessment holds the banded risk labels for a property.
type RiskAssessment struct {
	LocationRisk    string `json:"location_risk"`
	MaintenanceRisk string `json:"maintenance_risk"`
	MarketRisk      string `json:"market_risk"`
	LiquidityRisk   string `json:"liquidity_risk"`
	OverallRisk     string `json:"overall_risk"`
}

// ComparableProperty is a synthetic peer listing generated for market context.
type ComparableProperty struct {
	Address      string  `json:"address"`
	Price        float64 `json:"price"`
	Sqft         int     `json:"sqft"`
	Beds         int     `json:"beds"`
	PricePerSqft float64 `json:"price_per_sqft"`
}

// MarketAnalysis groups the presentational market context.
type MarketAnalysis struct {
	ComparableProperties []ComparableProperty `json:"comparable_properties"`
	MarketTrend          string               `json:"market_trend"`
	MarketGrowthRate     string               `json:"market_growth_rate"`
	LocationDesirability string               `json:"location_desirability"`
}

// PropertyFeatures holds amenity and narrative content.
type PropertyFeatures struct {
	Amenities        []string `json:"amenities"`
	NearbyFacilities []string `json:"nearby_facilities"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
}

// FutureProjections holds the 5-year outlook. Values are not discounted to
// present value.
type FutureProjections struct {
	ProjectedValue5Years        float64 `json:"projected_value_5years"`
	ProjectedRentalIncome5Years float64 `json:"projected_rental_income_5years"`
	ProjectedTotalValue5Years   float64 `json:"projected_total_value_5years"`
}

// AnalysisSummary is the condensed header of an analysis.
type AnalysisSummary struct {
	PropertyName             string    `json:"property_name"`
	EstimatedValue           float64   `json:"estimated_value"`
	InvestmentRecommendation string    `json:"investment_recommendation"`
	ROI                      float64   `json:"roi"`
	InvestmentScore          int       `json:"investment_score"`
	AnalysisDate             time.Time `json:"analysis_date"`
	Status                   string    `json:"status"`
}

// EnrichmentInsights carries the optional free-text advisory commentary.
// Empty fields mean the corresponding advisor was skipped or failed; content
// is opaque and never validated.
type EnrichmentInsights struct {
	ValuationInsight  string `json:"valuation_insight,omitempty"`
	InvestmentInsight string `json:"investment_insight,omitempty"`
	MarketInsight     string `json:"market_insight,omitempty"`
}

// FeedbackSummaryEntry is one truncated feedback item in an applied summary.
type FeedbackSummaryEntry struct {
	Type    string `json:"type"`
	Analyst string `json:"analyst"`
	Content string `json:"content"`
}

// HumanFeedback is appended to an analysis when reviewer feedback is applied.
type HumanFeedback struct {
	FeedbackCount        int                    `json:"feedback_count"`
	ConfidenceAdjustment float64                `json:"confidence_adjustment"`
	LastFeedback         time.Time              `json:"last_feedback"`
	FeedbackSummary      []FeedbackSummaryEntry `json:"feedback_summary"`
}

// AnalysisRecord is the full result envelope produced per analysis request.
// Immutable after assembly except for feedback application, which returns an
// adjusted copy.
type AnalysisRecord struct {
	ID                 string              `json:"analysis_id"`
	BasicInfo          PropertyInput       `json:"basic_info"`
	Valuation          ValuationResult     `json:"valuation"`
	MarketAnalysis     MarketAnalysis      `json:"market_analysis"`
	InvestmentAnalysis InvestmentAnalysis  `json:"investment_analysis"`
	RiskAssessment     RiskAssessment      `json:"risk_assessment"`
	PropertyFeatures   PropertyFeatures    `json:"property_features"`
	Recommendations    []string            `json:"recommendations"`
	FutureProjections  FutureProjections   `json:"future_projections"`
	AnalysisSummary    AnalysisSummary     `json:"analysis_summary"`
	Enrichment         *EnrichmentInsights `json:"enrichment,omitempty"`
	HumanFeedback      *HumanFeedback      `json:"human_feedback,omitempty"`
}
