package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"real-estate-intelligence/internal/models"
)

func TestParseAnalysisFromHit(t *testing.T) {
	// JSON decoding hands numbers back as float64 and everything else as
	// interface{}, so the hit map mirrors that.
	hit := map[string]interface{}{
		"id":               "a1",
		"property_address": "123 Oak Street",
		"estimated_value":  495000.0,
		"price_per_sqft":   198.0,
		"investment_score": 7.0,
		"roi_percentage":   8.33,
		"recommendation":   "RECOMMENDED - Good investment with solid returns",
		"overall_risk":     "low",
		"enriched":         true,
		"analyzed_at":      1717243200.0,
	}

	row := parseAnalysisFromHit(hit)

	assert.Equal(t, "a1", row.ID)
	assert.Equal(t, "123 Oak Street", row.PropertyAddress)
	assert.Equal(t, 495000.0, row.EstimatedValue)
	assert.Equal(t, 198.0, row.PricePerSqft)
	assert.Equal(t, 7, row.InvestmentScore)
	assert.Equal(t, 8.33, row.ROIPercentage)
	assert.Equal(t, "low", row.OverallRisk)
	assert.True(t, row.Enriched)
}

func TestParseAnalysisFromHitIgnoresWrongTypes(t *testing.T) {
	hit := map[string]interface{}{
		"id":               42,
		"estimated_value":  "not a number",
		"investment_score": "seven",
		"enriched":         "yes",
	}

	row := parseAnalysisFromHit(hit)

	assert.Empty(t, row.ID)
	assert.Equal(t, 0.0, row.EstimatedValue)
	assert.Equal(t, 0, row.InvestmentScore)
	assert.False(t, row.Enriched)
}

func TestParseAnalysisFromHitNonMap(t *testing.T) {
	assert.Equal(t, models.AnalysisRow{}, parseAnalysisFromHit("garbage"))
	assert.Equal(t, models.AnalysisRow{}, parseAnalysisFromHit(nil))
}

func TestGetString(t *testing.T) {
	m := map[string]interface{}{
		"present": "value",
		"number":  3.0,
	}

	assert.Equal(t, "value", getString(m, "present"))
	assert.Equal(t, "", getString(m, "number"))
	assert.Equal(t, "", getString(m, "missing"))
}

func TestToDocumentFlattens(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	row := models.AnalysisRow{
		ID:              "a1",
		PropertyAddress: "123 Oak Street",
		EstimatedValue:  495000,
		PricePerSqft:    198,
		InvestmentScore: 7,
		ROIPercentage:   8.33,
		Recommendation:  "RECOMMENDED - Good investment with solid returns",
		OverallRisk:     "low",
		Enriched:        true,
		Payload:         `{"analysis_id":"a1"}`,
		AnalyzedAt:      at,
	}

	doc := toDocument(row)

	assert.Equal(t, "a1", doc.ID)
	assert.Equal(t, "123 Oak Street", doc.PropertyAddress)
	assert.Equal(t, at.Unix(), doc.AnalyzedAt)
	assert.True(t, doc.Enriched)
}
