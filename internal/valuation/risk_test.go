package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"real-estate-intelligence/internal/models"
)

func TestRiskLevelBands(t *testing.T) {
	// downtown(2) + excellent(1), no age weight: avg 1.0
	assert.Equal(t, "low", RiskLevel("downtown", "excellent", 5))

	// urban(2) + good(2), no age weight: avg 1.33
	assert.Equal(t, "low", RiskLevel("urban", "good", 10))

	// suburban(3) + fair(3) + age>30(2): avg 2.67
	assert.Equal(t, "moderate", RiskLevel("suburban", "fair", 35))

	// rural(4) + poor(5) + age>50(3): avg 4.0
	assert.Equal(t, "moderate-high", RiskLevel("rural", "poor", 60))

	// rural(4) + needs_repair(4) + age>50(3): avg 3.67
	assert.Equal(t, "moderate-high", RiskLevel("rural", "needs_repair", 55))
}

func TestAssessRiskComponents(t *testing.T) {
	p := models.PropertyInput{
		LocationType:       "urban",
		Condition:          "good",
		NeighborhoodRating: "good",
		AgeYears:           8,
	}

	risk := AssessRisk(p)

	assert.Equal(t, "low-moderate", risk.LocationRisk)
	assert.Equal(t, "low-moderate", risk.MaintenanceRisk)
	assert.Equal(t, MarketRiskLabel, risk.MarketRisk)
	assert.Equal(t, "low", risk.LiquidityRisk)
	assert.Equal(t, RiskLevel("urban", "good", 8), risk.OverallRisk)
}

func TestAssessRiskLiquidityByLocation(t *testing.T) {
	for loc, want := range map[string]string{
		"downtown": "low",
		"urban":    "low",
		"suburban": "moderate",
		"rural":    "moderate",
	} {
		p := models.PropertyInput{LocationType: loc, Condition: "fair"}
		assert.Equal(t, want, AssessRisk(p).LiquidityRisk, "location=%s", loc)
	}
}

func TestMaintenanceRisk(t *testing.T) {
	assert.Equal(t, "low", maintenanceRisk("excellent", 10))
	assert.Equal(t, "low-moderate", maintenanceRisk("excellent", 60))
	assert.Equal(t, "low-moderate", maintenanceRisk("good", 10))
	assert.Equal(t, "moderate", maintenanceRisk("fair", 10))
	assert.Equal(t, "moderate-high", maintenanceRisk("needs_repair", 10))
	assert.Equal(t, "high", maintenanceRisk("poor", 10))
}
