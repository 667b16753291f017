package valuation

import "real-estate-intelligence/internal/models"

// RiskLevel computes the overall risk band from weighted location, condition
// and age contributions averaged over the three components.
func RiskLevel(locationType, condition string, ageYears int) string {
	score := lookupInt(locationRiskWeights, locationType, 3)
	score += lookupInt(conditionRiskWeights, condition, 3)

	switch {
	case ageYears > 50:
		score += 3
	case ageYears > 30:
		score += 2
	}

	avg := float64(score) / 3

	switch {
	case avg < 1.5:
		return "low"
	case avg < 2.5:
		return "low-moderate"
	case avg < 3.5:
		return "moderate"
	case avg < 4.5:
		return "moderate-high"
	default:
		return "high"
	}
}

// AssessRisk produces the per-component labels plus the overall band.
// Component labels come from fixed lookups; market risk is a constant since
// no live market data feeds the engine.
func AssessRisk(p models.PropertyInput) models.RiskAssessment {
	maintenance := maintenanceRisk(p.Condition, p.AgeYears)

	liquidity := "moderate"
	if p.LocationType == "downtown" || p.LocationType == "urban" {
		liquidity = "low"
	}

	locationLabel, ok := locationRiskLabels[p.LocationType]
	if !ok {
		locationLabel = "moderate"
	}

	return models.RiskAssessment{
		LocationRisk:    locationLabel,
		MaintenanceRisk: maintenance,
		MarketRisk:      MarketRiskLabel,
		LiquidityRisk:   liquidity,
		OverallRisk:     RiskLevel(p.LocationType, p.Condition, p.AgeYears),
	}
}

// maintenanceRisk is derived purely from condition and age.
func maintenanceRisk(condition string, ageYears int) string {
	switch condition {
	case "excellent":
		if ageYears > 50 {
			return "low-moderate"
		}
		return "low"
	case "good":
		return "low-moderate"
	case "fair":
		return "moderate"
	case "needs_repair":
		return "moderate-high"
	default:
		return "high"
	}
}

func lookupInt(table map[string]int, key string, def int) int {
	if v, ok := table[key]; ok {
		return v
	}
	return def
}
