package analysis

import (
	"fmt"
	"strings"

	"real-estate-intelligence/internal/models"
)

// strengths derives narrative strengths from deterministic rules on
// condition, location, age and layout.
func strengths(p models.PropertyInput, amenityCount int) []string {
	var out []string

	if p.LocationType == "downtown" || p.LocationType == "urban" {
		out = append(out, "Prime location with high walkability")
	}
	if p.Condition == "excellent" || p.Condition == "good" {
		out = append(out, "Well-maintained property requiring minimal repairs")
	}
	if p.AgeYears < 5 {
		out = append(out, "Modern construction with updated systems")
	}
	if p.Bedrooms >= 4 {
		out = append(out, "Spacious layout suitable for families or rental market")
	}
	if amenityCount >= 4 {
		out = append(out, "Excellent amenities and facilities")
	}

	if len(out) == 0 {
		return []string{"Good investment potential"}
	}
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

// weaknesses mirrors strengths for the downside narrative.
func weaknesses(p models.PropertyInput, roi float64) []string {
	var out []string

	if p.AgeYears > 20 {
		out = append(out, "Older property may require significant maintenance")
	}
	if p.Condition == "needs_repair" || p.Condition == "poor" {
		out = append(out, "Property needs repairs before occupancy")
	}
	if p.LocationType == "rural" {
		out = append(out, "Remote location may limit tenant pool")
	}
	if roi < 5 {
		out = append(out, "Below-average rental yield compared to market")
	}

	if len(out) == 0 {
		return []string{"Monitor market trends"}
	}
	if len(out) > 2 {
		out = out[:2]
	}
	return out
}

// recommendations interpolates the numeric results into templated advice.
func recommendations(inv models.InvestmentAnalysis) []string {
	verdict := inv.Recommendation
	if idx := strings.Index(verdict, "-"); idx > 0 {
		verdict = strings.TrimSpace(verdict[:idx])
	}

	return []string{
		fmt.Sprintf("Based on the analysis, this property is %s", verdict),
		fmt.Sprintf("Expected annual return of %.1f%% makes this a %s investment opportunity",
			inv.ROIPercentage, inv.ROICategory),
		"Recommended holding period: 5+ years for optimal returns",
		"Consider comparative analysis with similar properties in the area",
		"Factor in local market trends and future development plans",
	}
}
