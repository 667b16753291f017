package valuation

import (
	"math"

	"real-estate-intelligence/internal/models"
)

// ROI returns the annual return as a percentage of the valuation, 0 when the
// valuation is non-positive.
func ROI(annualReturn, valuation float64) float64 {
	if valuation <= 0 {
		return 0
	}
	return round2(annualReturn / valuation * 100)
}

// PaybackPeriod returns years until cumulative return equals the valuation,
// +Inf when the annual return is non-positive.
func PaybackPeriod(valuation, annualReturn float64) float64 {
	if annualReturn <= 0 {
		return math.Inf(1)
	}
	return math.Round(valuation/annualReturn*10) / 10
}

// ROICategory buckets an ROI percentage for presentation.
func ROICategory(roi float64) string {
	switch {
	case roi > 10:
		return "excellent"
	case roi > 7:
		return "good"
	case roi > 5:
		return "moderate"
	default:
		return "low"
	}
}

// InvestmentScore maps the ROI category to a 1-10 score. Threshold banding
// was chosen over the continuous scoring formula; the bands drive the
// recommendation text.
func InvestmentScore(roi float64) int {
	switch ROICategory(roi) {
	case "excellent":
		return 9
	case "good":
		return 7
	case "moderate":
		return 5
	default:
		return 3
	}
}

// Recommendation returns the label for an investment score.
func Recommendation(score int) string {
	switch {
	case score >= 8:
		return "HIGHLY RECOMMENDED - Strong investment potential with excellent ROI"
	case score >= 6:
		return "RECOMMENDED - Good investment with solid returns"
	case score >= 4:
		return "CONSIDER - Moderate investment with acceptable returns"
	default:
		return "NOT RECOMMENDED - Low returns, better options available"
	}
}

// ScoreInvestment derives the investment analysis from a valuation. Rental
// yield and appreciation rate are sampled from their market ranges via the
// engine's random source.
func (e *Engine) ScoreInvestment(v models.ValuationResult) models.InvestmentAnalysis {
	rentalYield := MinRentalYield + e.rng.Float64()*(MaxRentalYield-MinRentalYield)
	appreciationRate := MinAppreciationRate + e.rng.Float64()*(MaxAppreciationRate-MinAppreciationRate)

	rental := round2(v.EstimatedValue * rentalYield)
	appreciation := round2(v.EstimatedValue * appreciationRate)
	totalReturn := round2(rental + appreciation)

	roi := ROI(totalReturn, v.EstimatedValue)
	score := InvestmentScore(roi)

	return models.InvestmentAnalysis{
		AnnualRentalPotential: rental,
		AnnualAppreciation:    appreciation,
		TotalAnnualReturn:     totalReturn,
		ROIPercentage:         roi,
		ROICategory:           ROICategory(roi),
		InvestmentScore:       score,
		Recommendation:        Recommendation(score),
		PaybackPeriodYears:    models.JSONFloat64(PaybackPeriod(v.EstimatedValue, totalReturn)),
	}
}
