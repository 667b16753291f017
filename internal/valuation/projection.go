package valuation

import (
	"math"

	"real-estate-intelligence/internal/models"
)

// FutureValue compounds presentValue at annualRate over years. Degenerate
// inputs (non-positive years, negative rate) return the present value.
func FutureValue(presentValue, annualRate float64, years int) float64 {
	if years <= 0 || annualRate < 0 {
		return presentValue
	}
	return round2(presentValue * math.Pow(1+annualRate, float64(years)))
}

// CumulativeReturn is a linear extrapolation of an annual amount.
func CumulativeReturn(annualAmount float64, years int) float64 {
	return round2(annualAmount * float64(years))
}

// Project produces the 5-year outlook. The appreciation rate is recovered
// from the investment analysis so the projection stays consistent with the
// sampled rate. Values are deliberately not discounted to present value.
func Project(v models.ValuationResult, inv models.InvestmentAnalysis) models.FutureProjections {
	rate := 0.0
	if v.EstimatedValue > 0 {
		rate = inv.AnnualAppreciation / v.EstimatedValue
	}

	projectedValue := FutureValue(v.EstimatedValue, rate, ProjectionYears)
	projectedRental := CumulativeReturn(inv.AnnualRentalPotential, ProjectionYears)

	return models.FutureProjections{
		ProjectedValue5Years:        projectedValue,
		ProjectedRentalIncome5Years: projectedRental,
		ProjectedTotalValue5Years:   round2(projectedValue + projectedRental),
	}
}
