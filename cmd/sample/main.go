package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"real-estate-intelligence/internal/analysis"
	"real-estate-intelligence/internal/format"
	"real-estate-intelligence/internal/models"
	"real-estate-intelligence/internal/validation"
	"real-estate-intelligence/internal/valuation"
)

// Runs the full deterministic pipeline against the sample property and
// prints a report. Useful as a smoke test without the API or any backing
// services.
func main() {
	property := models.SampleProperty()

	valid, issues := validation.ValidateProperty(property)
	if !valid {
		log.Fatalf("Sample property failed validation: %v", issues)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	engine := valuation.NewEngine(rng, true)
	assembler := analysis.NewAssembler(engine, rng, 3)

	record := assembler.Analyze(property)
	currency := "USD"

	fmt.Println("=== Real Estate Intelligence Sample Analysis ===")
	fmt.Printf("Property:        %s\n", format.Address(record.BasicInfo.Address))
	fmt.Printf("Analyzed:        %s\n", format.Date(record.AnalysisSummary.AnalysisDate))
	fmt.Println()

	fmt.Println("--- Valuation ---")
	fmt.Printf("Estimated value: %s\n", format.Currency(record.Valuation.EstimatedValue, currency, 2))
	fmt.Printf("Price per sqft:  %s\n", format.Currency(record.Valuation.PricePerSqft, currency, 2))
	fmt.Printf("Confidence:      %s\n", format.Percentage(record.Valuation.ConfidenceScore, 1))
	fmt.Println()

	fmt.Println("--- Investment ---")
	fmt.Printf("Annual rental:   %s\n", format.Currency(record.InvestmentAnalysis.AnnualRentalPotential, currency, 2))
	fmt.Printf("ROI:             %.2f%% (%s)\n", record.InvestmentAnalysis.ROIPercentage, record.InvestmentAnalysis.ROICategory)
	fmt.Printf("Score:           %d/10\n", record.InvestmentAnalysis.InvestmentScore)
	fmt.Printf("Recommendation:  %s\n", record.InvestmentAnalysis.Recommendation)

	payback := float64(record.InvestmentAnalysis.PaybackPeriodYears)
	if math.IsInf(payback, 1) {
		fmt.Println("Payback period:  not recoverable")
	} else {
		fmt.Printf("Payback period:  %s\n", format.Duration(int(payback*365)))
	}
	fmt.Println()

	fmt.Println("--- Risk ---")
	fmt.Printf("Location:        %s\n", record.RiskAssessment.LocationRisk)
	fmt.Printf("Maintenance:     %s\n", record.RiskAssessment.MaintenanceRisk)
	fmt.Printf("Market:          %s\n", record.RiskAssessment.MarketRisk)
	fmt.Printf("Liquidity:       %s\n", record.RiskAssessment.LiquidityRisk)
	fmt.Printf("Overall:         %s\n", record.RiskAssessment.OverallRisk)
	fmt.Println()

	fmt.Println("--- Market ---")
	fmt.Printf("Trend:           %s (%s growth)\n", record.MarketAnalysis.MarketTrend, record.MarketAnalysis.MarketGrowthRate)
	for _, comp := range record.MarketAnalysis.ComparableProperties {
		fmt.Printf("  %-20s %s  %d sqft, %d beds\n",
			comp.Address, format.Currency(comp.Price, currency, 2), comp.Sqft, comp.Beds)
	}
	fmt.Println()

	fmt.Println("--- 5-Year Projections ---")
	fmt.Printf("Projected value: %s\n", format.Currency(record.FutureProjections.ProjectedValue5Years, currency, 2))
	fmt.Printf("Rental income:   %s\n", format.Currency(record.FutureProjections.ProjectedRentalIncome5Years, currency, 2))
	fmt.Printf("Total value:     %s\n", format.Currency(record.FutureProjections.ProjectedTotalValue5Years, currency, 2))
	fmt.Println()

	fmt.Println("--- Recommendations ---")
	for _, rec := range record.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}

	report := validation.Report(record)
	fmt.Println()
	fmt.Printf("Validation: %s (%d issues)\n", report.Recommendation, report.TotalIssues)
}
