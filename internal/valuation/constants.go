package valuation

// Market data by location tier.
var LocationMultipliers = map[string]float64{
	"downtown": 1.4,
	"urban":    1.2,
	"suburban": 1.0,
	"rural":    0.7,
}

// Neighborhood desirability factors.
var NeighborhoodFactors = map[string]float64{
	"excellent":  1.3,
	"good":       1.1,
	"average":    1.0,
	"developing": 0.85,
	"poor":       0.6,
}

// Property condition factors.
var ConditionFactors = map[string]float64{
	"excellent":    1.2,
	"good":         1.1,
	"fair":         1.0,
	"needs_repair": 0.75,
	"poor":         0.5,
}

// Valid enumerations for property attributes.
var (
	ValidLocationTypes       = []string{"downtown", "urban", "suburban", "rural"}
	ValidConditions          = []string{"excellent", "good", "fair", "needs_repair", "poor"}
	ValidNeighborhoodRatings = []string{"excellent", "good", "average", "developing", "poor"}
)

// Financial constants.
const (
	BasePricePerSqft    = 150.0
	AgeDepreciationRate = 0.02 // 2% per year
	MinimumAgeFactor    = 0.5  // 50% minimum value retention

	MinRentalYield      = 0.05
	MaxRentalYield      = 0.08
	MinAppreciationRate = 0.03
	MaxAppreciationRate = 0.06

	MinConfidence = 0.82
	MaxConfidence = 0.98

	ProjectionYears = 5
)

// Input bounds enforced by the validator.
const (
	MinSqft      = 500
	MaxSqft      = 1_000_000
	MinBedrooms  = 1
	MaxBedrooms  = 20
	MinBathrooms = 0.5
	MaxBathrooms = 20
	MinAge       = 0
	MaxAge       = 200
)

// Risk bands, ordered from safest to riskiest.
var RiskLevels = []string{"low", "low-moderate", "moderate", "moderate-high", "high"}

// Per-component risk weights used by the overall banding function.
var locationRiskWeights = map[string]int{
	"downtown": 2,
	"urban":    2,
	"suburban": 3,
	"rural":    4,
}

var conditionRiskWeights = map[string]int{
	"excellent":    1,
	"good":         2,
	"fair":         3,
	"needs_repair": 4,
	"poor":         5,
}

// Per-component risk labels reported alongside the overall band.
var locationRiskLabels = map[string]string{
	"downtown": "low",
	"urban":    "low-moderate",
	"suburban": "moderate",
	"rural":    "moderate-high",
}

// MarketRiskLabel is a fixed constant absent live market data.
const MarketRiskLabel = "low-moderate"
