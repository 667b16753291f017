package valuation

import (
	"math"
	"math/rand"
	"time"

	"real-estate-intelligence/internal/models"
)

// Engine computes deterministic valuations. The only stochastic parts are
// presentational (confidence score, optional assessment variance) and come
// from the injected random source so callers can seed them for tests.
type Engine struct {
	rng             *rand.Rand
	varianceEnabled bool
}

// NewEngine creates an engine with the given random source. When
// varianceEnabled is set, valuations carry a ±10% assessment jitter;
// disabled, Valuate returns the exact base valuation.
func NewEngine(rng *rand.Rand, varianceEnabled bool) *Engine {
	return &Engine{rng: rng, varianceEnabled: varianceEnabled}
}

// BaseValuation computes the multiplicative factor model:
// sqft × base price × location × neighborhood × condition × age factor.
// Unknown enum keys fall back to a neutral 1.0; validation upstream should
// make that unreachable.
func BaseValuation(p models.PropertyInput) float64 {
	locationMultiplier := lookup(LocationMultipliers, p.LocationType)
	neighborhoodMultiplier := lookup(NeighborhoodFactors, p.NeighborhoodRating)
	conditionMultiplier := lookup(ConditionFactors, p.Condition)

	ageFactor := math.Max(MinimumAgeFactor, 1.0-float64(p.AgeYears)*AgeDepreciationRate)

	v := float64(p.Sqft) * BasePricePerSqft *
		locationMultiplier * neighborhoodMultiplier * conditionMultiplier * ageFactor
	return round2(v)
}

// PricePerSqft guards against zero-area division.
func PricePerSqft(valuation float64, sqft int) float64 {
	if sqft <= 0 {
		return 0
	}
	return round2(valuation / float64(sqft))
}

// Valuate produces the full valuation result for a validated property.
// It is total: it never fails.
func (e *Engine) Valuate(p models.PropertyInput) models.ValuationResult {
	estimated := BaseValuation(p)
	if e.varianceEnabled {
		estimated = round2(estimated * (0.9 + e.rng.Float64()*0.2))
	}

	return models.ValuationResult{
		EstimatedValue:  estimated,
		PricePerSqft:    PricePerSqft(estimated, p.Sqft),
		ConfidenceScore: e.confidenceScore(),
		ValuationDate:   time.Now(),
	}
}

// confidenceScore is purely presentational; there is no real uncertainty
// quantification behind it.
func (e *Engine) confidenceScore() float64 {
	return round2(MinConfidence + e.rng.Float64()*(MaxConfidence-MinConfidence))
}

func lookup(table map[string]float64, key string) float64 {
	if v, ok := table[key]; ok {
		return v
	}
	return 1.0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
