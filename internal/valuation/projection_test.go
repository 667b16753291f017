package valuation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"real-estate-intelligence/internal/models"
)

func TestFutureValueCompounds(t *testing.T) {
	got := FutureValue(300000, 0.045, 5)
	assert.InDelta(t, 300000*math.Pow(1.045, 5), got, 0.01)
}

func TestFutureValueDegenerateInputs(t *testing.T) {
	assert.Equal(t, 300000.0, FutureValue(300000, 0.045, 0))
	assert.Equal(t, 300000.0, FutureValue(300000, 0.045, -1))
	assert.Equal(t, 300000.0, FutureValue(300000, -0.02, 5))
}

func TestCumulativeReturn(t *testing.T) {
	assert.Equal(t, 125000.0, CumulativeReturn(25000, 5))
}

func TestProjectRecoversAppreciationRate(t *testing.T) {
	v := models.ValuationResult{EstimatedValue: 400000}
	inv := models.InvestmentAnalysis{
		AnnualRentalPotential: 24000,
		AnnualAppreciation:    16000, // 4% of value
	}

	proj := Project(v, inv)

	assert.InDelta(t, 400000*math.Pow(1.04, 5), proj.ProjectedValue5Years, 0.01)
	assert.Equal(t, 120000.0, proj.ProjectedRentalIncome5Years)
	assert.InDelta(t, proj.ProjectedValue5Years+proj.ProjectedRentalIncome5Years,
		proj.ProjectedTotalValue5Years, 0.011)
}

func TestProjectZeroValuation(t *testing.T) {
	proj := Project(models.ValuationResult{}, models.InvestmentAnalysis{AnnualRentalPotential: 1000})

	assert.Equal(t, 0.0, proj.ProjectedValue5Years)
	assert.Equal(t, 5000.0, proj.ProjectedRentalIncome5Years)
}
