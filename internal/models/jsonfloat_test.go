package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFloat64MarshalsInfinity(t *testing.T) {
	data, err := json.Marshal(JSONFloat64(math.Inf(1)))
	require.NoError(t, err)
	assert.Equal(t, `"inf"`, string(data))

	data, err = json.Marshal(JSONFloat64(math.Inf(-1)))
	require.NoError(t, err)
	assert.Equal(t, `"-inf"`, string(data))
}

func TestJSONFloat64MarshalsFinite(t *testing.T) {
	data, err := json.Marshal(JSONFloat64(12.5))
	require.NoError(t, err)
	assert.Equal(t, "12.5", string(data))
}

func TestJSONFloat64RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 12.5, -3.25, math.Inf(1), math.Inf(-1)} {
		data, err := json.Marshal(JSONFloat64(v))
		require.NoError(t, err)

		var out JSONFloat64
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, v, float64(out))
	}
}

func TestInvestmentAnalysisSerializesInfinitePayback(t *testing.T) {
	inv := InvestmentAnalysis{
		ROIPercentage:      0,
		PaybackPeriodYears: JSONFloat64(math.Inf(1)),
	}

	data, err := json.Marshal(inv)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"payback_period_years":"inf"`)

	var out InvestmentAnalysis
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, math.IsInf(float64(out.PaybackPeriodYears), 1))
}
