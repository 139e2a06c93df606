package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustLeverageByVolatility(t *testing.T) {
	advisor := NewLeverageAdvisor()

	tests := []struct {
		name     string
		base     float64
		atr      float64
		price    float64
		expected float64
	}{
		{"extreme volatility caps at 3", 10, 3000, 50000, 3},  // 6%
		{"high volatility caps at 5", 10, 2000, 50000, 5},     // 4%
		{"elevated volatility caps at 7", 10, 1250, 50000, 7}, // 2.5%
		{"calm market leaves base unchanged", 10, 500, 50000, 10}, // 1%
		{"base below cap is preserved", 2, 3000, 50000, 2},
		{"just above 5 percent caps at 3", 10, 2550, 50000, 3},   // 5.1%
		{"just below 2 percent stays unchanged", 10, 950, 50000, 10}, // 1.9%
		{"zero ATR leaves base unchanged", 10, 0, 50000, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := advisor.AdjustLeverageByVolatility(tt.base, tt.atr, tt.price)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAdjustLeverageByVolatility_InvalidInputs(t *testing.T) {
	advisor := NewLeverageAdvisor()

	_, err := advisor.AdjustLeverageByVolatility(0, 500, 50000)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = advisor.AdjustLeverageByVolatility(10, -500, 50000)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = advisor.AdjustLeverageByVolatility(10, 500, 0)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestRecommendedLeverage(t *testing.T) {
	advisor := NewLeverageAdvisor()

	scalp, err := advisor.RecommendedLeverage(StyleScalp)
	require.NoError(t, err)
	assert.Equal(t, 5, scalp)

	swing, err := advisor.RecommendedLeverage(StyleSwing)
	require.NoError(t, err)
	assert.Equal(t, 3, swing)
}

func TestRecommendedLeverage_UnknownStyle(t *testing.T) {
	advisor := NewLeverageAdvisor()

	_, err := advisor.RecommendedLeverage(TradingStyle("HODL"))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
