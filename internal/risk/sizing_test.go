package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePositionSize_LeverageWeighted(t *testing.T) {
	sizer := NewPositionSizerWithMode(LeverageWeightedSizing)

	// riskAmount=200, stopDistance=1000 → (200/1000)×5 = 1.0
	result, err := sizer.CalculatePositionSize(10000, 50000, 49000, 5, 2)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, result.Size, 1e-9)
	assert.Equal(t, LeverageWeightedSizing, result.Mode)
	assert.False(t, result.Capped)
	assert.False(t, result.Floored)
}

func TestCalculatePositionSize_CurrencyWeighted(t *testing.T) {
	sizer := NewPositionSizer()

	// riskAmount=200, stopDistance=1000 → (200/1000)×50000 = 10000
	result, err := sizer.CalculatePositionSize(10000, 50000, 49000, 5, 2)
	require.NoError(t, err)

	assert.InDelta(t, 10000.0, result.Size, 1e-9)
	assert.Equal(t, CurrencyWeightedSizing, result.Mode)
	assert.False(t, result.Capped)
}

func TestCalculatePositionSize_CappedAtCeiling(t *testing.T) {
	sizer := NewPositionSizer()

	// Tight stop blows the raw size up to 1,000,000; ceiling is
	// 10000 × 0.5 × 5 = 25000
	result, err := sizer.CalculatePositionSize(10000, 50000, 49990, 5, 2)
	require.NoError(t, err)

	assert.InDelta(t, 25000.0, result.Size, 1e-9)
	assert.True(t, result.Capped)
}

func TestCalculatePositionSize_NeverExceedsCeiling(t *testing.T) {
	for _, mode := range []SizingMode{CurrencyWeightedSizing, LeverageWeightedSizing} {
		sizer := NewPositionSizerWithMode(mode)

		stops := []float64{49999, 49990, 49900, 49000, 45000}
		leverages := []float64{1, 3, 5, 10, 25}

		for _, stop := range stops {
			for _, lev := range leverages {
				result, err := sizer.CalculatePositionSize(10000, 50000, stop, lev, 2)
				require.NoError(t, err)
				assert.LessOrEqual(t, result.Size, 10000*MaxBalanceUtilization*lev,
					"mode=%s stop=%.0f lev=%.0f", mode, stop, lev)
			}
		}
	}
}

func TestCalculatePositionSize_ZeroStopDistanceFloors(t *testing.T) {
	sizer := NewPositionSizer()

	// Equal entry and stop falls back to the minimum floor instead of
	// dividing by zero
	result, err := sizer.CalculatePositionSize(10000, 50000, 50000, 5, 2)
	require.NoError(t, err)

	assert.Equal(t, MinPositionSize, result.Size)
	assert.True(t, result.Floored)
	assert.False(t, result.Capped)
}

func TestCalculatePositionSize_DefaultRiskPercent(t *testing.T) {
	sizer := NewPositionSizerWithMode(LeverageWeightedSizing)

	explicit, err := sizer.CalculatePositionSize(10000, 50000, 49000, 5, DefaultRiskPercent)
	require.NoError(t, err)
	defaulted, err := sizer.CalculatePositionSize(10000, 50000, 49000, 5, 0)
	require.NoError(t, err)

	assert.Equal(t, explicit, defaulted)
}

func TestCalculatePositionSize_ZeroBalance(t *testing.T) {
	sizer := NewPositionSizer()

	// Zero balance is valid input and produces a zero-size position
	result, err := sizer.CalculatePositionSize(0, 50000, 49000, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Size)
}

func TestCalculatePositionSize_InvalidInputs(t *testing.T) {
	sizer := NewPositionSizer()

	tests := []struct {
		name     string
		balance  float64
		entry    float64
		stop     float64
		leverage float64
		riskPct  float64
	}{
		{"negative balance", -100, 50000, 49000, 5, 2},
		{"zero entry price", 10000, 0, 49000, 5, 2},
		{"negative stop loss", 10000, 50000, -1, 5, 2},
		{"zero leverage", 10000, 50000, 49000, 0, 2},
		{"negative risk percent", 10000, 50000, 49000, 5, -2},
		{"risk percent above 100", 10000, 50000, 49000, 5, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sizer.CalculatePositionSize(tt.balance, tt.entry, tt.stop, tt.leverage, tt.riskPct)
			require.Error(t, err)
			assert.True(t, IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestPositionSizer_UnknownModeFallsBack(t *testing.T) {
	sizer := NewPositionSizerWithMode(SizingMode("made_up"))
	assert.Equal(t, CurrencyWeightedSizing, sizer.Mode())
}
