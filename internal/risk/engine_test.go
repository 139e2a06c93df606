package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tradeFixture() *TradeParameters {
	return &TradeParameters{
		Symbol:     "BTCUSDT",
		EntryPrice: 50000,
		StopLoss:   49000,
		TakeProfit: 52000,
		Side:       SideLong,
		Leverage:   10,
		Balance:    10000,
	}
}

func TestEvaluateTrade(t *testing.T) {
	engine := NewEngine()

	assessment, err := engine.EvaluateTrade(tradeFixture())
	require.NoError(t, err)

	// Liquidation leg: mmr resolved from the BTCUSDT profile (0.004)
	assert.InDelta(t, 45200.0, assessment.Liquidation.LiquidationPrice, 0.001)
	assert.Equal(t, RiskLevelSafe, assessment.Liquidation.RiskLevel)

	// Sizing leg: currency-weighted, risk 2% → (200/1000)×50000 = 10000
	assert.InDelta(t, 10000.0, assessment.Position.Size, 1e-9)
	assert.False(t, assessment.Position.Capped)

	// Safe leverage: 2% stop distance at 2% risk → 1x
	assert.Equal(t, 1, assessment.SafeLeverage)

	// Risk/reward: 2000 reward over 1000 risk
	assert.InDelta(t, 2.0, assessment.RiskReward, 1e-9)
	assert.True(t, assessment.RiskRewardOK)
}

func TestEvaluateTrade_ExplicitMarginRateOverridesProfile(t *testing.T) {
	engine := NewEngine()

	params := tradeFixture()
	params.MaintenanceMarginRate = 0.01

	assessment, err := engine.EvaluateTrade(params)
	require.NoError(t, err)

	// 50000 × (1 − 0.1 + 0.01) = 45500
	assert.InDelta(t, 45500.0, assessment.Liquidation.LiquidationPrice, 0.001)
}

func TestEvaluateTrade_NoTakeProfit(t *testing.T) {
	engine := NewEngine()

	params := tradeFixture()
	params.TakeProfit = 0

	assessment, err := engine.EvaluateTrade(params)
	require.NoError(t, err)

	assert.Equal(t, 0.0, assessment.RiskReward)
	assert.False(t, assessment.RiskRewardOK)
}

func TestEvaluateTrade_MinNotionalFloor(t *testing.T) {
	config := DefaultEngineConfig()
	config.MinNotional = 101
	engine := NewEngineWithConfig(config)

	// Small balance produces a sub-minimum notional (30) that gets
	// floored; the ceiling (30 × 0.5 × 10 = 150) still accommodates it
	params := tradeFixture()
	params.Balance = 30

	assessment, err := engine.EvaluateTrade(params)
	require.NoError(t, err)

	assert.Equal(t, 101.0, assessment.Position.Size)
	assert.True(t, assessment.Position.Floored)
	assert.LessOrEqual(t, assessment.Position.Size, params.Balance*MaxBalanceUtilization*params.Leverage)
}

func TestEvaluateTrade_MinNotionalUnfundable(t *testing.T) {
	config := DefaultEngineConfig()
	config.MinNotional = 101
	engine := NewEngineWithConfig(config)

	// Ceiling is 10 × 0.5 × 10 = 50: the account cannot fund the
	// minimum order, so the trade is refused instead of floored
	params := tradeFixture()
	params.Balance = 10

	assessment, err := engine.EvaluateTrade(params)
	require.Error(t, err)
	assert.Nil(t, assessment)
	assert.True(t, IsRangeError(err))
}

func TestEvaluateTrade_LeverageWeightedConfig(t *testing.T) {
	config := DefaultEngineConfig()
	config.SizingMode = LeverageWeightedSizing
	engine := NewEngineWithConfig(config)

	params := tradeFixture()
	params.Leverage = 5

	assessment, err := engine.EvaluateTrade(params)
	require.NoError(t, err)

	// (200/1000)×5 = 1.0
	assert.InDelta(t, 1.0, assessment.Position.Size, 1e-9)
	assert.Equal(t, LeverageWeightedSizing, assessment.Position.Mode)
}

func TestEvaluateTrade_PropagatesGeometryError(t *testing.T) {
	engine := NewEngine()

	params := tradeFixture()
	params.StopLoss = params.EntryPrice

	_, err := engine.EvaluateTrade(params)
	require.Error(t, err)
	assert.True(t, IsGeometryError(err))
}

func TestEvaluateTrade_NilParams(t *testing.T) {
	engine := NewEngine()

	_, err := engine.EvaluateTrade(nil)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestEvaluateTrade_Idempotent(t *testing.T) {
	engine := NewEngine()

	first, err := engine.EvaluateTrade(tradeFixture())
	require.NoError(t, err)
	second, err := engine.EvaluateTrade(tradeFixture())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
