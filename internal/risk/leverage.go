package risk

import (
	"math"

	"github.com/ducminhle1904/futures-risk-engine/internal/safety"
)

// LeverageAdvisor recommends and caps leverage from volatility and
// trading style. Stateless; safe for concurrent use.
type LeverageAdvisor struct {
	validator *safety.Validator
}

// NewLeverageAdvisor creates a new leverage advisor
func NewLeverageAdvisor() *LeverageAdvisor {
	return &LeverageAdvisor{
		validator: safety.NewValidator(),
	}
}

// Recommended leverage by trading style
const (
	scalpLeverage = 5
	swingLeverage = 3
)

// volatilityCap is one band of the volatility-based leverage schedule
type volatilityCap struct {
	thresholdPercent float64
	maxLeverage      float64
}

// Bands are ordered by descending threshold; the first match wins.
var volatilityCaps = []volatilityCap{
	{thresholdPercent: 5.0, maxLeverage: 3},
	{thresholdPercent: 3.0, maxLeverage: 5},
	{thresholdPercent: 2.0, maxLeverage: 7},
}

// AdjustLeverageByVolatility caps the base leverage when recent
// volatility (ATR as a fraction of price) is elevated. Calm markets
// leave the base leverage unchanged.
func (a *LeverageAdvisor) AdjustLeverageByVolatility(baseLeverage, atr, price float64) (float64, error) {
	const op = "AdjustLeverageByVolatility"

	if res := a.validator.ValidateLeverage(baseLeverage); !res.Valid {
		return 0, newValidationError(op, "%s", res.Message)
	}
	if res := a.validator.ValidatePrice(price, "price"); !res.Valid {
		return 0, newValidationError(op, "%s", res.Message)
	}
	if atr < 0 || math.IsNaN(atr) || math.IsInf(atr, 0) {
		return 0, newValidationError(op, "invalid ATR %.8f: must be finite and non-negative", atr)
	}

	volatilityPercent := atr / price * 100.0

	for _, band := range volatilityCaps {
		if volatilityPercent > band.thresholdPercent {
			return math.Min(baseLeverage, band.maxLeverage), nil
		}
	}

	return baseLeverage, nil
}

// RecommendedLeverage returns the standard leverage for a trading style
func (a *LeverageAdvisor) RecommendedLeverage(style TradingStyle) (int, error) {
	switch style {
	case StyleScalp:
		return scalpLeverage, nil
	case StyleSwing:
		return swingLeverage, nil
	default:
		return 0, newValidationError("RecommendedLeverage", "unknown trading style %q", style)
	}
}
