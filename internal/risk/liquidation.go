package risk

import (
	"math"

	"github.com/ducminhle1904/futures-risk-engine/internal/safety"
)

// LiquidationEngine computes liquidation prices and assesses whether a
// stop loss leaves enough room before forced liquidation. Stateless;
// safe for concurrent use.
type LiquidationEngine struct {
	validator *safety.Validator
}

// NewLiquidationEngine creates a new liquidation engine
func NewLiquidationEngine() *LiquidationEngine {
	return &LiquidationEngine{
		validator: safety.NewValidator(),
	}
}

// Safety margin thresholds (percent of entry price) separating the risk bands
const (
	safeMarginThreshold     = 5.0
	moderateMarginThreshold = 2.0
)

// Warning messages per risk band
const (
	warningModerate = "Safety margin is thin. Consider reducing leverage."
	warningHigh     = "Stop loss is dangerously close to the liquidation price."
	warningExtreme  = "Stop loss sits beyond the liquidation price. The position liquidates before the stop can trigger."
)

// CalculateLiquidationPrice computes the liquidation price for an
// isolated-margin position.
//
// LONG:  entry × (1 − 1/leverage + mmr)
// SHORT: entry × (1 + 1/leverage − mmr)
//
// A non-positive LONG result (possible when leverage is close to 1 and
// the margin ratio dominates) is an out-of-range error, never returned
// as a plausible price.
func (e *LiquidationEngine) CalculateLiquidationPrice(entryPrice, leverage float64, side Side, mmr float64) (float64, error) {
	const op = "CalculateLiquidationPrice"

	if res := e.validator.ValidatePrice(entryPrice, "entry price"); !res.Valid {
		return 0, newValidationError(op, "%s", res.Message)
	}
	if res := e.validator.ValidateLeverage(leverage); !res.Valid {
		return 0, newValidationError(op, "%s", res.Message)
	}
	if res := e.validator.ValidateMarginRate(mmr); !res.Valid {
		return 0, newValidationError(op, "%s", res.Message)
	}
	if !side.IsValid() {
		return 0, newValidationError(op, "unknown side %q", side)
	}

	marginRatio := 1.0 / leverage

	var liqPrice float64
	if side == SideLong {
		liqPrice = entryPrice * (1.0 - marginRatio + mmr)
	} else {
		liqPrice = entryPrice * (1.0 + marginRatio - mmr)
	}

	if liqPrice <= 0 {
		return 0, newRangeError(op, "degenerate liquidation price %.8f at %.2fx leverage (side %s)", liqPrice, leverage, side)
	}

	return liqPrice, nil
}

// ValidateTrade assesses a proposed trade by comparing the stop loss
// distance against the liquidation distance. The resulting risk level is
// a total function of the safety margin percent:
//
//	> 5     SAFE
//	(2, 5]  MODERATE
//	(0, 2]  HIGH
//	≤ 0     EXTREME (stop beyond liquidation)
func (e *LiquidationEngine) ValidateTrade(entryPrice, stopLoss, leverage float64, side Side, mmr float64) (*LiquidationAssessment, error) {
	const op = "ValidateTrade"

	if res := e.validator.ValidatePrice(stopLoss, "stop loss"); !res.Valid {
		return nil, newValidationError(op, "%s", res.Message)
	}

	liqPrice, err := e.CalculateLiquidationPrice(entryPrice, leverage, side, mmr)
	if err != nil {
		return nil, err
	}

	stopDistance := math.Abs(entryPrice - stopLoss)
	liqDistance := math.Abs(entryPrice - liqPrice)
	safetyMargin := (liqDistance - stopDistance) / entryPrice * 100.0

	level, warning := classifyRiskLevel(safetyMargin)

	return &LiquidationAssessment{
		LiquidationPrice:    round2(liqPrice),
		MarginRatioPercent:  round2(100.0 / leverage),
		SafetyMarginPercent: round2(safetyMargin),
		RiskLevel:           level,
		Warning:             warning,
	}, nil
}

// CalculateSafeLeverage computes the highest leverage at which a stop at
// the given distance risks no more than maxRiskPercent of the position,
// floored to an integer and hard-capped at SafeLeverageCap. A zero stop
// distance is a geometry error, not a sentinel.
// Passing maxRiskPercent == 0 applies DefaultRiskPercent.
func (e *LiquidationEngine) CalculateSafeLeverage(entryPrice, stopLoss float64, side Side, maxRiskPercent float64) (int, error) {
	const op = "CalculateSafeLeverage"

	if maxRiskPercent == 0 {
		maxRiskPercent = DefaultRiskPercent
	}

	if res := e.validator.ValidatePrice(entryPrice, "entry price"); !res.Valid {
		return 0, newValidationError(op, "%s", res.Message)
	}
	if res := e.validator.ValidatePrice(stopLoss, "stop loss"); !res.Valid {
		return 0, newValidationError(op, "%s", res.Message)
	}
	if res := e.validator.ValidatePercent(maxRiskPercent, "max risk percent"); !res.Valid {
		return 0, newValidationError(op, "%s", res.Message)
	}
	if !side.IsValid() {
		return 0, newValidationError(op, "unknown side %q", side)
	}

	stopDistance := math.Abs(entryPrice - stopLoss)
	if stopDistance == 0 {
		return 0, newGeometryError(op, "entry price equals stop loss (%.8f), stop distance is zero", entryPrice)
	}

	stopDistancePercent := stopDistance / entryPrice
	safeLeverage := int(math.Floor((maxRiskPercent / 100.0) / stopDistancePercent))

	if safeLeverage > SafeLeverageCap {
		safeLeverage = SafeLeverageCap
	}
	if safeLeverage < 1 {
		safeLeverage = 1
	}

	return safeLeverage, nil
}

// classifyRiskLevel maps a safety margin percent onto its risk band.
// Bands are non-overlapping; boundary values belong to the riskier band.
func classifyRiskLevel(safetyMarginPercent float64) (RiskLevel, string) {
	switch {
	case safetyMarginPercent > safeMarginThreshold:
		return RiskLevelSafe, ""
	case safetyMarginPercent > moderateMarginThreshold:
		return RiskLevelModerate, warningModerate
	case safetyMarginPercent > 0:
		return RiskLevelHigh, warningHigh
	default:
		return RiskLevelExtreme, warningExtreme
	}
}

// round2 rounds to 2 decimal places. Applied to all price and percent
// outputs; part of the engine contract.
func round2(v float64) float64 {
	return math.Round(v*100.0) / 100.0
}
