package risk

import (
	"math"

	"github.com/ducminhle1904/futures-risk-engine/internal/safety"
)

// RiskRewardEvaluator computes and validates reward-to-risk ratios.
// Stateless; safe for concurrent use.
type RiskRewardEvaluator struct {
	validator *safety.Validator
}

// NewRiskRewardEvaluator creates a new risk/reward evaluator
func NewRiskRewardEvaluator() *RiskRewardEvaluator {
	return &RiskRewardEvaluator{
		validator: safety.NewValidator(),
	}
}

// CalculateRiskReward returns reward/risk for a trade, where risk is the
// entry-to-stop distance and reward the entry-to-target distance.
// A zero risk distance returns 0 rather than an error, keeping the
// evaluator total over positive prices.
func (e *RiskRewardEvaluator) CalculateRiskReward(entry, stopLoss, takeProfit float64) (float64, error) {
	const op = "CalculateRiskReward"

	if res := e.validator.ValidatePrice(entry, "entry price"); !res.Valid {
		return 0, newValidationError(op, "%s", res.Message)
	}
	if res := e.validator.ValidatePrice(stopLoss, "stop loss"); !res.Valid {
		return 0, newValidationError(op, "%s", res.Message)
	}
	if res := e.validator.ValidatePrice(takeProfit, "take profit"); !res.Valid {
		return 0, newValidationError(op, "%s", res.Message)
	}

	riskDistance := math.Abs(entry - stopLoss)
	rewardDistance := math.Abs(takeProfit - entry)

	if riskDistance == 0 {
		return 0, nil
	}

	ratio := rewardDistance / riskDistance
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0, newRangeError(op, "non-finite risk/reward ratio for entry %.8f", entry)
	}

	return ratio, nil
}

// IsRiskRewardAcceptable reports whether the trade's reward:risk ratio
// meets the minimum. Passing minRR == 0 applies DefaultMinRiskReward.
func (e *RiskRewardEvaluator) IsRiskRewardAcceptable(entry, stopLoss, takeProfit, minRR float64) (bool, error) {
	if minRR == 0 {
		minRR = DefaultMinRiskReward
	}
	if minRR < 0 || math.IsNaN(minRR) || math.IsInf(minRR, 0) {
		return false, newValidationError("IsRiskRewardAcceptable", "invalid minimum ratio %.2f", minRR)
	}

	ratio, err := e.CalculateRiskReward(entry, stopLoss, takeProfit)
	if err != nil {
		return false, err
	}

	return ratio >= minRR, nil
}
