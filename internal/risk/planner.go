package risk

import (
	"github.com/ducminhle1904/futures-risk-engine/internal/safety"
)

// StopTargetPlan holds the percent-derived stop and target prices for a trade
type StopTargetPlan struct {
	StopLoss   float64 `json:"stop_loss"`
	TakeProfit float64 `json:"take_profit"`
}

// StopAdjustment describes a recommended stop move for an open position
type StopAdjustment struct {
	NewStop float64 `json:"new_stop"`
	Reason  string  `json:"reason"`
}

// Profit thresholds (fraction of entry) driving the stop management ladder
const (
	breakEvenTrigger  = 0.02
	lockProfitTrigger = 0.04
	trailTrigger      = 0.06

	// breakEvenBuffer keeps the break-even stop a hair past entry so
	// fees do not turn a flat exit into a small loss
	breakEvenBuffer = 0.001

	lockProfitPercent = 0.02
	trailDistance     = 0.02
)

// Fallback plan percentages used when the caller supplies none
const (
	fallbackStopPercent   = 0.02
	fallbackTargetPercent = 0.06
)

// TradePlanner derives stop, target and stop-adjustment prices for a
// position. Pure price math only; order placement belongs to the caller.
type TradePlanner struct {
	validator *safety.Validator
}

// NewTradePlanner creates a new trade planner
func NewTradePlanner() *TradePlanner {
	return &TradePlanner{
		validator: safety.NewValidator(),
	}
}

// PlanStops computes stop loss and take profit prices from percent
// distances. Zero percents fall back to the conservative defaults
// (2% stop, 6% target).
func (p *TradePlanner) PlanStops(entry float64, side Side, stopPercent, targetPercent float64) (*StopTargetPlan, error) {
	const op = "PlanStops"

	if res := p.validator.ValidatePrice(entry, "entry price"); !res.Valid {
		return nil, newValidationError(op, "%s", res.Message)
	}
	if !side.IsValid() {
		return nil, newValidationError(op, "unknown side %q", side)
	}
	if stopPercent == 0 {
		stopPercent = fallbackStopPercent
	}
	if targetPercent == 0 {
		targetPercent = fallbackTargetPercent
	}
	if stopPercent < 0 || stopPercent >= 1 || targetPercent < 0 || targetPercent >= 1 {
		return nil, newValidationError(op, "stop/target percents must be in (0, 1): stop=%.4f target=%.4f", stopPercent, targetPercent)
	}

	plan := &StopTargetPlan{}
	if side == SideLong {
		plan.StopLoss = round2(entry * (1.0 - stopPercent))
		plan.TakeProfit = round2(entry * (1.0 + targetPercent))
	} else {
		plan.StopLoss = round2(entry * (1.0 + stopPercent))
		plan.TakeProfit = round2(entry * (1.0 - targetPercent))
	}

	return plan, nil
}

// NextStopAdjustment applies the stop management ladder to an open
// position and returns the recommended stop move, if any:
//
//	+2% profit  → move stop to break even (entry plus a small buffer)
//	+4% profit  → lock +2% profit
//	+6%+ profit → trail 2% behind the current price
//
// Returns nil when the current stop is already at or past the
// recommended level.
func (p *TradePlanner) NextStopAdjustment(entry, current, currentStop float64, side Side, profitFraction float64) (*StopAdjustment, error) {
	const op = "NextStopAdjustment"

	if res := p.validator.ValidatePrice(entry, "entry price"); !res.Valid {
		return nil, newValidationError(op, "%s", res.Message)
	}
	if res := p.validator.ValidatePrice(current, "current price"); !res.Valid {
		return nil, newValidationError(op, "%s", res.Message)
	}
	if res := p.validator.ValidatePrice(currentStop, "current stop"); !res.Valid {
		return nil, newValidationError(op, "%s", res.Message)
	}
	if !side.IsValid() {
		return nil, newValidationError(op, "unknown side %q", side)
	}

	if side == SideLong {
		bePrice := entry * (1.0 + breakEvenBuffer)
		lockPrice := entry * (1.0 + lockProfitPercent)

		switch {
		case profitFraction >= trailTrigger:
			trailPrice := current * (1.0 - trailDistance)
			if trailPrice > currentStop {
				return &StopAdjustment{NewStop: round2(trailPrice), Reason: "trailing stop"}, nil
			}
		case profitFraction >= lockProfitTrigger:
			if currentStop < lockPrice {
				return &StopAdjustment{NewStop: round2(lockPrice), Reason: "lock profit"}, nil
			}
		case profitFraction >= breakEvenTrigger:
			if currentStop < bePrice {
				return &StopAdjustment{NewStop: round2(bePrice), Reason: "break even"}, nil
			}
		}
		return nil, nil
	}

	bePrice := entry * (1.0 - breakEvenBuffer)
	lockPrice := entry * (1.0 - lockProfitPercent)

	switch {
	case profitFraction >= trailTrigger:
		trailPrice := current * (1.0 + trailDistance)
		if trailPrice < currentStop {
			return &StopAdjustment{NewStop: round2(trailPrice), Reason: "trailing stop"}, nil
		}
	case profitFraction >= lockProfitTrigger:
		if currentStop > lockPrice {
			return &StopAdjustment{NewStop: round2(lockPrice), Reason: "lock profit"}, nil
		}
	case profitFraction >= breakEvenTrigger:
		if currentStop > bePrice {
			return &StopAdjustment{NewStop: round2(bePrice), Reason: "break even"}, nil
		}
	}
	return nil, nil
}
