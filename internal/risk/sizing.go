package risk

import (
	"math"

	"github.com/ducminhle1904/futures-risk-engine/internal/safety"
)

// PositionSizer converts account balance, risk tolerance and stop
// distance into a position size. Stateless apart from the configured
// sizing mode; safe for concurrent use.
type PositionSizer struct {
	mode      SizingMode
	validator *safety.Validator
}

// NewPositionSizer creates a position sizer using the currency-weighted formula
func NewPositionSizer() *PositionSizer {
	return NewPositionSizerWithMode(CurrencyWeightedSizing)
}

// NewPositionSizerWithMode creates a position sizer with an explicit sizing mode
func NewPositionSizerWithMode(mode SizingMode) *PositionSizer {
	if mode != CurrencyWeightedSizing && mode != LeverageWeightedSizing {
		mode = CurrencyWeightedSizing
	}
	return &PositionSizer{
		mode:      mode,
		validator: safety.NewValidator(),
	}
}

// Mode returns the configured sizing mode
func (s *PositionSizer) Mode() SizingMode {
	return s.mode
}

// CalculatePositionSize sizes a position so that a stop-out loses at
// most riskPercent of the balance, then clamps the result to the
// max-position ceiling (balance × MaxBalanceUtilization × leverage).
//
// A zero stop distance does not error here: the sizer falls back to the
// documented MinPositionSize floor. This is deliberately asymmetric
// with CalculateSafeLeverage, which treats the same geometry as an
// error — the sizer always has a usable answer, the leverage formula
// does not.
//
// Passing riskPercent == 0 applies DefaultRiskPercent.
func (s *PositionSizer) CalculatePositionSize(balance, entryPrice, stopLoss, leverage, riskPercent float64) (*PositionSizeResult, error) {
	const op = "CalculatePositionSize"

	if riskPercent == 0 {
		riskPercent = DefaultRiskPercent
	}

	if res := s.validator.ValidateBalance(balance); !res.Valid {
		return nil, newValidationError(op, "%s", res.Message)
	}
	if res := s.validator.ValidatePrice(entryPrice, "entry price"); !res.Valid {
		return nil, newValidationError(op, "%s", res.Message)
	}
	if res := s.validator.ValidatePrice(stopLoss, "stop loss"); !res.Valid {
		return nil, newValidationError(op, "%s", res.Message)
	}
	if res := s.validator.ValidateLeverage(leverage); !res.Valid {
		return nil, newValidationError(op, "%s", res.Message)
	}
	if res := s.validator.ValidatePercent(riskPercent, "risk percent"); !res.Valid {
		return nil, newValidationError(op, "%s", res.Message)
	}

	stopDistance := math.Abs(entryPrice - stopLoss)
	if stopDistance == 0 {
		return &PositionSizeResult{
			Size:    MinPositionSize,
			Mode:    s.mode,
			Floored: true,
		}, nil
	}

	riskAmount := balance * riskPercent / 100.0

	var rawSize float64
	switch s.mode {
	case LeverageWeightedSizing:
		rawSize = (riskAmount / stopDistance) * leverage
	default:
		rawSize = (riskAmount / stopDistance) * entryPrice
	}

	maxPosition := balance * MaxBalanceUtilization * leverage

	result := &PositionSizeResult{
		Size: rawSize,
		Mode: s.mode,
	}
	if rawSize > maxPosition {
		result.Size = maxPosition
		result.Capped = true
	}

	return result, nil
}
