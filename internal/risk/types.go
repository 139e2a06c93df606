package risk

// Side represents the direction of a futures position
type Side string

const (
	SideLong  Side = "LONG"
	SideShort Side = "SHORT"
)

// IsValid checks if the side is one of the known enumerators
func (s Side) IsValid() bool {
	return s == SideLong || s == SideShort
}

// TradingStyle represents the holding-period style used for leverage recommendations
type TradingStyle string

const (
	StyleScalp TradingStyle = "SCALP"
	StyleSwing TradingStyle = "SWING"
)

// RiskLevel categorizes how much room a stop loss has before liquidation
type RiskLevel string

const (
	RiskLevelSafe     RiskLevel = "SAFE"
	RiskLevelModerate RiskLevel = "MODERATE"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelExtreme  RiskLevel = "EXTREME"
)

// SizingMode selects which position sizing formula is applied.
// Both formulas are kept as named strategies because they intentionally
// differ in units: currency-weighted sizing converts risk into quote
// currency exposure, leverage-weighted sizing scales risk by margin impact.
type SizingMode string

const (
	CurrencyWeightedSizing SizingMode = "currency_weighted"
	LeverageWeightedSizing SizingMode = "leverage_weighted"
)

// Default engine parameters
const (
	// DefaultRiskPercent is the account percentage risked per trade
	DefaultRiskPercent = 2.0

	// DefaultMinRiskReward is the minimum acceptable reward:risk ratio
	DefaultMinRiskReward = 1.5

	// SafeLeverageCap is the hard ceiling applied to calculated safe leverage
	SafeLeverageCap = 10

	// MinPositionSize is the floor returned when the stop distance is zero
	MinPositionSize = 0.001

	// MaxBalanceUtilization caps position size at this fraction of balance × leverage
	MaxBalanceUtilization = 0.5
)

// TradeParameters describes a proposed leveraged trade.
// Values are already normalized by the caller (price feed, candle
// aggregation and symbol canonicalization happen upstream).
type TradeParameters struct {
	Symbol     string  `json:"symbol"`
	EntryPrice float64 `json:"entry_price"`
	StopLoss   float64 `json:"stop_loss"`
	TakeProfit float64 `json:"take_profit,omitempty"` // 0 means not set
	Side       Side    `json:"side"`
	Leverage   float64 `json:"leverage"`
	Balance    float64 `json:"account_balance"`

	// MaintenanceMarginRate overrides the symbol profile lookup when > 0
	MaintenanceMarginRate float64 `json:"maintenance_margin_rate,omitempty"`
}

// LiquidationAssessment is the result of validating a trade against its
// liquidation price. Price and percent fields are rounded to 2 decimals;
// the rounding is part of the observable contract.
type LiquidationAssessment struct {
	LiquidationPrice    float64   `json:"liquidation_price"`
	MarginRatioPercent  float64   `json:"margin_ratio_percent"`
	SafetyMarginPercent float64   `json:"safety_margin_percent"`
	RiskLevel           RiskLevel `json:"risk_level"`
	Warning             string    `json:"warning,omitempty"`
}

// PositionSizeResult is the output of the position sizer
type PositionSizeResult struct {
	Size    float64    `json:"size"`
	Mode    SizingMode `json:"mode"`
	Capped  bool       `json:"capped"`  // theoretical size clamped to the max-position ceiling
	Floored bool       `json:"floored"` // zero stop distance fell back to the minimum floor
}

// TradeAssessment bundles the outputs of all four calculators for one trade
type TradeAssessment struct {
	Symbol       string                 `json:"symbol"`
	Liquidation  *LiquidationAssessment `json:"liquidation"`
	Position     *PositionSizeResult    `json:"position"`
	SafeLeverage int                    `json:"safe_leverage"`
	RiskReward   float64                `json:"risk_reward"`
	RiskRewardOK bool                   `json:"risk_reward_ok"`
}
