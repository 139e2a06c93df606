package risk

// EngineConfig holds the fixed configuration shared by the calculators.
// Values are read-only after construction; the engine keeps no other state.
type EngineConfig struct {
	SizingMode    SizingMode
	RiskPercent   float64 // account % risked per trade
	MinRiskReward float64 // minimum acceptable reward:risk ratio
	MinNotional   float64 // exchange minimum order notional, 0 disables the check
}

// DefaultEngineConfig returns the standard engine configuration
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		SizingMode:    CurrencyWeightedSizing,
		RiskPercent:   DefaultRiskPercent,
		MinRiskReward: DefaultMinRiskReward,
	}
}

// Engine bundles the four calculators behind one facade. All methods
// are pure; any number of callers may share one Engine concurrently.
type Engine struct {
	config      EngineConfig
	liquidation *LiquidationEngine
	sizer       *PositionSizer
	advisor     *LeverageAdvisor
	riskReward  *RiskRewardEvaluator
	planner     *TradePlanner
}

// NewEngine creates an engine with the default configuration
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultEngineConfig())
}

// NewEngineWithConfig creates an engine with an explicit configuration
func NewEngineWithConfig(config EngineConfig) *Engine {
	if config.RiskPercent == 0 {
		config.RiskPercent = DefaultRiskPercent
	}
	if config.MinRiskReward == 0 {
		config.MinRiskReward = DefaultMinRiskReward
	}
	return &Engine{
		config:      config,
		liquidation: NewLiquidationEngine(),
		sizer:       NewPositionSizerWithMode(config.SizingMode),
		advisor:     NewLeverageAdvisor(),
		riskReward:  NewRiskRewardEvaluator(),
		planner:     NewTradePlanner(),
	}
}

// Config returns the engine configuration
func (e *Engine) Config() EngineConfig {
	return e.config
}

// Liquidation exposes the liquidation calculator
func (e *Engine) Liquidation() *LiquidationEngine { return e.liquidation }

// Sizer exposes the position sizer
func (e *Engine) Sizer() *PositionSizer { return e.sizer }

// Advisor exposes the leverage advisor
func (e *Engine) Advisor() *LeverageAdvisor { return e.advisor }

// RiskReward exposes the risk/reward evaluator
func (e *Engine) RiskReward() *RiskRewardEvaluator { return e.riskReward }

// Planner exposes the stop/target planner
func (e *Engine) Planner() *TradePlanner { return e.planner }

// EvaluateTrade runs the full assessment for one proposed trade:
// liquidation validation, position sizing, safe leverage and (when a
// take profit is set) the reward:risk check. The maintenance margin
// rate comes from the parameters when supplied, otherwise from the
// symbol profile table.
func (e *Engine) EvaluateTrade(params *TradeParameters) (*TradeAssessment, error) {
	if params == nil {
		return nil, newValidationError("EvaluateTrade", "trade parameters are nil")
	}

	mmr := params.MaintenanceMarginRate
	if mmr == 0 {
		mmr = MaintenanceMarginRate(params.Symbol)
	}

	liquidation, err := e.liquidation.ValidateTrade(params.EntryPrice, params.StopLoss, params.Leverage, params.Side, mmr)
	if err != nil {
		return nil, err
	}

	position, err := e.sizer.CalculatePositionSize(params.Balance, params.EntryPrice, params.StopLoss, params.Leverage, e.config.RiskPercent)
	if err != nil {
		return nil, err
	}

	// In currency-weighted mode the size is a quote-currency notional,
	// so the exchange minimum applies directly. The floor must still fit
	// under the max-position ceiling: an account too small to fund the
	// minimum order gets a refusal, not a position it cannot margin.
	if e.config.MinNotional > 0 && e.sizer.Mode() == CurrencyWeightedSizing && position.Size < e.config.MinNotional {
		maxPosition := params.Balance * MaxBalanceUtilization * params.Leverage
		if e.config.MinNotional > maxPosition {
			return nil, newRangeError("EvaluateTrade",
				"minimum notional %.2f exceeds fundable position %.2f (balance %.2f at %.0fx)",
				e.config.MinNotional, maxPosition, params.Balance, params.Leverage)
		}
		position.Size = e.config.MinNotional
		position.Floored = true
	}

	safeLeverage, err := e.liquidation.CalculateSafeLeverage(params.EntryPrice, params.StopLoss, params.Side, e.config.RiskPercent)
	if err != nil {
		return nil, err
	}

	assessment := &TradeAssessment{
		Symbol:       params.Symbol,
		Liquidation:  liquidation,
		Position:     position,
		SafeLeverage: safeLeverage,
	}

	if params.TakeProfit > 0 {
		ratio, err := e.riskReward.CalculateRiskReward(params.EntryPrice, params.StopLoss, params.TakeProfit)
		if err != nil {
			return nil, err
		}
		assessment.RiskReward = round2(ratio)
		assessment.RiskRewardOK = ratio >= e.config.MinRiskReward
	}

	return assessment, nil
}
