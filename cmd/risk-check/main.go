package main

import (
	"flag"
	"os"

	"github.com/ducminhle1904/futures-risk-engine/cmd/common"
	"github.com/ducminhle1904/futures-risk-engine/internal/config"
	"github.com/ducminhle1904/futures-risk-engine/internal/risk"
	"github.com/ducminhle1904/futures-risk-engine/pkg/reporting"
)

func main() {
	var (
		envFile  = flag.String("env", ".env", "Environment file path")
		symbol   = flag.String("symbol", "BTCUSDT", "Trading symbol")
		side     = flag.String("side", "LONG", "Position side (LONG or SHORT)")
		entry    = flag.Float64("entry", 0, "Entry price")
		stop     = flag.Float64("stop", 0, "Stop loss price")
		tp       = flag.Float64("tp", 0, "Take profit price (optional)")
		leverage = flag.Float64("leverage", 10, "Position leverage")
		balance  = flag.Float64("balance", 0, "Account balance")
		mmr      = flag.Float64("mmr", 0, "Maintenance margin rate override (optional)")
		version  = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *version {
		common.PrintVersion("risk-check")
		return
	}

	logger := common.NewLogger()

	if err := common.LoadEnvFile(*envFile); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	cfg := config.Load()
	engine := risk.NewEngineWithConfig(cfg.EngineConfig())

	params := &risk.TradeParameters{
		Symbol:                *symbol,
		Side:                  risk.Side(*side),
		EntryPrice:            *entry,
		StopLoss:              *stop,
		TakeProfit:            *tp,
		Leverage:              *leverage,
		Balance:               *balance,
		MaintenanceMarginRate: *mmr,
	}

	assessment, err := engine.EvaluateTrade(params)
	if err != nil {
		logger.Error("Trade rejected: %v", err)
		os.Exit(1)
	}

	reporting.NewConsoleReporter().RenderAssessment(params, assessment)

	if assessment.Liquidation.RiskLevel == risk.RiskLevelExtreme {
		os.Exit(2)
	}
}
