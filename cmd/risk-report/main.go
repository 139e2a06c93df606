package main

import (
	"flag"
	"os"

	"github.com/ducminhle1904/futures-risk-engine/cmd/common"
	"github.com/ducminhle1904/futures-risk-engine/internal/config"
	"github.com/ducminhle1904/futures-risk-engine/internal/risk"
	"github.com/ducminhle1904/futures-risk-engine/pkg/data"
	"github.com/ducminhle1904/futures-risk-engine/pkg/reporting"
)

func main() {
	var (
		envFile = flag.String("env", ".env", "Environment file path")
		input   = flag.String("input", "scenarios.csv", "Scenario CSV file (symbol,side,entry,stop,take_profit,leverage,balance)")
		output  = flag.String("output", "", "Excel output path (optional)")
		silent  = flag.Bool("silent", false, "Suppress console table output")
		version = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *version {
		common.PrintVersion("risk-report")
		return
	}

	logger := common.NewLogger()
	logger.SetSilentMode(*silent)

	if err := common.LoadEnvFile(*envFile); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	cfg := config.Load()
	engine := risk.NewEngineWithConfig(cfg.EngineConfig())

	logger.Header("Risk Scenario Scan")

	scenarios, err := data.NewScenarioProvider().LoadScenarios(*input)
	if err != nil {
		logger.Error("Failed to load scenarios: %v", err)
		os.Exit(1)
	}
	logger.Info("Loaded %d scenarios from %s", len(scenarios), *input)

	results := make([]reporting.ScenarioResult, 0, len(scenarios))
	for _, params := range scenarios {
		assessment, err := engine.EvaluateTrade(params)
		results = append(results, reporting.ScenarioResult{
			Params:     params,
			Assessment: assessment,
			Err:        err,
		})
	}

	if !*silent {
		reporting.NewConsoleReporter().RenderScan(results)
	}

	if *output != "" {
		if err := reporting.NewExcelReporter().WriteScanXLSX(results, *output); err != nil {
			logger.Error("Failed to write Excel report: %v", err)
			os.Exit(1)
		}
		logger.Success("Excel report written to %s", *output)
	}
}
