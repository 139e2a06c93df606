package reporting

import (
	"github.com/ducminhle1904/futures-risk-engine/internal/risk"
)

// ScenarioResult pairs one evaluated trade scenario with its outcome.
// Err is set when the engine rejected the scenario; Assessment is nil
// in that case.
type ScenarioResult struct {
	Params     *risk.TradeParameters
	Assessment *risk.TradeAssessment
	Err        error
}

// ScanSummary aggregates a batch of scenario results
type ScanSummary struct {
	Total    int
	ByLevel  map[risk.RiskLevel]int
	Rejected int
	Capped   int
}

// Summarize builds the aggregate view of a scenario scan
func Summarize(results []ScenarioResult) ScanSummary {
	summary := ScanSummary{
		Total:   len(results),
		ByLevel: make(map[risk.RiskLevel]int),
	}

	for _, r := range results {
		if r.Err != nil {
			summary.Rejected++
			continue
		}
		summary.ByLevel[r.Assessment.Liquidation.RiskLevel]++
		if r.Assessment.Position.Capped {
			summary.Capped++
		}
	}

	return summary
}
