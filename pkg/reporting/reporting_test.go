package reporting

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ducminhle1904/futures-risk-engine/internal/risk"
)

func scanFixture(t *testing.T) []ScenarioResult {
	t.Helper()
	engine := risk.NewEngine()

	scenarios := []*risk.TradeParameters{
		{Symbol: "BTCUSDT", Side: risk.SideLong, EntryPrice: 50000, StopLoss: 49000, TakeProfit: 52000, Leverage: 10, Balance: 10000},
		{Symbol: "ETHUSDT", Side: risk.SideShort, EntryPrice: 3000, StopLoss: 3100, TakeProfit: 2700, Leverage: 5, Balance: 5000},
		{Symbol: "SOLUSDT", Side: risk.SideLong, EntryPrice: 0, StopLoss: 140, Leverage: 5, Balance: 5000}, // rejected
	}

	results := make([]ScenarioResult, 0, len(scenarios))
	for _, params := range scenarios {
		assessment, err := engine.EvaluateTrade(params)
		results = append(results, ScenarioResult{Params: params, Assessment: assessment, Err: err})
	}
	return results
}

func TestSummarize(t *testing.T) {
	results := scanFixture(t)
	summary := Summarize(results)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Rejected)
	assert.Equal(t, 2, summary.ByLevel[risk.RiskLevelSafe])
}

func TestConsoleReporter_RenderScan(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewConsoleReporterTo(&buf)

	reporter.RenderScan(scanFixture(t))

	out := buf.String()
	assert.Contains(t, out, "BTCUSDT")
	assert.Contains(t, out, "SAFE")
	assert.Contains(t, out, "REJECTED")
	assert.Contains(t, out, "3 scenarios")
}

func TestConsoleReporter_RenderAssessment(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewConsoleReporterTo(&buf)

	params := &risk.TradeParameters{
		Symbol: "BTCUSDT", Side: risk.SideLong,
		EntryPrice: 50000, StopLoss: 49000, TakeProfit: 52000,
		Leverage: 10, Balance: 10000,
	}
	assessment, err := risk.NewEngine().EvaluateTrade(params)
	require.NoError(t, err)

	reporter.RenderAssessment(params, assessment)

	out := buf.String()
	assert.Contains(t, out, "TRADE RISK ASSESSMENT")
	assert.Contains(t, out, "45200.00")
	assert.Contains(t, out, "SAFE")
}

func TestExcelReporter_WriteScanXLSX(t *testing.T) {
	reporter := NewExcelReporter()

	path := filepath.Join(t.TempDir(), "reports", "scan.xlsx")
	require.NoError(t, reporter.WriteScanXLSX(scanFixture(t), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
