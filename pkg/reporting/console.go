package reporting

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ducminhle1904/futures-risk-engine/internal/risk"
)

// ConsoleReporter renders assessments and scan summaries as terminal tables
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a reporter writing to stdout
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{out: os.Stdout}
}

// NewConsoleReporterTo creates a reporter writing to an explicit writer
func NewConsoleReporterTo(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// RenderAssessment prints the full assessment for one trade
func (r *ConsoleReporter) RenderAssessment(params *risk.TradeParameters, assessment *risk.TradeAssessment) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("TRADE RISK ASSESSMENT")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"📊 Symbol", params.Symbol},
		{"↕️  Side", string(params.Side)},
		{"💵 Entry Price", fmt.Sprintf("$%.2f", params.EntryPrice)},
		{"🛑 Stop Loss", fmt.Sprintf("$%.2f", params.StopLoss)},
		{"⚡ Leverage", fmt.Sprintf("%.0fx", params.Leverage)},
	})

	t.AppendSeparator()

	liq := assessment.Liquidation
	t.AppendRows([]table.Row{
		{"💥 Liquidation Price", fmt.Sprintf("$%.2f", liq.LiquidationPrice)},
		{"📐 Margin Ratio", fmt.Sprintf("%.2f%%", liq.MarginRatioPercent)},
		{"🛟 Safety Margin", fmt.Sprintf("%.2f%%", liq.SafetyMarginPercent)},
		{"🚦 Risk Level", riskLevelLabel(liq.RiskLevel)},
	})

	t.AppendSeparator()

	t.AppendRows([]table.Row{
		{"📦 Position Size", fmt.Sprintf("%.4f", assessment.Position.Size)},
		{"🧮 Sizing Mode", string(assessment.Position.Mode)},
		{"🪜 Safe Leverage", fmt.Sprintf("%dx", assessment.SafeLeverage)},
	})

	if assessment.RiskReward > 0 {
		verdict := "❌ below minimum"
		if assessment.RiskRewardOK {
			verdict = "✅ acceptable"
		}
		t.AppendRows([]table.Row{
			{"⚖️  Risk/Reward", fmt.Sprintf("%.2f (%s)", assessment.RiskReward, verdict)},
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 20, WidthMax: 20, Align: text.AlignLeft},
		{Number: 2, WidthMin: 28, WidthMax: 42, Align: text.AlignLeft},
	})

	t.Render()

	if liq.Warning != "" {
		fmt.Fprintf(r.out, "\n⚠️  %s\n", liq.Warning)
	}
}

// RenderScan prints the per-scenario table and summary for a batch scan
func (r *ConsoleReporter) RenderScan(results []ScenarioResult) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("RISK SCAN")
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Symbol", "Side", "Entry", "Stop", "Lev", "Liq Price", "Safety %", "Level", "Size", "R:R"})

	for _, res := range results {
		if res.Err != nil {
			t.AppendRow(table.Row{
				res.Params.Symbol, string(res.Params.Side),
				fmt.Sprintf("%.2f", res.Params.EntryPrice),
				fmt.Sprintf("%.2f", res.Params.StopLoss),
				fmt.Sprintf("%.0fx", res.Params.Leverage),
				"—", "—", "REJECTED", "—", "—",
			})
			continue
		}

		a := res.Assessment
		rr := "—"
		if a.RiskReward > 0 {
			rr = fmt.Sprintf("%.2f", a.RiskReward)
		}
		t.AppendRow(table.Row{
			a.Symbol, string(res.Params.Side),
			fmt.Sprintf("%.2f", res.Params.EntryPrice),
			fmt.Sprintf("%.2f", res.Params.StopLoss),
			fmt.Sprintf("%.0fx", res.Params.Leverage),
			fmt.Sprintf("%.2f", a.Liquidation.LiquidationPrice),
			fmt.Sprintf("%.2f", a.Liquidation.SafetyMarginPercent),
			string(a.Liquidation.RiskLevel),
			fmt.Sprintf("%.4f", a.Position.Size),
			rr,
		})
	}

	t.Render()

	summary := Summarize(results)
	fmt.Fprintf(r.out, "\n📊 %d scenarios: %d SAFE, %d MODERATE, %d HIGH, %d EXTREME, %d rejected (%d size-capped)\n",
		summary.Total,
		summary.ByLevel[risk.RiskLevelSafe],
		summary.ByLevel[risk.RiskLevelModerate],
		summary.ByLevel[risk.RiskLevelHigh],
		summary.ByLevel[risk.RiskLevelExtreme],
		summary.Rejected,
		summary.Capped,
	)
}

func riskLevelLabel(level risk.RiskLevel) string {
	switch level {
	case risk.RiskLevelSafe:
		return "🟢 SAFE"
	case risk.RiskLevelModerate:
		return "🟡 MODERATE"
	case risk.RiskLevelHigh:
		return "🟠 HIGH"
	default:
		return "🔴 EXTREME"
	}
}
