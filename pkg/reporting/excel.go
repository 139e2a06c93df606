package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ducminhle1904/futures-risk-engine/internal/risk"
)

// ExcelReporter writes scenario scans to a styled Excel workbook
type ExcelReporter struct{}

// NewExcelReporter creates a new Excel reporter
func NewExcelReporter() *ExcelReporter {
	return &ExcelReporter{}
}

type excelStyles struct {
	header  int
	safe    int
	warning int
	extreme int
}

// WriteScanXLSX writes a scenario scan to an Excel workbook with an
// Assessments sheet and a Summary sheet
func (r *ExcelReporter) WriteScanXLSX(results []ScenarioResult, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const assessmentsSheet = "Assessments"
	const summarySheet = "Summary"

	fx.SetSheetName(fx.GetSheetName(0), assessmentsSheet)
	fx.NewSheet(summarySheet)

	styles, err := r.createStyles(fx)
	if err != nil {
		return err
	}

	if err := r.writeAssessmentsSheet(fx, assessmentsSheet, results, styles); err != nil {
		return err
	}

	if err := r.writeSummarySheet(fx, summarySheet, results, styles); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func (r *ExcelReporter) createStyles(fx *excelize.File) (excelStyles, error) {
	var styles excelStyles
	var err error

	styles.header, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return styles, err
	}

	styles.safe, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "006400"},
	})
	if err != nil {
		return styles, err
	}

	styles.warning, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "B8860B"},
	})
	if err != nil {
		return styles, err
	}

	styles.extreme, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "8B0000"},
	})
	return styles, err
}

func (r *ExcelReporter) writeAssessmentsSheet(fx *excelize.File, sheet string, results []ScenarioResult, styles excelStyles) error {
	headers := []string{
		"Symbol", "Side", "Entry Price", "Stop Loss", "Take Profit", "Leverage", "Balance",
		"Liquidation Price", "Margin Ratio %", "Safety Margin %", "Risk Level",
		"Position Size", "Sizing Mode", "Capped", "Safe Leverage", "Risk/Reward", "Warning",
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		fx.SetCellValue(sheet, cell, header)
		fx.SetCellStyle(sheet, cell, cell, styles.header)
	}

	row := 2
	for _, res := range results {
		p := res.Params

		if res.Err != nil {
			fx.SetCellValue(sheet, cellRef(1, row), p.Symbol)
			fx.SetCellValue(sheet, cellRef(2, row), string(p.Side))
			fx.SetCellValue(sheet, cellRef(3, row), p.EntryPrice)
			fx.SetCellValue(sheet, cellRef(4, row), p.StopLoss)
			fx.SetCellValue(sheet, cellRef(11, row), "REJECTED")
			fx.SetCellValue(sheet, cellRef(17, row), res.Err.Error())
			fx.SetCellStyle(sheet, cellRef(11, row), cellRef(11, row), styles.extreme)
			row++
			continue
		}

		a := res.Assessment
		fx.SetCellValue(sheet, cellRef(1, row), a.Symbol)
		fx.SetCellValue(sheet, cellRef(2, row), string(p.Side))
		fx.SetCellValue(sheet, cellRef(3, row), p.EntryPrice)
		fx.SetCellValue(sheet, cellRef(4, row), p.StopLoss)
		fx.SetCellValue(sheet, cellRef(5, row), p.TakeProfit)
		fx.SetCellValue(sheet, cellRef(6, row), p.Leverage)
		fx.SetCellValue(sheet, cellRef(7, row), p.Balance)
		fx.SetCellValue(sheet, cellRef(8, row), a.Liquidation.LiquidationPrice)
		fx.SetCellValue(sheet, cellRef(9, row), a.Liquidation.MarginRatioPercent)
		fx.SetCellValue(sheet, cellRef(10, row), a.Liquidation.SafetyMarginPercent)
		fx.SetCellValue(sheet, cellRef(11, row), string(a.Liquidation.RiskLevel))
		fx.SetCellValue(sheet, cellRef(12, row), a.Position.Size)
		fx.SetCellValue(sheet, cellRef(13, row), string(a.Position.Mode))
		fx.SetCellValue(sheet, cellRef(14, row), a.Position.Capped)
		fx.SetCellValue(sheet, cellRef(15, row), a.SafeLeverage)
		if a.RiskReward > 0 {
			fx.SetCellValue(sheet, cellRef(16, row), a.RiskReward)
		}
		fx.SetCellValue(sheet, cellRef(17, row), a.Liquidation.Warning)

		levelCell := cellRef(11, row)
		switch a.Liquidation.RiskLevel {
		case risk.RiskLevelSafe:
			fx.SetCellStyle(sheet, levelCell, levelCell, styles.safe)
		case risk.RiskLevelExtreme:
			fx.SetCellStyle(sheet, levelCell, levelCell, styles.extreme)
		default:
			fx.SetCellStyle(sheet, levelCell, levelCell, styles.warning)
		}

		row++
	}

	return fx.SetColWidth(sheet, "A", "Q", 16)
}

func (r *ExcelReporter) writeSummarySheet(fx *excelize.File, sheet string, results []ScenarioResult, styles excelStyles) error {
	summary := Summarize(results)

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total Scenarios", summary.Total},
		{"Safe", summary.ByLevel[risk.RiskLevelSafe]},
		{"Moderate", summary.ByLevel[risk.RiskLevelModerate]},
		{"High", summary.ByLevel[risk.RiskLevelHigh]},
		{"Extreme", summary.ByLevel[risk.RiskLevelExtreme]},
		{"Rejected", summary.Rejected},
		{"Size-Capped", summary.Capped},
	}

	for i, values := range rows {
		for j, value := range values {
			cell := cellRef(j+1, i+1)
			fx.SetCellValue(sheet, cell, value)
			if i == 0 {
				fx.SetCellStyle(sheet, cell, cell, styles.header)
			}
		}
	}

	return fx.SetColWidth(sheet, "A", "B", 20)
}

func cellRef(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
