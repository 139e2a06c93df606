package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ducminhle1904/futures-risk-engine/internal/risk"
)

// ScenarioProvider loads trade scenarios for batch risk scans
type ScenarioProvider struct{}

// NewScenarioProvider creates a new CSV scenario provider
func NewScenarioProvider() *ScenarioProvider {
	return &ScenarioProvider{}
}

// Expected CSV header: symbol,side,entry,stop,take_profit,leverage,balance
const scenarioColumns = 7

// LoadScenarios reads trade scenarios from a CSV file. Rows with the
// wrong column count fail the whole load; value validation is left to
// the engine so rejected scenarios still appear in reports.
func (p *ScenarioProvider) LoadScenarios(filename string) ([]*risk.TradeParameters, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read scenario header: %w", err)
	}

	var scenarios []*risk.TradeParameters

	lineNum := 1
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("error reading CSV at line %d: %w", lineNum, err)
		}
		lineNum++

		if len(record) < scenarioColumns {
			return nil, fmt.Errorf("line %d: expected %d columns, got %d", lineNum, scenarioColumns, len(record))
		}

		params, err := parseScenario(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		scenarios = append(scenarios, params)
	}

	return scenarios, nil
}

func parseScenario(record []string) (*risk.TradeParameters, error) {
	entry, err := parseField(record[2], "entry")
	if err != nil {
		return nil, err
	}
	stop, err := parseField(record[3], "stop")
	if err != nil {
		return nil, err
	}
	takeProfit, err := parseField(record[4], "take_profit")
	if err != nil {
		return nil, err
	}
	leverage, err := parseField(record[5], "leverage")
	if err != nil {
		return nil, err
	}
	balance, err := parseField(record[6], "balance")
	if err != nil {
		return nil, err
	}

	return &risk.TradeParameters{
		Symbol:     strings.TrimSpace(record[0]),
		Side:       risk.Side(strings.ToUpper(strings.TrimSpace(record[1]))),
		EntryPrice: entry,
		StopLoss:   stop,
		TakeProfit: takeProfit,
		Leverage:   leverage,
		Balance:    balance,
	}, nil
}

func parseField(raw, name string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q", name, raw)
	}
	return value, nil
}
