package indicators

import (
	"errors"
	"math"

	"github.com/ducminhle1904/futures-risk-engine/pkg/types"
)

// ATR represents the Average True Range technical indicator.
// The leverage advisor consumes it to express recent volatility as an
// absolute price distance.
type ATR struct {
	period int
}

// DefaultATRPeriod is the conventional 14-candle lookback
const DefaultATRPeriod = 14

// NewATR creates a new ATR indicator
func NewATR(period int) *ATR {
	if period <= 0 {
		period = DefaultATRPeriod
	}
	return &ATR{period: period}
}

// Period returns the configured lookback
func (a *ATR) Period() int {
	return a.period
}

// Calculate computes the simple moving average of the true range over
// the last period candles
func (a *ATR) Calculate(data []types.OHLCV) (float64, error) {
	if len(data) < a.period+1 {
		return 0, errors.New("insufficient data points for ATR calculation")
	}

	sum := 0.0
	for i := len(data) - a.period; i < len(data); i++ {
		sum += trueRange(data[i], data[i-1])
	}

	return sum / float64(a.period), nil
}

// trueRange is the greatest of the candle range and the gaps from the
// previous close
func trueRange(current, previous types.OHLCV) float64 {
	highLow := current.High - current.Low
	highClose := math.Abs(current.High - previous.Close)
	lowClose := math.Abs(current.Low - previous.Close)

	return math.Max(highLow, math.Max(highClose, lowClose))
}
