package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Evaluation metrics
	evaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risk_engine_evaluations_total",
			Help: "Total number of trade evaluations by outcome risk level",
		},
		[]string{"symbol", "side", "risk_level"},
	)

	safetyMarginPercent = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "risk_engine_safety_margin_percent",
			Help:    "Distribution of safety margins between stop loss and liquidation",
			Buckets: []float64{-5, 0, 1, 2, 3, 5, 8, 12, 20},
		},
		[]string{"symbol"},
	)

	positionCappedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risk_engine_position_capped_total",
			Help: "Trade evaluations whose position size hit the max-position ceiling",
		},
		[]string{"symbol"},
	)

	// Error metrics
	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "risk_engine_errors_total",
			Help: "Total number of evaluation errors by category",
		},
		[]string{"category"},
	)
)

func init() {
	prometheus.MustRegister(evaluationsTotal)
	prometheus.MustRegister(safetyMarginPercent)
	prometheus.MustRegister(positionCappedTotal)
	prometheus.MustRegister(errorsTotal)
}

// MetricsHandler handles the Prometheus metrics endpoint
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordEvaluation records a completed trade evaluation
func RecordEvaluation(symbol, side, riskLevel string, safetyMargin float64, capped bool) {
	evaluationsTotal.WithLabelValues(symbol, side, riskLevel).Inc()
	safetyMarginPercent.WithLabelValues(symbol).Observe(safetyMargin)
	if capped {
		positionCappedTotal.WithLabelValues(symbol).Inc()
	}
}

// RecordError records an evaluation failure by error category
func RecordError(category string) {
	errorsTotal.WithLabelValues(category).Inc()
}
