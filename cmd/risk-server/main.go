package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ducminhle1904/futures-risk-engine/cmd/common"
	"github.com/ducminhle1904/futures-risk-engine/internal/config"
	"github.com/ducminhle1904/futures-risk-engine/internal/monitoring"
	"github.com/ducminhle1904/futures-risk-engine/internal/risk"
)

type errorResponse struct {
	Error    string `json:"error"`
	Category string `json:"category,omitempty"`
}

// server hosts the pure engine behind a small JSON API for dashboard
// deployments. The engine has no I/O of its own; everything stateful
// (metrics, health) lives out here.
type server struct {
	engine *risk.Engine
	health *monitoring.HealthChecker
	logger *common.Logger
}

func main() {
	var (
		envFile = flag.String("env", ".env", "Environment file path")
		port    = flag.Int("port", 0, "Listen port (overrides LISTEN_PORT)")
		version = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *version {
		common.PrintVersion("risk-server")
		return
	}

	logger := common.NewLogger()

	if err := common.LoadEnvFile(*envFile); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	cfg := config.Load()
	if *port != 0 {
		cfg.Monitoring.ListenPort = *port
	}

	srv := &server{
		engine: risk.NewEngineWithConfig(cfg.EngineConfig()),
		health: monitoring.NewHealthChecker(),
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/evaluate", srv.handleEvaluate)
	mux.Handle(cfg.Monitoring.PrometheusPath, monitoring.NewMetricsHandler())
	mux.Handle(cfg.Monitoring.HealthPath, srv.health)

	addr := fmt.Sprintf(":%d", cfg.Monitoring.ListenPort)

	logger.Header("Risk Engine Server")
	logger.Info("Sizing mode: %s", cfg.Engine.SizingMode)
	logger.Info("Listening on %s", addr)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	if err := httpServer.ListenAndServe(); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}

func (s *server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var params risk.TradeParameters
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	assessment, err := s.engine.EvaluateTrade(&params)
	if err != nil {
		s.health.RecordFailure()
		monitoring.RecordError(string(errorCategory(err)))
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:    err.Error(),
			Category: string(errorCategory(err)),
		})
		return
	}

	s.health.RecordEvaluation()
	monitoring.RecordEvaluation(
		params.Symbol,
		string(params.Side),
		string(assessment.Liquidation.RiskLevel),
		assessment.Liquidation.SafetyMarginPercent,
		assessment.Position.Capped,
	)

	writeJSON(w, http.StatusOK, assessment)
}

func errorCategory(err error) risk.ErrorCategory {
	switch {
	case risk.IsGeometryError(err):
		return risk.ErrorCategoryGeometry
	case risk.IsRangeError(err):
		return risk.ErrorCategoryRange
	default:
		return risk.ErrorCategoryValidation
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
