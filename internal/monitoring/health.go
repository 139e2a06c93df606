package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// HealthChecker tracks server liveness for the /health endpoint.
// The engine itself cannot degrade (pure computation), so health here
// only reflects the serving process.
type HealthChecker struct {
	mu             sync.RWMutex
	startTime      time.Time
	lastEvaluation time.Time
	evaluations    int64
	failures       int64
}

// HealthStatus is the JSON payload served at /health
type HealthStatus struct {
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	Uptime         string    `json:"uptime"`
	Evaluations    int64     `json:"evaluations"`
	Failures       int64     `json:"failures"`
	LastEvaluation time.Time `json:"last_evaluation,omitempty"`
}

// NewHealthChecker creates a new health checker
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		startTime: time.Now(),
	}
}

// RecordEvaluation marks a completed evaluation
func (h *HealthChecker) RecordEvaluation() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.evaluations++
	h.lastEvaluation = time.Now()
}

// RecordFailure marks a failed evaluation
func (h *HealthChecker) RecordFailure() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failures++
}

// ServeHTTP serves the health endpoint
func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := HealthStatus{
		Status:         "healthy",
		Timestamp:      time.Now(),
		Uptime:         time.Since(h.startTime).Round(time.Second).String(),
		Evaluations:    h.evaluations,
		Failures:       h.failures,
		LastEvaluation: h.lastEvaluation,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}
