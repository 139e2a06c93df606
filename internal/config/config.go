package config

import (
	"os"
	"strconv"

	"github.com/ducminhle1904/futures-risk-engine/internal/risk"
)

// Config carries the process-wide settings for the engine binaries.
// Everything is fixed at startup; nothing is mutated afterwards.
type Config struct {
	Environment string
	LogLevel    string

	Engine struct {
		SizingMode    risk.SizingMode
		RiskPercent   float64
		MinRiskReward float64
		MinNotional   float64
	}

	Monitoring struct {
		ListenPort     int
		PrometheusPath string
		HealthPath     string
	}
}

// Load reads configuration from environment variables, applying the
// engine defaults for anything unset
func Load() *Config {
	cfg := &Config{
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	cfg.Engine.SizingMode = parseSizingMode(getEnv("SIZING_MODE", string(risk.CurrencyWeightedSizing)))
	cfg.Engine.RiskPercent = getEnvFloat("RISK_PERCENT", risk.DefaultRiskPercent)
	cfg.Engine.MinRiskReward = getEnvFloat("MIN_RISK_REWARD", risk.DefaultMinRiskReward)
	cfg.Engine.MinNotional = getEnvFloat("MIN_NOTIONAL", 0)

	cfg.Monitoring.ListenPort = getEnvInt("LISTEN_PORT", 8080)
	cfg.Monitoring.PrometheusPath = getEnv("PROMETHEUS_PATH", "/metrics")
	cfg.Monitoring.HealthPath = getEnv("HEALTH_PATH", "/health")

	return cfg
}

// EngineConfig converts the loaded settings into the engine's config value
func (c *Config) EngineConfig() risk.EngineConfig {
	return risk.EngineConfig{
		SizingMode:    c.Engine.SizingMode,
		RiskPercent:   c.Engine.RiskPercent,
		MinRiskReward: c.Engine.MinRiskReward,
		MinNotional:   c.Engine.MinNotional,
	}
}

func parseSizingMode(raw string) risk.SizingMode {
	switch risk.SizingMode(raw) {
	case risk.LeverageWeightedSizing:
		return risk.LeverageWeightedSizing
	default:
		return risk.CurrencyWeightedSizing
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
