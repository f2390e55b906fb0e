// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables. Every value has
// a default — the demo starts with no environment at all.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DataPath is the SQLite file backing the key-value store. Defaults to
	// "rigreport.db". Set DATA_PATH to the empty string explicitly to run
	// purely in memory (nothing survives a restart).
	DataPath string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// LatencyMin and LatencyMax bound the simulated per-operation store
	// latency. Defaults: 200ms and 500ms. Set both DATA_LATENCY_MIN_MS and
	// DATA_LATENCY_MAX_MS to 0 to disable the delay.
	LatencyMin time.Duration
	LatencyMax time.Duration
}

// Load reads configuration from environment variables and returns a Config.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	// DATA_PATH distinguishes "unset" from "explicitly empty": an empty
	// value selects the in-memory backing store.
	if v, ok := os.LookupEnv("DATA_PATH"); ok {
		cfg.DataPath = v
	} else {
		cfg.DataPath = "rigreport.db"
	}

	var err error
	if cfg.LatencyMin, err = getMillis("DATA_LATENCY_MIN_MS", 200*time.Millisecond); err != nil {
		return Config{}, err
	}
	if cfg.LatencyMax, err = getMillis("DATA_LATENCY_MAX_MS", 500*time.Millisecond); err != nil {
		return Config{}, err
	}
	if cfg.LatencyMax < cfg.LatencyMin {
		return Config{}, fmt.Errorf("config: DATA_LATENCY_MAX_MS (%s) must not be below DATA_LATENCY_MIN_MS (%s)",
			cfg.LatencyMax, cfg.LatencyMin)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getMillis parses an integer millisecond value from the environment.
func getMillis(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return 0, fmt.Errorf("config: %s must be a non-negative integer, got %q", key, v)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
