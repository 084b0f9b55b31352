package config

import (
	"os"
	"strconv"
)

// FromEnv overlays CHRONID_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("CHRONID_GENERATE_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.GenerateCount = n
		}
	}
	if v := os.Getenv("CHRONID_OUTPUT_FORMAT"); v != "" {
		cfg.OutputFormat = v
	}
	if v := os.Getenv("CHRONID_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CHRONID_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
