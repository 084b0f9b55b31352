package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// GenerateCount is the default number of IDs `chronid generate` emits.
	GenerateCount int `json:"generateCount" yaml:"generateCount"`
	// OutputFormat is "text" or "json".
	OutputFormat string `json:"outputFormat" yaml:"outputFormat"`
	LogLevel     string `json:"logLevel" yaml:"logLevel"`
	LogFormat    string `json:"logFormat" yaml:"logFormat"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		GenerateCount: 1,
		OutputFormat:  FormatText,
		LogLevel:      "info",
		LogFormat:     FormatText,
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults. Missing keys keep their default values.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the CLI cannot act on.
func (c Config) Validate() error {
	if c.GenerateCount < 1 {
		return fmt.Errorf("config: generateCount must be at least 1, got %d", c.GenerateCount)
	}
	if c.OutputFormat != FormatText && c.OutputFormat != FormatJSON {
		return fmt.Errorf("config: invalid outputFormat %q; use text|json", c.OutputFormat)
	}
	if c.LogFormat != FormatText && c.LogFormat != FormatJSON {
		return fmt.Errorf("config: invalid logFormat %q; use text|json", c.LogFormat)
	}
	return nil
}
