package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.GenerateCount != 1 {
		t.Fatalf("default generate count")
	}
	if cfg.OutputFormat != FormatText {
		t.Fatalf("default output format")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("default log level")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "chronid.json")
	data := []byte(`{"generateCount":5,"outputFormat":"json","logLevel":"debug"}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GenerateCount != 5 {
		t.Fatalf("expected 5")
	}
	if cfg.OutputFormat != FormatJSON {
		t.Fatalf("expected json")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug")
	}
	// Unset keys keep defaults.
	if cfg.LogFormat != FormatText {
		t.Fatalf("expected default log format")
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "chronid.yaml")
	data := []byte("generateCount: 3\noutputFormat: json\n")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.GenerateCount != 3 || cfg.OutputFormat != FormatJSON {
		t.Fatalf("yaml values not applied: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "chronid.json")
	if err := os.WriteFile(file, []byte(`{"outputFormat":"xml"}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(file); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	os.Setenv("CHRONID_GENERATE_COUNT", "7")
	os.Setenv("CHRONID_OUTPUT_FORMAT", "json")
	os.Setenv("CHRONID_LOG_LEVEL", "warn")
	t.Cleanup(func() {
		os.Unsetenv("CHRONID_GENERATE_COUNT")
		os.Unsetenv("CHRONID_OUTPUT_FORMAT")
		os.Unsetenv("CHRONID_LOG_LEVEL")
	})
	FromEnv(&cfg)
	if cfg.GenerateCount != 7 {
		t.Fatalf("env override count")
	}
	if cfg.OutputFormat != FormatJSON {
		t.Fatalf("env override format")
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("env override level")
	}
}
