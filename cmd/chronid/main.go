package main

import (
	"os"

	"github.com/chronid/chronid/internal/cmd/cli"
	cfgpkg "github.com/chronid/chronid/internal/config"
	logpkg "github.com/chronid/chronid/pkg/log"
)

func main() {
	// Config file: CHRONID_CONFIG wins, then the OS config dir; CHRONID_*
	// env vars overlay whatever was loaded.
	path := os.Getenv("CHRONID_CONFIG")
	if path == "" {
		path = cfgpkg.FindConfigFile()
	}
	cfg, cfgErr := cfgpkg.Load(path)
	if cfgErr != nil {
		cfg = cfgpkg.Default()
	}
	cfgpkg.FromEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		cfg = cfgpkg.Default()
		cfgErr = err
	}

	level, err := logpkg.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logpkg.InfoLevel
	}
	var formatter logpkg.Formatter = &logpkg.TextFormatter{}
	if cfg.LogFormat == cfgpkg.FormatJSON {
		formatter = &logpkg.JSONFormatter{}
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(level),
		logpkg.WithFormatter(formatter),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)
	if cfgErr != nil {
		// A broken config file must not make the tool unusable.
		logger.Warn("ignoring config file", logpkg.Str("path", path), logpkg.Err(cfgErr))
	}

	rootCmd := cli.NewRoot(cfg, logger)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
