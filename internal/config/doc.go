// Package config provides loading and environment overlay for chronid CLI
// configuration. It exposes a Default() baseline, JSON/YAML file loading,
// and CHRONID_* environment variable overrides.
//
// Example:
//
//	cfg := config.Default()
//	// Optionally load from file and overlay env vars
//	if fileCfg, err := config.Load(config.FindConfigFile()); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
package config
