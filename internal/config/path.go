package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the default configuration directory based on the
// host OS. It prefers standard locations when available and falls back to a
// dotdir in the user's home directory.
func DefaultConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return "."
	}

	// XDG (Linux) override
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "chronid")
	}

	// macOS: ~/Library/Application Support/Chronid
	if isDir(filepath.Join(homeDir, "Library")) {
		return filepath.Join(homeDir, "Library", "Application Support", "Chronid")
	}

	// Windows: %USERPROFILE%/AppData/Local/Chronid
	if isDir(filepath.Join(homeDir, "AppData")) {
		return filepath.Join(homeDir, "AppData", "Local", "Chronid")
	}

	// Fallback: ~/.chronid
	return filepath.Join(homeDir, ".chronid")
}

// FindConfigFile returns the first existing config file in the default
// directory, or "" when none is present.
func FindConfigFile() string {
	dir := DefaultConfigDir()
	for _, name := range []string{"config.json", "config.yaml", "config.yml"} {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
