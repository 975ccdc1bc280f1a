// Package appdir resolves the application's data and config
// directories, creating them on first use.
package appdir

import (
	"os"
	"path/filepath"
)

const appName = "dojo"

// Data returns the data directory, respecting DOJO_DATA_DIR, then
// XDG_DATA_HOME, then ~/.local/share.
func Data() (string, error) {
	if dir := os.Getenv("DOJO_DATA_DIR"); dir != "" {
		return ensure(dir)
	}
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "share")
	}
	return ensure(filepath.Join(base, appName))
}

// Config returns the config directory, respecting DOJO_CONFIG_DIR, then
// XDG_CONFIG_HOME, then ~/.config.
func Config() (string, error) {
	if dir := os.Getenv("DOJO_CONFIG_DIR"); dir != "" {
		return ensure(dir)
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return ensure(filepath.Join(base, appName))
}

func ensure(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
