package config

import (
	"errors"
	"os"
	"path/filepath"
)

// EnsureUserConfig writes a default config into dataDir on first run
// and returns its path. An existing user config is never overwritten.
func EnsureUserConfig(dataDir string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := SaveAtomic(userPath, Default()); err != nil {
		return "", err
	}
	return userPath, nil
}
