package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// GetEnv retrieves an environment variable or returns a default value if not found
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// dotenvFile returns the .env file to load for a config directory.
// ALC_ENV_FILE overrides it.
func dotenvFile(dir string) string {
	if dir == "" {
		dir = "."
	}
	return GetEnv(EnvPrefix+"_ENV_FILE", filepath.Join(dir, ".env"))
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
