package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultConfigDir is the default directory name for porkbun configs
	DefaultConfigDir = ".porkbun"
	// DefaultConfigName is the default config file name
	DefaultConfigName = "config.yaml"
)

// GetConfigDir returns the porkbun configuration directory path.
// Defaults to ~/.porkbun/ unless overridden by environment
func GetConfigDir() (string, error) {
	if dir := os.Getenv("PORKBUN_CONFIG_DIR"); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, DefaultConfigDir), nil
}

// DefaultConfigPath returns the fixed per-user config file path, or an
// empty string when the home directory cannot be determined.
func DefaultConfigPath() string {
	configDir, err := GetConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, DefaultConfigName)
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}

	return configDir, nil
}
