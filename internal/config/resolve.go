package config

import (
	"fmt"
	"os"

	"github.com/dnstools/porkbun-cli/internal/secrets"
)

// Environment fallback sources for credentials and endpoint override.
const (
	EnvAPIKey       = "PORKBUN_API_KEY"
	EnvSecretAPIKey = "PORKBUN_SECRET_API_KEY"
	EnvBaseURL      = "PORKBUN_API_BASE"
)

// Resolve loads the configuration for one CLI invocation. Each
// credential field is taken from the first source that provides it:
// the config file, the OS keyring, then the environment. An empty path
// selects the default per-user config file, which is allowed to be
// absent; an explicitly named file must exist. Missing credentials
// after all three sources is an error.
func Resolve(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := &Config{}
	if path != "" {
		_, statErr := os.Stat(path)
		switch {
		case statErr == nil:
			loaded, err := Load(path)
			if err != nil {
				return nil, err
			}
			cfg = loaded
		case explicit:
			return nil, fmt.Errorf("config file not found: %s", path)
		case !os.IsNotExist(statErr):
			return nil, fmt.Errorf("failed to stat config file %s: %w", path, statErr)
		}
	}

	if cfg.APIKey == "" || cfg.SecretAPIKey == "" {
		if apiKey, secretKey, err := secrets.LoadCredentials(); err == nil {
			if cfg.APIKey == "" {
				cfg.APIKey = apiKey
			}
			if cfg.SecretAPIKey == "" {
				cfg.SecretAPIKey = secretKey
			}
		}
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(EnvAPIKey)
	}
	if cfg.SecretAPIKey == "" {
		cfg.SecretAPIKey = os.Getenv(EnvSecretAPIKey)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv(EnvBaseURL)
	}

	if cfg.APIKey == "" || cfg.SecretAPIKey == "" {
		return nil, fmt.Errorf(
			"no API credentials found: set api_key and secret_key in %s, store them with \"porkbun config store-keys\", or export %s and %s",
			path, EnvAPIKey, EnvSecretAPIKey)
	}

	return cfg, nil
}
