package secrets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"
)

const (
	// KeyringService is the service name used in the OS keyring
	KeyringService = "porkbun"
	// keyring account names for the two halves of the key pair
	keyringAPIKeyUser    = "api-key"
	keyringSecretKeyUser = "secret-api-key"
	// FallbackFileName is the filename for fallback file storage
	FallbackFileName = ".porkbun-credentials"
)

// credentialsFile is the on-disk shape of the fallback store.
type credentialsFile struct {
	APIKey       string `yaml:"api_key"`
	SecretAPIKey string `yaml:"secret_key"`
}

// StoreCredentials stores the API key pair in the OS keyring.
// Falls back to file storage if the keyring is unavailable.
func StoreCredentials(apiKey, secretKey string) error {
	if apiKey == "" || secretKey == "" {
		return fmt.Errorf("api key and secret key cannot be empty")
	}

	if err := keyring.Set(KeyringService, keyringAPIKeyUser, apiKey); err != nil {
		return storeCredentialsInFile(apiKey, secretKey)
	}
	if err := keyring.Set(KeyringService, keyringSecretKeyUser, secretKey); err != nil {
		return storeCredentialsInFile(apiKey, secretKey)
	}
	return nil
}

// LoadCredentials retrieves the API key pair from the OS keyring.
// Falls back to file storage if the keyring is unavailable.
func LoadCredentials() (apiKey, secretKey string, err error) {
	apiKey, apiErr := keyring.Get(KeyringService, keyringAPIKeyUser)
	secretKey, secretErr := keyring.Get(KeyringService, keyringSecretKeyUser)
	if apiErr == nil && secretErr == nil {
		return apiKey, secretKey, nil
	}

	return loadCredentialsFromFile()
}

// ClearCredentials removes the API key pair from storage.
func ClearCredentials() error {
	apiErr := keyring.Delete(KeyringService, keyringAPIKeyUser)
	secretErr := keyring.Delete(KeyringService, keyringSecretKeyUser)

	// Also try the fallback file in case the keys were stored there.
	fileErr := deleteCredentialsFile()

	if apiErr != nil && secretErr != nil && fileErr != nil {
		return fmt.Errorf("failed to clear credentials from keyring (%v) and file (%v)", apiErr, fileErr)
	}
	return nil
}

func storeCredentialsInFile(apiKey, secretKey string) error {
	credsPath, err := getCredentialsFilePath()
	if err != nil {
		return fmt.Errorf("failed to get credentials file path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(credsPath), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := yaml.Marshal(credentialsFile{APIKey: apiKey, SecretAPIKey: secretKey})
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	// 0600: the file holds live API credentials
	if err := os.WriteFile(credsPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}

func loadCredentialsFromFile() (string, string, error) {
	credsPath, err := getCredentialsFilePath()
	if err != nil {
		return "", "", fmt.Errorf("failed to get credentials file path: %w", err)
	}

	if _, err := os.Stat(credsPath); os.IsNotExist(err) {
		return "", "", fmt.Errorf("no API credentials found in keyring or file storage")
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to read credentials file: %w", err)
	}

	var creds credentialsFile
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return "", "", fmt.Errorf("failed to parse credentials file: %w", err)
	}
	if creds.APIKey == "" || creds.SecretAPIKey == "" {
		return "", "", fmt.Errorf("credentials file %s is missing api_key or secret_key", credsPath)
	}

	return creds.APIKey, creds.SecretAPIKey, nil
}

func deleteCredentialsFile() error {
	credsPath, err := getCredentialsFilePath()
	if err != nil {
		return fmt.Errorf("failed to get credentials file path: %w", err)
	}

	if _, err := os.Stat(credsPath); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(credsPath); err != nil {
		return fmt.Errorf("failed to delete credentials file: %w", err)
	}
	return nil
}

// getCredentialsFilePath returns the path to the fallback file.
// Respects the PORKBUN_CONFIG_DIR environment variable if set.
func getCredentialsFilePath() (string, error) {
	if dir := os.Getenv("PORKBUN_CONFIG_DIR"); dir != "" {
		return filepath.Join(dir, FallbackFileName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".porkbun", FallbackFileName), nil
}
