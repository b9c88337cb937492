package config

import (
	"context"
	"fmt"

	"github.com/dnstools/porkbun-cli/internal/secrets"
	"github.com/urfave/cli/v3"
)

var storeKeysCommand = &cli.Command{
	Name:      "store-keys",
	Usage:     "Store API credentials in the OS keyring",
	ArgsUsage: "<api-key> <secret-key>",
	Description: `Store the API key pair in the OS keyring so the config file can
stay free of secrets. Falls back to a permission-restricted file under
the config directory when no keyring is available.

Example:
  porkbun config store-keys pk1_xxxx sk1_xxxx`,
	Action: runStoreKeys,
}

var clearKeysCommand = &cli.Command{
	Name:   "clear-keys",
	Usage:  "Remove API credentials from the OS keyring",
	Action: runClearKeys,
}

func runStoreKeys(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("requires 2 arguments: <api-key> <secret-key>")
	}

	if err := secrets.StoreCredentials(cmd.Args().Get(0), cmd.Args().Get(1)); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}

	fmt.Println("API credentials stored.")
	return nil
}

func runClearKeys(ctx context.Context, cmd *cli.Command) error {
	if err := secrets.ClearCredentials(); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}

	fmt.Println("API credentials cleared.")
	return nil
}
