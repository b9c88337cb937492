package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dnstools/porkbun-cli/internal/config"
	"github.com/urfave/cli/v3"
)

const configTemplate = `# Porkbun API credentials.
# Generate keys at https://porkbun.com/account/api and enable API
# access for each domain you want to manage. Leave these empty to use
# the OS keyring ("porkbun config store-keys") or environment
# variables instead.
api_key: ""
secret_key: ""

# Optional override of the API endpoint.
# base_url: https://api.porkbun.com/api/json/v3
`

var initCommand = &cli.Command{
	Name:  "init",
	Usage: "Write a starter config file",
	Description: `Write a commented starter config file. Refuses to overwrite an
existing file unless --force is given.

Example:
  porkbun config init`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "force",
			Usage: "overwrite an existing config file",
		},
	},
	Action: runInit,
}

func runInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if path == "" {
		path = config.DefaultConfigPath()
		if path == "" {
			return fmt.Errorf("could not determine config file location")
		}
	}

	if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// 0600: the file is meant to hold live API credentials
	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	fmt.Printf("Wrote config template to %s\n", path)
	return nil
}
