package config

import (
	"context"
	"fmt"

	"github.com/dnstools/porkbun-cli/internal/config"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

var showCommand = &cli.Command{
	Name:  "show",
	Usage: "Display configuration with credentials redacted",
	Description: `Load and print the config file. Credential values are replaced
with [REDACTED]; pass --show-keys to print them as stored.`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "show-keys",
			Usage: "print credential values instead of [REDACTED]",
		},
	},
	Action: runShow,
}

func runShow(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !cmd.Bool("show-keys") {
		if cfg.APIKey != "" {
			cfg.APIKey = "[REDACTED]"
		}
		if cfg.SecretAPIKey != "" {
			cfg.SecretAPIKey = "[REDACTED]"
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Printf("Configuration: %s\n", path)
	fmt.Println("---")
	fmt.Print(string(data))
	return nil
}
