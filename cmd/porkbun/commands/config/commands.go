package config

import "github.com/urfave/cli/v3"

// Command is the top-level config command
var Command = &cli.Command{
	Name:  "config",
	Usage: "Manage CLI configuration and API credentials",
	Description: `Configuration management commands.

Credentials are looked up in this order: the config file, the OS
keyring, then the PORKBUN_API_KEY / PORKBUN_SECRET_API_KEY
environment variables. Generate keys at https://porkbun.com/account/api
and enable API access for each domain you want to manage.`,
	Commands: []*cli.Command{
		initCommand,
		showCommand,
		storeKeysCommand,
		clearKeysCommand,
	},
}
