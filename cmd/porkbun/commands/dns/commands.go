package dns

import (
	"strconv"
	"strings"

	"github.com/dnstools/porkbun-cli/internal/config"
	"github.com/dnstools/porkbun-cli/internal/porkbun"
	"github.com/urfave/cli/v3"
)

// Command is the top-level dns command
var Command = &cli.Command{
	Name:  "dns",
	Usage: "Manage DNS records",
	Description: `DNS record management commands for domains hosted on Porkbun.

Typical workflow:
  1. porkbun dns list <domain>                  - See what is there
  2. porkbun dns create <domain> <content> ...  - Add a record
  3. porkbun dns edit <domain> <id> <content>   - Change a record by id
  4. porkbun dns delete <domain> <id>           - Remove a record by id`,
	Commands: []*cli.Command{
		listCommand,
		createCommand,
		editCommand,
		deleteCommand,
		deleteByNameTypeCommand,
	},
}

// recordFlags are shared by create and edit.
var recordFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "type",
		Aliases:  []string{"t"},
		Usage:    "record type (A, AAAA, CNAME, MX, TXT, NS, SRV, TLSA, CAA, HTTPS, SVCB, SSHFP)",
		Required: true,
	},
	&cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Usage:   "subdomain (omit for the root record)",
	},
	&cli.IntFlag{
		Name:  "ttl",
		Usage: "time to live in seconds (minimum 600)",
	},
	&cli.IntFlag{
		Name:    "priority",
		Aliases: []string{"p"},
		Usage:   "priority, required for MX and SRV records",
	},
}

func newClient(cmd *cli.Command) (*porkbun.Client, error) {
	cfg, err := config.Resolve(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	return porkbun.NewClient(cfg.BaseURL, porkbun.Credentials{
		APIKey:       cfg.APIKey,
		SecretAPIKey: cfg.SecretAPIKey,
	}), nil
}

func recordFieldsFromCmd(cmd *cli.Command, content string) porkbun.RecordFields {
	fields := porkbun.RecordFields{
		Name:    cmd.String("name"),
		Type:    strings.ToUpper(cmd.String("type")),
		Content: content,
		TTL:     cmd.Int("ttl"),
	}
	if cmd.IsSet("priority") {
		fields.Prio = strconv.Itoa(cmd.Int("priority"))
	}
	return fields
}
