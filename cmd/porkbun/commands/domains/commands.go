package domains

import (
	"context"
	"fmt"
	"os"

	"github.com/dnstools/porkbun-cli/internal/config"
	"github.com/dnstools/porkbun-cli/internal/output"
	"github.com/dnstools/porkbun-cli/internal/porkbun"
	"github.com/urfave/cli/v3"
)

// Command is the top-level domains command
var Command = &cli.Command{
	Name:  "domains",
	Usage: "List all domains in the account",
	Description: `List every domain registered to the account, in the order the
API returns them.

Example:
  porkbun domains
  porkbun --headers domains`,
	Action: runDomains,
}

func runDomains(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Resolve(cmd.String("config"))
	if err != nil {
		return err
	}

	client := porkbun.NewClient(cfg.BaseURL, porkbun.Credentials{
		APIKey:       cfg.APIKey,
		SecretAPIKey: cfg.SecretAPIKey,
	})

	domains, err := client.ListDomains()
	if err != nil {
		return fmt.Errorf("failed to list domains: %w", err)
	}

	if len(domains) == 0 {
		fmt.Println("No domains found.")
		return nil
	}

	table := output.Table{Header: []string{"DOMAIN", "STATUS", "TLD", "CREATED", "EXPIRES"}}
	for _, d := range domains {
		table.AddRow(d.Domain, d.Status, d.TLD, d.CreateDate, d.ExpireDate)
	}
	return table.Write(os.Stdout, cmd.Bool("headers"))
}
