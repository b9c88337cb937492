package dns

import (
	"context"
	"fmt"
	"os"

	"github.com/dnstools/porkbun-cli/internal/output"
	"github.com/urfave/cli/v3"
)

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "List DNS records for a domain",
	ArgsUsage: "<domain>",
	Description: `List all DNS records for a domain, in the order the API returns
them.

Example:
  porkbun dns list example.com
  porkbun --headers dns list example.com`,
	Action: runList,
}

func runList(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("domain name is required")
	}
	domain := cmd.Args().Get(0)

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	records, err := client.ListRecords(domain)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	if len(records) == 0 {
		fmt.Printf("No DNS records found for %s.\n", domain)
		return nil
	}

	table := output.Table{Header: []string{"ID", "NAME", "TYPE", "CONTENT", "TTL", "PRIO", "NOTES"}}
	for _, r := range records {
		table.AddRow(r.ID, r.Name, r.Type, r.Content, r.TTL, r.Prio, r.Notes)
	}
	return table.Write(os.Stdout, cmd.Bool("headers"))
}
