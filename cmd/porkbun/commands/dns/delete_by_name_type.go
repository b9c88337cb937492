package dns

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dnstools/porkbun-cli/internal/porkbun"
	"github.com/urfave/cli/v3"
)

var deleteByNameTypeCommand = &cli.Command{
	Name:      "delete-by-name-type",
	Usage:     "Delete all records matching a name and type",
	ArgsUsage: "<domain>",
	Description: `Delete every record whose name and type match exactly. The
records are listed first and filtered client-side, then deleted one
by one; a failing delete does not stop the remaining ones, and the
command reports which ids were deleted and which failed.

With --name omitted the root record name is matched.

Examples:
  porkbun dns delete-by-name-type example.com -t A --name www
  porkbun dns delete-by-name-type example.com -t TXT`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "type",
			Aliases:  []string{"t"},
			Usage:    "record type to match",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "name",
			Aliases: []string{"n"},
			Usage:   "subdomain to match (omit for the root record)",
		},
	},
	Action: runDeleteByNameType,
}

func runDeleteByNameType(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("domain name is required")
	}
	domain := cmd.Args().Get(0)
	recordType := strings.ToUpper(cmd.String("type"))
	name := cmd.String("name")

	if !porkbun.ValidType(recordType) {
		return fmt.Errorf("unsupported record type %q (supported: %s)", recordType, strings.Join(porkbun.RecordTypes, ", "))
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	results, err := client.DeleteMatching(domain, name, recordType)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	if len(results) == 0 {
		fmt.Printf("No %s records match %s.\n", recordType, porkbun.FullName(domain, name))
		return nil
	}

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "failed to delete record %s (%s): %v\n", res.ID, res.Name, res.Err)
			continue
		}
		fmt.Printf("Deleted record %s (%s)\n", res.ID, res.Name)
	}

	if failed > 0 {
		return fmt.Errorf("deleted %d of %d matching records, %d failed", len(results)-failed, len(results), failed)
	}

	fmt.Printf("Deleted %d %s records from %s.\n", len(results), recordType, domain)
	return nil
}
