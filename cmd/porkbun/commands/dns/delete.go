package dns

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

var deleteCommand = &cli.Command{
	Name:      "delete",
	Usage:     "Delete a DNS record by id",
	ArgsUsage: "<domain> <id>",
	Description: `Delete a single DNS record, addressed by the id shown in
"porkbun dns list".

Example:
  porkbun dns delete example.com 106926659`,
	Action: runDelete,
}

func runDelete(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("requires 2 arguments: <domain> <id>")
	}
	domain := cmd.Args().Get(0)
	id := cmd.Args().Get(1)

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	if err := client.DeleteRecord(domain, id); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	fmt.Printf("Deleted record %s from %s.\n", id, domain)
	return nil
}
