package dns

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

var editCommand = &cli.Command{
	Name:      "edit",
	Usage:     "Edit a DNS record by id",
	ArgsUsage: "<domain> <id> <content>",
	Description: `Edit an existing DNS record, addressed by the id shown in
"porkbun dns list". Flags you omit are left out of the request and
keep their current values on the provider side.

Examples:
  porkbun dns edit example.com 106926659 5.6.7.8 -t A --name www
  porkbun dns edit example.com 106926660 mail2.example.com -t MX -p 20`,
	Flags:  recordFlags,
	Action: runEdit,
}

func runEdit(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 3 {
		return fmt.Errorf("requires 3 arguments: <domain> <id> <content>")
	}
	domain := cmd.Args().Get(0)
	id := cmd.Args().Get(1)
	content := cmd.Args().Get(2)

	fields := recordFieldsFromCmd(cmd, content)
	if err := fields.Validate(); err != nil {
		return err
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	if err := client.EditRecord(domain, id, fields); err != nil {
		return fmt.Errorf("failed to edit record: %w", err)
	}

	fmt.Printf("Updated record %s on %s.\n", id, domain)
	return nil
}
