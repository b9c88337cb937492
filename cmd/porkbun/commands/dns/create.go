package dns

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

var createCommand = &cli.Command{
	Name:      "create",
	Usage:     "Create a DNS record",
	ArgsUsage: "<domain> <content>",
	Description: `Create a DNS record. The content is passed to the API verbatim,
so TXT values with embedded spaces only need shell quoting.

TTL defaults to 600 seconds when omitted; the provider rejects
anything lower. MX and SRV records require a priority.

Examples:
  porkbun dns create example.com 1.2.3.4 -t A --name www
  porkbun dns create example.com mail.example.com -t MX -p 10
  porkbun dns create example.com "v=spf1 mx ~all" -t TXT --ttl 3600`,
	Flags:  recordFlags,
	Action: runCreate,
}

func runCreate(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("requires 2 arguments: <domain> <content>")
	}
	domain := cmd.Args().Get(0)
	content := cmd.Args().Get(1)

	fields := recordFieldsFromCmd(cmd, content)
	if err := fields.Validate(); err != nil {
		return err
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	id, err := client.CreateRecord(domain, fields)
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}

	displayName := fields.Name
	if displayName == "" {
		displayName = "(root)"
	}
	fmt.Printf("Created %s record for %s.%s -> %s (id: %s)\n", fields.Type, displayName, domain, content, id)
	return nil
}
