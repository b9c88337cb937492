package main

import (
	"context"
	"fmt"
	"os"

	configcmd "github.com/dnstools/porkbun-cli/cmd/porkbun/commands/config"
	dnscmd "github.com/dnstools/porkbun-cli/cmd/porkbun/commands/dns"
	domainscmd "github.com/dnstools/porkbun-cli/cmd/porkbun/commands/domains"
	"github.com/urfave/cli/v3"
)

var (
	// Version information (will be set by build flags)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	cmd := &cli.Command{
		Name:    "porkbun",
		Usage:   "A CLI for managing Porkbun domains and DNS records",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				Sources: cli.EnvVars("PORKBUN_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "headers",
				Usage: "print a header line above table output",
			},
		},
		Commands: []*cli.Command{
			configcmd.Command,
			dnscmd.Command,
			domainscmd.Command,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
