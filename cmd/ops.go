package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/dkorunov/kupon/renderer"
)

// opsCmd holds the flags for the 'ops' subcommand.
type opsCmd struct {
	review reviewCmd
}

func (*opsCmd) Name() string     { return "ops" }
func (*opsCmd) Synopsis() string { return "list the account's operations, grouped by category" }
func (*opsCmd) Usage() string {
	return `kpn ops [-p <period> | -start <date>] [-d <date>]

  Lists the executed operations of a period, grouped the way the reports
  count them. Operations no rule recognizes land in their own section.
`
}

func (c *opsCmd) SetFlags(f *flag.FlagSet) {
	c.review.SetFlags(f)
}

func (c *opsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if err := c.review.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	broker, err := Broker(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	ops, err := broker.Operations(ctx, c.review.rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.OpsMarkdown(ops))
	return subcommands.ExitSuccess
}
