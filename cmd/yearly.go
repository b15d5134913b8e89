package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/dkorunov/kupon/renderer"
)

type yearlyCmd struct {
	review reviewCmd
}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display a yearly income report" }
func (*yearlyCmd) Usage() string {
	return `kpn yearly [-d <date>]

  Displays the account's income for a calendar year.
`
}

func (c *yearlyCmd) SetFlags(f *flag.FlagSet) {
	c.review.period = "year"
	f.StringVar(&c.review.date, "d", "", "End date for the report period (defaults to today)")
}

func (c *yearlyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if err := c.review.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	review, err := c.review.generateReview(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PeriodicMarkdown(review))
	return subcommands.ExitSuccess
}
