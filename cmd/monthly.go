package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/dkorunov/kupon/renderer"
)

type monthlyCmd struct {
	review reviewCmd
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display a monthly income report" }
func (*monthlyCmd) Usage() string {
	return `kpn monthly [-d <date>]

  Displays the account's income for a calendar month.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	c.review.period = "month"
	f.StringVar(&c.review.date, "d", "", "End date for the report period (defaults to today)")
}

func (c *monthlyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
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
