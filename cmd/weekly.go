package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/dkorunov/kupon/renderer"
)

type weeklyCmd struct {
	review reviewCmd
}

func (*weeklyCmd) Name() string     { return "weekly" }
func (*weeklyCmd) Synopsis() string { return "display a weekly income report" }
func (*weeklyCmd) Usage() string {
	return `kpn weekly [-d <date>]

  Displays the account's income for a calendar week.
`
}

func (c *weeklyCmd) SetFlags(f *flag.FlagSet) {
	c.review.period = "week"
	f.StringVar(&c.review.date, "d", "", "End date for the report period (defaults to today)")
}

func (c *weeklyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
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
