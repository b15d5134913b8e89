package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/dkorunov/kupon/renderer"
)

// dailyCmd holds the flags for the 'daily' subcommand.
type dailyCmd struct {
	review reviewCmd
	watch  int
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display a daily income report" }
func (*dailyCmd) Usage() string {
	return `kpn daily [-d <date>] [-w n]

  Displays the account's income for a single day.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	c.review.period = "day"
	f.StringVar(&c.review.date, "d", "", "Date for the report (defaults to today)")
	f.IntVar(&c.watch, "w", 0, "run every n seconds")
}

func (c *dailyCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if err := c.review.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	for {
		review, err := c.review.generateReview(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if c.watch == 0 {
				return subcommands.ExitFailure
			}
		} else {
			if c.watch > 0 {
				fmt.Println("\033[2J")
			}
			printMarkdown(renderer.PeriodicMarkdown(review))
		}

		if c.watch > 0 {
			time.Sleep(time.Duration(c.watch) * time.Second)
		} else {
			break
		}
	}
	return subcommands.ExitSuccess
}
