package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/dkorunov/kupon"
	"github.com/dkorunov/kupon/date"
	"github.com/dkorunov/kupon/renderer"
)

// salaryCmd holds the flags for the 'salary' subcommand.
type salaryCmd struct {
	date   string
	since  string
	target float64
}

func (*salaryCmd) Name() string     { return "salary" }
func (*salaryCmd) Synopsis() string { return "display the full coupon salary report" }
func (*salaryCmd) Usage() string {
	return `kpn salary [-d <date>] [-since <date>] [-target <amount>]

  Displays the coupon salary report: income per window (day, week, month,
  previous day and month, all time), realized profit, the portfolio value
  and its yield over the invested cash.
`
}

func (c *salaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report date (defaults to today)")
	f.StringVar(&c.since, "since", "", "First day of the account history (defaults to 2023-01-01)")
	f.Float64Var(&c.target, "target", 0, "Monthly coupon goal, in the account's currency")
}

func (c *salaryCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	opts := kupon.SalaryOptions{Target: kupon.M(c.target, "")}
	var err error
	if c.date != "" {
		if opts.Today, err = date.Parse(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error: parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.since != "" {
		if opts.Since, err = date.Parse(c.since); err != nil {
			fmt.Fprintf(os.Stderr, "Error: parsing since date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	broker, err := Broker(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := kupon.NewSalaryReport(ctx, broker, broker, NewResolver(broker), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SalaryMarkdown(report))
	return subcommands.ExitSuccess
}
