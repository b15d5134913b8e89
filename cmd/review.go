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

// reviewCmd holds the flags for the 'review' subcommand. The period
// commands embed it with a fixed period.
type reviewCmd struct {
	period string
	date   string
	start  string
	// processed
	rng date.Range
}

func (*reviewCmd) Name() string { return "review" }

func (*reviewCmd) Synopsis() string { return "review the account's income for a period" }
func (*reviewCmd) Usage() string {
	return `kpn review [-p <period> | -start <date>] [-d <date>]

  Reviews the account's income for a given period: coupons, dividends,
  commissions, taxes and realized profit from sales.
`
}

func (c *reviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date inside the report period, YYYY-MM-DD (defaults to today)")
	f.StringVar(&c.period, "p", date.Daily.String(), "period for the review (day, week, month, quarter, year)")
	f.StringVar(&c.start, "start", "", "Start date of the reporting period. Overrides -p.")
}

func (c *reviewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	review, err := c.generateReview(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PeriodicMarkdown(review))
	return subcommands.ExitSuccess
}

func (c *reviewCmd) init() error {
	if c.date == "" {
		c.date = date.Today().String()
	}
	endDate, err := date.Parse(c.date)
	if err != nil {
		return fmt.Errorf("parsing end date: %w", err)
	}
	if c.start != "" {
		// Custom range using start and end dates
		startDate, err := date.Parse(c.start)
		if err != nil {
			return fmt.Errorf("parsing start date: %w", err)
		}
		c.rng = date.Between(startDate, endDate)
		return nil
	}
	p, err := date.ParsePeriod(c.period)
	if err != nil {
		return fmt.Errorf("parsing period: %w", err)
	}
	c.rng = date.NewRange(endDate, p)
	return nil
}

func (c *reviewCmd) generateReview(ctx context.Context) (*kupon.Review, error) {
	broker, err := Broker(ctx)
	if err != nil {
		return nil, err
	}
	ops, err := broker.Operations(ctx, c.rng)
	if err != nil {
		return nil, err
	}
	return kupon.NewReview(ops, c.rng, NewResolver(broker))
}
