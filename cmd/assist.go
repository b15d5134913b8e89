package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/dkorunov/kupon"
	"github.com/dkorunov/kupon/agent"
	"github.com/dkorunov/kupon/date"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	since string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `kpn assist [question...]

  Start an interactive session with the AI assistant. It answers questions
  about the account's coupon income using the same reports as the other
  commands. Requires GEMINI_API_KEY.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.since, "since", "", "First day of the account history (defaults to 2023-01-01)")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	var opts kupon.SalaryOptions
	if c.since != "" {
		var err error
		if opts.Since, err = date.Parse(c.since); err != nil {
			fmt.Fprintf(os.Stderr, "Error: parsing since date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	broker, err := Broker(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(broker, broker, NewResolver(broker), opts)
	a := agent.New(os.Stdout, os.Stdin, analyst)

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
