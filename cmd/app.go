// Package cmd implements the CLI application to report on a brokerage
// account's coupon income.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/dkorunov/kupon"
	"github.com/dkorunov/kupon/instrument"
	"github.com/dkorunov/kupon/tinkoff"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	token    = flag.String("token", "", "Tinkoff Invest API token (defaults to $TINKOFF_TOKEN)")
	account  = flag.String("account", "", "brokerage account id (defaults to $KUPON_ACCOUNT, else the first open account)")
	endpoint = flag.String("endpoint", tinkoff.DefaultEndpoint, "Tinkoff Invest REST endpoint")
	Verbose  = flag.Bool("v", false, "enable verbose logging")
)

// commandNames records what Register registered, so main can tell an
// unknown subcommand from a known one before trying extensions.
var commandNames []string

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	register(c, &reviewCmd{}, "reports")
	register(c, &dailyCmd{}, "reports")
	register(c, &weeklyCmd{}, "reports")
	register(c, &monthlyCmd{}, "reports")
	register(c, &yearlyCmd{}, "reports")
	register(c, &salaryCmd{}, "reports")

	register(c, &opsCmd{}, "operations")

	register(c, &topicCmd{}, "documentation")

	register(c, &assistCmd{}, "assistant")
}

func register(c *subcommands.Commander, cmd subcommands.Command, group string) {
	commandNames = append(commandNames, cmd.Name())
	c.Register(cmd, group)
}

// CommandNames lists the registered subcommand names.
func CommandNames() []string { return commandNames }

// Known reports whether name is a registered subcommand.
func Known(name string) bool {
	for _, n := range commandNames {
		if n == name {
			return true
		}
	}
	switch name {
	case "help", "flags", "commands":
		return true
	}
	return false
}

// LoadEnv reads the optional .env file, so the API token does not have to
// live in the shell profile. Real environment variables win.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}
}

// SetupLogging silences the log package unless -v is set. Must run after
// flag.Parse.
func SetupLogging() {
	if !*Verbose {
		log.SetOutput(io.Discard)
	}
}

// Broker builds the API client from the global flags and resolves the
// account id when none was configured.
func Broker(ctx context.Context) (*tinkoff.Client, error) {
	t := *token
	if t == "" {
		t = os.Getenv("TINKOFF_TOKEN")
	}
	if t == "" {
		return nil, fmt.Errorf("no API token: set -token or TINKOFF_TOKEN")
	}
	acc := *account
	if acc == "" {
		acc = os.Getenv("KUPON_ACCOUNT")
	}
	client := tinkoff.New(t, acc, tinkoff.WithEndpoint(*endpoint))
	if err := client.ResolveAccount(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

// NewResolver wraps the client's instrument lookup in the memoizing cache.
func NewResolver(c *tinkoff.Client) kupon.Resolver {
	return instrument.NewCache(c)
}
