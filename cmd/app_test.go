package cmd

import (
	"flag"
	"testing"

	"github.com/google/subcommands"
)

func TestRegisterKnownCommands(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("kpn", flag.ContinueOnError), "kpn")
	Register(commander)

	for _, name := range []string{"review", "daily", "weekly", "monthly", "yearly", "salary", "ops", "topic", "assist"} {
		if !Known(name) {
			t.Errorf("Known(%q) = false after Register", name)
		}
	}
	// The commander's own commands never route to extensions.
	if !Known("help") {
		t.Error("Known(\"help\") = false")
	}
	if Known("bogus") {
		t.Error("Known(\"bogus\") = true")
	}
}
