package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/dkorunov/kupon/cmd"
)

func main() {
	cmd.LoadEnv()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	// Shell completion for subcommands and the global flags. Complete exits
	// the process when invoked by the shell's completion machinery.
	sub := make(map[string]*complete.Command, len(cmd.CommandNames()))
	for _, name := range cmd.CommandNames() {
		sub[name] = &complete.Command{}
	}
	completion := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"token":    predict.Something,
			"account":  predict.Something,
			"endpoint": predict.Something,
			"v":        predict.Nothing,
		},
	}
	completion.Complete("kpn")

	flag.Parse()
	cmd.SetupLogging()

	// An unknown subcommand may be an external kpn-<name> binary.
	if args := flag.Args(); len(args) > 0 && !cmd.Known(args[0]) {
		if found, code := cmd.RunExtension(args[0], args[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}
