package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/folioview/ledger/cmd"
)

// completion describes the CLI for shell completion. Run
// `COMP_INSTALL=1 fv` once to install it.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"stats":    {},
		"holdings": {},
		"contribution": {
			Flags: map[string]complete.Predictor{"pad-to": predict.Nothing},
		},
		"balance": {
			Flags: map[string]complete.Predictor{
				"drawdown": predict.Nothing,
				"last":     predict.Nothing,
			},
		},
		"totals": {},
		"topic":  {Args: predict.Set{"readme", "ledger", "fifo", "series", "*"}},
	},
	Flags: map[string]complete.Predictor{
		"data-dir": predict.Dirs("*"),
		"currency": predict.Set{"USD", "EUR", "GBP", "CHF", "JPY"},
		"v":        predict.Nothing,
	},
}

func main() {
	completion.Complete("fv")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	cmd.InitLogging()
	os.Exit(int(commander.Execute(context.Background())))
}
