package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/folioview/ledger"
	"github.com/folioview/ledger/render"
)

type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "summarize the transaction ledger" }
func (*statsCmd) Usage() string {
	return `fv stats

  Prints transaction counts, gross buy and sell amounts, net invested
  cash and the total realized gain of the whole ledger.
`
}

func (*statsCmd) SetFlags(f *flag.FlagSet) {}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, currency, err := loadDataset()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	stats := ledger.ComputeStats(ds.Transactions, ds.Splits)
	printMarkdown(render.StatsMarkdown(stats, currency))
	return subcommands.ExitSuccess
}
