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

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "show open positions with FIFO cost basis" }
func (*holdingsCmd) Usage() string {
	return `fv holdings

  Replays the ledger through the FIFO engine and prints every open
  position with its share count, total cost basis and average price.
`
}

func (*holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, currency, err := loadDataset()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	holdings := ledger.ComputeHoldings(ds.Transactions, ds.Splits)
	printMarkdown(render.HoldingsMarkdown(holdings, currency))
	return subcommands.ExitSuccess
}
