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

type totalsCmd struct{}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "log each transaction with its running cost basis" }
func (*totalsCmd) Usage() string {
	return `fv totals

  Replays the ledger chronologically and prints, for each transaction,
  the portfolio-wide cost basis right after it was applied.
`
}

func (*totalsCmd) SetFlags(f *flag.FlagSet) {}

func (c *totalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, currency, err := loadDataset()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	series := ledger.BuildRunningAmountSeries(ds.Transactions, ds.Splits)
	printMarkdown(render.AmountsMarkdown(series, currency))
	return subcommands.ExitSuccess
}
