package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/google/subcommands"

	"github.com/folioview/ledger"
	"github.com/folioview/ledger/render"
)

type balanceCmd struct {
	drawdown bool
	last     int
	output   string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the daily portfolio market-value series" }
func (*balanceCmd) Usage() string {
	return `fv balance [-drawdown] [-last <n>] [-o <file>]

  Walks every day from the first trade to today and prices the whole
  portfolio, preferring historical quotes and falling back to trade
  prices. With -drawdown the series is rewritten as the decline from
  its running peak.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.drawdown, "drawdown", false, "Report the decline from the running peak instead of raw values.")
	f.IntVar(&c.last, "last", 30, "Only list the last n days. 0 lists everything.")
	f.StringVar(&c.output, "o", "", "Write the full series as JSON to this file instead of printing a table.")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ds, currency, err := loadDataset()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	series := ledger.BuildBalanceSeries(ds.Transactions, ds.Prices, ds.Splits)
	title := "Portfolio Value"
	if c.drawdown {
		series = ledger.ApplyDrawdown(series, math.Inf(-1))
		title = "Drawdown"
	}
	if c.output != "" {
		if err := writeJSON(c.output, series); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	if c.last > 0 && len(series) > c.last {
		series = series[len(series)-c.last:]
	}

	printMarkdown(render.BalanceMarkdown(title, series, currency))
	return subcommands.ExitSuccess
}
