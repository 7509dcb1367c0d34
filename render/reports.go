package render

import (
	"bytes"
	"fmt"
	"sort"

	md "github.com/nao1215/markdown"

	"github.com/folioview/ledger"
)

// StatsMarkdown renders the ledger summary as a markdown report.
func StatsMarkdown(s ledger.Stats, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Ledger Summary")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Transactions", fmt.Sprintf("%d", s.TotalTransactions)},
			{"Buys", fmt.Sprintf("%d", s.TotalBuys)},
			{"Sells", fmt.Sprintf("%d", s.TotalSells)},
			{"Total Bought", Currency(s.TotalBuyAmount, currency)},
			{"Total Sold", Currency(s.TotalSellAmount, currency)},
			{"Net Invested", Currency(s.NetAmount, currency)},
			{md.Bold("Realized Gain"), md.Bold(SignedCurrency(s.RealizedGain, currency))},
		},
	})

	return doc.String()
}

// HoldingsMarkdown renders open positions as a markdown table, symbols
// sorted alphabetically.
func HoldingsMarkdown(holdings map[string]ledger.Holding, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Open Positions")
	if len(holdings) == 0 {
		doc.PlainText("No open positions.")
		return doc.String()
	}

	symbols := make([]string, 0, len(holdings))
	for s := range holdings {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Symbol", "Shares", "Cost Basis", "Avg Price"},
	}
	var totalCost float64
	for _, s := range symbols {
		h := holdings[s]
		totalCost += h.TotalCost
		table.Rows = append(table.Rows, []string{
			s,
			Quantity(h.Shares),
			Currency(h.TotalCost, currency),
			Currency(h.AvgPrice, currency),
		})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), "", md.Bold(Currency(totalCost, currency)), ""})
	doc.Table(table)

	return doc.String()
}

// ContributionMarkdown renders the contribution series. Padding points
// are skipped; they exist for charts, not tables.
func ContributionMarkdown(series []ledger.ContributionPoint, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Net Contributions")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Activity", "Day Net", "Cumulative"},
	}
	for _, p := range series {
		if p.OrderType == ledger.OrderPadding {
			continue
		}
		table.Rows = append(table.Rows, []string{
			p.TradeDate.String(),
			p.OrderType,
			SignedCurrency(p.NetAmount, currency),
			Currency(p.Amount, currency),
		})
	}
	doc.Table(table)

	return doc.String()
}

// BalanceMarkdown renders a value series, typically downsampled by the
// caller; every point becomes a row.
func BalanceMarkdown(title string, series []ledger.BalancePoint, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Value"},
	}
	for _, p := range series {
		table.Rows = append(table.Rows, []string{p.Date.String(), Currency(p.Value, currency)})
	}
	doc.Table(table)

	return doc.String()
}

// AmountsMarkdown renders the per-transaction running cost series.
func AmountsMarkdown(series []ledger.AmountPoint, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Running Cost Basis")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Order", "Net", "Running Cost"},
	}
	for _, p := range series {
		table.Rows = append(table.Rows, []string{
			p.TradeDate.String(),
			p.OrderType,
			SignedCurrency(p.NetAmount, currency),
			Currency(p.Amount, currency),
		})
	}
	doc.Table(table)

	return doc.String()
}
