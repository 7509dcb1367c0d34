package ledger

import (
	"math"

	"github.com/folioview/ledger/date"
)

// Stats summarizes a transaction stream for the dashboard's terminal.
type Stats struct {
	TotalTransactions int     `json:"totalTransactions"`
	TotalBuys         int     `json:"totalBuys"`
	TotalSells        int     `json:"totalSells"`
	TotalBuyAmount    float64 `json:"totalBuyAmount"`
	TotalSellAmount   float64 `json:"totalSellAmount"`
	NetAmount         float64 `json:"netAmount"`
	RealizedGain      float64 `json:"realizedGain"`
}

// ComputeStats tallies the stream and attaches the portfolio-wide
// realized gain from a full FIFO replay.
func ComputeStats(txs []Transaction, splits SplitHistory) Stats {
	var stats Stats
	stats.TotalTransactions = len(txs)
	for _, tx := range txs {
		switch {
		case tx.IsBuy():
			stats.TotalBuys++
			stats.TotalBuyAmount += math.Abs(tx.NetAmount)
		case tx.IsSell():
			stats.TotalSells++
			stats.TotalSellAmount += math.Abs(tx.NetAmount)
		}
	}
	stats.NetAmount = stats.TotalBuyAmount - stats.TotalSellAmount
	stats.RealizedGain = ComputeRunningTotals(txs, splits).TotalRealizedGain
	return stats
}

// Holding is an open position after replaying the full stream.
type Holding struct {
	Shares    float64 `json:"shares"`
	TotalCost float64 `json:"totalCost"`
	AvgPrice  float64 `json:"avgPrice"`
}

// ComputeHoldings replays the stream through the FIFO engine and
// returns the open positions keyed by symbol as written in the ledger.
// Positions whose share count has decayed below the lot epsilon are
// omitted.
func ComputeHoldings(txs []Transaction, splits SplitHistory) map[string]Holding {
	lotsBySymbol := make(map[string]Lots)
	for _, tx := range sortChronologically(txs) {
		newLots, _ := ApplyTransactionFIFO(lotsBySymbol[tx.Security], tx, splits)
		lotsBySymbol[tx.Security] = newLots
	}

	holdings := make(map[string]Holding)
	for symbol, lots := range lotsBySymbol {
		shares := lots.Shares()
		if shares <= lotEpsilon {
			continue
		}
		cost := lots.CostBasis()
		holdings[symbol] = Holding{
			Shares:    shares,
			TotalCost: cost,
			AvgPrice:  cost / shares,
		}
	}
	return holdings
}

// AmountPoint is one transaction's entry in the running-amount series.
type AmountPoint struct {
	TradeDate date.Date `json:"tradeDate"`
	// Amount is the portfolio-wide running cost basis after the
	// transaction.
	Amount    float64 `json:"amount"`
	OrderType string  `json:"orderType"`
	NetAmount float64 `json:"netAmount"`
}

// BuildRunningAmountSeries maps each transaction, in chronological
// order, to the portfolio running cost recorded for it. Transactions
// whose ID is missing from the totals (which cannot happen for a
// stream aggregated by this package) chart as zero rather than
// breaking the series.
func BuildRunningAmountSeries(txs []Transaction, splits SplitHistory) []AmountPoint {
	totals := ComputeRunningTotals(txs, splits)
	sorted := sortChronologically(txs)

	series := make([]AmountPoint, 0, len(sorted))
	for _, tx := range sorted {
		var amount float64
		if rt, ok := totals.Get(tx.ID); ok {
			amount = rt.Portfolio
		}
		series = append(series, AmountPoint{
			TradeDate: tx.TradeDate,
			Amount:    amount,
			OrderType: tx.OrderType,
			NetAmount: tx.NetAmount,
		})
	}
	return series
}
