package ledger

import (
	"math"

	"github.com/folioview/ledger/date"
)

// BalancePoint is one day of the portfolio market-value series.
type BalancePoint struct {
	Date  date.Date `json:"date"`
	Value float64   `json:"value"`
	// Synthetic marks a leading zero point kept as a chart anchor.
	Synthetic bool `json:"synthetic,omitempty"`
}

// daySplit is a split keyed for the daily walk.
type daySplit struct {
	symbol     string // normalized
	multiplier float64
}

// BuildBalanceSeries walks every calendar day from the day before the
// first transaction through max(today, last transaction) and prices
// the portfolio's holdings to produce a daily market-value series.
// Unlike the contribution series it reflects market prices, not cost
// basis.
//
// Pricing prefers the historical quote for the day (with the price
// set's backward fallback), then the last price seen on a transaction,
// and contributes zero when neither exists. Quotes are assumed stated
// in post-split terms, so each day's value is multiplied by the split
// adjustment that restates the raw holding count to match. With the
// trade-price fallback, which is NOT split-adjusted, this overstates
// pre-split days; the historical quote path does not have the problem
// and wins whenever a quote exists.
//
// Symbols are normalized (hyphens stripped, uppercased) for the
// holdings keys and price lookups inside this builder only; the split
// adjustment lookup receives the normalized symbol even though split
// history entries keep their raw spelling. That asymmetry is
// long-standing dashboard behavior and is preserved deliberately:
// changing it would silently move computed values for punctuated
// tickers like BRK-B.
func BuildBalanceSeries(txs []Transaction, prices *HistoricalPrices, splits SplitHistory) []BalancePoint {
	if len(txs) == 0 {
		return nil
	}

	sorted := sortChronologically(txs)
	first := sorted[0].TradeDate
	last := date.Max(date.Today(), sorted[len(sorted)-1].TradeDate)

	splitsByDay := make(map[date.Date][]daySplit)
	for _, s := range splits {
		if s.Symbol == "" || s.SplitDate.IsZero() {
			continue
		}
		splitsByDay[s.SplitDate] = append(splitsByDay[s.SplitDate], daySplit{
			symbol:     normalizeSymbol(s.Symbol),
			multiplier: s.Multiplier,
		})
	}

	txsByDay := make(map[date.Date][]Transaction)
	for _, tx := range sorted {
		txsByDay[tx.TradeDate] = append(txsByDay[tx.TradeDate], tx)
	}

	holdings := make(map[string]float64)
	lastKnownPrices := make(map[string]float64)
	var series []BalancePoint

	window := date.Range{From: first.Add(-1), To: last}
	for day := range window.Days() {
		for _, s := range splitsByDay[day] {
			if math.IsNaN(s.multiplier) || math.IsInf(s.multiplier, 0) || s.multiplier <= 0 {
				continue
			}
			if qty, held := holdings[s.symbol]; held {
				holdings[s.symbol] = qty * s.multiplier
			}
			// Keep qty*price invariant across the split.
			if price, known := lastKnownPrices[s.symbol]; known {
				lastKnownPrices[s.symbol] = price / s.multiplier
			}
		}

		for _, tx := range txsByDay[day] {
			symbol := normalizeSymbol(tx.Security)
			quantity := tx.Quantity
			if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity == 0 {
				continue
			}
			if !math.IsNaN(tx.Price) && !math.IsInf(tx.Price, 0) && tx.Price > 0 {
				lastKnownPrices[symbol] = tx.Price
			}
			updated := holdings[symbol]
			if tx.IsBuy() {
				updated += quantity
			} else {
				updated -= quantity
			}
			if math.Abs(updated) < lotEpsilon {
				delete(holdings, symbol)
			} else {
				holdings[symbol] = updated
			}
		}

		var totalValue float64
		for symbol, qty := range holdings {
			if math.IsNaN(qty) || math.IsInf(qty, 0) || math.Abs(qty) < lotEpsilon {
				continue
			}
			price, ok := prices.Lookup(symbol, day)
			if !ok {
				price, ok = lastKnownPrices[symbol]
			}
			if !ok {
				continue
			}
			adjustment := splits.Adjustment(symbol, day)
			totalValue += qty * price * adjustment
		}

		series = append(series, BalancePoint{Date: day, Value: totalValue})
	}

	return trimLeadingZero(series)
}

// trimLeadingZero post-processes the leading run of zero-valued days:
// when the series has real history after a zero start, the first point
// is kept as a synthetic anchor; a zero start with nothing to anchor
// is dropped.
func trimLeadingZero(series []BalancePoint) []BalancePoint {
	keepSyntheticStart := false
	for i, p := range series {
		if math.IsNaN(p.Value) || math.IsInf(p.Value, 0) {
			continue
		}
		if math.Abs(p.Value) > seriesEpsilon {
			if i > 0 && math.Abs(series[i-1].Value) <= seriesEpsilon {
				keepSyntheticStart = true
			}
			break
		}
	}

	if keepSyntheticStart && len(series) > 0 {
		series[0].Synthetic = true
	} else if len(series) > 0 && math.Abs(series[0].Value) <= seriesEpsilon {
		series = series[1:]
	}
	return series
}
