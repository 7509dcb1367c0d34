package ledger

import (
	"strings"

	"github.com/folioview/ledger/date"
)

// Split records a stock-split event.
type Split struct {
	// Symbol is the ticker, as written in the split history file.
	Symbol string `json:"symbol"`
	// SplitDate is the effective date of the split.
	SplitDate date.Date `json:"splitDate"`
	// Ratio is the display string, e.g. "2:1". Informational only.
	Ratio string `json:"splitRatio,omitempty"`
	// Multiplier is the share multiplier, e.g. 2.0 for a 2-for-1 split.
	Multiplier float64 `json:"splitMultiplier"`
}

// SplitHistory is the full list of known splits, in file order.
type SplitHistory []Split

// Adjustment computes the cumulative split multiplier to restate a
// position dated on the given day in post-split terms: the product of
// multipliers of every split for symbol dated strictly after on.
//
// A transaction dated before a 2-for-1 split is adjusted forward by
// x2; a transaction on or after the split date is unaffected. Symbols
// are matched exactly, with no normalization; callers must pass
// matching strings.
func (h SplitHistory) Adjustment(symbol string, on date.Date) float64 {
	adjustment := 1.0
	for _, s := range h {
		if s.Symbol == symbol && s.SplitDate.After(on) {
			adjustment *= s.Multiplier
		}
	}
	return adjustment
}

// normalizeSymbol strips hyphens and uppercases a ticker for price and
// split lookups (so "BRK-B" finds "BRKB" price data). The balance
// builder applies this to its lookups; the FIFO engine and parser do
// not, matching the dashboard's historical behavior.
func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.ReplaceAll(symbol, "-", ""))
}
