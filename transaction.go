package ledger

import (
	"sort"
	"strings"

	"github.com/folioview/ledger/date"
)

// Order types as they appear in the transaction CSV. Matching is
// case-insensitive: "Buy", "BUY" and "buy" are all buys.
const (
	OrderBuy  = "buy"
	OrderSell = "sell"
)

// Transaction is one ledger entry, created at parse time and immutable
// thereafter.
type Transaction struct {
	// TradeDate is the calendar day of the trade, no time component.
	TradeDate date.Date `json:"tradeDate"`
	// OrderType is "buy" or "sell", preserved as written in the CSV.
	OrderType string `json:"orderType"`
	// Security is the ticker symbol exactly as written. It is NOT
	// normalized at parse time; consumers that need normalized symbols
	// (price lookups) normalize themselves.
	Security string `json:"security"`
	// Quantity is the number of shares. Positive for well-formed rows.
	Quantity float64 `json:"quantity"`
	// Price is the per-share price in the transaction's native
	// currency, assumed USD.
	Price float64 `json:"price"`
	// NetAmount is Quantity*Price, negated for sells.
	NetAmount float64 `json:"netAmount"`
	// ID is assigned by parse order (0-based data row index). Skipped
	// rows do not re-number later ones, so IDs can be non-contiguous;
	// always join on ID, never on slice position.
	ID int `json:"transactionId"`
}

// IsBuy reports whether the order type is a buy, case-insensitively.
func (t Transaction) IsBuy() bool { return strings.EqualFold(t.OrderType, OrderBuy) }

// IsSell reports whether the order type is a sell, case-insensitively.
func (t Transaction) IsSell() bool { return strings.EqualFold(t.OrderType, OrderSell) }

// sortChronologically orders transactions by trade date, ties broken by
// ascending ID. The tie-break is load-bearing: it is the only thing
// that deterministically sequences same-day transactions through the
// FIFO engine. The input slice is left untouched.
func sortChronologically(txs []Transaction) []Transaction {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := sorted[i].TradeDate.Compare(sorted[j].TradeDate); c != 0 {
			return c < 0
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// FirstTradeDate returns the earliest trade date in txs, or a zero
// date for an empty slice.
func FirstTradeDate(txs []Transaction) date.Date {
	var first date.Date
	for _, t := range txs {
		if first.IsZero() || t.TradeDate.Before(first) {
			first = t.TradeDate
		}
	}
	return first
}

// LastTradeDate returns the latest trade date in txs, or a zero date
// for an empty slice.
func LastTradeDate(txs []Transaction) date.Date {
	var last date.Date
	for _, t := range txs {
		if t.TradeDate.After(last) {
			last = t.TradeDate
		}
	}
	return last
}
