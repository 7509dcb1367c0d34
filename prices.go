package ledger

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/folioview/ledger/date"
)

// priceLookbackDays is how far back the price lookup walks when a
// symbol has no quote on the requested day (weekends, holidays, gaps
// in the feed).
const priceLookbackDays = 10

// HistoricalPrices holds per-symbol daily close prices, decoded from
// the dashboard's historical_prices.json:
//
//	{ "AAPL": { "2024-01-02": 185.64, ... }, ... }
//
// Prices are assumed NOT pre-adjusted for splits that postdate them;
// consumers apply SplitHistory.Adjustment on top.
type HistoricalPrices struct {
	series map[string]*date.History
}

// NewHistoricalPrices returns an empty price set.
func NewHistoricalPrices() *HistoricalPrices {
	return &HistoricalPrices{series: make(map[string]*date.History)}
}

// DecodeHistoricalPrices reads the historical prices JSON payload.
func DecodeHistoricalPrices(r io.Reader) (*HistoricalPrices, error) {
	var raw map[string]map[string]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("could not decode historical prices: %w", err)
	}

	p := NewHistoricalPrices()
	for symbol, days := range raw {
		h := new(date.History)
		for dayStr, price := range days {
			day, err := date.Parse(dayStr)
			if err != nil {
				// One bad key should not discard the whole symbol.
				continue
			}
			h.Append(day, price)
		}
		p.series[symbol] = h
	}
	return p, nil
}

// Append records a price point for a symbol, creating the series on
// first use. Mostly for tests and synthetic data.
func (p *HistoricalPrices) Append(symbol string, on date.Date, price float64) {
	h, ok := p.series[symbol]
	if !ok {
		h = new(date.History)
		p.series[symbol] = h
	}
	h.Append(on, price)
}

// Len returns the number of symbols with at least one price.
func (p *HistoricalPrices) Len() int { return len(p.series) }

// Lookup resolves a symbol's price on a day: the exact day if quoted,
// otherwise the most recent quote up to priceLookbackDays earlier. The
// symbol is tried normalized (hyphens stripped, uppercased) first,
// then as written, then plain-uppercased, mirroring how the dashboard
// keys its price file.
func (p *HistoricalPrices) Lookup(symbol string, on date.Date) (float64, bool) {
	if p == nil || len(p.series) == 0 {
		return 0, false
	}
	h, ok := p.series[normalizeSymbol(symbol)]
	if !ok {
		h, ok = p.series[symbol]
	}
	if !ok {
		h, ok = p.series[strings.ToUpper(symbol)]
	}
	if !ok {
		return 0, false
	}
	return h.AsOfWithin(on, priceLookbackDays)
}
