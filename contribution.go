package ledger

import (
	"math"
	"sort"
	"strings"

	"github.com/folioview/ledger/date"
	"github.com/folioview/ledger/fx"
)

// seriesEpsilon is the value threshold below which a series point is
// treated as zero when deciding whether a synthetic zero anchor is
// needed. Like lotEpsilon, the exact value is observable behavior.
const seriesEpsilon = 1e-6

// OrderPadding marks series points inserted for chart continuity
// rather than real ledger activity.
const OrderPadding = "padding"

// OrderMixed marks a consolidated day containing both buys and sells.
const OrderMixed = "mixed"

// ContributionPoint is one day of the cumulative net-contribution
// series.
type ContributionPoint struct {
	TradeDate date.Date `json:"tradeDate"`
	// Amount is the cumulative net cash contributed through this day.
	Amount float64 `json:"amount"`
	// OrderType is "buy", "sell", "mixed" or "padding". For a day with
	// a single order type the original casing from the ledger is kept.
	OrderType string `json:"orderType"`
	// NetAmount is this day's delta. Zero for padding points.
	NetAmount float64 `json:"netAmount"`
	// BuyVolume and SellVolume are the day's gross amounts by side.
	BuyVolume  float64 `json:"buyVolume,omitempty"`
	SellVolume float64 `json:"sellVolume,omitempty"`
	// Synthetic marks the zero anchor prepended for charting.
	Synthetic bool `json:"synthetic,omitempty"`
}

// ContributionOptions control BuildContributionSeries.
type ContributionOptions struct {
	// IncludeSyntheticStart prepends a zero-value point one day before
	// the first real point when the series does not start near zero,
	// anchoring area charts to a visible baseline.
	IncludeSyntheticStart bool
	// PadTo extends the series flat to this date (clamped to today).
	// Zero means today.
	PadTo date.Date
	// Currency converts the series out of USD. Conversion applies to
	// each day's delta at that day's rate and re-accumulates, never to
	// an already-cumulated USD value, to avoid compounding rate drift.
	Currency string
	// Converter performs the conversion. Ignored for USD; a nil
	// converter leaves values in USD.
	Converter fx.Converter
}

// dayActivity accumulates one calendar day's consolidated transactions.
type dayActivity struct {
	netAmount  float64
	orderTypes []string // distinct, as written
	buyVolume  float64
	sellVolume float64
}

func (d *dayActivity) add(tx Transaction) {
	d.netAmount += tx.NetAmount
	seen := false
	for _, ot := range d.orderTypes {
		if ot == tx.OrderType {
			seen = true
			break
		}
	}
	if !seen {
		d.orderTypes = append(d.orderTypes, tx.OrderType)
	}
	switch {
	case tx.IsBuy():
		d.buyVolume += math.Abs(tx.NetAmount)
	case tx.IsSell():
		d.sellVolume += math.Abs(tx.NetAmount)
	}
}

// label picks the representative order type for the consolidated day:
// the verbatim type if only one was seen, else "buy"/"sell" when all
// entries agree case-insensitively, else "mixed".
func (d *dayActivity) label() string {
	if len(d.orderTypes) == 1 {
		return d.orderTypes[0]
	}
	allBuy, allSell := true, true
	for _, ot := range d.orderTypes {
		switch strings.ToLower(ot) {
		case OrderBuy:
			allSell = false
		case OrderSell:
			allBuy = false
		default:
			allBuy, allSell = false, false
		}
	}
	if allBuy {
		return OrderBuy
	}
	if allSell {
		return OrderSell
	}
	return OrderMixed
}

// BuildContributionSeries consolidates the transaction stream into a
// per-day cumulative net-contribution series suitable for charting:
// one point per active day, a flat padding point inside every
// multi-day gap, optional trailing padding up to PadTo, and an
// optional synthetic zero anchor at the front.
func BuildContributionSeries(txs []Transaction, opts ContributionOptions) []ContributionPoint {
	if len(txs) == 0 {
		return nil
	}

	daily := make(map[date.Date]*dayActivity)
	for _, tx := range sortChronologically(txs) {
		entry, ok := daily[tx.TradeDate]
		if !ok {
			entry = &dayActivity{}
			daily[tx.TradeDate] = entry
		}
		entry.add(tx)
	}

	days := make([]date.Date, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	series := make([]ContributionPoint, 0, len(days)+2)
	var cumulative float64

	for i, day := range days {
		entry := daily[day]

		// Hold the last known value flat across a gap with a single
		// padding point one day before the later date. Chart
		// continuity only; it carries no data.
		if i > 0 {
			intermediate := day.Add(-1)
			if intermediate.After(days[i-1]) {
				series = append(series, ContributionPoint{
					TradeDate: intermediate,
					Amount:    cumulative,
					OrderType: OrderPadding,
				})
			}
		}

		cumulative += entry.netAmount
		series = append(series, ContributionPoint{
			TradeDate:  day,
			Amount:     cumulative,
			OrderType:  entry.label(),
			NetAmount:  entry.netAmount,
			BuyVolume:  entry.buyVolume,
			SellVolume: entry.sellVolume,
		})
	}

	// Trailing padding, clamped so the series never extends past today.
	today := date.Today()
	target := opts.PadTo
	if target.IsZero() {
		target = today
	}
	target = date.Min(target, today)
	if last := series[len(series)-1]; target.After(last.TradeDate) {
		series = append(series, ContributionPoint{
			TradeDate: target,
			Amount:    last.Amount,
			OrderType: OrderPadding,
		})
	}

	if opts.IncludeSyntheticStart {
		series = prependSyntheticStart(series)
	}

	if opts.Currency == "" || opts.Currency == "USD" || opts.Converter == nil {
		return series
	}
	return convertContributionSeries(series, opts.Currency, opts.Converter)
}

// prependSyntheticStart anchors the series to zero one day before its
// first real point, when that point's value is meaningfully non-zero.
func prependSyntheticStart(series []ContributionPoint) []ContributionPoint {
	firstActual := series[0]
	for _, p := range series {
		if !strings.EqualFold(p.OrderType, OrderPadding) {
			firstActual = p
			break
		}
	}
	if math.Abs(firstActual.Amount) <= seriesEpsilon {
		return series
	}
	anchor := firstActual.TradeDate.Add(-1)
	for _, p := range series {
		if p.TradeDate == anchor {
			return series
		}
	}
	return append([]ContributionPoint{{
		TradeDate: anchor,
		OrderType: OrderPadding,
		Synthetic: true,
	}}, series...)
}

// convertContributionSeries re-walks the series converting each day's
// delta at that day's rate and re-accumulating the cumulative amount
// in the target currency from scratch.
func convertContributionSeries(series []ContributionPoint, currency string, conv fx.Converter) []ContributionPoint {
	converted := make([]ContributionPoint, len(series))
	var cumulative float64
	for i, p := range series {
		net := conv.Convert(p.NetAmount, p.TradeDate, currency)
		cumulative += net
		q := p
		q.NetAmount = net
		q.Amount = cumulative
		if p.BuyVolume != 0 {
			q.BuyVolume = conv.Convert(p.BuyVolume, p.TradeDate, currency)
		}
		if p.SellVolume != 0 {
			q.SellVolume = conv.Convert(p.SellVolume, p.TradeDate, currency)
		}
		converted[i] = q
	}
	return converted
}
