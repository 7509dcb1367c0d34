package ledger

import (
	"testing"

	"github.com/folioview/ledger/date"
	"github.com/folioview/ledger/fx"
)

func findPoint(series []ContributionPoint, day date.Date) (ContributionPoint, bool) {
	for _, p := range series {
		if p.TradeDate == day {
			return p, true
		}
	}
	return ContributionPoint{}, false
}

func TestBuildContributionSeriesConsolidatesDays(t *testing.T) {
	d := date.New(2024, 1, 2)
	txs := []Transaction{
		buy(d, "ABC", 10, 10, 0),
		sell(d, "XYZ", 2, 25, 1),
		buy(d.Add(1), "ABC", 1, 50, 2),
	}

	series := BuildContributionSeries(txs, ContributionOptions{PadTo: d.Add(1)})
	if len(series) != 2 {
		t.Fatalf("series length = %d, want 2", len(series))
	}

	day1 := series[0]
	if !approxEqual(day1.NetAmount, 50) || !approxEqual(day1.Amount, 50) {
		t.Errorf("day 1 = %+v, want net 50, cumulative 50", day1)
	}
	if day1.OrderType != OrderMixed {
		t.Errorf("day 1 order type = %q, want mixed", day1.OrderType)
	}
	if !approxEqual(day1.BuyVolume, 100) || !approxEqual(day1.SellVolume, 50) {
		t.Errorf("day 1 volumes = %v/%v, want 100/50", day1.BuyVolume, day1.SellVolume)
	}

	day2 := series[1]
	if !approxEqual(day2.Amount, 100) || day2.OrderType != "buy" {
		t.Errorf("day 2 = %+v, want cumulative 100, type buy", day2)
	}
}

func TestBuildContributionSeriesSingleTypeKeepsCasing(t *testing.T) {
	d := date.New(2024, 1, 2)
	txs := []Transaction{
		{TradeDate: d, OrderType: "BUY", Security: "A", Quantity: 1, Price: 10, NetAmount: 10, ID: 0},
		{TradeDate: d, OrderType: "BUY", Security: "B", Quantity: 1, Price: 10, NetAmount: 10, ID: 1},
	}
	series := BuildContributionSeries(txs, ContributionOptions{PadTo: d})
	if series[0].OrderType != "BUY" {
		t.Errorf("order type = %q, want verbatim BUY", series[0].OrderType)
	}

	// Mixed casings of the same side collapse to the canonical label.
	txs[1].OrderType = "Buy"
	series = BuildContributionSeries(txs, ContributionOptions{PadTo: d})
	if series[0].OrderType != OrderBuy {
		t.Errorf("order type = %q, want buy", series[0].OrderType)
	}
}

func TestBuildContributionSeriesGapPadding(t *testing.T) {
	txs := []Transaction{
		buy(date.New(2024, 1, 1), "ABC", 1, 100, 0),
		buy(date.New(2024, 1, 5), "ABC", 1, 100, 1),
	}

	series := BuildContributionSeries(txs, ContributionOptions{PadTo: date.New(2024, 1, 5)})
	if len(series) != 3 {
		t.Fatalf("series length = %d, want 3 (point, pad, point)", len(series))
	}

	pad := series[1]
	if pad.TradeDate != date.New(2024, 1, 4) {
		t.Errorf("padding date = %s, want 2024-01-04", pad.TradeDate)
	}
	if pad.OrderType != OrderPadding || !approxEqual(pad.Amount, 100) || pad.NetAmount != 0 {
		t.Errorf("padding point = %+v", pad)
	}

	// Adjacent days get no padding.
	txs[1].TradeDate = date.New(2024, 1, 2)
	series = BuildContributionSeries(txs, ContributionOptions{PadTo: date.New(2024, 1, 2)})
	if len(series) != 2 {
		t.Errorf("adjacent days: series length = %d, want 2", len(series))
	}
}

func TestBuildContributionSeriesTrailingPad(t *testing.T) {
	txs := []Transaction{buy(date.New(2024, 1, 1), "ABC", 1, 100, 0)}

	series := BuildContributionSeries(txs, ContributionOptions{PadTo: date.New(2024, 1, 10)})
	last := series[len(series)-1]
	if last.TradeDate != date.New(2024, 1, 10) || last.OrderType != OrderPadding {
		t.Errorf("trailing pad = %+v", last)
	}
	if !approxEqual(last.Amount, 100) {
		t.Errorf("trailing pad amount = %v, want 100", last.Amount)
	}

	// PadTo in the future clamps to today rather than charting days
	// that have not happened.
	series = BuildContributionSeries(txs, ContributionOptions{PadTo: date.Today().Add(30)})
	last = series[len(series)-1]
	if last.TradeDate.After(date.Today()) {
		t.Errorf("series extends past today: %s", last.TradeDate)
	}
}

func TestBuildContributionSeriesSyntheticStart(t *testing.T) {
	txs := []Transaction{buy(date.New(2024, 1, 10), "ABC", 1, 100, 0)}

	series := BuildContributionSeries(txs, ContributionOptions{
		IncludeSyntheticStart: true,
		PadTo:                 date.New(2024, 1, 10),
	})
	if len(series) != 2 {
		t.Fatalf("series length = %d, want 2", len(series))
	}
	anchor := series[0]
	if !anchor.Synthetic || anchor.TradeDate != date.New(2024, 1, 9) || anchor.Amount != 0 {
		t.Errorf("anchor = %+v", anchor)
	}

	// A series already starting near zero gets no anchor.
	zeroTxs := []Transaction{{TradeDate: date.New(2024, 1, 10), OrderType: "buy", Security: "A", ID: 0}}
	series = BuildContributionSeries(zeroTxs, ContributionOptions{
		IncludeSyntheticStart: true,
		PadTo:                 date.New(2024, 1, 10),
	})
	if len(series) != 1 {
		t.Errorf("near-zero start: series length = %d, want 1", len(series))
	}
}

func TestBuildContributionSeriesCurrencyConversion(t *testing.T) {
	rates := fx.NewRates()
	rates.SetDaily("EUR", date.New(2024, 1, 1), 0.5)
	rates.SetDaily("EUR", date.New(2024, 1, 5), 2.0)

	txs := []Transaction{
		buy(date.New(2024, 1, 1), "ABC", 1, 100, 0),
		buy(date.New(2024, 1, 5), "ABC", 1, 100, 1),
	}

	series := BuildContributionSeries(txs, ContributionOptions{
		PadTo:     date.New(2024, 1, 5),
		Currency:  "EUR",
		Converter: rates,
	})

	// Each day's delta converts at its own rate; the cumulative value is
	// re-accumulated, not converted wholesale.
	p1, _ := findPoint(series, date.New(2024, 1, 1))
	if !approxEqual(p1.Amount, 50) {
		t.Errorf("day 1 cumulative = %v, want 50", p1.Amount)
	}
	p2, _ := findPoint(series, date.New(2024, 1, 5))
	if !approxEqual(p2.NetAmount, 200) || !approxEqual(p2.Amount, 250) {
		t.Errorf("day 2 = %+v, want net 200, cumulative 250", p2)
	}

	// USD or a nil converter leaves values alone.
	usd := BuildContributionSeries(txs, ContributionOptions{PadTo: date.New(2024, 1, 5), Currency: "USD", Converter: rates})
	u, _ := findPoint(usd, date.New(2024, 1, 5))
	if !approxEqual(u.Amount, 200) {
		t.Errorf("USD cumulative = %v, want 200", u.Amount)
	}
}

func TestBuildContributionSeriesEmpty(t *testing.T) {
	if series := BuildContributionSeries(nil, ContributionOptions{}); series != nil {
		t.Errorf("series = %+v, want nil", series)
	}
}
