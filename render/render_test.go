package render

import (
	"strings"
	"testing"

	"github.com/folioview/ledger"
	"github.com/folioview/ledger/date"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		value float64
		code  string
		want  string
	}{
		{1234.5, "USD", "$1,234.50"},
		{0, "USD", "$0.00"},
		{-42.42, "USD", "-$42.42"},
		{1234.5, "", "$1,234.50"},
		{1000, "JPY", "\u00a51,000"},
	}
	for _, tt := range tests {
		if got := Currency(tt.value, tt.code); got != tt.want {
			t.Errorf("Currency(%v, %q) = %q, want %q", tt.value, tt.code, got, tt.want)
		}
	}
}

func TestSignedCurrency(t *testing.T) {
	if got := SignedCurrency(0, "USD"); got != "-" {
		t.Errorf("zero = %q, want -", got)
	}
	if got := SignedCurrency(10, "USD"); got != "+$10.00" {
		t.Errorf("positive = %q, want +$10.00", got)
	}
	if got := SignedCurrency(-10, "USD"); got != "-$10.00" {
		t.Errorf("negative = %q, want -$10.00", got)
	}
}

func TestQuantity(t *testing.T) {
	if got := Quantity(10); got != "10" {
		t.Errorf("whole shares = %q, want 10", got)
	}
	if got := Quantity(2.5); got != "2.5" {
		t.Errorf("fractional shares = %q, want 2.5", got)
	}
}

func TestStatsMarkdown(t *testing.T) {
	out := StatsMarkdown(ledger.Stats{
		TotalTransactions: 3,
		TotalBuys:         2,
		TotalSells:        1,
		TotalBuyAmount:    1200,
		TotalSellAmount:   600,
		NetAmount:         600,
		RealizedGain:      200,
	}, "USD")

	for _, want := range []string{"# Ledger Summary", "$1,200.00", "+$200.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestHoldingsMarkdown(t *testing.T) {
	out := HoldingsMarkdown(map[string]ledger.Holding{
		"XYZ": {Shares: 5, TotalCost: 600, AvgPrice: 120},
		"ABC": {Shares: 10, TotalCost: 1000, AvgPrice: 100},
	}, "USD")

	// Symbols come out sorted.
	if strings.Index(out, "ABC") > strings.Index(out, "XYZ") {
		t.Errorf("symbols not sorted:\n%s", out)
	}
	if !strings.Contains(out, "$1,600.00") {
		t.Errorf("output missing total:\n%s", out)
	}

	empty := HoldingsMarkdown(nil, "USD")
	if !strings.Contains(empty, "No open positions") {
		t.Errorf("empty output = %q", empty)
	}
}

func TestContributionMarkdownSkipsPadding(t *testing.T) {
	series := []ledger.ContributionPoint{
		{TradeDate: date.New(2024, 1, 1), Amount: 100, NetAmount: 100, OrderType: "buy"},
		{TradeDate: date.New(2024, 1, 4), Amount: 100, OrderType: ledger.OrderPadding},
		{TradeDate: date.New(2024, 1, 5), Amount: 250, NetAmount: 150, OrderType: "buy"},
	}
	out := ContributionMarkdown(series, "USD")
	if strings.Contains(out, "2024-01-04") {
		t.Errorf("padding row rendered:\n%s", out)
	}
	if !strings.Contains(out, "$250.00") {
		t.Errorf("missing cumulative row:\n%s", out)
	}
}

func TestBalanceMarkdown(t *testing.T) {
	out := BalanceMarkdown("Portfolio Value", []ledger.BalancePoint{
		{Date: date.New(2024, 1, 10), Value: 1000},
	}, "USD")
	if !strings.Contains(out, "# Portfolio Value") || !strings.Contains(out, "$1,000.00") {
		t.Errorf("output = %s", out)
	}
}
