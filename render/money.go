// Package render turns engine results into markdown reports for the
// terminal.
package render

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency formats a value in the given ISO currency, with the
// currency's own grapheme and fraction rules. An empty code formats as
// USD. The float is shifted through a decimal to avoid the half-cent
// artifacts of naive float rounding.
func Currency(value float64, code string) string {
	if code == "" {
		code = "USD"
	}
	// Money constructor guarantees a non-nil currency even for unknown codes.
	cur := *money.New(0, code).Currency()
	minor := decimal.NewFromFloat(value).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.Round(0).IntPart())
}

// SignedCurrency formats like Currency with an explicit sign, and a
// bare "-" for zero so flat rows read as empty in tables.
func SignedCurrency(value float64, code string) string {
	if value == 0 {
		return "-"
	}
	if value > 0 {
		return "+" + Currency(value, code)
	}
	return Currency(value, code)
}

// Quantity formats a share count, trimming trailing zeros so whole
// share counts print without a decimal tail.
func Quantity(value float64) string {
	return decimal.NewFromFloat(value).RoundBank(4).String()
}
