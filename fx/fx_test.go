package fx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folioview/ledger/date"
)

func TestDecodeRatesFlatAndDaily(t *testing.T) {
	in := `{
		"base": "USD",
		"rates": {
			"GBP": 0.79,
			"EUR": {"2024-01-02": 0.91, "2024-01-05": 0.93, "bad": 1},
			"JPY": "nope"
		}
	}`

	rates, err := DecodeRates(strings.NewReader(in))
	require.NoError(t, err)

	on := date.New(2024, 1, 3)
	assert.InDelta(t, 79.0, rates.Convert(100, on, "GBP"), 1e-9)
	// Daily rates carry the last known value forward.
	assert.InDelta(t, 91.0, rates.Convert(100, on, "EUR"), 1e-9)
	assert.InDelta(t, 93.0, rates.Convert(100, date.New(2024, 2, 1), "EUR"), 1e-9)
	// The string-valued currency is dropped; conversion is identity.
	assert.InDelta(t, 100.0, rates.Convert(100, on, "JPY"), 1e-9)
}

func TestDecodeRatesMissingRatesObject(t *testing.T) {
	_, err := DecodeRates(strings.NewReader(`{"base":"USD"}`))
	require.Error(t, err)
}

func TestConvertIdentityCases(t *testing.T) {
	rates := NewRates()
	rates.Set("EUR", 0.9)

	on := date.New(2024, 1, 2)
	assert.InDelta(t, 100.0, rates.Convert(100, on, "USD"), 1e-9)
	assert.InDelta(t, 100.0, rates.Convert(100, on, ""), 1e-9)
	assert.InDelta(t, 100.0, rates.Convert(100, on, "CHF"), 1e-9)
	assert.InDelta(t, 90.0, rates.Convert(100, on, "EUR"), 1e-9)
}

func TestConvertPrefersDailyOverFlat(t *testing.T) {
	rates := NewRates()
	rates.Set("EUR", 0.5)
	rates.SetDaily("EUR", date.New(2024, 1, 2), 0.9)

	assert.InDelta(t, 90.0, rates.Convert(100, date.New(2024, 1, 2), "EUR"), 1e-9)
	// Before the first daily point the flat rate applies.
	assert.InDelta(t, 50.0, rates.Convert(100, date.New(2023, 1, 1), "EUR"), 1e-9)
}
