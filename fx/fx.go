// Package fx converts USD values into other display currencies using
// the dashboard's exported rate files. Rate sourcing is out of scope
// for the engine; this package only reads whatever the export pipeline
// produced and degrades to identity conversion when data is missing.
package fx

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/PaesslerAG/jsonpath"
	"github.com/folioview/ledger/date"
)

// Converter converts a USD value into a target currency using the rate
// in effect on a given day.
type Converter interface {
	Convert(value float64, on date.Date, currency string) float64
}

// Rates holds exchange rates relative to USD, either one flat rate per
// currency or a dated series per currency, depending on what the rate
// file provides.
type Rates struct {
	flat  map[string]float64
	daily map[string]*date.History
}

// NewRates returns an empty rate set. Converting through it is always
// the identity.
func NewRates() *Rates {
	return &Rates{flat: make(map[string]float64), daily: make(map[string]*date.History)}
}

// DecodeRates reads a rate payload of the form
//
//	{ "rates": { "EUR": 0.92, ... } }
//
// or, for the daily export,
//
//	{ "rates": { "EUR": { "2024-01-02": 0.91, ... }, ... } }
//
// Both shapes can be mixed per currency.
func DecodeRates(r io.Reader) (*Rates, error) {
	var payload any
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("could not decode fx rates: %w", err)
	}

	jval, err := jsonpath.Get("$.rates", payload)
	if err != nil {
		return nil, fmt.Errorf("fx payload has no rates object: %w", err)
	}
	byCode, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("fx rates is not an object: %T", jval)
	}

	rates := NewRates()
	for code, v := range byCode {
		switch rate := v.(type) {
		case float64:
			rates.flat[code] = rate
		case map[string]any:
			h := new(date.History)
			for dayStr, dayRate := range rate {
				day, err := date.Parse(dayStr)
				if err != nil {
					continue
				}
				f, ok := dayRate.(float64)
				if !ok {
					continue
				}
				h.Append(day, f)
			}
			if h.Len() > 0 {
				rates.daily[code] = h
			}
		default:
			slog.Warn("ignoring fx rate with unexpected shape", "currency", code)
		}
	}
	return rates, nil
}

// Set records a flat rate for a currency. Mostly for tests.
func (r *Rates) Set(currency string, rate float64) { r.flat[currency] = rate }

// SetDaily records a dated rate for a currency.
func (r *Rates) SetDaily(currency string, on date.Date, rate float64) {
	h, ok := r.daily[currency]
	if !ok {
		h = new(date.History)
		r.daily[currency] = h
	}
	h.Append(on, rate)
}

// Convert converts a USD value into the target currency using the rate
// on (or last known before) the given day. USD, an empty currency, and
// currencies with no rate data convert by 1.0; the latter logs a
// warning so a silently-unconverted chart can be traced.
func (r *Rates) Convert(value float64, on date.Date, currency string) float64 {
	if currency == "" || currency == "USD" || r == nil {
		return value
	}
	if h, ok := r.daily[currency]; ok {
		if rate, ok := h.AsOf(on); ok {
			return value * rate
		}
	}
	if rate, ok := r.flat[currency]; ok {
		return value * rate
	}
	slog.Warn("no fx rate for currency, leaving value in USD", "currency", currency)
	return value
}

var _ Converter = (*Rates)(nil)
