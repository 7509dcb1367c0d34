package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of float64 values keyed by day.
// Dates are unique and the series is kept sorted on append.
type History struct {
	days   []Date
	values []float64
}

// Len returns the number of points in the history.
func (h *History) Len() int { return len(h.days) }

// Append adds a point to the history, replacing any existing value on
// the same day.
func (h *History) Append(on Date, v float64) *History {
	i, found := h.search(on)
	if found {
		h.values[i] = v
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, v)
	return h
}

// Get returns the value recorded exactly on day.
func (h *History) Get(day Date) (float64, bool) {
	if i, found := h.search(day); found {
		return h.values[i], true
	}
	return 0, false
}

// AsOfWithin returns the value on day, or the most recent value within
// the previous lookback days. It reports false when no point falls in
// that window.
func (h *History) AsOfWithin(day Date, lookback int) (float64, bool) {
	i, found := h.search(day)
	if found {
		return h.values[i], true
	}
	// i is the insertion point; i-1 is the last point before day.
	if i == 0 {
		return 0, false
	}
	prev := h.days[i-1]
	if prev.Before(day.Add(-lookback)) {
		return 0, false
	}
	return h.values[i-1], true
}

// AsOf returns the value on day, or the most recent value before it,
// with no limit on how far back. It reports false when the history has
// no point on or before day.
func (h *History) AsOf(day Date) (float64, bool) {
	i, found := h.search(day)
	if found {
		return h.values[i], true
	}
	if i == 0 {
		return 0, false
	}
	return h.values[i-1], true
}

// Latest returns the last point of the history, or zero values when empty.
func (h *History) Latest() (Date, float64) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, 0
	}
	return h.days[last], h.values[last]
}

// Values iterates all points in chronological order.
func (h *History) Values() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

func (h *History) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, Date.Compare)
}
