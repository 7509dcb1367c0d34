package date

import "iter"

// Range is an inclusive interval of calendar days.
type Range struct {
	From Date
	To   Date
}

// Contains reports whether day falls inside the range.
func (r Range) Contains(day Date) bool {
	return !day.Before(r.From) && !day.After(r.To)
}

// Days iterates every calendar day of the range in order, both ends
// included. An inverted range yields nothing.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for day := r.From; !day.After(r.To); day = day.Add(1) {
			if !yield(day) {
				return
			}
		}
	}
}
