package ledger

import (
	"math"
	"sort"
)

// ApplyDrawdown rewrites a value series as its decline from the
// running peak: each point's value becomes value - max(values so far),
// which is always <= 0. The input is sorted by date first and is not
// mutated. Applying the transform to its own output is a no-op.
//
// initialPeak seeds the running maximum; pass math.Inf(-1) to let the
// first point define the peak, or a prior high to chain windows.
func ApplyDrawdown(series []BalancePoint, initialPeak float64) []BalancePoint {
	if len(series) == 0 {
		return nil
	}
	sorted := make([]BalancePoint, len(series))
	copy(sorted, series)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	runningPeak := initialPeak
	for i, p := range sorted {
		runningPeak = math.Max(runningPeak, p.Value)
		sorted[i].Value = p.Value - runningPeak
	}
	return sorted
}
