package ledger

// RunningTotal is the portfolio-wide snapshot recorded immediately
// after one transaction is applied.
type RunningTotal struct {
	// Shares is the share count outstanding for the transaction's
	// symbol after the transaction.
	Shares float64 `json:"shares"`
	// Amount mirrors Portfolio; both fields are kept because the
	// dashboard's table and chart consume them under different names.
	Amount float64 `json:"amount"`
	// Portfolio is the portfolio-wide running cost basis after the
	// transaction.
	Portfolio float64 `json:"portfolio"`
}

// RunningTotals holds one RunningTotal per transaction, keyed by
// transaction ID, plus the portfolio-wide realized gain over the whole
// stream.
type RunningTotals struct {
	byID map[int]RunningTotal

	// TotalRealizedGain is the sum of realized gains across every
	// symbol after replaying the full stream.
	TotalRealizedGain float64
}

// Get returns the snapshot recorded for a transaction ID.
func (r *RunningTotals) Get(id int) (RunningTotal, bool) {
	rt, ok := r.byID[id]
	return rt, ok
}

// Len returns the number of recorded snapshots.
func (r *RunningTotals) Len() int { return len(r.byID) }

// securityState is the per-symbol accumulator used during replay. It
// is rebuilt from scratch on every aggregation pass.
type securityState struct {
	lots              Lots
	totalRealizedGain float64
}

// ComputeRunningTotals replays the full transaction stream in
// chronological order (ID tie-break) through the FIFO engine and
// records a snapshot per transaction.
//
// The portfolio running cost advances by the exact cost-basis delta of
// each transaction, newCostBasis - oldCostBasis. On a profitable sell
// that delta is more negative than a shares-proportional allocation
// would be; that is intentional, realized gains must not inflate the
// remaining cost basis.
//
// This is a full O(transactions x lot depth) replay with no
// memoization. Fine for ledgers of a few thousand rows; restructure
// before pointing it at anything much larger.
func ComputeRunningTotals(txs []Transaction, splits SplitHistory) *RunningTotals {
	states := make(map[string]*securityState)
	result := &RunningTotals{byID: make(map[int]RunningTotal, len(txs))}
	var portfolioRunningCost float64

	for _, tx := range sortChronologically(txs) {
		state, ok := states[tx.Security]
		if !ok {
			state = &securityState{}
			states[tx.Security] = state
		}

		oldCostBasis := state.lots.CostBasis()
		newLots, realizedGainDelta := ApplyTransactionFIFO(state.lots, tx, splits)
		newCostBasis := newLots.CostBasis()

		portfolioRunningCost += newCostBasis - oldCostBasis
		state.lots = newLots
		state.totalRealizedGain += realizedGainDelta

		result.byID[tx.ID] = RunningTotal{
			Shares:    newLots.Shares(),
			Amount:    portfolioRunningCost,
			Portfolio: portfolioRunningCost,
		}
	}

	for _, state := range states {
		result.TotalRealizedGain += state.totalRealizedGain
	}
	return result
}
