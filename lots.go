package ledger

import "math"

// lotEpsilon is the share-count threshold below which a lot is
// considered exhausted and removed from the queue. It absorbs the
// floating-point residue left by partial sells. The exact value is
// part of the engine's observable behavior; do not change it casually.
const lotEpsilon = 1e-8

// Lot is an open tranche of shares for one symbol.
type Lot struct {
	// Qty is the number of shares remaining, split-adjusted at
	// purchase time.
	Qty float64 `json:"qty"`
	// Price is the cost basis per share, split-adjusted at purchase
	// time so that Qty*Price is invariant under adjustment.
	Price float64 `json:"price"`
}

// Lots is a symbol's open lot queue, oldest first. Sells consume from
// the front.
type Lots []Lot

// CostBasis returns the total cost of all open lots.
func (l Lots) CostBasis() float64 {
	var sum float64
	for _, lot := range l {
		sum += lot.Qty * lot.Price
	}
	return sum
}

// Shares returns the total share count across all open lots.
func (l Lots) Shares() float64 {
	var sum float64
	for _, lot := range l {
		sum += lot.Qty
	}
	return sum
}

// ApplyTransactionFIFO applies one transaction to a symbol's lot queue
// and returns the new queue plus the realized-gain delta. It is a pure
// function: the input queue is never mutated.
//
// A transaction with a non-finite price, or a non-finite or
// non-positive quantity, is a no-op: the queue is returned unchanged
// (as a copy) with a zero delta. This is deliberate tolerance for
// malformed CSV rows, not an error path.
//
// Buys push a split-adjusted lot at the back of the queue. Sells
// consume lots from the front (oldest first) until the adjusted sell
// quantity is exhausted or the queue runs dry; selling more than is
// held silently discards the excess, treating its cost basis as zero.
// Proceeds use the unadjusted quantity and price, because the entered
// price already reflects the market price of its day.
func ApplyTransactionFIFO(lots Lots, tx Transaction, splits SplitHistory) (Lots, float64) {
	newLots := make(Lots, len(lots))
	copy(newLots, lots)

	quantity := tx.Quantity
	price := tx.Price
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) ||
		math.IsNaN(price) || math.IsInf(price, 0) || quantity <= 0 {
		return newLots, 0
	}

	adjustment := splits.Adjustment(tx.Security, tx.TradeDate)

	if tx.IsBuy() {
		newLots = append(newLots, Lot{
			Qty:   quantity * adjustment,
			Price: price / adjustment,
		})
		return newLots, 0
	}

	sellQty := quantity * adjustment
	var costOfSoldShares float64

	for sellQty > 0 && len(newLots) > 0 {
		lot := &newLots[0]
		qtyFromLot := math.Min(sellQty, lot.Qty)

		costOfSoldShares += qtyFromLot * lot.Price
		lot.Qty -= qtyFromLot
		sellQty -= qtyFromLot

		if lot.Qty < lotEpsilon {
			newLots = newLots[1:]
		}
	}

	proceeds := quantity * price
	return newLots, proceeds - costOfSoldShares
}
