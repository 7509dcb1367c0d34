// Package ledger implements the transaction ledger and derived
// time-series engine behind the portfolio dashboard.
//
// The ledger is a chronological stream of buy and sell transactions
// parsed from a CSV export. From that stream the package derives, on
// demand and without any persisted state:
//
//   - per-transaction running totals (shares outstanding, portfolio
//     cost basis) using FIFO lot matching with stock-split adjustment,
//   - portfolio-wide realized gains,
//   - a cumulative net-contribution series,
//   - a daily market-value (balance) series priced from historical
//     quotes,
//   - drawdown transforms of either series.
//
// Everything is recomputed from the raw inputs on each call; the only
// caching is the explicit, generation-keyed series cache. The engine
// is deliberately tolerant of malformed input rows: they degrade to
// no-ops rather than errors, so a partially broken export still
// produces charts.
package ledger
