package ledger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/folioview/ledger/fx"
)

// Conventional file names inside a dataset directory.
const (
	TransactionsFile = "transactions.csv"
	SplitsFile       = "split_history.csv"
	PricesFile       = "historical_prices.json"
	RatesFile        = "fx_daily_rates.json"
)

// Dataset bundles everything the engine reads for one portfolio. Only
// the transaction ledger is mandatory; splits, prices and fx rates
// degrade to empty sets so a bare export still produces stats and
// contribution series.
type Dataset struct {
	Transactions []Transaction
	Splits       SplitHistory
	Prices       *HistoricalPrices
	Rates        *fx.Rates

	// Generation uniquely tags this load of the dataset, so caches can
	// tell two loads of the same directory apart.
	Generation string
}

// NewDataset wraps already-decoded inputs with a fresh generation tag.
func NewDataset(txs []Transaction, splits SplitHistory, prices *HistoricalPrices, rates *fx.Rates) *Dataset {
	if prices == nil {
		prices = NewHistoricalPrices()
	}
	if rates == nil {
		rates = fx.NewRates()
	}
	return &Dataset{
		Transactions: txs,
		Splits:       splits,
		Prices:       prices,
		Rates:        rates,
		Generation:   uuid.NewString(),
	}
}

// LoadDataset reads a dataset directory laid out with the conventional
// file names. A missing or unreadable transactions.csv is an error;
// the auxiliary files are optional and their absence is only logged.
func LoadDataset(dir string) (*Dataset, error) {
	f, err := os.Open(filepath.Join(dir, TransactionsFile))
	if err != nil {
		return nil, fmt.Errorf("could not open transaction ledger: %w", err)
	}
	txs, err := DecodeTransactions(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("could not read transaction ledger: %w", err)
	}

	var splits SplitHistory
	if f, err := os.Open(filepath.Join(dir, SplitsFile)); err == nil {
		splits, err = DecodeSplitHistory(f)
		f.Close()
		if err != nil {
			slog.Warn("ignoring unreadable split history", "dir", dir, "err", err)
			splits = nil
		}
	} else {
		slog.Warn("no split history, continuing without", "dir", dir)
	}

	prices := NewHistoricalPrices()
	if f, err := os.Open(filepath.Join(dir, PricesFile)); err == nil {
		prices, err = DecodeHistoricalPrices(f)
		f.Close()
		if err != nil {
			slog.Warn("ignoring unreadable historical prices", "dir", dir, "err", err)
			prices = NewHistoricalPrices()
		}
	} else {
		slog.Warn("no historical prices, balance series will use trade prices", "dir", dir)
	}

	rates := fx.NewRates()
	if f, err := os.Open(filepath.Join(dir, RatesFile)); err == nil {
		rates, err = fx.DecodeRates(f)
		f.Close()
		if err != nil {
			slog.Warn("ignoring unreadable fx rates", "dir", dir, "err", err)
			rates = fx.NewRates()
		}
	}

	ds := NewDataset(txs, splits, prices, rates)
	slog.Info("dataset loaded",
		"dir", dir,
		"transactions", len(ds.Transactions),
		"splits", len(ds.Splits),
		"pricedSymbols", ds.Prices.Len(),
		"generation", ds.Generation)
	return ds, nil
}
