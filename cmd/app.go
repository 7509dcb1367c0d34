// Package cmd implements the CLI application to inspect a transaction
// ledger.
package cmd

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/folioview/ledger"
)

// Commands lists every subcommand a main package should register.
var Commands = []subcommands.Command{
	&statsCmd{},
	&holdingsCmd{},
	&contributionCmd{},
	&balanceCmd{},
	&totalsCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	dataDir  = flag.String("data-dir", "", "Path to the dataset folder (transactions.csv and friends). Overrides FV_DATA_DIR and folio.yaml.")
	currency = flag.String("currency", "", "Display currency (ISO code). Overrides FV_CURRENCY and folio.yaml.")
	verbose  = flag.Bool("v", false, "Enable debug logging")
)

// fileConfig is the optional folio.yaml sitting in the dataset folder
// or the working directory.
type fileConfig struct {
	DataDir  string `yaml:"dataDir"`
	Currency string `yaml:"currency"`
}

// InitLogging routes structured logs to stderr as JSON lines, keeping
// stdout clean for report output.
func InitLogging() {
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// resolveConfig merges the three configuration layers: flags win over
// environment variables (a .env file is folded into the environment
// first), which win over folio.yaml.
func resolveConfig() (dir, cur string) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	var fc fileConfig
	for _, candidate := range []string{"folio.yaml", filepath.Join(os.Getenv("FV_DATA_DIR"), "folio.yaml")} {
		raw, err := os.ReadFile(candidate)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			slog.Warn("ignoring malformed config file", "path", candidate, "err", err)
			continue
		}
		break
	}

	dir = firstOf(*dataDir, os.Getenv("FV_DATA_DIR"), fc.DataDir, ".")
	cur = firstOf(*currency, os.Getenv("FV_CURRENCY"), fc.Currency, "USD")
	return dir, cur
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// loadDataset resolves the configuration and loads the dataset it
// points at. Subcommands call this first thing in Execute.
func loadDataset() (*ledger.Dataset, string, error) {
	dir, cur := resolveConfig()
	ds, err := ledger.LoadDataset(dir)
	if err != nil {
		return nil, "", fmt.Errorf("could not load dataset from %q: %w", dir, err)
	}
	return ds, cur, nil
}
