package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFirstOf(t *testing.T) {
	if got := firstOf("", "", "x", "y"); got != "x" {
		t.Errorf("firstOf = %q, want x", got)
	}
	if got := firstOf(); got != "" {
		t.Errorf("firstOf() = %q, want empty", got)
	}
}

func TestResolveConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "folio.yaml"),
		[]byte("dataDir: /from/yaml\ncurrency: CHF\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	// Only the yaml layer set: it wins.
	gotDir, gotCur := resolveConfig()
	if gotDir != "/from/yaml" || gotCur != "CHF" {
		t.Errorf("yaml layer: %q %q", gotDir, gotCur)
	}

	// Environment beats yaml.
	t.Setenv("FV_DATA_DIR", "/from/env")
	t.Setenv("FV_CURRENCY", "GBP")
	gotDir, gotCur = resolveConfig()
	if gotDir != "/from/env" || gotCur != "GBP" {
		t.Errorf("env layer: %q %q", gotDir, gotCur)
	}

	// Flags beat everything.
	*dataDir = "/from/flag"
	*currency = "EUR"
	defer func() { *dataDir = ""; *currency = "" }()
	gotDir, gotCur = resolveConfig()
	if gotDir != "/from/flag" || gotCur != "EUR" {
		t.Errorf("flag layer: %q %q", gotDir, gotCur)
	}
}

func TestResolveConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	gotDir, gotCur := resolveConfig()
	if gotDir != "." || gotCur != "USD" {
		t.Errorf("defaults: %q %q, want . USD", gotDir, gotCur)
	}
}
