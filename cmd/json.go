package cmd

import (
	"encoding/json"
	"fmt"
	"os"
)

// writeJSON writes a series to a file the way the dashboard's data
// pipeline exports it: a plain JSON array, indented for diffability.
func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("could not encode %q: %w", path, err)
	}
	return nil
}
