// Package store provides the locally persisted state of the storefront
// client: the authenticated session and the shopping cart. Each store owns
// one JSON file; the two never share a path. Stores are not safe for
// concurrent use — all mutations are expected to come from a single
// goroutine, mirroring the UI event model they serve.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// loadJSON reads a persisted record into v. The boolean reports whether a
// record existed at all; a missing file is not an error.
func loadJSON(path string, v any) (bool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		return true, err
	}
	return true, nil
}

// saveJSON writes v to path via a temp file and rename so a crash mid-write
// never leaves a truncated record behind.
func saveJSON(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
