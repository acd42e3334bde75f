package testutil

import (
	"os"
	"path/filepath"
	"sort"
)

// WriteTree creates dst and writes each file of the map below it. Keys are
// slash-separated relative paths; parent directories are created as needed.
func WriteTree(dst string, files map[string]string) error {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	for _, name := range names {
		out := filepath.Join(dst, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(out, []byte(files[name]), 0o644); err != nil {
			return err
		}
	}
	return nil
}
