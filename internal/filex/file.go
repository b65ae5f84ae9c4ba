// Package filex holds filesystem helpers for locating local client state.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold path, so that a
// database file can be opened there. Relative paths are resolved against
// the current working directory. The absolute path of the file is returned.
//
// In-memory sqlite DSNs (":memory:" or "file:...") are returned unchanged.
func EnsureParentDir(path string) (string, error) {
	if path == ":memory:" || len(path) >= 5 && path[:5] == "file:" {
		return path, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", path, err)
	}

	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return abs, nil
}
