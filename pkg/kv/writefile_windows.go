//go:build windows

package kv

import (
	"fmt"
	"io/fs"
	"os"
)

// Atomic renames are not available on every Windows filesystem.
func writeFile(path string, data []byte, mode fs.FileMode) error {
	err := os.WriteFile(path, data, mode)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
