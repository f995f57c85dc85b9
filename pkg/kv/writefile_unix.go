//go:build unix

package kv

import (
	"fmt"
	"io/fs"

	"github.com/google/renameio/v2"
)

func writeFile(path string, data []byte, mode fs.FileMode) (err error) {
	file, err := renameio.NewPendingFile(path, renameio.WithPermissions(mode))
	if err != nil {
		return fmt.Errorf("create pending file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = file.Cleanup()
		}
	}()

	_, err = file.Write(data)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	err = file.CloseAtomicallyReplace()
	if err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	return nil
}
