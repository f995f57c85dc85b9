package kv

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

const fileMode fs.FileMode = 0o600

// File keeps all values in a single JSON document replaced atomically on
// every write.
type File struct {
	path string
	mu   sync.Mutex

	// written is the document as last written by this instance, nil when it
	// was removed. Watch skips events that leave the file in this state.
	written []byte
	wrote   bool
}

func NewFile(path string) (*File, error) {
	err := os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	return &File{path: path}, nil
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return "", err
	}

	value, ok := values[key]
	if !ok {
		return "", ErrNotFound
	}

	return value, nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.readForUpdate()
	if err != nil {
		return err
	}

	values[key] = value
	return f.write(values)
}

func (f *File) Remove(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	changed := errors.Is(err, ErrCorrupted)
	if changed {
		values = map[string]string{}
	} else if err != nil {
		return err
	}

	for _, key := range keys {
		if _, ok := values[key]; ok {
			delete(values, key)
			changed = true
		}
	}
	if !changed {
		return nil
	}

	return f.write(values)
}

// Watch calls onChange after another writer replaced or removed the
// document, until ctx is done. The parent directory is watched since atomic replaces swap inodes.
func (f *File) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	err = watcher.Add(filepath.Dir(f.path))
	if err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(f.path), err)
	}

	name := filepath.Clean(f.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if f.isOwnState() {
				continue
			}
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", f.path, err)
		}
	}
}

// isOwnState reports whether the document is exactly what this instance
// wrote last.
func (f *File) isOwnState() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.wrote {
		return false
	}

	data, err := os.ReadFile(f.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return f.written == nil
	case err != nil:
		return false
	default:
		return f.written != nil && bytes.Equal(data, f.written)
	}
}

func (f *File) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return map[string]string{}, nil
	}

	var values map[string]string
	err = json.Unmarshal(data, &values)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrCorrupted, f.path, err)
	}
	if values == nil {
		values = map[string]string{}
	}

	return values, nil
}

// readForUpdate starts from an empty document when the current one is
// corrupted so that writes repair the file.
func (f *File) readForUpdate() (map[string]string, error) {
	values, err := f.read()
	if errors.Is(err, ErrCorrupted) {
		return map[string]string{}, nil
	}

	return values, err
}

func (f *File) write(values map[string]string) error {
	if len(values) == 0 {
		err := os.Remove(f.path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", f.path, err)
		}
		f.written, f.wrote = nil, true
		return nil
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage document: %w", err)
	}

	err = writeFile(f.path, data, fileMode)
	if err != nil {
		return err
	}

	f.written, f.wrote = data, true
	return nil
}
