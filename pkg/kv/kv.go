// Package kv provides small string-keyed persistent storages used to keep
// client state between runs.
package kv

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("key not found")
	ErrCorrupted = errors.New("storage corrupted")
)

type (
	Storage interface {
		// Get returns ErrNotFound when key is absent.
		Get(ctx context.Context, key string) (string, error)
		Set(ctx context.Context, key, value string) error
		// Remove is a no-op for absent keys.
		Remove(ctx context.Context, keys ...string) error
	}

	// Watcher reports changes made to the storage by other processes or
	// instances; writes through the watched instance itself are not reported.
	Watcher interface {
		Watch(ctx context.Context, onChange func()) error
	}
)
