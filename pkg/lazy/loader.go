package lazy

import (
	"fmt"
	"sync"
)

type Loader[T any] interface {
	MustLoad() T
	Load() (T, error)
	IfLoaded(func(T))
}

type loader[T any] struct {
	provider func() (T, error)
	once     sync.Once
	mu       sync.Mutex
	isLoaded bool
	value    T
	err      error
}

func New[T any](provider func() (T, error)) Loader[T] {
	return &loader[T]{provider: provider}
}

// Value wraps an already constructed dependency.
func Value[T any](v T) Loader[T] {
	l := &loader[T]{isLoaded: true, value: v}
	l.once.Do(func() {})
	return l
}

func (l *loader[T]) MustLoad() T {
	value, err := l.Load()
	if err != nil {
		panic(err)
	}

	return value
}

func (l *loader[T]) Load() (T, error) {
	l.once.Do(func() {
		value, err := l.provider()

		l.mu.Lock()
		defer l.mu.Unlock()
		if err != nil {
			l.err = fmt.Errorf("load value of %T: %w", l.value, err)
			return
		}

		l.isLoaded = true
		l.value = value
	})

	return l.value, l.err
}

// IfLoaded calls f only when the value was already built; it never triggers
// the provider. Used for closing resources on shutdown.
func (l *loader[T]) IfLoaded(f func(T)) {
	l.mu.Lock()
	loaded, value := l.isLoaded, l.value
	l.mu.Unlock()

	if loaded {
		f(value)
	}
}
