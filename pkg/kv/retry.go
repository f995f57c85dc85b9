package kv

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

type retrying struct {
	impl       Storage
	newBackOff func() backoff.BackOff
}

// WithRetry retries failed storage calls with exponential backoff. Absent
// keys and cancelled contexts are not retried.
func WithRetry(storage Storage, maxElapsed time.Duration) Storage {
	return retrying{
		impl: storage,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 20 * time.Millisecond
			b.MaxElapsedTime = maxElapsed
			return b
		},
	}
}

func (r retrying) Get(ctx context.Context, key string) (string, error) {
	return backoff.RetryWithData(func() (string, error) {
		value, err := r.impl.Get(ctx, key)
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrCorrupted) {
			return "", backoff.Permanent(err)
		}
		return value, err
	}, backoff.WithContext(r.newBackOff(), ctx))
}

func (r retrying) Set(ctx context.Context, key, value string) error {
	return backoff.Retry(func() error {
		return r.impl.Set(ctx, key, value)
	}, backoff.WithContext(r.newBackOff(), ctx))
}

func (r retrying) Remove(ctx context.Context, keys ...string) error {
	return backoff.Retry(func() error {
		return r.impl.Remove(ctx, keys...)
	}, backoff.WithContext(r.newBackOff(), ctx))
}
