package cache

import (
	"context"
	"errors"
	"time"
)

const (
	retryAttempts  = 3
	retryBaseDelay = time.Second
)

// RetryableError marks an error as worth retrying. RedisCache wraps
// transport failures this way; FileCache errors are never retryable.
type RetryableError struct{ Err error }

// Retryable wraps err as retryable. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err carries a RetryableError anywhere in its
// chain.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff runs fn, retrying retryable failures with exponential
// backoff (1s, then 2s). Non-retryable errors return immediately, and a
// cancelled context cuts the wait short.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	var err error
	wait := retryBaseDelay
	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			wait *= 2
		}
		if err = fn(); err == nil || !IsRetryable(err) {
			return err
		}
	}
	return err
}
