// Package retry wraps idempotent read calls with bounded, flat-delay retry.
//
// Write paths must never go through this package: resubmitting a signed
// transaction risks double execution or nonce conflicts, so write failures
// are always surfaced for an explicit, caller-driven retry decision.
package retry

import (
	"context"
	"time"
)

const (
	// DefaultAttempts is the total attempt budget, first try included.
	DefaultAttempts = 3
	// DefaultDelay is the flat inter-attempt delay. No jitter, no backoff:
	// worst-case latency stays bounded at attempts x delay.
	DefaultDelay = 2 * time.Second
)

// Policy holds the attempt budget and inter-attempt delay for one wrapped
// operation. The zero value behaves like a single attempt with no delay.
type Policy struct {
	Attempts int
	Delay    time.Duration
}

// Default returns the standard read-retry policy.
func Default() Policy {
	return Policy{Attempts: DefaultAttempts, Delay: DefaultDelay}
}

// Do executes op until it succeeds or the attempt budget is exhausted,
// sleeping the flat delay between attempts. Attempts are sequential. The
// last attempt's error is returned unchanged; a context cancelled during
// the delay also surfaces the last attempt's error, since that is the more
// informative failure.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if err = op(ctx); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		if !sleep(ctx, p.Delay) {
			break
		}
	}
	return err
}

// Value is Do for operations that return a result.
func Value[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := p.Do(ctx, func(ctx context.Context) error {
		var opErr error
		result, opErr = op(ctx)
		return opErr
	})
	return result, err
}

// sleep waits d or until ctx is done. Returns false when interrupted.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
