// Package retry runs operations with exponential backoff. Only errors the
// errs package classifies as transient are retried; everything else fails
// immediately.
package retry

import (
	"context"
	"time"

	"milkround/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

const defaultMaxElapsed = 10 * time.Second

// Do runs op until it succeeds, returns a non-transient error, the context
// is cancelled, or the retry window closes.
func Do(ctx context.Context, op func() error) error {
	return DoWithMaxElapsed(ctx, defaultMaxElapsed, op)
}

// DoWithMaxElapsed is Do with a caller-supplied retry window.
func DoWithMaxElapsed(ctx context.Context, maxElapsed time.Duration, op func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxElapsed

	wrapped := func() error {
		err := op()
		if err == nil {
			return nil
		}
		if !errs.IsTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	return backoff.Retry(wrapped, backoff.WithContext(policy, ctx))
}
