package failure

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultMaxAttempts   = 5
	DefaultRetryInterval = 5 * time.Second
)

var ErrUnavailable = errors.New("backend unavailable")

type RetryPolicy struct {
	MaxAttempts int
	Interval    time.Duration
	// OnRetry, if set, is called before each wait with the 1-based number of the failed attempt.
	OnRetry func(attempt int, err error)
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: DefaultMaxAttempts, Interval: DefaultRetryInterval}
}

func (r RetryPolicy) withDefaults() RetryPolicy {
	if r.MaxAttempts <= 0 {
		r.MaxAttempts = DefaultMaxAttempts
	}
	if r.Interval < 0 {
		r.Interval = 0
	}
	return r
}

// ExhaustedError is the terminal failure of a retried call.
type ExhaustedError struct {
	Op       string
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s: backend unavailable after %d attempts: %v", e.Op, e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() []error {
	return []error{ErrUnavailable, e.Last}
}

// Retry runs fn until it succeeds, fails with a client failure, or the attempt
// budget is spent. Only network and server failures are retried. Maintenance
// navigation happens once, after the last attempt.
func Retry[T any](ctx context.Context, p *Policy, op string, fn func(ctx context.Context) (T, error)) (T, error) {
	rp := p.Retry.withDefaults()

	var b backoff.BackOff = backoff.NewConstantBackOff(rp.Interval)
	b = backoff.WithMaxRetries(b, uint64(rp.MaxAttempts-1))
	b = backoff.WithContext(b, ctx)

	attempts := 0
	res, err := backoff.RetryNotifyWithData[T](func() (T, error) {
		attempts++
		v, err := fn(ctx)
		if err != nil && !Classify(err).Unavailable() {
			return v, backoff.Permanent(err)
		}
		return v, err
	}, b, func(err error, wait time.Duration) {
		p.Log.Warn("backend call failed, retrying",
			"op", op,
			"attempt", attempts,
			"max_attempts", rp.MaxAttempts,
			"retry_in", wait.String(),
			"err", err,
		)
		if rp.OnRetry != nil {
			rp.OnRetry(attempts, err)
		}
	})
	if err == nil {
		return res, nil
	}
	if !Classify(err).Unavailable() {
		return res, err
	}

	p.Log.Error("backend still unavailable, giving up", "op", op, "attempts", attempts, "err", err)
	p.toMaintenance()
	var zero T
	return zero, &ExhaustedError{Op: op, Attempts: attempts, Last: err}
}
