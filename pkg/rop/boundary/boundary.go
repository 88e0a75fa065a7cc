package boundary

import (
	"context"
	"log/slog"
	"time"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/errkind"
	"github.com/ib-77/ropx/pkg/rop/future"
)

// Sleeper waits for d or until ctx is done, whichever comes first, and
// returns ctx.Err() in the latter case.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the default Sleeper.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Options configures Try and TryAsync.
type Options[E any] struct {
	// Catch maps the cause of the last failed attempt to the failure value.
	// Required.
	Catch func(cause error) E
	// Retry enables retries; nil means a single attempt.
	Retry *RetryPolicy
	// Operation names the call in logs and metrics.
	Operation string
	// Sleep defaults to SleepContext.
	Sleep    Sleeper
	Logger   *slog.Logger
	Observer Observer
}

// CatchCommon returns a Catch function classifying causes with
// errkind.Classify.
func CatchCommon(operation string) func(cause error) errkind.CommonError {
	return func(cause error) errkind.CommonError {
		return errkind.Classify(operation, cause)
	}
}

// TrySync calls fn and wraps its value as a success. A returned error, or a
// panic recovered as *rop.PanicError, is passed to onError and wrapped as a
// failure.
func TrySync[T, E any](fn func() (T, error), onError func(cause error) E) rop.Result[T, E] {
	v, err := call(func() (T, error) { return fn() })
	if err != nil {
		return rop.Fail[T](onError(err))
	}
	return rop.Success[T, E](v)
}

// Try calls fn, retrying per opts.Retry, and wraps the outcome as a Result.
// Attempts run one after another; the first success is returned at once. When
// the retries are used up, or the sleeper reports ctx ending, the cause of
// the last attempt is passed to opts.Catch.
func Try[T, E any](ctx context.Context, fn func(ctx context.Context) (T, error), opts Options[E]) rop.Result[T, E] {
	if opts.Catch == nil {
		panic("boundary: Options.Catch is required")
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = SleepContext
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	retries := 0
	if opts.Retry != nil {
		retries = opts.Retry.Times
	}

	var lastErr error
	attempt := 1
	for ; ; attempt++ {
		v, err := call(func() (T, error) { return fn(ctx) })
		if err == nil {
			if opts.Retry != nil && opts.Observer != nil {
				opts.Observer.Succeeded(ctx, opts.Operation, attempt)
			}
			return rop.Success[T, E](v)
		}
		lastErr = err

		if attempt > retries {
			break
		}

		delay := opts.Retry.DelayFor(attempt)
		logger.DebugContext(ctx, "retrying failed attempt",
			"operation", opts.Operation,
			"attempt", attempt,
			"delay", delay,
			"error", err)
		if opts.Observer != nil {
			opts.Observer.Retrying(ctx, RetryEvent{
				Operation: opts.Operation,
				Attempt:   attempt,
				Delay:     delay,
				Cause:     err,
			})
		}

		if serr := sleep(ctx, delay); serr != nil {
			logger.WarnContext(ctx, "retry wait interrupted",
				"operation", opts.Operation,
				"attempt", attempt,
				"error", serr)
			break
		}
	}

	if opts.Retry != nil {
		logger.WarnContext(ctx, "retries exhausted",
			"operation", opts.Operation,
			"attempts", attempt,
			"error", lastErr)
		if opts.Observer != nil {
			opts.Observer.Exhausted(ctx, opts.Operation, attempt, lastErr)
		}
	}
	return rop.Fail[T](opts.Catch(lastErr))
}

// TryAsync runs Try on its own goroutine.
func TryAsync[T, E any](ctx context.Context, fn func(ctx context.Context) (T, error), opts Options[E]) future.Future[T, E] {
	return future.Go(ctx, func(ctx context.Context) rop.Result[T, E] {
		return Try(ctx, fn, opts)
	})
}

func call[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = rop.NewPanicError(r)
		}
	}()
	return fn()
}
