package boundary

//go:generate mockgen -source observer.go -destination observer_mocks.go -package boundary

import (
	"context"
	"time"
)

// RetryEvent describes a failed attempt that is about to be retried.
type RetryEvent struct {
	Operation string
	// Attempt is the attempt that failed, counted from 1.
	Attempt int
	Delay   time.Duration
	Cause   error
}

// Observer is notified about the attempts of a retried call. Calls without a
// RetryPolicy are not reported.
type Observer interface {
	Retrying(ctx context.Context, ev RetryEvent)
	Succeeded(ctx context.Context, operation string, attempts int)
	Exhausted(ctx context.Context, operation string, attempts int, cause error)
}
