// Package boundary turns calls that report errors or panic into Results.
//
// TrySync wraps a single synchronous call. Try and TryAsync add an optional
// RetryPolicy: the first attempt runs at once and each failed attempt k, up
// to Times, is followed by a wait of DelayFor(k) before attempt k+1. Attempts
// never overlap. When the retries are used up the cause of the last attempt
// is passed to Options.Catch; earlier causes are only reported to the Logger
// and Observer.
//
// Policies decode from YAML:
//
//	times: 3
//	delay: 20ms
//	backoff: exponential
package boundary
