// Package retrymetrics exports boundary retry activity as Prometheus metrics.
package retrymetrics

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/boundary"
	"github.com/ib-77/ropx/pkg/rop/errkind"
)

// Observer implements boundary.Observer.
type Observer struct {
	// RetriesTotal counts failed attempts that were retried
	RetriesTotal *prometheus.CounterVec
	// RetryDelay tracks the wait before each retry
	RetryDelay *prometheus.HistogramVec
	// SucceededTotal counts retried calls that ended in a success
	SucceededTotal *prometheus.CounterVec
	// ExhaustedTotal counts retried calls that ended in a failure
	ExhaustedTotal *prometheus.CounterVec
	// Attempts tracks how many attempts a retried call took
	Attempts *prometheus.HistogramVec
}

var _ boundary.Observer = (*Observer)(nil)

// New registers the metrics on reg. A nil reg uses
// prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Observer {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Observer{
		RetriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ropx_retries_total",
				Help: "Total number of failed attempts that were retried",
			},
			[]string{"operation", "error_type"},
		),
		RetryDelay: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ropx_retry_delay_seconds",
				Help:    "Wait before a retry in seconds",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"operation"},
		),
		SucceededTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ropx_retried_calls_succeeded_total",
				Help: "Total number of retried calls that succeeded",
			},
			[]string{"operation"},
		),
		ExhaustedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ropx_retried_calls_exhausted_total",
				Help: "Total number of retried calls that failed after their last attempt",
			},
			[]string{"operation", "error_type"},
		),
		Attempts: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ropx_retried_call_attempts",
				Help:    "Number of attempts a retried call took",
				Buckets: prometheus.LinearBuckets(1, 1, 10),
			},
			[]string{"operation"},
		),
	}
}

func (o *Observer) Retrying(_ context.Context, ev boundary.RetryEvent) {
	o.RetriesTotal.WithLabelValues(ev.Operation, errorType(ev.Cause)).Inc()
	o.RetryDelay.WithLabelValues(ev.Operation).Observe(ev.Delay.Seconds())
}

func (o *Observer) Succeeded(_ context.Context, operation string, attempts int) {
	o.SucceededTotal.WithLabelValues(operation).Inc()
	o.Attempts.WithLabelValues(operation).Observe(float64(attempts))
}

func (o *Observer) Exhausted(_ context.Context, operation string, attempts int, cause error) {
	o.ExhaustedTotal.WithLabelValues(operation, errorType(cause)).Inc()
	o.Attempts.WithLabelValues(operation).Observe(float64(attempts))
}

// errorType labels a cause by its errkind tag, or as "panic", "canceled" or
// "other".
func errorType(cause error) string {
	var ce errkind.CommonError
	if errors.As(cause, &ce) {
		return string(ce.Tag())
	}
	var pe *rop.PanicError
	if errors.As(cause, &pe) {
		return "panic"
	}
	if rop.IsCancellationError(cause) {
		return "canceled"
	}
	return "other"
}
