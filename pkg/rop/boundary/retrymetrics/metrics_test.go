package retrymetrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/boundary"
	"github.com/ib-77/ropx/pkg/rop/errkind"
)

func noSleep(context.Context, time.Duration) error { return nil }

func TestObserver_Exhausted(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	obs := New(reg)

	got := boundary.Try(context.Background(), func(ctx context.Context) (int, error) {
		return 0, errkind.NotFound("user", "42")
	}, boundary.Options[errkind.CommonError]{
		Catch:     boundary.CatchCommon("get user"),
		Retry:     &boundary.RetryPolicy{Times: 2, Delay: 10 * time.Millisecond},
		Operation: "get user",
		Sleep:     noSleep,
		Observer:  obs,
	})
	require.True(t, got.IsFailure())

	assert.Equal(t, 2.0, testutil.ToFloat64(obs.RetriesTotal.WithLabelValues("get user", "NotFoundError")))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.ExhaustedTotal.WithLabelValues("get user", "NotFoundError")))
	assert.Equal(t, 0, testutil.CollectAndCount(obs.SucceededTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(obs.RetryDelay))
}

func TestObserver_Succeeded(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	obs := New(reg)

	calls := 0
	got := boundary.Try(context.Background(), func(ctx context.Context) (int, error) {
		calls++
		if calls < 2 {
			return 0, errors.New("transient")
		}
		return calls, nil
	}, boundary.Options[error]{
		Catch:     func(cause error) error { return cause },
		Retry:     &boundary.RetryPolicy{Times: 3},
		Operation: "ping",
		Sleep:     noSleep,
		Observer:  obs,
	})
	require.True(t, got.IsSuccess())

	assert.Equal(t, 1.0, testutil.ToFloat64(obs.RetriesTotal.WithLabelValues("ping", "other")))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.SucceededTotal.WithLabelValues("ping")))
	assert.Equal(t, 0, testutil.CollectAndCount(obs.ExhaustedTotal))
}

func TestNew_RegistersOnRegistry(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}

func TestErrorType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TimeoutError", errorType(errkind.Timeout("x", time.Second)))
	assert.Equal(t, "panic", errorType(&rop.PanicError{Value: "boom"}))
	assert.Equal(t, "canceled", errorType(fmt.Errorf("dial: %w", context.DeadlineExceeded)))
	assert.Equal(t, "other", errorType(errors.New("plain")))
}
