package seq

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/future"
)

func resolved[T any](v T) future.Future[T, string] {
	return future.Immediate(rop.Success[T, string](v))
}

func TestDoAsync_AllAwaitsSucceed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res, err := DoAsync(ctx, func(ctx context.Context, s *AsyncScope[string]) rop.Result[int, string] {
		a := Await(s, resolved(10))
		b := Await(s, resolved(20))
		return rop.Success[int, string](a + b)
	}).Await(ctx)

	require.NoError(t, err)
	require.True(t, res.IsSuccess())
	assert.Equal(t, 30, res.Result())
}

func TestDoAsync_ReturnsFirstFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res, err := DoAsync(ctx, func(ctx context.Context, s *AsyncScope[string]) rop.Result[int, string] {
		a := Await(s, resolved(10))
		b := Await(s, future.Immediate(rop.Fail[int]("async fail")))
		return rop.Success[int, string](a + b)
	}).Await(ctx)

	require.NoError(t, err)
	require.True(t, res.IsFailure())
	assert.Equal(t, "async fail", res.Err())
}

func TestDoAsync_ShortCircuits(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var sideEffect atomic.Bool
	res, err := DoAsync(ctx, func(ctx context.Context, s *AsyncScope[string]) rop.Result[struct{}, string] {
		Await(s, future.Immediate(rop.Fail[struct{}]("stop")))
		sideEffect.Store(true)
		return rop.Success[struct{}, string](struct{}{})
	}).Await(ctx)

	require.NoError(t, err)
	require.True(t, res.IsFailure())
	assert.Equal(t, "stop", res.Err())
	assert.False(t, sideEffect.Load())
}

func TestDoAsync_RealAsyncOperations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	type user struct{ name string }
	fetchUser := func(ctx context.Context, id int) future.Future[user, string] {
		return future.Go(ctx, func(ctx context.Context) rop.Result[user, string] {
			time.Sleep(time.Millisecond)
			if id > 0 {
				return rop.Success[user, string](user{name: "Alice"})
			}
			return rop.Fail[user]("invalid id")
		})
	}

	res, err := DoAsync(ctx, func(ctx context.Context, s *AsyncScope[string]) rop.Result[string, string] {
		u := AwaitFunc(s, func(ctx context.Context) future.Future[user, string] { return fetchUser(ctx, 1) })
		return rop.Success[string, string](u.name)
	}).Await(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Alice", res.Result())
}

func TestDoAsync_StepsNeverOverlap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var inFlight, maxInFlight atomic.Int32
	step := func(v int) func(ctx context.Context) future.Future[int, string] {
		return func(ctx context.Context) future.Future[int, string] {
			return future.Go(ctx, func(ctx context.Context) rop.Result[int, string] {
				n := inFlight.Add(1)
				for {
					m := maxInFlight.Load()
					if n <= m || maxInFlight.CompareAndSwap(m, n) {
						break
					}
				}
				time.Sleep(2 * time.Millisecond)
				inFlight.Add(-1)
				return rop.Success[int, string](v)
			})
		}
	}

	res, err := DoAsync(ctx, func(ctx context.Context, s *AsyncScope[string]) rop.Result[int, string] {
		sum := 0
		for i := 1; i <= 4; i++ {
			sum += AwaitFunc(s, step(i))
		}
		return rop.Success[int, string](sum)
	}).Await(ctx)

	require.NoError(t, err)
	assert.Equal(t, 10, res.Result())
	assert.Equal(t, int32(1), maxInFlight.Load())
}

func TestDoAsync_FaultIsNotAFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	errBroken := errors.New("broken transport")

	after := false
	res, err := DoAsync(ctx, func(ctx context.Context, s *AsyncScope[string]) rop.Result[int, string] {
		v := Await(s, future.Faulted[int, string](errBroken))
		after = true
		return rop.Success[int, string](v)
	}).Await(ctx)

	require.ErrorIs(t, err, errBroken)
	assert.False(t, res.IsSuccess())
	assert.Empty(t, res.Err())
	assert.False(t, after)
}

func TestDoAsync_PanicInBodyIsFault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := DoAsync(ctx, func(ctx context.Context, s *AsyncScope[string]) rop.Result[int, string] {
		panic("boom")
	}).Await(ctx)

	var pe *rop.PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "boom", pe.Value)
}

func TestDoAsync_ContextEndsWhileWaiting(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	_, never := future.Create[int, string]()

	out := DoAsync(ctx, func(ctx context.Context, s *AsyncScope[string]) rop.Result[int, string] {
		return rop.Success[int, string](Await(s, never))
	})
	cancel()

	_, err := out.Await(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUnwrap_SettledResults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	res, err := DoAsync(ctx, func(ctx context.Context, s *AsyncScope[string]) rop.Result[int, string] {
		a := Unwrap(s, rop.Success[int, string](2))
		b := Unwrap(s, rop.Fail[int]("sync fail"))
		return rop.Success[int, string](a + b)
	}).Await(ctx)

	require.NoError(t, err)
	assert.Equal(t, "sync fail", res.Err())
}

func TestAwait_AfterSequencePanics(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var leaked *AsyncScope[string]
	_, err := DoAsync(ctx, func(ctx context.Context, s *AsyncScope[string]) rop.Result[int, string] {
		leaked = s
		return rop.Success[int, string](1)
	}).Await(ctx)
	require.NoError(t, err)

	assert.PanicsWithValue(t, ErrScopeClosed, func() {
		Await(leaked, resolved(1))
	})
}
