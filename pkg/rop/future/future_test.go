package future

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropx/pkg/rop"
)

func TestImmediate(t *testing.T) {
	t.Parallel()

	res, err := Immediate(rop.Success[int, string](42)).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, res.Result())

	res, err = Immediate(rop.Fail[int]("error")).Await(context.Background())
	require.NoError(t, err)
	assert.True(t, res.IsFailure())
	assert.Equal(t, "error", res.Err())
}

func TestGo_SettlesWithResult(t *testing.T) {
	t.Parallel()

	f := Go(context.Background(), func(ctx context.Context) rop.Result[string, error] {
		time.Sleep(time.Millisecond)
		return rop.Success[string, error]("done")
	})

	res, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "done", res.Result())

	_, _, ok := f.Poll()
	assert.True(t, ok)
}

func TestGo_PanicBecomesFault(t *testing.T) {
	t.Parallel()

	f := Go(context.Background(), func(ctx context.Context) rop.Result[int, error] {
		panic(errors.New("kaput"))
	})

	_, err := f.Await(context.Background())
	var pe *rop.PanicError
	require.ErrorAs(t, err, &pe)
	assert.EqualError(t, pe.Unwrap(), "kaput")
	assert.NotEmpty(t, pe.Stack)
}

func TestAwait_ContextEnds(t *testing.T) {
	t.Parallel()

	_, f := Create[int, string]()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, _, ok := f.Poll()
	assert.False(t, ok)
}

func TestPromise_SettleTwicePanics(t *testing.T) {
	t.Parallel()

	p, _ := Create[int, string]()
	p.Fulfill(rop.Success[int, string](1))

	assert.PanicsWithValue(t, ErrAlreadySettled, func() {
		p.Fault(errors.New("late"))
	})
}

func TestPromise_NilFault(t *testing.T) {
	t.Parallel()

	_, err := Faulted[int, string](nil).Await(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestForward(t *testing.T) {
	t.Parallel()

	src, srcF := Create[int, string]()
	dst, dstF := Create[int, string]()
	dst.Forward(srcF)

	src.Fulfill(rop.Fail[int]("forwarded"))

	res, err := dstF.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "forwarded", res.Err())
}

func TestThen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	double := func(r rop.Result[int, string]) rop.Result[int, string] {
		if r.IsFailure() {
			return r
		}
		return rop.Success[int, string](r.Result() * 2)
	}

	res, err := Then(Immediate(rop.Success[int, string](21)), double).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, res.Result())

	errDown := errors.New("down")
	called := false
	_, err = Then(Faulted[int, string](errDown), func(r rop.Result[int, string]) rop.Result[int, string] {
		called = true
		return r
	}).Await(ctx)
	assert.ErrorIs(t, err, errDown)
	assert.False(t, called)
}
