package seq

import (
	"context"
	"sync/atomic"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/future"
)

// AsyncScope is handed to the body of DoAsync. It must only be used from the
// body's goroutine.
type AsyncScope[E any] struct {
	ctx    context.Context
	closed atomic.Bool
}

// Context returns the context the sequence waits with.
func (s *AsyncScope[E]) Context() context.Context {
	return s.ctx
}

type asyncFault struct {
	scope any
	err   error
}

// DoAsync runs body on its own goroutine and returns a Future for its Result.
//
// The first Await or Unwrap on a failure stops the body and that failure
// settles the Future. A fault of an awaited Future, ctx ending while waiting,
// or a panic in body settles the Future with a fault instead; faults are never
// reported as failures.
func DoAsync[T, E any](ctx context.Context,
	body func(ctx context.Context, s *AsyncScope[E]) rop.Result[T, E]) future.Future[T, E] {

	p, f := future.Create[T, E]()
	s := &AsyncScope[E]{ctx: ctx}

	go func() {
		res, fault := runAsync(ctx, s, body)
		if fault != nil {
			p.Fault(fault)
			return
		}
		p.Fulfill(res)
	}()

	return f
}

// runAsync closes s before the outcome is published, so a scope leaked from
// the body is already unusable once the Future settles.
func runAsync[T, E any](ctx context.Context, s *AsyncScope[E],
	body func(ctx context.Context, s *AsyncScope[E]) rop.Result[T, E]) (res rop.Result[T, E], fault error) {

	defer func() {
		s.closed.Store(true)
		v := recover()
		if v == nil {
			return
		}
		switch sig := v.(type) {
		case *shortCircuit[E]:
			if sig.scope == any(s) {
				res = rop.FailFrom[struct{}, T](sig.failure)
				return
			}
		case *asyncFault:
			if sig.scope == any(s) {
				fault = sig.err
				return
			}
		}
		fault = rop.NewPanicError(v)
	}()

	return body(ctx, s), nil
}

// Await suspends the body until f settles and returns its success value. A
// failure stops the body like Bind; a fault stops it and faults the sequence.
func Await[V, E any](s *AsyncScope[E], f future.Future[V, E]) V {
	if s.closed.Load() {
		panic(ErrScopeClosed)
	}
	r, err := f.Await(s.ctx)
	if err != nil {
		panic(&asyncFault{scope: s, err: err})
	}
	return unwrap(s, r)
}

// AwaitFunc starts the work with the scope's context and awaits it. The work
// of the next step is started only after this one settled.
func AwaitFunc[V, E any](s *AsyncScope[E], start func(ctx context.Context) future.Future[V, E]) V {
	if s.closed.Load() {
		panic(ErrScopeClosed)
	}
	return Await(s, start(s.ctx))
}

// Unwrap is Bind for a Result that is already settled.
func Unwrap[V, E any](s *AsyncScope[E], r rop.Result[V, E]) V {
	if s.closed.Load() {
		panic(ErrScopeClosed)
	}
	return unwrap(s, r)
}

func unwrap[V, E any](s *AsyncScope[E], r rop.Result[V, E]) V {
	if r.IsSuccess() {
		return r.Result()
	}
	panic(&shortCircuit[E]{scope: s, failure: rop.FailFrom[V, struct{}](r)})
}
