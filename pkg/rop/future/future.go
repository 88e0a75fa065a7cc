package future

import (
	"context"
	"errors"
	"sync"

	"github.com/ib-77/ropx/pkg/rop"
)

// ErrAlreadySettled is the panic value raised when a Promise is settled twice.
var ErrAlreadySettled = errors.New("future: promise already settled")

type state[T, E any] struct {
	once   sync.Once
	done   chan struct{}
	result rop.Result[T, E]
	fault  error
}

func (s *state[T, E]) settle(result rop.Result[T, E], fault error) {
	settled := false
	s.once.Do(func() {
		s.result = result
		s.fault = fault
		close(s.done)
		settled = true
	})
	if !settled {
		panic(ErrAlreadySettled)
	}
}

// Promise is the write side of a pending Result.
type Promise[T, E any] struct {
	s *state[T, E]
}

// Future is the read side of a pending Result. A Future settles exactly once,
// either with a Result (success or failure) or with a fault raised by the
// machinery producing it. The two are reported on separate channels.
type Future[T, E any] struct {
	s *state[T, E]
}

func Create[T, E any]() (Promise[T, E], Future[T, E]) {
	s := &state[T, E]{done: make(chan struct{})}
	return Promise[T, E]{s: s}, Future[T, E]{s: s}
}

// Immediate returns a Future already settled with result.
func Immediate[T, E any](result rop.Result[T, E]) Future[T, E] {
	p, f := Create[T, E]()
	p.Fulfill(result)
	return f
}

// Faulted returns a Future already settled with fault.
func Faulted[T, E any](fault error) Future[T, E] {
	p, f := Create[T, E]()
	p.Fault(fault)
	return f
}

// Go runs fn on a new goroutine and returns a Future for its Result. A panic
// in fn settles the Future with a *rop.PanicError fault.
func Go[T, E any](ctx context.Context, fn func(ctx context.Context) rop.Result[T, E]) Future[T, E] {
	p, f := Create[T, E]()
	go func() {
		defer func() {
			if v := recover(); v != nil {
				p.Fault(rop.NewPanicError(v))
			}
		}()
		p.Fulfill(fn(ctx))
	}()
	return f
}

func (p Promise[T, E]) Fulfill(result rop.Result[T, E]) {
	p.s.settle(result, nil)
}

// Fault settles the promise with a fault. A nil fault is replaced with
// context.Canceled so the Future never reports a fault-free zero Result.
func (p Promise[T, E]) Fault(fault error) {
	if fault == nil {
		fault = context.Canceled
	}
	p.s.settle(rop.Result[T, E]{}, fault)
}

// Forward settles p with whatever f settles with.
func (p Promise[T, E]) Forward(f Future[T, E]) {
	go func() {
		<-f.s.done
		p.s.settle(f.s.result, f.s.fault)
	}()
}

// Done is closed once the Future settled.
func (f Future[T, E]) Done() <-chan struct{} {
	return f.s.done
}

// Await blocks until f settles or ctx is done. The error is non-nil only for a
// fault or for ctx ending first; a failed Result is returned with a nil error.
func (f Future[T, E]) Await(ctx context.Context) (rop.Result[T, E], error) {
	select {
	case <-f.s.done:
		return f.s.result, f.s.fault
	default:
	}

	select {
	case <-f.s.done:
		return f.s.result, f.s.fault
	case <-ctx.Done():
		return rop.Result[T, E]{}, ctx.Err()
	}
}

// Poll reports the settled outcome without blocking; ok is false while
// f is pending.
func (f Future[T, E]) Poll() (result rop.Result[T, E], fault error, ok bool) {
	select {
	case <-f.s.done:
		return f.s.result, f.s.fault, true
	default:
		return rop.Result[T, E]{}, nil, false
	}
}

// Then returns a Future settled with transform applied to f's Result. Faults
// pass through without calling transform.
func Then[A, B, E any](f Future[A, E], transform func(rop.Result[A, E]) rop.Result[B, E]) Future[B, E] {
	p, out := Create[B, E]()
	go func() {
		<-f.s.done
		if f.s.fault != nil {
			p.Fault(f.s.fault)
			return
		}
		defer func() {
			if v := recover(); v != nil {
				p.Fault(rop.NewPanicError(v))
			}
		}()
		p.Fulfill(transform(f.s.result))
	}()
	return out
}
