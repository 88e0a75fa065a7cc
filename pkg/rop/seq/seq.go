package seq

import (
	"errors"

	"github.com/ib-77/ropx/pkg/rop"
)

// ErrScopeClosed is the panic value raised when a scope is used after its
// sequence returned.
var ErrScopeClosed = errors.New("seq: scope used outside its sequence")

// Scope is handed to the body of Do. It must not be shared with other
// goroutines or retained after Do returns.
type Scope[E any] struct {
	closed bool
}

// shortCircuit is the panic value used to unwind a body at its first failure.
// It is only ever recovered by the driver owning scope.
type shortCircuit[E any] struct {
	scope   any
	failure rop.Result[struct{}, E]
}

// Do runs body and returns its Result. The first Bind on a failure stops the
// body and that failure, with its identity kept, becomes the Result of Do.
// Panics not raised by Bind on this scope propagate unchanged.
func Do[T, E any](body func(s *Scope[E]) rop.Result[T, E]) (out rop.Result[T, E]) {
	s := &Scope[E]{}
	defer func() {
		s.closed = true
		if v := recover(); v != nil {
			if sc, ok := v.(*shortCircuit[E]); ok && sc.scope == any(s) {
				out = rop.FailFrom[struct{}, T](sc.failure)
				return
			}
			panic(v)
		}
	}()
	return body(s)
}

// Bind returns the value of a successful r. For a failed r it stops the body
// of the Do owning s; no code after the call runs.
func Bind[V, E any](s *Scope[E], r rop.Result[V, E]) V {
	if s.closed {
		panic(ErrScopeClosed)
	}
	if r.IsSuccess() {
		return r.Result()
	}
	panic(&shortCircuit[E]{scope: s, failure: rop.FailFrom[V, struct{}](r)})
}
