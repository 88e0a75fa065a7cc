package seq

import "github.com/ib-77/ropx/pkg/rop"

// Signal tells Run whether to continue with the next step or to stop with a
// failure.
type Signal[E any] struct {
	abort   bool
	failure rop.Result[struct{}, E]
}

// Step is one unit of a sequence run by Run. Steps share values through
// variables captured by their closures.
type Step[E any] func() Signal[E]

func Continue[E any]() Signal[E] {
	return Signal[E]{}
}

func Abort[E any](failure E) Signal[E] {
	return Signal[E]{abort: true, failure: rop.Fail[struct{}](failure)}
}

// From continues on a successful r and aborts with the failure of r otherwise.
func From[V, E any](r rop.Result[V, E]) Signal[E] {
	if r.IsSuccess() {
		return Continue[E]()
	}
	return Signal[E]{abort: true, failure: rop.FailFrom[V, struct{}](r)}
}

// Assign stores the value of a successful r in dst and continues; dst is left
// untouched on failure.
func Assign[V, E any](dst *V, r rop.Result[V, E]) Signal[E] {
	if r.IsSuccess() {
		*dst = r.Result()
	}
	return From(r)
}

// Let returns a Step that evaluates fn and assigns its value to dst.
func Let[V, E any](dst *V, fn func() rop.Result[V, E]) Step[E] {
	return func() Signal[E] {
		return Assign(dst, fn())
	}
}

func (s Signal[E]) Aborted() bool {
	return s.abort
}

// Run evaluates steps in order and stops at the first abort, whose failure
// becomes the Result. final is evaluated only when every step continued.
func Run[T, E any](final func() rop.Result[T, E], steps ...Step[E]) rop.Result[T, E] {
	for _, step := range steps {
		if sig := step(); sig.abort {
			return rop.FailFrom[struct{}, T](sig.failure)
		}
	}
	return final()
}
