package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result holds either a success value of type T or a failure value of type E.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       E
	isSuccess bool
}

func Success[T, E any](r T) Result[T, E] {
	return Result[T, E]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom re-types a failed result to a new success type, keeping its
// failure value, id and creation time. It panics when from is a success.
func FailFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	if from.isSuccess {
		panic("rop: FailFrom called with a successful result")
	}
	return Result[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Widen re-types the failure of r to the interface type F. Failures keep
// their id and creation time; successes are passed through the same way.
// It panics if E does not implement F.
func Widen[T, E, F any](r Result[T, E]) Result[T, F] {
	out := Result[T, F]{
		result:    r.result,
		isSuccess: r.isSuccess,
		createdAt: r.createdAt,
		id:        r.id,
	}
	if !r.isSuccess {
		f, ok := any(r.err).(F)
		if !ok {
			panic(fmt.Sprintf("rop: cannot widen failure %T to %T", r.err, out.err))
		}
		out.err = f
	}
	return out
}

func (r Result[T, E]) Result() T {
	return r.result
}

func (r Result[T, E]) Err() E {
	return r.err
}

// Get returns the success value, the failure value and whether r is a success.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.result, r.err, r.isSuccess
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

func (r Result[T, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.result)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}
