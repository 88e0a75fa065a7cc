// Package seq runs a sequence of fallible steps as straight-line code that
// stops at the first failure.
//
// Do and Bind give early return without explicit branching after each step:
//
//	res := seq.Do(func(s *seq.Scope[error]) rop.Result[int, error] {
//	    a := seq.Bind(s, parse(x))
//	    b := seq.Bind(s, parse(y))
//	    return rop.Success[int, error](a + b)
//	})
//
// The first Bind on a failure unwinds the body and Do returns that failure.
// Otherwise Do returns whatever Result the body returns; a success is never
// inferred. The body must not recover panics raised by Bind.
//
// Run is the same protocol without unwinding: each Step reports Continue or
// Abort and Run folds over them.
//
// DoAsync and Await are the asynchronous form. The body runs on its own
// goroutine and suspends at each Await until the awaited Future settles; at
// most one awaited Future is outstanding per sequence. A faulted Future, or
// the context ending while waiting, faults the sequence. Faults travel on the
// error channel of future.Future.Await, apart from carried failures.
//
// Steps that fail with different types share one sequence by widening their
// failures to a common interface type with rop.Widen or solo.MapFailure.
package seq
