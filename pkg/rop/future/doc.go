// Package future provides a pending Result: a Future settles exactly once,
// either with a rop.Result or with a fault raised by the machinery that was
// producing it (a panic, or the waiting context ending).
//
// A failed Result is a value, reported with a nil error by Await; a fault is
// reported on the error channel. Callers keep the two apart.
package future
