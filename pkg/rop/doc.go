// Package rop defines Result[T, E], a two-variant container holding either a
// success value of type T or a failure value of type E, never both.
//
// Combinators over Result live in solo (plain functions) and chain (a fluent
// wrapper). Sequences with early return live in seq, batch collection in
// collect, and the translation of (T, error) functions into Results, with
// optional retry, in boundary. The closed set of common failure kinds is in
// errkind.
package rop
