// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T, E]. These functions form the core building blocks for
// failure-aware pipelines without channels.
//
// Highlights:
// - Succeed/Fail: construct Result[T, E]
// - Switch: bind a Result[In, E] to a function returning Result[Out, E]
// - Map/MapFailure: transform the success or the failure value
// - UnwrapOr/UnwrapOrElse: extract the value with a fallback
// - Match/Finally: reduce to a concrete value via success/failure handlers
// - Validate/AndValidate/ValidateAll: apply validators producing failures
// - Try/FailOnError: call a function returning error and map it to E
// - Tee/TeeIf/DoubleTee: side-effect helpers
//
// A failed input passes through every combinator that only touches the
// success branch with its Id and CreatedAt unchanged.
package solo
