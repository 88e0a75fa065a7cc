// Package chain provides a fluent wrapper around Result[T, E]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// It composes functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[T, E] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and map the error to E
// - Map/MapFailure: transform the success or the failure value
// - RepeatUntil/While: apply a step in a loop until a condition or a failure
// - Or/And: pick the first success or the first failure among chains
// - Ensure: run side effects on success without changing the result
// - OrElse/Finally: collapse the chain into a final value
package chain
