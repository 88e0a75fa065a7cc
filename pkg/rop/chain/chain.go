package chain

import (
	"context"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx    context.Context
	result rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T, E any](ctx context.Context, result rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: rop.Success[T, E](value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

// Then chains a function that returns rop.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) rop.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error); the error is mapped to E
func ThenTry[T, U, E any](c *Chain[T, E], tryOnSuccess func(context.Context, T) (U, error),
	onError func(context.Context, error) E) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess, onError),
	}
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// MapFailure chains a transformation of the failure value
func MapFailure[T, E, F any](c *Chain[T, E], onFailure func(context.Context, E) F) *Chain[T, F] {
	return &Chain[T, F]{
		ctx:    c.ctx,
		result: solo.MapFailure(c.ctx, c.result, onFailure),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: solo.Tee(c.ctx, c.result,
			func(ctx context.Context, result rop.Result[T, E]) {
				onSuccess(ctx, result.Result())
			}),
	}
}

// OrElse returns the success value or the value computed from the failure
func (c *Chain[T, E]) OrElse(onFailure func(context.Context, E) T) T {
	return solo.UnwrapOrElse(c.ctx, c.result, onFailure)
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, E, U any](c *Chain[T, E], onSuccess func(context.Context, T) U, onFailure func(context.Context, E) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
