package chain

import (
	"context"

	"github.com/ib-77/ropx/pkg/rop"
)

// RepeatUntil applies onSuccess at least once and keeps applying it while
// until reports false for the new value. The first failure stops the loop.
func (c *Chain[T, E]) RepeatUntil(onSuccess func(context.Context, T) rop.Result[T, E],
	until func(context.Context, T) bool) *Chain[T, E] {

	if c.result.IsFailure() {
		return c
	}
	for {
		c = Then(c, onSuccess)
		if c.result.IsFailure() || until(c.ctx, c.result.Result()) {
			return c
		}
	}
}

// While applies onSuccess as long as while reports true for the current
// value. The first failure stops the loop.
func (c *Chain[T, E]) While(onSuccess func(context.Context, T) rop.Result[T, E],
	while func(context.Context, T) bool) *Chain[T, E] {

	for c.result.IsSuccess() && while(c.ctx, c.result.Result()) {
		c = Then(c, onSuccess)
	}
	return c
}

// Or returns the first successful chain among c and alternatives, or c when
// none succeeded.
func (c *Chain[T, E]) Or(alternatives ...*Chain[T, E]) *Chain[T, E] {
	if c.result.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.result.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain among c and required, or the last one
// when all succeeded.
func (c *Chain[T, E]) And(required ...*Chain[T, E]) *Chain[T, E] {
	last := c
	for _, ch := range append([]*Chain[T, E]{c}, required...) {
		if ch.result.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}
