package collect

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/core"
	"github.com/ib-77/ropx/pkg/rop/future"
)

// Collect returns the values of results in order, or the failure with the
// lowest index. An empty input yields an empty, non-nil slice.
func Collect[T, E any](results []rop.Result[T, E]) rop.Result[[]T, E] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsFailure() {
			return rop.FailFrom[T, []T](r)
		}
		values = append(values, r.Result())
	}
	return rop.Success[[]T, E](values)
}

// CollectAsync waits for every pending Result and then applies Collect, so the
// reported failure is the one with the lowest index whatever the settlement
// order. The error is the first fault observed, or ctx ending; it is never a
// carried failure.
func CollectAsync[T, E any](ctx context.Context, pending []future.Future[T, E]) (rop.Result[[]T, E], error) {
	settled := make([]rop.Result[T, E], len(pending))

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range pending {
		g.Go(func() error {
			r, err := f.Await(gctx)
			if err != nil {
				return err
			}
			settled[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return rop.Result[[]T, E]{}, err
	}
	return Collect(settled), nil
}

// CollectFuncs starts every fn concurrently and collects their Results like
// CollectAsync. The number of fns running at once is read from ctx with
// core.GetWorkerMaxCount and defaults to all of them. A panic in fn is
// reported as a *rop.PanicError fault.
func CollectFuncs[T, E any](ctx context.Context, fns ...func(ctx context.Context) rop.Result[T, E]) (rop.Result[[]T, E], error) {
	settled := make([]rop.Result[T, E], len(fns))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(core.GetWorkerMaxCount(ctx, len(fns)), 1))
	for i, fn := range fns {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := future.Go(gctx, fn).Await(gctx)
			if err != nil {
				return err
			}
			settled[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return rop.Result[[]T, E]{}, err
	}
	return Collect(settled), nil
}
