package solo

import (
	"context"
	"errors"

	"github.com/ib-77/ropx/pkg/rop"
)

// Handlers pairs the two branches consumed by Match.
type Handlers[T, E, Out any] struct {
	OnSuccess func(ctx context.Context, r T) Out
	OnFailure func(ctx context.Context, err E) Out
}

func Succeed[T, E any](input T) rop.Result[T, E] {
	return rop.Success[T, E](input)
}

func Fail[T, E any](err E) rop.Result[T, E] {
	return rop.Fail[T](err)
}

func Validate[T, E any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, failure E)) rop.Result[T, E] {
	return AndValidate(ctx, Succeed[T, E](input), validate)
}

func AndValidate[T, E any](ctx context.Context, input rop.Result[T, E],
	validate func(ctx context.Context, in T) (valid bool, failure E)) rop.Result[T, E] {

	if input.IsSuccess() {

		if isValid, failure := validate(ctx, input.Result()); isValid {
			return input
		} else {
			return rop.Fail[T](failure)
		}
	}
	return input
}

// ValidateAll runs every validator against input. Failures are combined with
// merge; when breakOnError is set the first failure is returned as is.
func ValidateAll[T, E any](
	ctx context.Context,
	input rop.Result[T, E],
	breakOnError bool, // exit on first error
	merge func(acc, next E) E,
	inputsF ...func(ctx context.Context, in rop.Result[T, E]) rop.Result[T, E]) rop.Result[T, E] {

	var acc E
	failed := false
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Result[T, E]) rop.Result[T, E] {

			if current.IsFailure() {
				if failed {
					acc = merge(acc, current.Err())
				} else {
					acc = current.Err()
					failed = true
				}
			}

			if !failed {
				return current
			}

			return rop.Fail[T](acc)
		},
		inputsF...,
	)
}

// JoinErrors is a merge function for ValidateAll over plain errors.
func JoinErrors(acc, next error) error {
	e := rop.GetErrors(acc)
	e = append(e, next)
	return errors.Join(e...)
}

// Switch binds input to onSuccess. A failed input is passed through with its
// identity kept and onSuccess is not called.
func Switch[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, E]) rop.Result[Out, E] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, E] {

	if input.IsSuccess() {
		return rop.Success[Out, E](onSuccess(ctx, input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

func MapFailure[T, E, F any](ctx context.Context,
	input rop.Result[T, E],
	onFailure func(ctx context.Context, err E) F) rop.Result[T, F] {

	if input.IsFailure() {
		return rop.Fail[T](onFailure(ctx, input.Err()))
	}
	return rop.Widen[T, E, F](input)
}

func UnwrapOr[T, E any](input rop.Result[T, E], defaultValue T) T {
	if input.IsSuccess() {
		return input.Result()
	}
	return defaultValue
}

func UnwrapOrElse[T, E any](ctx context.Context, input rop.Result[T, E],
	onFailure func(ctx context.Context, err E) T) T {
	if input.IsSuccess() {
		return input.Result()
	}
	return onFailure(ctx, input.Err())
}

func Tee[T, E any](ctx context.Context,
	input rop.Result[T, E],
	onSuccess func(ctx context.Context, r rop.Result[T, E])) rop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T, E any](ctx context.Context,
	input rop.Result[T, E],
	condition func(ctx context.Context, r rop.Result[T, E]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T, E])) rop.Result[T, E] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T, E any](ctx context.Context, input rop.Result[T, E],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, err E)) rop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	} else {
		onFailure(ctx, input.Err())
	}

	return input
}

// Try calls onTryExecute for a successful input and converts a returned error
// into a failure through onError.
func Try[In, Out, E any](ctx context.Context, input rop.Result[In, E],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	onError func(ctx context.Context, err error) E) rop.Result[Out, E] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return rop.Fail[Out](onError(ctx, err))
		}

		return rop.Success[Out, E](out)
	}

	return rop.FailFrom[In, Out](input)
}

func FailOnError[T, E any](ctx context.Context, input rop.Result[T, E],
	maybeErr func(ctx context.Context, in T) error,
	onError func(ctx context.Context, err error) E) rop.Result[T, E] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Result())
		if err != nil {
			return rop.Fail[T](onError(ctx, err))
		} else {
			return input
		}
	}
	return input
}

func Finally[In, E, Out any](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onFailure(ctx, input.Err())
}

// Match forces both branches to be handled and returns the common result.
func Match[In, E, Out any](ctx context.Context, input rop.Result[In, E], handlers Handlers[In, E, Out]) Out {
	return Finally(ctx, input, handlers.OnSuccess, handlers.OnFailure)
}

func Join[T, E any](ctx context.Context,
	input rop.Result[T, E],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[T, E]) rop.Result[T, E],
	inputsF ...func(ctx context.Context, in rop.Result[T, E]) rop.Result[T, E]) rop.Result[T, E] {

	if len(inputsF) == 0 || concat == nil || !rop.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !rop.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !rop.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
