package solo

import (
	"context"

	"github.com/ib-77/try2/pkg/rop"
)

// Switch moves a two-layer outcome to the next step. The step runs only when both layers succeeded.
func Switch[In, Out, E any](ctx context.Context,
	input rop.Nested[In, E],
	onOk func(ctx context.Context, r In) rop.Outcome[Out, E]) rop.Nested[Out, E] {

	inner, early, ok := Unwrap[Out](input)
	if !ok {
		return early
	}
	v, early, ok := Try2[Out](inner)
	if !ok {
		return early
	}
	return rop.Success(onOk(ctx, v))
}

func Map[In, Out, E any](ctx context.Context,
	input rop.Nested[In, E],
	onOk func(ctx context.Context, r In) Out) rop.Nested[Out, E] {

	return Switch(ctx, input, func(ctx context.Context, r In) rop.Outcome[Out, E] {
		return rop.Ok[Out, E](onOk(ctx, r))
	})
}

// Try runs a step returning the tuple form. A non-nil error from the step becomes an outer failure.
func Try[In, Out, E any](ctx context.Context,
	input rop.Nested[In, E],
	onTryExecute func(ctx context.Context, r In) (rop.Outcome[Out, E], error)) rop.Nested[Out, E] {

	inner, early, ok := Unwrap[Out](input)
	if !ok {
		return early
	}
	v, early, ok := Try2[Out](inner)
	if !ok {
		return early
	}

	out, err := onTryExecute(ctx, v)
	if !rop.IsNil(err) {
		if rop.IsCancellationError(err) {
			return rop.Cancel[rop.Outcome[Out, E]](err)
		}
		return rop.Fail[rop.Outcome[Out, E]](err)
	}
	return rop.Success(out)
}

func Tee[T, E any](ctx context.Context,
	input rop.Nested[T, E],
	onOk func(ctx context.Context, r T)) rop.Nested[T, E] {

	if input.IsSuccess() && input.Result().IsOk() {
		onOk(ctx, input.Result().Value())
	}
	return input
}

// Finally collapses a two-layer outcome. Cancellation is reported through onOuter.
func Finally[T, E, Out any](ctx context.Context, input rop.Nested[T, E],
	onOk func(ctx context.Context, r T) Out,
	onInner func(ctx context.Context, f E) Out,
	onOuter func(ctx context.Context, err error) Out) Out {

	if input.IsFailure() {
		return onOuter(ctx, input.Err())
	}
	v, f, ok := input.Result().Get()
	if ok {
		return onOk(ctx, v)
	}
	return onInner(ctx, f)
}
