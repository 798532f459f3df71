package chain

import (
	"context"

	"github.com/ib-77/try2/pkg/rop"
	"github.com/ib-77/try2/pkg/rop/solo"
)

// Chain wraps a rop.Nested with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx    context.Context
	result rop.Nested[T, E]
}

// Start creates a new chain from a two-layer outcome
func Start[T, E any](ctx context.Context, result rop.Nested[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a value, successful on both layers
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: solo.Lift[T, E](value),
	}
}

// FromTry creates a new chain from a (T, error) result, using classify to pick inner failures
func FromTry[T, E any](ctx context.Context, value T, err error, classify func(error) (E, bool)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: solo.SplitResult(value, err, classify),
	}
}

// Result returns the underlying rop.Nested
func (c *Chain[T, E]) Result() rop.Nested[T, E] {
	return c.result
}

// Then chains a function that returns an inner outcome
func Then[T, U, E any](c *Chain[T, E], onOk func(context.Context, T) rop.Outcome[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onOk),
	}
}

// ThenTry chains a function that returns (rop.Outcome[U, E], error)
func ThenTry[T, U, E any](c *Chain[T, E], tryOnOk func(context.Context, T) (rop.Outcome[U, E], error)) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnOk),
	}
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onOk func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onOk),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onOk func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    c.ctx,
		result: solo.Tee(c.ctx, c.result, onOk),
	}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, E, U any](c *Chain[T, E], onOk func(context.Context, T) U,
	onInner func(context.Context, E) U, onOuter func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onOk, onInner, onOuter)
}
