package chain

import (
	"context"

	"github.com/vrail/vrail/pkg/outcome"
	"github.com/vrail/vrail/pkg/outcome/pipe"
)

// Chain wraps an outcome.Result with a context to enable fluent composition.
type Chain[T any] struct {
	ctx context.Context
	res outcome.Result[T]
}

// Start creates a new chain from an existing result.
func Start[T any](ctx context.Context, res outcome.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: ctx, res: res}
}

// FromValue creates a new chain from a successful value.
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{ctx: ctx, res: outcome.Success(value)}
}

// Result returns the underlying result.
func (c *Chain[T]) Result() outcome.Result[T] {
	return c.res
}

// Then chains a function that returns outcome.Result[U].
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) outcome.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: pipe.FlatMap(c.ctx, c.res, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error).
func ThenTry[T, U any](c *Chain[T], attempt func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: pipe.Try(c.ctx, c.res, attempt),
	}
}

// Map chains a pure transformation function.
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		res: pipe.Map(c.ctx, c.res, onSuccess),
	}
}

// MapError transforms the error on the failure path.
func (c *Chain[T]) MapError(transform func(context.Context, error) error) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: pipe.MapError(c.ctx, c.res, transform),
	}
}

// Recover turns a failure into a success; the chain is guaranteed to hold a
// successful result afterwards.
func (c *Chain[T]) Recover(handler func(context.Context, error) T) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: pipe.Recover(c.ctx, c.res, handler),
	}
}

// RecoverWith retries a failure as a new result.
func (c *Chain[T]) RecoverWith(handler func(context.Context, error) outcome.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: pipe.RecoverWith(c.ctx, c.res, handler),
	}
}

// Ensure performs a side effect on success without changing the result.
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		res: pipe.Tee(c.ctx, c.res, onSuccess),
	}
}

// Finally collapses the chain into a final value.
func Finally[T, U any](c *Chain[T],
	onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U) U {
	return pipe.Finally(c.ctx, c.res, onSuccess, onFailure)
}
