package flow

import (
	"context"

	"github.com/vrail/vrail/pkg/outcome"
	"github.com/vrail/vrail/pkg/outcome/pipe"
)

// Checking lifts a result-returning check into an engine that preserves the
// value type. Failed inputs pass through untouched.
func Checking[T any](check func(ctx context.Context, v T) outcome.Result[T]) Engine[T, T] {
	return func(ctx context.Context, in outcome.Result[T]) outcome.Result[T] {
		return pipe.FlatMap(ctx, in, check)
	}
}

// Mapping lifts a pure transformation into an engine.
func Mapping[In, Out any](transform func(ctx context.Context, v In) Out) Engine[In, Out] {
	return func(ctx context.Context, in outcome.Result[In]) outcome.Result[Out] {
		return pipe.Map(ctx, in, transform)
	}
}

// FlatMapping lifts a result-returning transformation into an engine.
func FlatMapping[In, Out any](transform func(ctx context.Context, v In) outcome.Result[Out]) Engine[In, Out] {
	return func(ctx context.Context, in outcome.Result[In]) outcome.Result[Out] {
		return pipe.FlatMap(ctx, in, transform)
	}
}

// Trying lifts a conventional (value, error) function into an engine.
func Trying[In, Out any](attempt func(ctx context.Context, v In) (Out, error)) Engine[In, Out] {
	return func(ctx context.Context, in outcome.Result[In]) outcome.Result[Out] {
		return pipe.Try(ctx, in, attempt)
	}
}

// Recovering lifts a failure handler into an engine; every result coming out
// of it is successful.
func Recovering[T any](handler func(ctx context.Context, err error) T) Engine[T, T] {
	return func(ctx context.Context, in outcome.Result[T]) outcome.Result[T] {
		return pipe.Recover(ctx, in, handler)
	}
}
