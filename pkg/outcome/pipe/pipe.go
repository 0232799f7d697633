package pipe

import (
	"context"

	"github.com/vrail/vrail/pkg/outcome"
)

func Succeed[T any](v T) outcome.Result[T] {
	return outcome.Success(v)
}

func Fail[T any](err error) outcome.Result[T] {
	return outcome.Failure[T](err)
}

// Map transforms the success value. A failed input is passed through and
// transform is never invoked.
func Map[In, Out any](ctx context.Context, in outcome.Result[In],
	transform func(ctx context.Context, v In) Out) outcome.Result[Out] {

	if in.IsSuccess() {
		return outcome.Success(transform(ctx, in.Value()))
	}
	return outcome.FailureFrom[In, Out](in)
}

// MapError transforms the error of a failed result. A successful input is
// returned unchanged and transform is never invoked.
func MapError[T any](ctx context.Context, in outcome.Result[T],
	transform func(ctx context.Context, err error) error) outcome.Result[T] {

	if in.IsFailure() {
		return outcome.Failure[T](transform(ctx, in.Err()))
	}
	return in
}

// FlatMap switches to a new result produced from the success value, so
// operations that can themselves fail compose without nesting. A failed
// input is passed through and transform is never invoked.
func FlatMap[In, Out any](ctx context.Context, in outcome.Result[In],
	transform func(ctx context.Context, v In) outcome.Result[Out]) outcome.Result[Out] {

	if in.IsSuccess() {
		return transform(ctx, in.Value())
	}
	return outcome.FailureFrom[In, Out](in)
}

// Recover turns a failure into a success via handler. The returned result is
// always in the success state; handler is never invoked on a success.
func Recover[T any](ctx context.Context, in outcome.Result[T],
	handler func(ctx context.Context, err error) T) outcome.Result[T] {

	if in.IsFailure() {
		return outcome.Success(handler(ctx, in.Err()))
	}
	return in
}

// RecoverWith gives handler a chance to retry a failure as a new result. A
// successful input is returned unchanged and handler is never invoked.
func RecoverWith[T any](ctx context.Context, in outcome.Result[T],
	handler func(ctx context.Context, err error) outcome.Result[T]) outcome.Result[T] {

	if in.IsFailure() {
		return handler(ctx, in.Err())
	}
	return in
}

// Try calls a conventional (value, error) function and folds a non-nil error
// into the failure channel.
func Try[In, Out any](ctx context.Context, in outcome.Result[In],
	attempt func(ctx context.Context, v In) (Out, error)) outcome.Result[Out] {

	if in.IsFailure() {
		return outcome.FailureFrom[In, Out](in)
	}

	out, err := attempt(ctx, in.Value())
	if err != nil {
		return outcome.Failure[Out](err)
	}
	return outcome.Success(out)
}

// Tee runs a side effect on the success value without changing the result.
func Tee[T any](ctx context.Context, in outcome.Result[T],
	effect func(ctx context.Context, v T)) outcome.Result[T] {

	if in.IsSuccess() {
		effect(ctx, in.Value())
	}
	return in
}

// DoubleTee runs one of two side effects depending on the state, without
// changing the result. Either handler may be nil.
func DoubleTee[T any](ctx context.Context, in outcome.Result[T],
	onSuccess func(ctx context.Context, v T),
	onFailure func(ctx context.Context, err error)) outcome.Result[T] {

	if in.IsSuccess() {
		if onSuccess != nil {
			onSuccess(ctx, in.Value())
		}
	} else if onFailure != nil {
		onFailure(ctx, in.Err())
	}
	return in
}

// Finally collapses a result into a concrete value via the matching handler.
func Finally[In, Out any](ctx context.Context, in outcome.Result[In],
	onSuccess func(ctx context.Context, v In) Out,
	onFailure func(ctx context.Context, err error) Out) Out {

	if in.IsSuccess() {
		return onSuccess(ctx, in.Value())
	}
	return onFailure(ctx, in.Err())
}
