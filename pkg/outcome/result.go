package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Result represents the outcome of an operation that either succeeded with a
// value of type T or failed with an error. A Result is always in exactly one
// of the two states and is immutable once constructed; combinators derive new
// instances instead of mutating.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom carries a failure across a value-type boundary, preserving the
// original identity, creation time and error.
func FailureFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the success value. It is only meaningful when IsSuccess is
// true; callers must check the state first or use ValueOr.
func (r Result[T]) Value() T {
	return r.value
}

// ValueOr returns the success value, or fallback when the result is a failure.
func (r Result[T]) ValueOr(fallback T) T {
	if r.isSuccess {
		return r.value
	}
	return fallback
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// IsCanceled reports whether the failure was caused by context cancellation
// or a deadline.
func (r Result[T]) IsCanceled() bool {
	return !r.isSuccess && IsCancellation(r.err)
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
