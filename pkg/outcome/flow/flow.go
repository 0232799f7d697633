package flow

import (
	"context"
	"sync"

	"github.com/vrail/vrail/pkg/outcome"
)

// Engine transforms one result into another as part of a worker line.
type Engine[In, Out any] func(ctx context.Context, in outcome.Result[In]) outcome.Result[Out]

// Run processes inputs over lines parallel workers with an engine that
// preserves the value type.
func Run[T any](ctx context.Context, in <-chan outcome.Result[T],
	engine Engine[T, T], lines int) <-chan outcome.Result[T] {
	return Turnout(ctx, in, engine, lines)
}

// Turnout fans inputs out to lines workers and fans results back into a
// single channel. The output channel closes once the input channel is
// drained or the context is canceled.
func Turnout[In, Out any](ctx context.Context, in <-chan outcome.Result[In],
	engine Engine[In, Out], lines int) <-chan outcome.Result[Out] {

	out := make(chan outcome.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go locomotive(ctx, in, out, engine, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func locomotive[In, Out any](ctx context.Context, in <-chan outcome.Result[In],
	out chan<- outcome.Result[Out], engine Engine[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-in:
			if !ok {
				return
			}

			processed := engine(ctx, r)

			select {
			case <-ctx.Done():
				return
			case out <- processed:
			}
		}
	}
}

// Source emits the given values as successful results. The channel closes
// after the last value or when the context is canceled.
func Source[T any](ctx context.Context, values ...T) <-chan outcome.Result[T] {
	out := make(chan outcome.Result[T])

	go func() {
		defer close(out)

		for _, v := range values {
			select {
			case out <- outcome.Success(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Finalize folds every result into a concrete value via the matching handler.
func Finalize[In, Out any](ctx context.Context, in <-chan outcome.Result[In],
	onSuccess func(ctx context.Context, v In) Out,
	onFailure func(ctx context.Context, err error) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					return
				}

				var v Out
				if r.IsSuccess() {
					v = onSuccess(ctx, r.Value())
				} else {
					v = onFailure(ctx, r.Err())
				}

				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Drain collects a channel into a slice, stopping early if the context is
// canceled.
func Drain[T any](ctx context.Context, in <-chan T) []T {
	var collected []T

	for {
		select {
		case <-ctx.Done():
			return collected
		case v, ok := <-in:
			if !ok {
				return collected
			}
			collected = append(collected, v)
		}
	}
}
