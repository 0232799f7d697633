package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/vrail/vrail/pkg/outcome"
	"github.com/vrail/vrail/pkg/outcome/pipe"
)

// Mode selects how a pipeline reacts to failing checks.
type Mode int

const (
	// FailFast stops at the first failing check; later checks never run.
	FailFast Mode = iota
	// CollectAll runs every check and aggregates all failures, in
	// declaration order, into a single joined error.
	CollectAll
)

func (m Mode) String() string {
	if m == CollectAll {
		return "collect-all"
	}
	return "fail-fast"
}

// ParseMode maps config and CLI spellings onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "fail-fast", "fail_fast", "failfast":
		return FailFast, nil
	case "collect-all", "collect_all", "collect":
		return CollectAll, nil
	default:
		return FailFast, fmt.Errorf("unknown validation mode %q", s)
	}
}

// Apply runs checks against input in declaration order according to mode.
// Checks that normalize the value feed the normalized value to later checks.
func Apply[T any](ctx context.Context, input T, mode Mode, checks ...Check[T]) outcome.Result[T] {
	if mode == CollectAll {
		return applyCollectAll(ctx, input, checks)
	}
	return applyFailFast(ctx, input, checks)
}

func applyFailFast[T any](ctx context.Context, input T, checks []Check[T]) outcome.Result[T] {
	res := outcome.Success(input)
	for _, check := range checks {
		res = pipe.FlatMap(ctx, res, check)
	}
	return res
}

func applyCollectAll[T any](ctx context.Context, input T, checks []Check[T]) outcome.Result[T] {
	current := input
	var errs []error

	for _, check := range checks {
		res := check(ctx, current)
		if res.IsFailure() {
			errs = append(errs, res.Err())
			continue
		}
		current = res.Value()
	}

	if len(errs) > 0 {
		return outcome.Failure[T](errors.Join(errs...))
	}
	return outcome.Success(current)
}
