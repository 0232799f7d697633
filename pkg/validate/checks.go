package validate

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/vrail/vrail/pkg/outcome"
)

// Check inspects a value and either passes it through, possibly normalized,
// or fails with a validation error.
type Check[T any] func(ctx context.Context, v T) outcome.Result[T]

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// NonEmpty fails with an empty-field error when the value has no content.
func NonEmpty(field string) Check[string] {
	return func(_ context.Context, v string) outcome.Result[string] {
		if strings.TrimSpace(v) == "" {
			return outcome.Failure[string](EmptyField(field))
		}
		return outcome.Success(v)
	}
}

// Trimmed strips surrounding whitespace. It never fails.
func Trimmed() Check[string] {
	return func(_ context.Context, v string) outcome.Result[string] {
		return outcome.Success(strings.TrimSpace(v))
	}
}

// Matches fails with an invalid-format error when the value does not match
// pattern. The expected description is what callers see in the message.
func Matches(field, expected string, pattern *regexp.Regexp) Check[string] {
	return func(_ context.Context, v string) outcome.Result[string] {
		if !pattern.MatchString(v) {
			return outcome.Failure[string](InvalidFormat(field, expected))
		}
		return outcome.Success(v)
	}
}

// EmailFormat checks the value against the email shape and lowercases it on
// success. Emptiness is a separate condition; see NonEmpty.
func EmailFormat(field string) Check[string] {
	return func(_ context.Context, v string) outcome.Result[string] {
		if !emailPattern.MatchString(v) {
			return outcome.Failure[string](InvalidFormat(field, "valid email address"))
		}
		return outcome.Success(strings.ToLower(v))
	}
}

// MinLength requires at least min characters.
func MinLength(field string, min int) Check[string] {
	return func(_ context.Context, v string) outcome.Result[string] {
		if len([]rune(v)) < min {
			return outcome.Failure[string](InvalidFormat(field, fmt.Sprintf("at least %d characters", min)))
		}
		return outcome.Success(v)
	}
}

// HasUppercase requires at least one uppercase letter.
func HasUppercase(field string) Check[string] {
	return func(_ context.Context, v string) outcome.Result[string] {
		for _, r := range v {
			if unicode.IsUpper(r) {
				return outcome.Success(v)
			}
		}
		return outcome.Failure[string](InvalidFormat(field, "at least one uppercase letter"))
	}
}

// HasDigit requires at least one decimal digit.
func HasDigit(field string) Check[string] {
	return func(_ context.Context, v string) outcome.Result[string] {
		for _, r := range v {
			if unicode.IsDigit(r) {
				return outcome.Success(v)
			}
		}
		return outcome.Failure[string](InvalidFormat(field, "at least one digit"))
	}
}

// InRange requires min <= v <= max and reports the attempted value together
// with the bounds on failure.
func InRange(field string, min, max int) Check[int] {
	return func(_ context.Context, v int) outcome.Result[int] {
		if v < min || v > max {
			return outcome.Failure[int](OutOfRange(field, v, min, max))
		}
		return outcome.Success(v)
	}
}

// OneOf requires the value to be one of the allowed spellings.
func OneOf(field string, allowed []string) Check[string] {
	expected := "one of [" + strings.Join(allowed, ", ") + "]"
	return func(_ context.Context, v string) outcome.Result[string] {
		for _, a := range allowed {
			if v == a {
				return outcome.Success(v)
			}
		}
		return outcome.Failure[string](InvalidFormat(field, expected))
	}
}
