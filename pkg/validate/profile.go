package validate

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/vrail/vrail/pkg/outcome"
	"github.com/vrail/vrail/pkg/outcome/pipe"
)

// Fields is the raw named input to a validation run.
type Fields map[string]string

// Profile is the validated account example: a lowercased email, an accepted
// password and an age within bounds.
type Profile struct {
	Email    string
	Password string
	Age      int
}

const (
	MinAge = 0
	MaxAge = 120

	MinPasswordLength = 8
)

// Email validates an email value: emptiness and format are distinct
// conditions, checked in that order. The accepted value is lowercased.
func Email(ctx context.Context, value string) outcome.Result[string] {
	return Apply(ctx, value, FailFast, NonEmpty("email"), EmailFormat("email"))
}

// PasswordChecks returns the password conditions in declaration order. Each
// condition is independently reportable in CollectAll mode.
func PasswordChecks() []Check[string] {
	return []Check[string]{
		NonEmpty("password"),
		MinLength("password", MinPasswordLength),
		HasUppercase("password"),
		HasDigit("password"),
	}
}

// Password applies the password conditions according to mode.
func Password(ctx context.Context, value string, mode Mode) outcome.Result[string] {
	return Apply(ctx, value, mode, PasswordChecks()...)
}

// Age parses and bounds-checks an age value. Range violations carry the
// attempted value and the valid bounds.
func Age(ctx context.Context, raw string) outcome.Result[int] {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return outcome.Failure[int](EmptyField("age"))
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return outcome.Failure[int](InvalidFormat("age", "whole number"))
	}

	return InRange("age", MinAge, MaxAge)(ctx, n)
}

// ValidateProfile validates the email, password and age fields, in that
// order. FailFast returns the first failure without running later
// validators; CollectAll reports every failing condition in the same order.
func ValidateProfile(ctx context.Context, fields Fields, mode Mode) outcome.Result[Profile] {
	if mode == CollectAll {
		return profileCollectAll(ctx, fields)
	}
	return profileFailFast(ctx, fields)
}

func profileFailFast(ctx context.Context, fields Fields) outcome.Result[Profile] {
	return pipe.FlatMap(ctx, Email(ctx, fields["email"]),
		func(ctx context.Context, email string) outcome.Result[Profile] {
			return pipe.FlatMap(ctx, Password(ctx, fields["password"], FailFast),
				func(ctx context.Context, password string) outcome.Result[Profile] {
					return pipe.Map(ctx, Age(ctx, fields["age"]),
						func(_ context.Context, age int) Profile {
							return Profile{Email: email, Password: password, Age: age}
						})
				})
		})
}

func profileCollectAll(ctx context.Context, fields Fields) outcome.Result[Profile] {
	email := Email(ctx, fields["email"])
	password := Password(ctx, fields["password"], CollectAll)
	age := Age(ctx, fields["age"])

	var errs []error
	for _, err := range []error{email.Err(), password.Err(), age.Err()} {
		if err != nil {
			// flatten nested joins so the aggregate stays one entry
			// per failed condition
			errs = append(errs, outcome.Errors(err)...)
		}
	}

	if len(errs) > 0 {
		return outcome.Failure[Profile](errors.Join(errs...))
	}

	return outcome.Success(Profile{
		Email:    email.Value(),
		Password: password.Value(),
		Age:      age.Value(),
	})
}
