package validate

import (
	"errors"
	"fmt"

	"github.com/vrail/vrail/pkg/outcome"
)

// Kind classifies a validation failure.
type Kind string

const (
	KindEmptyField    Kind = "empty_field"
	KindInvalidFormat Kind = "invalid_format"
	KindOutOfRange    Kind = "out_of_range"
	KindCustom        Kind = "custom"
)

// Error is a single validation failure tied to a named field. All associated
// context is fixed at construction.
type Error struct {
	Kind     Kind
	Field    string
	Expected string // InvalidFormat: description of the expected shape
	Value    int    // OutOfRange: the attempted value
	Min      int    // OutOfRange: lower bound (inclusive)
	Max      int    // OutOfRange: upper bound (inclusive)
	Message  string
	cause    error
}

// EmptyField reports a required field with no content.
func EmptyField(field string) *Error {
	return &Error{Kind: KindEmptyField, Field: field}
}

// InvalidFormat reports content that does not match the expected shape.
func InvalidFormat(field, expected string) *Error {
	return &Error{Kind: KindInvalidFormat, Field: field, Expected: expected}
}

// OutOfRange reports a numeric value outside the allowed inclusive bounds.
// The attempted value and the bounds are kept so the caller can self-correct.
func OutOfRange(field string, value, min, max int) *Error {
	return &Error{Kind: KindOutOfRange, Field: field, Value: value, Min: min, Max: max}
}

// Custom is the escape hatch for conditions not otherwise classified.
func Custom(message string) *Error {
	return &Error{Kind: KindCustom, Message: message}
}

// Customf formats a custom validation error.
func Customf(format string, args ...any) *Error {
	return Custom(fmt.Sprintf(format, args...))
}

// Wrap builds a custom validation error around an underlying cause.
func Wrap(message string, cause error) *Error {
	return &Error{Kind: KindCustom, Message: message, cause: cause}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyField:
		return fmt.Sprintf("%s: required field is empty", e.Field)
	case KindInvalidFormat:
		return fmt.Sprintf("%s: expected %s", e.Field, e.Expected)
	case KindOutOfRange:
		return fmt.Sprintf("%s: %d is out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
	default:
		if e.Field != "" {
			return e.Field + ": " + e.Message
		}
		return e.Message
	}
}

func (e *Error) Unwrap() error {
	return e.cause
}

// All extracts every validation error from err, flattening joined trees. The
// original join order is preserved.
func All(err error) []*Error {
	var found []*Error
	for _, e := range outcome.Errors(err) {
		var v *Error
		if errors.As(e, &v) {
			found = append(found, v)
		}
	}
	return found
}
