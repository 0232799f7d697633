// Package validate builds field-validation pipelines on top of outcome
// results. Validation failures are never panics or sentinel values; every
// check returns a Result whose failure side is a typed *Error carrying the
// field name and enough context to self-correct.
//
// Two pipeline modes are supported:
// - FailFast: FlatMap chaining; the first failure short-circuits
// - CollectAll: every check runs; failures aggregate in declaration order
//
// Stock checks cover emptiness, format (email, regexp), length, character
// classes, numeric bounds and enumerations. Declarative rule sets can be
// loaded from YAML and compiled into the same checks.
package validate
