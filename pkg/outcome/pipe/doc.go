// Package pipe contains single-value, synchronous combinators that operate
// on outcome.Result[T]. These functions form the core building blocks for
// error-aware pipelines without manual branching at every step.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Map/MapError: transform the success value or the error
// - FlatMap: switch to a new Result produced from the success value
// - Recover/RecoverWith: turn failures back into successes or retries
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
//
// All combinators are total over the two result states: they never fail
// themselves, and a transform that can fail should return a Result (FlatMap)
// or an error (Try) rather than panic.
package pipe
