// Package flow provides channel-lifted helpers for running result pipelines
// concurrently. It is designed for simple fan-out/fan-in flows over batches
// of independent inputs.
//
// Common usage:
// - Source: turn values into a channel of successful results
// - Run: execute an engine over an input channel with a fixed number of lines
// - Turnout: compose stages with configurable parallelism and type changes
// - Checking/Mapping/FlatMapping/Trying/Recovering: lift pipe operations
// - Finalize: map Result[In] to Out on completion
// - Drain: collect a channel into a slice
//
// Cancellation stops workers between items; results already produced are
// delivered, the rest are dropped.
package flow
