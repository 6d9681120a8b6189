// Package rail defines the Result type at the heart of Railway-Oriented
// pipelines: a value rides either the success track (a payload) or the
// failure track (a diagnostic error), and the first derailment bypasses
// every remaining step.
//
// Key constructs:
// - Success/Fail/Failf/Cancel: construct a Result[T]
// - FailFrom/CancelFrom: carry a failure across a type change
// - Value/Err/Message and the Is* discriminators: consume a Result
// - Equal: structural comparison for tests
//
// Composition lives in the subpackages: step (synchronous primitives),
// chain (fluent assembly), flow (channel-lifted concurrent pipelines).
package rail
