// Package chain provides a fluent wrapper around rail.Result[T] for
// building synchronous Railway-Oriented pipelines on top of the step
// primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or a raw value
// - Then/ThenTry: compose result-returning or (T, error) functions
// - Map/Validate/Ensure: transform, check or observe the successful value
// - RepeatUntil/While: loop a step while the chain stays on track
// - Or/And: combine alternative or required chains
// - Bind/Try/Map (package level): type-changing steps
// - Finally: collapse the chain into a final value via handlers
//
// Steps run strictly left-to-right; the first derailment bypasses every
// remaining step.
package chain
