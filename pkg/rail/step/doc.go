// Package step contains single-value, synchronous ROP primitives that
// operate on rail.Result[T]. These functions form the core building blocks
// for error-aware pipelines without channels.
//
// Highlights:
// - Succeed/Fail/Cancel: construct a Result[T]
// - Bind: sequence a switch function In -> Result[Out], short-circuiting on failure
// - Map/DoubleMap: lift total transformations (with optional failure/cancel maps)
// - Tee/TeeIf/DoubleTee: dead-end side-effect helpers
// - Validate/AndValidate/ValidateAll: pass-through rules producing failure on invalid input
// - Try/FailOnError: adapt (Out, error) and A -> error collaborators
// - Finally: reduce to a concrete value via success/failure/cancel handlers
//
// Every primitive preserves strict left-to-right ordering and never invokes
// a step on an already-failed input.
package step
