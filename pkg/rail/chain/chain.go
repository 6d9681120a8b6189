package chain

import (
	"context"

	"github.com/railkit/rail/pkg/rail"
	"github.com/railkit/rail/pkg/rail/step"
)

// Chain wraps a rail.Result with its context so pipelines read fluently
// left-to-right. Same-type steps are methods; type-changing steps are the
// package-level Bind/Map/Try, since Go methods cannot introduce type
// parameters.
type Chain[T any] struct {
	ctx context.Context
	res rail.Result[T]
}

// Start begins a chain from an existing rail.Result.
func Start[T any](ctx context.Context, res rail.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: res}
}

// FromValue begins a chain by wrapping a raw input as Success, the usual
// entry point at a pipeline boundary.
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rail.Success(v))
}

// Result returns the underlying rail.Result.
func (c Chain[T]) Result() rail.Result[T] {
	return c.res
}

// Context returns the context the chain was started with.
func (c Chain[T]) Context() context.Context {
	return c.ctx
}

// Then sequences a same-type switch function via Bind.
func (c Chain[T]) Then(onSuccess func(ctx context.Context, in T) rail.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: step.Bind(c.ctx, c.res, onSuccess)}
}

// ThenTry sequences a same-type (T, error) collaborator, like a repo call.
func (c Chain[T]) ThenTry(execute func(ctx context.Context, in T) (T, error)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: step.Try(c.ctx, c.res, execute)}
}

// Map applies a total same-type transformation to the successful value.
func (c Chain[T]) Map(onSuccess func(ctx context.Context, in T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: step.Map(c.ctx, c.res, onSuccess)}
}

// Validate applies a pass-through rule; an invalid value derails the chain
// with the rule's message.
func (c Chain[T]) Validate(rule func(ctx context.Context, in T) (valid bool, errMsg string)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: step.AndValidate(c.ctx, c.res, rule)}
}

// Ensure runs a dead-end side effect on success without changing the
// result. The effect must not fail in a pipeline-relevant way; use ThenTry
// for effects whose failure must derail the chain.
func (c Chain[T]) Ensure(effect func(ctx context.Context, in T)) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: step.Tee(c.ctx, c.res, effect)}
}

// Or returns the first successful chain among c and alternative; if none
// succeeded, the first failure wins over a later cancellation.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	if c.res.IsFailure() {
		return c
	}
	if alternative.res.IsFailure() {
		return alternative
	}
	return c
}

// And requires both chains to succeed, keeping the failure of the first
// derailed one and the value of the last otherwise.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if !c.res.IsSuccess() {
		return c
	}
	return required
}

// Finally collapses the chain into a plain value of the same type.
func (c Chain[T]) Finally(
	onSuccess func(ctx context.Context, in T) T,
	onFailure func(ctx context.Context, err error) T,
	onCancel func(ctx context.Context, err error) T) T {
	return step.Finally(c.ctx, c.res, onSuccess, onFailure, onCancel)
}

// Bind sequences a switch function that changes the value type.
func Bind[T, U any](c Chain[T], onSuccess func(ctx context.Context, in T) rail.Result[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: step.Bind(c.ctx, c.res, onSuccess)}
}

// Try sequences a type-changing (U, error) collaborator.
func Try[T, U any](c Chain[T], execute func(ctx context.Context, in T) (U, error)) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: step.Try(c.ctx, c.res, execute)}
}

// Map applies a total type-changing transformation.
func Map[T, U any](c Chain[T], onSuccess func(ctx context.Context, in T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: step.Map(c.ctx, c.res, onSuccess)}
}

// Finally collapses the chain into a caller-defined representation, the
// terminal formatting step of a pipeline.
func Finally[T, U any](c Chain[T],
	onSuccess func(ctx context.Context, in T) U,
	onFailure func(ctx context.Context, err error) U,
	onCancel func(ctx context.Context, err error) U) U {
	return step.Finally(c.ctx, c.res, onSuccess, onFailure, onCancel)
}
