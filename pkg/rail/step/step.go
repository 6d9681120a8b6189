package step

import (
	"context"

	"github.com/railkit/rail/pkg/rail"
)

func Succeed[T any](input T) rail.Result[T] {
	return rail.Success(input)
}

func Fail[T any](err error) rail.Result[T] {
	return rail.Fail[T](err)
}

func Cancel[T any](err error) rail.Result[T] {
	return rail.Cancel[T](err)
}

// Bind is the composition primitive: a switch function In -> Result[Out]
// runs only when the input is on the success track. A failed input passes
// through untouched and onSuccess is never invoked, so no side effects
// happen on an already-derailed pipeline.
func Bind[In, Out any](ctx context.Context, input rail.Result[In],
	onSuccess func(ctx context.Context, in In) rail.Result[Out]) rail.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Value())
	}
	return rail.FailFrom[In, Out](input)
}

// Map lifts a total single-track function In -> Out. The function must not
// fail; a fallible transformation belongs in Bind, Try or a validator.
func Map[In, Out any](ctx context.Context, input rail.Result[In],
	onSuccess func(ctx context.Context, in In) Out) rail.Result[Out] {

	if input.IsSuccess() {
		return rail.Success(onSuccess(ctx, input.Value()))
	}
	return rail.FailFrom[In, Out](input)
}

// Tee lifts a dead-end function invoked purely for its effect. On success
// the effect runs exactly once with the payload and the ORIGINAL Result is
// passed downstream; whatever the effect produces never enters the
// pipeline. On failure the effect does not run.
//
// The effect must not fail in a way the pipeline needs to observe; an
// effect that can derail the pipeline belongs in Try or Bind instead.
func Tee[T any](ctx context.Context, input rail.Result[T],
	effect func(ctx context.Context, in T)) rail.Result[T] {

	if input.IsSuccess() {
		effect(ctx, input.Value())
	}
	return input
}

// TeeIf runs the effect only when the input is successful and the
// condition holds.
func TeeIf[T any](ctx context.Context, input rail.Result[T],
	condition func(ctx context.Context, in T) bool,
	effect func(ctx context.Context, in T)) rail.Result[T] {

	if input.IsSuccess() && condition(ctx, input.Value()) {
		effect(ctx, input.Value())
	}
	return input
}

// DoubleTee observes both tracks: one effect for success, one for failure,
// one for cancellation. The input passes through unchanged either way.
func DoubleTee[T any](ctx context.Context, input rail.Result[T],
	onSuccess func(ctx context.Context, in T),
	onFailure func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) rail.Result[T] {

	switch {
	case input.IsSuccess():
		onSuccess(ctx, input.Value())
	case input.IsCancel():
		onCancel(ctx, input.Err())
	default:
		onFailure(ctx, input.Err())
	}
	return input
}

// DoubleMap transforms the success track and observes the failure track;
// the failure itself travels on unchanged.
func DoubleMap[In, Out any](ctx context.Context, input rail.Result[In],
	onSuccess func(ctx context.Context, in In) Out,
	onFailure func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) rail.Result[Out] {

	if input.IsSuccess() {
		return rail.Success(onSuccess(ctx, input.Value()))
	}

	if input.IsCancel() {
		onCancel(ctx, input.Err())
	} else {
		onFailure(ctx, input.Err())
	}
	return rail.FailFrom[In, Out](input)
}

// Try adapts an idiomatic Go function (Out, error) into a switch step: a
// non-nil error derails the pipeline. This is the recommended shape for
// effectful collaborators (repositories, mail transports) whose failure
// must halt the pipeline, instead of Tee.
func Try[In, Out any](ctx context.Context, input rail.Result[In],
	execute func(ctx context.Context, in In) (Out, error)) rail.Result[Out] {

	if !input.IsSuccess() {
		return rail.FailFrom[In, Out](input)
	}

	out, err := execute(ctx, input.Value())
	if err != nil {
		if rail.IsCancellation(err) {
			return rail.Cancel[Out](err)
		}
		return rail.Fail[Out](err)
	}
	return rail.Success(out)
}

// FailOnError adapts an A -> error collaborator: a nil error keeps the
// original payload on the success track.
func FailOnError[T any](ctx context.Context, input rail.Result[T],
	maybeErr func(ctx context.Context, in T) error) rail.Result[T] {

	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Value()); err != nil {
			return rail.Fail[T](err)
		}
	}
	return input
}

// Finally is the terminal formatting step, collapsing both tracks into a
// caller-defined representation. The failure handlers receive the
// diagnostic produced by the step that derailed the pipeline, unchanged.
func Finally[In, Out any](ctx context.Context, input rail.Result[In],
	onSuccess func(ctx context.Context, in In) Out,
	onFailure func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	switch {
	case input.IsSuccess():
		return onSuccess(ctx, input.Value())
	case input.IsCancel():
		return onCancel(ctx, input.Err())
	default:
		return onFailure(ctx, input.Err())
	}
}
