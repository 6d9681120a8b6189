package flow

import (
	"context"

	"github.com/railkit/rail/pkg/rail"
	"github.com/railkit/rail/pkg/rail/step"
)

// Validate lifts a pass-through rule into a stage.
func Validate[T any](rule func(ctx context.Context, in T) (valid bool, errMsg string)) Stage[T, T] {
	return func(ctx context.Context, input rail.Result[T]) rail.Result[T] {
		return step.AndValidate(ctx, input, rule)
	}
}

// Bind lifts a switch function into a stage.
func Bind[In, Out any](onSuccess func(ctx context.Context, in In) rail.Result[Out]) Stage[In, Out] {
	return func(ctx context.Context, input rail.Result[In]) rail.Result[Out] {
		return step.Bind(ctx, input, onSuccess)
	}
}

// Map lifts a total transformation into a stage.
func Map[In, Out any](onSuccess func(ctx context.Context, in In) Out) Stage[In, Out] {
	return func(ctx context.Context, input rail.Result[In]) rail.Result[Out] {
		return step.Map(ctx, input, onSuccess)
	}
}

// Tee lifts a dead-end side effect into a stage; the original Result
// travels on unchanged.
func Tee[T any](effect func(ctx context.Context, in T)) Stage[T, T] {
	return func(ctx context.Context, input rail.Result[T]) rail.Result[T] {
		return step.Tee(ctx, input, effect)
	}
}

// Try lifts an (Out, error) collaborator into a stage.
func Try[In, Out any](execute func(ctx context.Context, in In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, input rail.Result[In]) rail.Result[Out] {
		return step.Try(ctx, input, execute)
	}
}

// DoubleMap lifts a two-track transformation into a stage.
func DoubleMap[In, Out any](
	onSuccess func(ctx context.Context, in In) Out,
	onFailure func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Stage[In, Out] {
	return func(ctx context.Context, input rail.Result[In]) rail.Result[Out] {
		return step.DoubleMap(ctx, input, onSuccess, onFailure, onCancel)
	}
}

// DoubleTee lifts side effects for both tracks into a stage.
func DoubleTee[T any](
	onSuccess func(ctx context.Context, in T),
	onFailure func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) Stage[T, T] {
	return func(ctx context.Context, input rail.Result[T]) rail.Result[T] {
		return step.DoubleTee(ctx, input, onSuccess, onFailure, onCancel)
	}
}

// FinallyHandlers collapse a Result into the caller's representation at
// the end of a flow.
type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, in In) Out
	OnFailure func(ctx context.Context, err error) Out
	OnCancel  func(ctx context.Context, err error) Out
}

// Finally folds a channel of Results into a channel of plain values, the
// terminal formatting stage of a flow. When the context ends and draining
// is enabled (see WithDrainOnCancel), queued items are still folded, with
// unprocessed ones routed through OnCancel.
func Finally[In, Out any](ctx context.Context, in <-chan rail.Result[In], handlers FinallyHandlers[In, Out]) <-chan Out {
	out := make(chan Out)

	drainOne := func(item rail.Result[In]) Out {
		if item.IsSuccess() {
			item = rail.Cancel[In](ErrCanceled)
		}
		return step.Finally(ctx, item, handlers.OnSuccess, handlers.OnFailure, handlers.OnCancel)
	}

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				if DrainOnCancel(ctx, true) {
					for item := range in {
						out <- drainOne(item)
					}
				}
				return
			case item, ok := <-in:
				if !ok {
					return
				}

				res := step.Finally(ctx, item, handlers.OnSuccess, handlers.OnFailure, handlers.OnCancel)

				select {
				case <-ctx.Done():
					if DrainOnCancel(ctx, true) {
						out <- res
						for rest := range in {
							out <- drainOne(rest)
						}
					}
					return
				case out <- res:
				}
			}
		}
	}()

	return out
}
