package flow

import (
	"context"

	"github.com/railkit/rail/pkg/rail"
)

// SourceHandlers observe items as they enter a flow. All fields optional.
type SourceHandlers[T any] struct {
	// OnStartFail receives all values when the context is already done.
	OnStartFail func(ctx context.Context, values []T)
	// OnEmit receives each value successfully placed on the channel.
	OnEmit func(ctx context.Context, value T)
	// OnBreak receives the values left unsent when the context ends.
	OnBreak func(ctx context.Context, rest []T)
}

// ToChan feeds raw values into a channel, stopping early when the context
// ends.
func ToChan[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToResults wraps each value as Success and feeds it into a channel: the
// boundary where a flow invocation begins.
func ToResults[T any](ctx context.Context, values ...T) <-chan rail.Result[T] {
	return ToResultsWith(ctx, SourceHandlers[T]{}, values...)
}

// ToResultsWith is ToResults with source observation hooks.
func ToResultsWith[T any](ctx context.Context, handlers SourceHandlers[T], values ...T) <-chan rail.Result[T] {
	in := make(chan rail.Result[T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- rail.Success(v):
				if handlers.OnEmit != nil {
					handlers.OnEmit(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

// Collect drains a channel into a slice. Flow stages close their outputs
// even on cancellation (after optional draining), so Collect reads until
// close rather than racing the context.
func Collect[T any](out <-chan T) []T {
	res := make([]T, 0)
	for v := range out {
		res = append(res, v)
	}
	return res
}

// First returns the first value from the channel, or defaultV when the
// channel closes empty or the context ends first.
func First[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}
