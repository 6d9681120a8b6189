package step

import (
	"context"
	"errors"

	"github.com/railkit/rail/pkg/rail"
)

// Validate applies a pass-through rule to a raw value: a valid input rides
// on unchanged, an invalid one derails with errMsg as the diagnostic.
// Validators are pure; all failure is communicated via the Result.
func Validate[T any](ctx context.Context, input T,
	rule func(ctx context.Context, in T) (valid bool, errMsg string)) rail.Result[T] {
	return AndValidate(ctx, Succeed(input), rule)
}

// AndValidate is Validate over an existing Result, so validators chain:
// only the first failing rule's message ever surfaces.
func AndValidate[T any](ctx context.Context, input rail.Result[T],
	rule func(ctx context.Context, in T) (valid bool, errMsg string)) rail.Result[T] {

	if !input.IsSuccess() {
		return input
	}

	if valid, errMsg := rule(ctx, input.Value()); !valid {
		return rail.Fail[T](errors.New(errMsg))
	}
	return input
}

// ValidateAll runs same-type validators in order. With breakOnError the
// first failure wins, matching AndValidate chaining; otherwise failures
// accumulate into a joined diagnostic and every validator still runs.
func ValidateAll[T any](ctx context.Context, input rail.Result[T],
	breakOnError bool,
	rules ...func(ctx context.Context, in rail.Result[T]) rail.Result[T]) rail.Result[T] {

	var joined error
	return Join(ctx, input, breakOnError,
		func(ctx context.Context, current rail.Result[T]) rail.Result[T] {
			if current.IsFailure() {
				parts := rail.Errors(joined)
				parts = append(parts, current.Err())
				joined = errors.Join(parts...)
			}

			if rail.IsNil(joined) {
				return current
			}
			return rail.Fail[T](joined)
		},
		rules...)
}

// Join folds a sequence of same-type steps over an input, threading each
// intermediate through concat. Steps run strictly left-to-right; with
// breakOnError the fold stops at the first failure.
func Join[T any](ctx context.Context, input rail.Result[T],
	breakOnError bool,
	concat func(ctx context.Context, current rail.Result[T]) rail.Result[T],
	steps ...func(ctx context.Context, in rail.Result[T]) rail.Result[T]) rail.Result[T] {

	if len(steps) == 0 || concat == nil || !rail.IsNil(ctx.Err()) {
		return input
	}

	final := concat(ctx, steps[0](ctx, input))

	if !rail.IsNil(ctx.Err()) {
		return final
	}

	if final.IsSuccess() || !breakOnError {
		for _, s := range steps[1:] {
			if !rail.IsNil(ctx.Err()) {
				return final
			}

			next := concat(ctx, s(ctx, final))
			if next.IsFailure() && breakOnError {
				return next
			}
			final = next
		}
	}
	return final
}
