package chain

import (
	"context"

	"github.com/railkit/rail/pkg/rail"
)

// RepeatUntil applies onSuccess at least once and keeps applying it while
// the chain stays on the success track and until returns false.
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, in T) rail.Result[T],
	until func(ctx context.Context, in T) bool) Chain[T] {

	if !c.res.IsSuccess() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if !c.res.IsSuccess() || until(c.ctx, c.res.Value()) {
			return c
		}
	}
}

// While applies onSuccess as long as the chain is successful and the
// condition holds; the condition is checked before each application.
func (c Chain[T]) While(onSuccess func(ctx context.Context, in T) rail.Result[T],
	while func(ctx context.Context, in T) bool) Chain[T] {

	for c.res.IsSuccess() && while(c.ctx, c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}
