package flow

import (
	"context"
	"errors"

	"github.com/railkit/rail/pkg/rail"
)

// ErrCanceled marks items that were queued when the context ended.
var ErrCanceled = errors.New("pipeline canceled")

// DrainRemaining forwards every queued item as a canceled Result. Plug it
// into CancelHandlers.OnCancel when canceled items must still reach the
// end of the flow.
func DrainRemaining[In, Out any](ctx context.Context,
	in <-chan rail.Result[In], out chan<- rail.Result[Out]) {

	if !DrainOnCancel(ctx, true) {
		return
	}

	for item := range in {
		if item.IsCancel() {
			out <- rail.CancelFrom[In, Out](item)
		} else {
			out <- rail.Cancel[Out](ErrCanceled)
		}
	}
}

// DrainOne forwards a single unprocessed item as a canceled Result. Plug
// it into CancelHandlers.OnUnprocessed.
func DrainOne[In, Out any](ctx context.Context, item rail.Result[In],
	out chan<- rail.Result[Out]) {

	if !DrainOnCancel(ctx, true) {
		return
	}

	if item.IsCancel() {
		out <- rail.CancelFrom[In, Out](item)
	} else {
		out <- rail.Cancel[Out](ErrCanceled)
	}
}

// ForwardProcessed lets an already-computed output through despite
// cancellation. Plug it into CancelHandlers.OnProcessed.
func ForwardProcessed[In, Out any](ctx context.Context, in rail.Result[In],
	processed rail.Result[Out], out chan<- rail.Result[Out]) {

	if !DrainOnCancel(ctx, true) {
		return
	}
	out <- processed
}
