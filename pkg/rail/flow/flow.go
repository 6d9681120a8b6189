package flow

import (
	"context"
	"sync"

	"github.com/railkit/rail/pkg/rail"
)

// Stage processes one Result at a time. Stages built from the step
// primitives (Validate, Bind, Map, Tee, Try) keep per-item step order
// strictly sequential; Run fans items out across workers, never steps.
type Stage[In, Out any] func(ctx context.Context, input rail.Result[In]) rail.Result[Out]

// CancelHandlers decide what happens to in-flight and queued items when
// the context ends mid-stage. All fields are optional; a nil handler drops
// the corresponding items silently.
type CancelHandlers[In, Out any] struct {
	// OnCancel receives the remaining input channel once a worker stops.
	OnCancel func(ctx context.Context, in <-chan rail.Result[In], out chan<- rail.Result[Out])
	// OnUnprocessed receives an item pulled from the queue but never run.
	OnUnprocessed func(ctx context.Context, unprocessed rail.Result[In], out chan<- rail.Result[Out])
	// OnProcessed receives an item whose stage ran but whose output could
	// not be forwarded before cancellation.
	OnProcessed func(ctx context.Context, in rail.Result[In], processed rail.Result[Out], out chan<- rail.Result[Out])
}

// Run drives a same-type stage over the input channel with the given
// number of workers. Queued items are dropped on cancellation; use RunWith
// for explicit cancel routing.
func Run[T any](ctx context.Context, in <-chan rail.Result[T], stage Stage[T, T], workers int) <-chan rail.Result[T] {
	return TurnoutWith(ctx, in, stage, CancelHandlers[T, T]{}, nil, workers)
}

// Turnout drives a type-changing stage over the input channel.
func Turnout[In, Out any](ctx context.Context, in <-chan rail.Result[In], stage Stage[In, Out], workers int) <-chan rail.Result[Out] {
	return TurnoutWith(ctx, in, stage, CancelHandlers[In, Out]{}, nil, workers)
}

// RunWith is Run with cancel routing and a per-result success callback.
func RunWith[T any](ctx context.Context, in <-chan rail.Result[T], stage Stage[T, T],
	handlers CancelHandlers[T, T], onSuccess func(ctx context.Context, out rail.Result[T]), workers int) <-chan rail.Result[T] {
	return TurnoutWith(ctx, in, stage, handlers, onSuccess, workers)
}

// TurnoutWith is the general worker-pool driver all other runners reduce
// to. The output channel closes once every worker has stopped.
func TurnoutWith[In, Out any](ctx context.Context, in <-chan rail.Result[In], stage Stage[In, Out],
	handlers CancelHandlers[In, Out], onSuccess func(ctx context.Context, out rail.Result[Out]), workers int) <-chan rail.Result[Out] {

	if workers < 1 {
		workers = 1
	}

	out := make(chan rail.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go work(ctx, in, out, stage, handlers, onSuccess, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func work[In, Out any](ctx context.Context, in <-chan rail.Result[In], out chan<- rail.Result[Out],
	stage Stage[In, Out], handlers CancelHandlers[In, Out],
	onSuccess func(ctx context.Context, out rail.Result[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, in, out)
			}
			return
		case item, ok := <-in:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				if handlers.OnUnprocessed != nil {
					handlers.OnUnprocessed(ctx, item, out)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, in, out)
				}
				return
			}

			res := stage(ctx, item)

			select {
			case <-ctx.Done():
				if handlers.OnProcessed != nil {
					handlers.OnProcessed(ctx, item, res, out)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, in, out)
				}
				return
			case out <- res:
				if onSuccess != nil {
					onSuccess(ctx, res)
				}
			}
		}
	}
}
