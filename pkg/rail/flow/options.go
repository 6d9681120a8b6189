package flow

import "context"

type optionKey string

const (
	workerOptionKey optionKey = "flow_workers"
	drainOptionKey  optionKey = "flow_drain_on_cancel"
)

// WithWorkers stores the preferred worker count for flow stages on the
// context.
func WithWorkers(ctx context.Context, workers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, workers)
}

// Workers returns the configured worker count, or defaultWorkers when the
// context carries none.
func Workers(ctx context.Context, defaultWorkers int) int {
	if w, ok := ctx.Value(workerOptionKey).(int); ok && w > 0 {
		return w
	}
	return defaultWorkers
}

// WithDrainOnCancel controls whether queued items are still surfaced
// (as canceled Results) when the context ends mid-flow.
func WithDrainOnCancel(ctx context.Context, drain bool) context.Context {
	return context.WithValue(ctx, drainOptionKey, drain)
}

// DrainOnCancel returns the configured drain behavior, or defaultDrain
// when the context carries none.
func DrainOnCancel(ctx context.Context, defaultDrain bool) bool {
	if d, ok := ctx.Value(drainOptionKey).(bool); ok {
		return d
	}
	return defaultDrain
}
