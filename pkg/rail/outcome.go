package rail

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is a read-only view over a Result for consumers that only need
// to inspect the final value of a pipeline.
type Outcome[T any] interface {
	// Value returns the successful payload
	Value() T
	// Err returns the diagnostic if the pipeline derailed
	Err() error
	// IsSuccess reports whether the value rode the success track
	IsSuccess() bool
}

// TracedOutcome adds the identity and timing stamped at construction.
type TracedOutcome[T any] interface {
	Outcome[T]
	// ID identifies the originating Result
	ID() uuid.UUID
	// CreatedAt time of construction (UTC)
	CreatedAt() time.Time
}

// CancelableOutcome distinguishes cancellation from plain failure.
type CancelableOutcome[T any] interface {
	Outcome[T]
	// IsCancel reports whether the pipeline was canceled mid-flight
	IsCancel() bool
}
