package rail

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is the two-track value carried through a pipeline: either a
// successful payload of type T or a failure holding a diagnostic error.
// A canceled Result is a failure flavor raised only by channel pipelines
// when their context ends; synchronous steps never produce it themselves.
//
// A Result is immutable. Steps build new Results instead of mutating the
// input, so a failure observed at the end of a pipeline is exactly the
// failure produced by the step that derailed it.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	success   bool
	canceled  bool
}

// Success wraps v as a successful Result.
func Success[T any](v T) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
		success:   true,
	}
}

// Fail builds a failed Result carrying err as its diagnostic.
func Fail[T any](err error) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
	}
}

// Failf builds a failed Result from a formatted message.
func Failf[T any](format string, args ...any) Result[T] {
	return Fail[T](fmt.Errorf(format, args...))
}

// Cancel builds a canceled Result. Used by flow stages when the driving
// context is done before an item could be processed.
func Cancel[T any](err error) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
		canceled:  true,
	}
}

// FailFrom carries a non-successful Result across a type change. The
// identity, timestamp and diagnostic travel with it, so the failure that
// reaches the end of a pipeline is still the original one.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
		canceled:  from.canceled,
	}
}

// CancelFrom carries a Result across a type change, forcing the canceled
// flag. Used when draining queued items after a context ends.
func CancelFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
		canceled:  true,
	}
}

// Value returns the successful payload, or the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure diagnostic, nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Message returns the failure diagnostic text, "" on success.
func (r Result[T]) Message() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}

func (r Result[T]) IsSuccess() bool {
	return r.success
}

// IsFailure reports a plain (non-canceled) failure.
func (r Result[T]) IsFailure() bool {
	return !r.success && !r.canceled
}

func (r Result[T]) IsCancel() bool {
	return r.canceled
}

// ID identifies the originating Result through FailFrom/CancelFrom hops.
func (r Result[T]) ID() uuid.UUID {
	return r.id
}

// CreatedAt is the construction time (UTC).
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) String() string {
	switch {
	case r.success:
		return fmt.Sprintf("Success(%v)", r.value)
	case r.canceled:
		return fmt.Sprintf("Cancel(%v)", r.err)
	default:
		return fmt.Sprintf("Failure(%v)", r.err)
	}
}

// Equal compares two Results structurally: variant tag, payload and failure
// message. Identity and timestamps are ignored, making it suitable for
// asserting pipeline outcomes in tests.
func Equal[T comparable](a, b Result[T]) bool {
	if a.success != b.success || a.canceled != b.canceled {
		return false
	}
	if a.success {
		return a.value == b.value
	}
	return a.Message() == b.Message()
}
