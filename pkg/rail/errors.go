package rail

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether i is nil, including a typed nil pointer boxed in an
// interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	return reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()
}

// Errors flattens err into its joined parts, or a single-element slice for
// a plain error. Nil yields an empty slice.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellation reports whether err originates from context shutdown.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
