package accessor

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvocation wraps panics and errors raised by an accessor.
var ErrInvocation = errors.New("accessor failed")

// invoke calls m with args. When m returns one result more than want and
// that result is a non-nil error, the error is returned instead of the
// results. Panics are recovered and returned as errors.
func invoke(m reflect.Value, want int, args ...reflect.Value) (out []reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: panic: %v", ErrInvocation, r)
		}
	}()

	out = m.Call(args)

	if n := len(out); n == want+1 && out[n-1].Type() == errorType {
		if e, _ := out[n-1].Interface().(error); e != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvocation, e)
		}

		out = out[:n-1]
	}

	return out, nil
}

// protect runs fn, turning a panic into an error.
func protect(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrInvocation, r)
		}
	}()

	fn()

	return nil
}
