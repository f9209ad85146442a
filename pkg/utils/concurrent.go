// nolint: revive
package utils

import (
	"fmt"
	"runtime/debug"
)

func SafelyRun(function func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("%w\n%s", e, string(debug.Stack()))
			} else {
				err = fmt.Errorf("unknown panic\n%s", string(debug.Stack()))
			}
		}
	}()

	function()

	return nil
}

func SafelyGo(function func(), handleError func(error)) {
	go func() {
		err := SafelyRun(function)
		if err != nil {
			handleError(err)
		}
	}()
}

// FilterSlice maps in to a new slice, dropping elements for which fn
// returns false.
func FilterSlice[T any, R any](in []T, fn func(T) (R, bool)) []R {
	out := make([]R, 0, len(in))
	for _, item := range in {
		if r, ok := fn(item); ok {
			out = append(out, r)
		}
	}
	return out
}
