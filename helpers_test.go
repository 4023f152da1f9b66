package immut

import "fmt"

// catchPanic runs fn and returns what it panicked with as an error.
func catchPanic(fn func()) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var ok bool
			if err, ok = rec.(error); !ok {
				err = fmt.Errorf("%v", rec)
			}
		}
	}()
	fn()
	return nil
}

// commit commits val to o and releases the returned Handle.
func commit[T any](o *Object[T], val T) {
	h := o.Write().Commit(val)
	h.Release()
}
