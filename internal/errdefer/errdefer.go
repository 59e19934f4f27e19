// Package errdefer provides functions for running operations
// that must be deferred until the end of a function,
// but which may return errors that should be returned from the function.
package errdefer

import (
	"errors"
	"io"
)

// Close calls Close on the given Closers in order,
// and joins any errors returned with the given error.
//
// Use it inside a defer statement with a named return.
func Close(err *error, closers ...io.Closer) {
	errs := make([]error, 0, len(closers)+1)
	errs = append(errs, *err)
	for _, c := range closers {
		errs = append(errs, c.Close())
	}
	*err = errors.Join(errs...)
}
