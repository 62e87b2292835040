// Package paniclog converts panics into errors, recording the panic message
// and stack trace on an io.Writer along the way.
package paniclog

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
)

// Handle reports the panic value pval to w with a stack trace and converts
// it into an error. A nil pval reports nothing and returns nil.
func Handle(pval interface{}, w io.Writer) error {
	if pval == nil {
		return nil
	}

	fmt.Fprintf(w, "panic: %v\n%s", pval, debug.Stack())

	switch pval := pval.(type) {
	case error:
		return pval
	case string:
		return errors.New(pval)
	default:
		return fmt.Errorf("panic: %v", pval)
	}
}

// Recover recovers from a panic, if any, and stores its error form in *err.
// Use it in a defer with a named return value:
//
//	func run() (err error) {
//		defer paniclog.Recover(&err, os.Stderr)
//		...
//	}
func Recover(err *error, w io.Writer) {
	if pval := recover(); pval != nil {
		*err = Handle(pval, w)
	}
}
