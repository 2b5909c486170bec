//go:build !golazy_nocontracts

// Package contract implements the precondition-checking discipline used by
// every adaptor in golazy: a violated precondition (empty-view access,
// zero/negative stride, ...) is a contract
// violation, not a recoverable error, and aborts via panic with file/line/
// function attached.
//
// Build this package (or rather, the module importing it) with the
// golazy_nocontracts build tag to compile the checks out; a violated
// precondition is then undefined behavior instead of a panic, matching the
// source specification's error-handling model (see assert_disabled.go).
package contract

import (
	"fmt"
	"runtime"
)

// Assert panics with msg, plus the caller's file, line and function name, if
// cond is false.
func Assert(cond bool, msg string) {
	if cond {
		return
	}
	panic(violation(msg))
}

// Assertf is Assert with fmt.Sprintf-style formatting.
func Assertf(cond bool, format string, args ...any) {
	if cond {
		return
	}
	panic(violation(fmt.Sprintf(format, args...)))
}

func violation(msg string) string {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return "golazy: contract violation: " + msg
	}
	fn := runtime.FuncForPC(pc)
	name := "unknown"
	if fn != nil {
		name = fn.Name()
	}
	return fmt.Sprintf("golazy: contract violation in %s (%s:%d): %s", name, file, line, msg)
}
