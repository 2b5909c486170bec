//go:build golazy_nocontracts

package contract

// Assert is a no-op under golazy_nocontracts: a violated precondition is
// undefined behavior rather than a panic.
func Assert(cond bool, msg string) {}

// Assertf is a no-op under golazy_nocontracts.
func Assertf(cond bool, format string, args ...any) {}
