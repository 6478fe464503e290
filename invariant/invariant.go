// Package invariant converts broken preconditions into fatal failures.
//
// A failed check represents a programmer error, never an expected runtime
// outcome: expected absence belongs in optional.Optional and expected
// failure belongs in result.Result. Nothing in this module recovers a
// Violation.
package invariant

import "fmt"

// Violation is the panic payload of a failed check. It implements error so
// that recovered panics integrate with errors.As.
type Violation struct {
	Message string
}

func (v *Violation) Error() string {
	return "invariant violation: " + v.Message
}

// Check panics with a *Violation carrying message unless condition holds.
func Check(condition bool, message string) {
	if !condition {
		panic(&Violation{Message: message})
	}
}

// Checkf is Check with fmt-style message construction. The message is only
// built when the condition fails.
func Checkf(condition bool, format string, args ...any) {
	if !condition {
		panic(&Violation{Message: fmt.Sprintf(format, args...)})
	}
}
