package assert

import (
	"errors"
	"fmt"
)

const (
	EnvEnabled = "ARGX_ASSERT" // EnvEnabled is the environment variable that may be set to a false value (like "off") to disable assertions at start up.
)

var (
	ErrAssertion = errors.New("assertion failed")
)

// Violation is the value passed to panic when an assertion fails.
// It wraps the error from the failed check, so a recovered Violation may be inspected with [errors.Is] and [errors.As].
type Violation struct {
	Err      error
	Location string // Location is the file and line of the assertion call, or "unknown".
}

func (v *Violation) Error() string {
	return fmt.Sprintf("assertion failed at %s: %v", v.Location, v.Err)
}

func (v *Violation) Unwrap() error {
	return v.Err
}
