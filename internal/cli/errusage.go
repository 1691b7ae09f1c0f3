package cli

import (
	"errors"
	"fmt"
)

// UsageError is a special purpose error used to signal that the CLI was invoked incorrectly, rather than a check failing.
// This is returned for unknown commands, flag parsing errors, and the wrong number of arguments.
//
// Command is the full invocation of the misused [Command], like "argcheck int".
// It's empty when no command could be matched.
type UsageError struct {
	Command string
	wrapped error
}

func (e *UsageError) Error() string {
	msg := "usage error"
	if len(e.Command) > 0 {
		msg += fmt.Sprintf(" in '%s'", e.Command)
	}
	if e.wrapped == nil {
		return msg
	}
	return msg + ": " + e.wrapped.Error()
}

// Hint suggests how the user can learn the correct usage.
func (e *UsageError) Hint() string {
	if len(e.Command) == 0 {
		return fmt.Sprintf("Use %s to list commands", HelpPatterns[0])
	}
	return fmt.Sprintf("Run '%s %s' for usage information", e.Command, HelpPatterns[0])
}

func (e *UsageError) Is(err error) bool {
	_, ok := err.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.wrapped
}

// NewUsageError is used to create a [UsageError].
// The format and args parameters are passed to [fmt.Errorf] to create the underlying error.
// When returned from a [CommandFunc], the [Command] will be filled in by [Command.Exec].
func NewUsageError(format string, args ...any) error {
	return &UsageError{wrapped: fmt.Errorf(format, args...)}
}

// attribute records the command on any [UsageError] in err's chain that doesn't already name one.
func attribute(err error, command string) error {
	var usageErr *UsageError
	if errors.As(err, &usageErr) && len(usageErr.Command) == 0 {
		usageErr.Command = command
	}
	return err
}
