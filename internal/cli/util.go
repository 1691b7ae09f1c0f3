package cli

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/argx/check"
	"github.com/saylorsolutions/argx/slicecheck"
)

// MustGet is used with a [pflag.FlagSet] getter to panic if the flag is not defined, or is not the right type.
// The developer usually knows whether a get call will fail, so this function makes it easier to avoid global flag state.
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

var (
	ErrArgMap = errors.New("failed to map argument(s)")
)

// MapArgs is an easy way to map arguments to variables (targets), and require a certain amount.
// This will return an error if there are not enough args and/or targets to satisfy the amount required by minArgs.
// Targets elements should not be nil.
func MapArgs(args []string, minArgs int, targets ...*string) error {
	if _, err := check.AtLeast("args", len(args), minArgs); err != nil {
		return fmt.Errorf("%w: %w", ErrArgMap, err)
	}
	if _, err := check.AtLeast("targets", len(targets), minArgs); err != nil {
		return fmt.Errorf("%w: %w", ErrArgMap, err)
	}
	if _, err := slicecheck.NoNil("targets", targets); err != nil {
		return fmt.Errorf("%w: %w", ErrArgMap, err)
	}
	for i := 0; i < len(args) && i < len(targets); i++ {
		*targets[i] = args[i]
	}
	return nil
}
