package check

import (
	"errors"
	"fmt"
)

var (
	ErrArgument      = errors.New("invalid argument") // ErrArgument matches every *ArgError with errors.Is.
	ErrNil           = errors.New("nil value")
	ErrZero          = errors.New("zero value")
	ErrOutOfRange    = errors.New("value out of range")
	ErrInvalidBounds = errors.New("invalid bounds")
	ErrEmpty         = errors.New("empty value")
	ErrBlank         = errors.New("blank value")
	ErrLength        = errors.New("invalid length")
	ErrIndex         = errors.New("index out of bounds")
	ErrNilElement    = errors.New("nil element")
	ErrDuplicate     = errors.New("duplicate element")
	ErrMissing       = errors.New("missing value")
	ErrFormat        = errors.New("invalid format")
	ErrNotExist      = errors.New("does not exist")
	ErrExist         = errors.New("already exists")
	ErrNotDir        = errors.New("not a directory")
	ErrNotFile       = errors.New("not a regular file")
	ErrDone          = errors.New("context done")
)

// ArgError is returned from every check in this module.
// Kind is one of the sentinel errors in this package, and may be matched with [errors.Is].
type ArgError struct {
	Name   string // Name is the caller-supplied argument name.
	Kind   error
	Detail string
	cause  error
}

// Fail creates a new [ArgError] for the named argument.
// The format and args parameters are passed to [fmt.Sprintf] to create the detail message.
// This is exported so that packages outside of check can produce consistent errors.
func Fail(argName string, kind error, format string, args ...any) *ArgError {
	return &ArgError{
		Name:   argName,
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	}
}

// Wrap is like [Fail], but also records an underlying cause that can be reached with [errors.Is] and [errors.As].
func Wrap(argName string, kind error, cause error, format string, args ...any) *ArgError {
	e := Fail(argName, kind, format, args...)
	e.cause = cause
	return e
}

func (e *ArgError) Error() string {
	detail := e.Detail
	if len(detail) == 0 && e.Kind != nil {
		detail = e.Kind.Error()
	}
	if e.cause != nil {
		detail += ": " + e.cause.Error()
	}
	if len(e.Name) == 0 {
		return "invalid argument: " + detail
	}
	return fmt.Sprintf("argument %q: %s", e.Name, detail)
}

func (e *ArgError) Is(err error) bool {
	if err == ErrArgument {
		return true
	}
	_, ok := err.(*ArgError)
	return ok
}

func (e *ArgError) Unwrap() []error {
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// NameOf returns the argument name from the first [ArgError] found in err's tree, if there is one.
func NameOf(err error) (string, bool) {
	var argErr *ArgError
	if !errors.As(err, &argErr) {
		return "", false
	}
	return argErr.Name, true
}
