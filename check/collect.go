package check

import (
	"errors"
	"strings"
)

// Collector gathers the errors from many checks so they can be reported together.
// This is a little bit more convenient than maintaining a slice and using [errors.Join].
//
// A Collector is itself an error, so it can be returned directly and compared with [errors.Is] or [errors.As].
//
// Note that a Collector is not concurrency safe.
type Collector struct {
	errs    []error
	joinStr string
}

// Collect creates a new Collector, optionally with a join string that differs from the default of "\n".
func Collect(joinString ...string) *Collector {
	joinStr := "\n"
	if len(joinString) > 0 {
		joinStr = joinString[0]
	}
	return &Collector{
		joinStr: joinStr,
	}
}

// Add adds a new, potentially nil error to the Collector.
// Nil errors will not be included.
func (c *Collector) Add(err error) *Collector {
	if err != nil {
		c.errs = append(c.errs, err)
	}
	return c
}

// Failf adds a new [ArgError] for the named argument with a generic [ErrArgument] kind.
func (c *Collector) Failf(argName, format string, args ...any) *Collector {
	return c.Add(Fail(argName, ErrArgument, format, args...))
}

// Check adds the error from a check to the Collector, ignoring the checked value.
// Since it takes the same results as every check, a check call may be passed to it directly.
//
//	c.Check(strcheck.NotBlank("name", name))
func (c *Collector) Check(_ any, err error) *Collector {
	return c.Add(err)
}

// Keep returns a function that adds a check's error to c and returns the checked value.
// This allows collecting a check in the same expression that uses its value.
//
//	c := check.Collect()
//	port := check.Keep[int](c)(check.InRange("port", port, 1, 65535))
func Keep[T any](c *Collector) func(val T, err error) T {
	return func(val T, err error) T {
		c.Add(err)
		return val
	}
}

// Len returns the number of errors collected.
func (c *Collector) Len() int {
	return len(c.errs)
}

// Names returns the names of the arguments that failed, in the order they were added.
// Errors that are not an [ArgError] are skipped, and each name is included once.
func (c *Collector) Names() []string {
	var (
		names []string
		seen  = map[string]bool{}
	)
	for _, err := range c.errs {
		var argErr *ArgError
		if !errors.As(err, &argErr) || seen[argErr.Name] {
			continue
		}
		seen[argErr.Name] = true
		names = append(names, argErr.Name)
	}
	return names
}

// Result will return nil if no errors have been added to the Collector.
// Otherwise, it will return itself.
//
// This is provided because returning an empty Collector is still returning a non-nil error.
func (c *Collector) Result() error {
	if len(c.errs) > 0 {
		return c
	}
	return nil
}

// Error satisfies the error interface.
func (c *Collector) Error() string {
	var buf strings.Builder
	for i, err := range c.errs {
		if i > 0 {
			buf.WriteString(c.joinStr)
		}
		buf.WriteString(err.Error())
	}
	return buf.String()
}

// Unwrap allows using [errors.Is] and [errors.As] to identify any error in the Collector.
func (c *Collector) Unwrap() []error {
	return c.errs
}
