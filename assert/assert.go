//go:build !noassert

package assert

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/saylorsolutions/argx/env"
)

var (
	disabled atomic.Bool
	logger   atomic.Pointer[slog.Logger]
)

func init() {
	if enabled, err := env.Bool(EnvEnabled, true); err == nil && !enabled {
		disabled.Store(true)
	}
}

// Disable will disable assertion evaluation globally.
// This is concurrency safe, but can have side effects in other goroutines that use assertions.
func Disable() {
	disabled.Store(true)
}

// Enable can be used to re-enable assertion evaluation if Disable was called previously.
// Note that this is a global setting, and calling Disable or Enable can have unintended side effects in other goroutines that use assertions.
func Enable() {
	disabled.Store(false)
}

// SetLogger switches assertions to log-only mode, where a violation is logged at the error level instead of panicking.
// Passing nil restores the default panic behavior.
func SetLogger(log *slog.Logger) {
	logger.Store(log)
}

func getCallerDetails(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("'%s#%d'", file, line)
}

// violated either panics or logs, depending on whether a logger has been set.
// The caller of the assertion function is two frames up from here.
func violated(err error) {
	v := &Violation{Err: err, Location: getCallerDetails(2)}
	if log := logger.Load(); log != nil {
		log.Error("Assertion failed", "error", v.Err, "location", v.Location)
		return
	}
	panic(v)
}

// Arg asserts that a check passed, returning the checked value.
// It's intended to wrap a call to a function in the check packages, so the validated value can be used inline.
//
//	port := assert.Arg(check.InRange("port", port, 1, 65535))
func Arg[T any](val T, err error) T {
	if disabled.Load() || err == nil {
		return val
	}
	violated(err)
	return val
}

// NoError asserts that err is nil.
func NoError(err error) {
	if disabled.Load() || err == nil {
		return
	}
	violated(err)
}

// True will panic with descriptive information if result is not true.
func True(label string, result bool) {
	if disabled.Load() {
		return
	}
	if !result {
		violated(fmt.Errorf("%w: '%s'", ErrAssertion, label))
	}
}

// TrueFunc will panic with descriptive information if assertion returns false.
func TrueFunc(label string, assertion func() bool) {
	if disabled.Load() {
		return
	}
	if !assertion() {
		violated(fmt.Errorf("%w: '%s'", ErrAssertion, label))
	}
}
