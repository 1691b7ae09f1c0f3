//go:build noassert

package assert

import "log/slog"

func Disable() {
	// No op
}

func Enable() {
	// No op
}

func SetLogger(_ *slog.Logger) {
	// No op
}

func Arg[T any](val T, _ error) T {
	return val
}

func NoError(_ error) {
	// No op
}

func True(label string, result bool) {
	// No op
}

func TrueFunc(label string, assertion func() bool) {
	// No op
}
