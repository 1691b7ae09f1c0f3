// Package mapcheck provides argument checks for maps.
package mapcheck

import (
	"github.com/saylorsolutions/argx/check"
)

// NotEmpty validates that m has at least one entry.
// A nil map is reported with [check.ErrNil] rather than [check.ErrEmpty].
func NotEmpty[M ~map[K]V, K comparable, V any](argName string, m M) (M, error) {
	if m == nil {
		return m, check.Fail(argName, check.ErrNil, "must not be nil")
	}
	if len(m) == 0 {
		return m, check.Fail(argName, check.ErrEmpty, "must not be empty")
	}
	return m, nil
}

// Size validates that m has exactly n entries.
func Size[M ~map[K]V, K comparable, V any](argName string, m M, n int) (M, error) {
	return m, check.Measure(argName, check.UnitSize, len(m), n, n)
}

// SizeInRange validates that m has between min and max entries, inclusive.
func SizeInRange[M ~map[K]V, K comparable, V any](argName string, m M, min, max int) (M, error) {
	return m, check.Measure(argName, check.UnitSize, len(m), min, max)
}

// ContainsKey validates that key is present in m.
func ContainsKey[M ~map[K]V, K comparable, V any](argName string, m M, key K) (M, error) {
	if _, ok := m[key]; !ok {
		return m, check.Fail(argName, check.ErrMissing, "must contain key %v", key)
	}
	return m, nil
}

// NoNilKeys validates that no key in m is nil, which is only possible with pointer or interface key types.
func NoNilKeys[M ~map[K]V, K comparable, V any](argName string, m M) (M, error) {
	for k := range m {
		if check.IsNil(k) {
			return m, check.Fail(argName, check.ErrNilElement, "must not contain a nil key")
		}
	}
	return m, nil
}

// NoNilValues validates that no value in m is nil, as determined by [check.IsNil].
// The key of a nil value is included in the error.
// If there are many nil values, then which key is reported is unspecified.
func NoNilValues[M ~map[K]V, K comparable, V any](argName string, m M) (M, error) {
	for k, v := range m {
		if check.IsNil(v) {
			return m, check.Fail(argName, check.ErrNilElement, "value for key %v must not be nil", k)
		}
	}
	return m, nil
}
