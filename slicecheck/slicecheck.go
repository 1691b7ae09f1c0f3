// Package slicecheck provides argument checks for slices and arrays.
//
// Arrays may be checked by slicing them first, e.g. slicecheck.NoNil("arr", arr[:]).
package slicecheck

import (
	"reflect"
	"slices"

	"github.com/saylorsolutions/argx/check"
)

// NotEmpty validates that s has at least one element.
// A nil slice is reported with [check.ErrNil] rather than [check.ErrEmpty].
func NotEmpty[S ~[]E, E any](argName string, s S) (S, error) {
	if s == nil {
		return s, check.Fail(argName, check.ErrNil, "must not be nil")
	}
	if len(s) == 0 {
		return s, check.Fail(argName, check.ErrEmpty, "must not be empty")
	}
	return s, nil
}

// Len validates that s has exactly n elements.
func Len[S ~[]E, E any](argName string, s S, n int) (S, error) {
	return s, check.Measure(argName, check.UnitLength, len(s), n, n)
}

// LenInRange validates that s has between min and max elements, inclusive.
func LenInRange[S ~[]E, E any](argName string, s S, min, max int) (S, error) {
	return s, check.Measure(argName, check.UnitLength, len(s), min, max)
}

// MaxLen validates that s has at most max elements.
func MaxLen[S ~[]E, E any](argName string, s S, max int) (S, error) {
	return LenInRange(argName, s, 0, max)
}

// Index validates that i is a valid index into s.
func Index[S ~[]E, E any](argName string, s S, i int) (int, error) {
	return check.Index(argName, i, len(s))
}

// SubSlice validates that s[from:to] is a valid slice expression, and returns the sub-slice.
// If the range is invalid, then s is returned unchanged with the error.
func SubSlice[S ~[]E, E any](argName string, s S, from, to int) (S, error) {
	if err := check.SubRange(argName, from, to, len(s)); err != nil {
		return s, err
	}
	return s[from:to], nil
}

// NoNil validates that no element of s is nil, as determined by [check.IsNil].
// The index of the first nil element is included in the error.
func NoNil[S ~[]E, E any](argName string, s S) (S, error) {
	for i, e := range s {
		if check.IsNil(e) {
			return s, check.Fail(argName, check.ErrNilElement, "element at index %d must not be nil", i)
		}
	}
	return s, nil
}

// NoDuplicates validates that every element of s is unique.
// NaN elements are duplicates of each other, since they can't be told apart.
// An interface element holding a value that can't be compared, like a slice, is reported with [check.ErrArgument].
func NoDuplicates[S ~[]E, E comparable](argName string, s S) (S, error) {
	var (
		seen     = make(map[E]int, len(s))
		dynamic  = mayHoldUncomparable(reflect.TypeFor[E]())
		firstNaN = -1
	)
	for i, e := range s {
		if dynamic {
			if !hashable(reflect.ValueOf(e)) {
				return s, check.Fail(argName, check.ErrArgument, "element at index %d has uncomparable type %T", i, e)
			}
		}
		if e != e {
			if firstNaN >= 0 {
				return s, check.Fail(argName, check.ErrDuplicate, "element at index %d duplicates index %d: %v", i, firstNaN, e)
			}
			firstNaN = i
			continue
		}
		if first, ok := seen[e]; ok {
			return s, check.Fail(argName, check.ErrDuplicate, "element at index %d duplicates index %d: %v", i, first, e)
		}
		seen[e] = i
	}
	return s, nil
}

// hashable reports whether v can be used as a map key without panicking.
// Nil interfaces are hashable.
func hashable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Interface:
		return v.IsNil() || hashable(v.Elem())
	case reflect.Array:
		for i := range v.Len() {
			if !hashable(v.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := range v.NumField() {
			if !hashable(v.Field(i)) {
				return false
			}
		}
		return true
	default:
		return v.Type().Comparable()
	}
}

// mayHoldUncomparable reports whether a comparable type can still panic when hashed, because it contains an interface.
func mayHoldUncomparable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return mayHoldUncomparable(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if mayHoldUncomparable(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

// Contains validates that s contains val.
func Contains[S ~[]E, E comparable](argName string, s S, val E) (S, error) {
	if !slices.Contains(s, val) {
		return s, check.Fail(argName, check.ErrMissing, "must contain %v", val)
	}
	return s, nil
}
