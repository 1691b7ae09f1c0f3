/*
Package seqcheck provides argument checks for iterators, where the elements are only available through an [iter.Seq].

Each check pulls from the sequence to inspect it, so these should only be used with sequences that can be iterated more than once, like those returned from [slices.Values] or [maps.Keys].
A nil sequence is always reported with [check.ErrNil].
*/
package seqcheck

import (
	"iter"

	"github.com/saylorsolutions/argx/check"
)

func notNil[E any](argName string, seq iter.Seq[E]) error {
	if seq == nil {
		return check.Fail(argName, check.ErrNil, "must not be nil")
	}
	return nil
}

// NotEmpty validates that seq yields at least one element.
// Iteration stops after the first element.
func NotEmpty[E any](argName string, seq iter.Seq[E]) (iter.Seq[E], error) {
	if err := notNil(argName, seq); err != nil {
		return seq, err
	}
	for range seq {
		return seq, nil
	}
	return seq, check.Fail(argName, check.ErrEmpty, "must not be empty")
}

// NoNil validates that seq doesn't yield a nil element, as determined by [check.IsNil].
// The position of the first nil element is included in the error.
func NoNil[E any](argName string, seq iter.Seq[E]) (iter.Seq[E], error) {
	return All(argName, seq, func(e E) bool { return !check.IsNil(e) }, "must not be nil")
}

// All validates that every element of seq satisfies pred.
// The detail is used in the error message to describe the requirement, along with the position of the first failing element.
func All[E any](argName string, seq iter.Seq[E], pred func(E) bool, detail string) (iter.Seq[E], error) {
	if err := notNil(argName, seq); err != nil {
		return seq, err
	}
	var pos int
	for e := range seq {
		if !pred(e) {
			kind := check.ErrArgument
			if check.IsNil(e) {
				kind = check.ErrNilElement
			}
			return seq, check.Fail(argName, kind, "element at position %d %s", pos, detail)
		}
		pos++
	}
	return seq, nil
}

// CountInRange validates that seq yields between min and max elements, inclusive.
// Iteration stops as soon as the count exceeds max.
func CountInRange[E any](argName string, seq iter.Seq[E], min, max int) (iter.Seq[E], error) {
	if err := notNil(argName, seq); err != nil {
		return seq, err
	}
	if min < 0 {
		return seq, check.Fail(argName, check.ErrInvalidBounds, "min size must not be negative, got %d", min)
	}
	if err := check.Bounds(argName, min, max); err != nil {
		return seq, err
	}
	var count int
	for range seq {
		count++
		if count > max {
			return seq, check.Fail(argName, check.ErrLength, "size must be at most %d", max)
		}
	}
	return seq, check.Measure(argName, check.UnitSize, count, min, max)
}
