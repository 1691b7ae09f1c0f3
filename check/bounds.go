package check

import (
	"cmp"
)

// Unit names used in container check messages.
const (
	UnitLength = "length"
	UnitSize   = "size"
	UnitIndex  = "index"
)

// isNaN reports whether val is a NaN float.
// This is always false for integer and string types.
func isNaN[T cmp.Ordered](val T) bool {
	return val != val
}

// Bounds validates that min and max describe a usable range.
// The error is attributed to argName, since the range exists to check that argument.
func Bounds[T cmp.Ordered](argName string, min, max T) error {
	if isNaN(min) || isNaN(max) {
		return Fail(argName, ErrInvalidBounds, "bounds must not be NaN, got [%v, %v]", min, max)
	}
	if min > max {
		return Fail(argName, ErrInvalidBounds, "min %v is greater than max %v", min, max)
	}
	return nil
}

// InRange validates that min <= val <= max.
// An invalid range returns an error matching [ErrInvalidBounds] regardless of val.
// NaN is never in range.
func InRange[T cmp.Ordered](argName string, val, min, max T) (T, error) {
	if err := Bounds(argName, min, max); err != nil {
		return val, err
	}
	return val, rangeErr(argName, "", val, min, max)
}

// rangeErr centralizes the min/max comparison and messaging for all range based checks.
// The unit is included in the message when given, so container checks read "length 4 must be ...".
func rangeErr[T cmp.Ordered](argName, unit string, val, min, max T) error {
	prefix := "value"
	if len(unit) > 0 {
		prefix = unit
	}
	switch {
	case isNaN(val):
		return Fail(argName, ErrOutOfRange, "%s must be in range [%v, %v], got NaN", prefix, min, max)
	case val < min || val > max:
		kind := ErrOutOfRange
		if len(unit) > 0 && unit != UnitIndex {
			kind = ErrLength
		}
		if min == max {
			return Fail(argName, kind, "%s must be %v, got %v", prefix, min, val)
		}
		return Fail(argName, kind, "%s must be in range [%v, %v], got %v", prefix, min, max, val)
	default:
		return nil
	}
}

// Measure validates that a measured quantity of a container (its length, or size) is in range [min, max].
// This is shared by the container check packages so messages stay consistent.
// Both bounds must be non-negative.
func Measure(argName, unit string, n, min, max int) error {
	if min < 0 {
		return Fail(argName, ErrInvalidBounds, "min %s must not be negative, got %d", unit, min)
	}
	if err := Bounds(argName, min, max); err != nil {
		return err
	}
	return rangeErr(argName, unit, n, min, max)
}

// Size validates that n can be used as the size of a container.
func Size(argName string, n int) (int, error) {
	if n < 0 {
		return n, Fail(argName, ErrInvalidBounds, "size must not be negative, got %d", n)
	}
	return n, nil
}

// Index validates that 0 <= index < size.
// The size itself must not be negative.
func Index(argName string, index, size int) (int, error) {
	if _, err := Size(argName, size); err != nil {
		return index, err
	}
	if index < 0 || index >= size {
		return index, Fail(argName, ErrIndex, "index %d out of bounds for size %d", index, size)
	}
	return index, nil
}

// Position validates that 0 <= pos <= size.
// Unlike [Index], a position may refer to the end of a container, as with insertions or slice expressions.
func Position(argName string, pos, size int) (int, error) {
	if _, err := Size(argName, size); err != nil {
		return pos, err
	}
	if pos < 0 || pos > size {
		return pos, Fail(argName, ErrIndex, "position %d out of bounds for size %d", pos, size)
	}
	return pos, nil
}

// SubRange validates that [from, to) is a valid sub-range of a container with the given size.
// That is, 0 <= from <= to <= size.
func SubRange(argName string, from, to, size int) error {
	if _, err := Size(argName, size); err != nil {
		return err
	}
	if from < 0 || from > to || to > size {
		return Fail(argName, ErrIndex, "range [%d, %d) out of bounds for size %d", from, to, size)
	}
	return nil
}

// FromSize validates that the n elements starting at from are within a container with the given size.
// The end of the range is never computed directly, so very large values can't overflow into a passing check.
func FromSize(argName string, from, n, size int) error {
	if _, err := Size(argName, size); err != nil {
		return err
	}
	if from < 0 || n < 0 || from > size-n {
		return Fail(argName, ErrIndex, "range [%d, %d + %d) out of bounds for size %d", from, from, n, size)
	}
	return nil
}
