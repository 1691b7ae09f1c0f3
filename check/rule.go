package check

import "cmp"

// Rule is a reusable check for a value of type T.
// Every single value check in this module has this shape, so they may be used as a Rule directly.
//
//	var portRule check.Rule[int] = check.Within(1, 65535)
//	var countRule check.Rule[int] = check.NotNegative[int]
type Rule[T any] func(argName string, val T) (T, error)

// Apply runs each rule against val in order, returning the first error encountered.
// Nil rules are skipped.
func Apply[T any](argName string, val T, rules ...Rule[T]) (T, error) {
	for _, rule := range rules {
		if rule == nil {
			continue
		}
		if _, err := rule(argName, val); err != nil {
			return val, err
		}
	}
	return val, nil
}

// Always is a [Rule] that accepts any value.
func Always[T any]() Rule[T] {
	return func(_ string, val T) (T, error) {
		return val, nil
	}
}

// Min creates a [Rule] that validates val >= min.
// A NaN min is reported as [ErrInvalidBounds] for every value.
func Min[T cmp.Ordered](min T) Rule[T] {
	return func(argName string, val T) (T, error) {
		if isNaN(min) {
			return val, Fail(argName, ErrInvalidBounds, "min must not be NaN")
		}
		if val < min || isNaN(val) {
			return val, Fail(argName, ErrOutOfRange, "must be at least %v, got %v", min, val)
		}
		return val, nil
	}
}

// Max creates a [Rule] that validates val <= max.
// A NaN max is reported as [ErrInvalidBounds] for every value.
func Max[T cmp.Ordered](max T) Rule[T] {
	return func(argName string, val T) (T, error) {
		if isNaN(max) {
			return val, Fail(argName, ErrInvalidBounds, "max must not be NaN")
		}
		if val > max || isNaN(val) {
			return val, Fail(argName, ErrOutOfRange, "must be at most %v, got %v", max, val)
		}
		return val, nil
	}
}

// Within creates a [Rule] that validates min <= val <= max with [InRange].
func Within[T cmp.Ordered](min, max T) Rule[T] {
	return func(argName string, val T) (T, error) {
		return InRange(argName, val, min, max)
	}
}
