package check

import (
	"math"
)

// Number is any integer or floating point type, including named types like [time.Duration].
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// NotNegative validates that val >= 0.
func NotNegative[T Number](argName string, val T) (T, error) {
	if val < 0 || isNaN(val) {
		return val, Fail(argName, ErrOutOfRange, "must not be negative, got %v", val)
	}
	return val, nil
}

// Positive validates that val > 0.
func Positive[T Number](argName string, val T) (T, error) {
	if !(val > 0) {
		return val, Fail(argName, ErrOutOfRange, "must be positive, got %v", val)
	}
	return val, nil
}

// NotPositive validates that val <= 0.
func NotPositive[T Number](argName string, val T) (T, error) {
	if val > 0 || isNaN(val) {
		return val, Fail(argName, ErrOutOfRange, "must not be positive, got %v", val)
	}
	return val, nil
}

// Negative validates that val < 0.
func Negative[T Number](argName string, val T) (T, error) {
	if !(val < 0) {
		return val, Fail(argName, ErrOutOfRange, "must be negative, got %v", val)
	}
	return val, nil
}

// NotZero validates that val != 0.
func NotZero[T Number](argName string, val T) (T, error) {
	if val == 0 {
		return val, Fail(argName, ErrZero, "must not be zero")
	}
	return val, nil
}

// GreaterThan validates that val > bound.
func GreaterThan[T Number](argName string, val, bound T) (T, error) {
	if !(val > bound) {
		return val, Fail(argName, ErrOutOfRange, "must be greater than %v, got %v", bound, val)
	}
	return val, nil
}

// AtLeast validates that val >= bound.
func AtLeast[T Number](argName string, val, bound T) (T, error) {
	if !(val >= bound) {
		return val, Fail(argName, ErrOutOfRange, "must be at least %v, got %v", bound, val)
	}
	return val, nil
}

// LessThan validates that val < bound.
func LessThan[T Number](argName string, val, bound T) (T, error) {
	if !(val < bound) {
		return val, Fail(argName, ErrOutOfRange, "must be less than %v, got %v", bound, val)
	}
	return val, nil
}

// AtMost validates that val <= bound.
func AtMost[T Number](argName string, val, bound T) (T, error) {
	if !(val <= bound) {
		return val, Fail(argName, ErrOutOfRange, "must be at most %v, got %v", bound, val)
	}
	return val, nil
}

// NotNaN validates that val is not NaN.
func NotNaN[T ~float32 | ~float64](argName string, val T) (T, error) {
	if math.IsNaN(float64(val)) {
		return val, Fail(argName, ErrOutOfRange, "must not be NaN")
	}
	return val, nil
}

// Finite validates that val is neither NaN nor infinite.
func Finite[T ~float32 | ~float64](argName string, val T) (T, error) {
	f := float64(val)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return val, Fail(argName, ErrOutOfRange, "must be finite, got %v", val)
	}
	return val, nil
}
