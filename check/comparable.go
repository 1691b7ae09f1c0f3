package check

// Comparer is a type that can be compared with another value of the same type, like [time.Time].
// Compare should return a negative number, zero, or a positive number when the receiver is less than, equal to, or greater than other.
type Comparer[T any] interface {
	Compare(other T) int
}

// Between validates that min <= val <= max for types that can't use the ordering operators.
func Between[T Comparer[T]](argName string, val, min, max T) (T, error) {
	if min.Compare(max) > 0 {
		return val, Fail(argName, ErrInvalidBounds, "min %v is greater than max %v", min, max)
	}
	if val.Compare(min) < 0 || val.Compare(max) > 0 {
		return val, Fail(argName, ErrOutOfRange, "value must be in range [%v, %v], got %v", min, max, val)
	}
	return val, nil
}

// NotBefore validates that val >= bound.
func NotBefore[T Comparer[T]](argName string, val, bound T) (T, error) {
	if val.Compare(bound) < 0 {
		return val, Fail(argName, ErrOutOfRange, "must not be before %v, got %v", bound, val)
	}
	return val, nil
}

// NotAfter validates that val <= bound.
func NotAfter[T Comparer[T]](argName string, val, bound T) (T, error) {
	if val.Compare(bound) > 0 {
		return val, Fail(argName, ErrOutOfRange, "must not be after %v, got %v", bound, val)
	}
	return val, nil
}
