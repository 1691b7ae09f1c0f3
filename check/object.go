package check

import (
	"context"
	"reflect"
	"slices"
)

// IsNil reports whether val is nil, or is an interface holding a nil pointer, map, slice, channel, or function.
func IsNil(val any) bool {
	if val == nil {
		return true
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// NotNil validates that val is not nil.
// A typed nil pointer (or map, slice, etc.) is treated as nil, even though it's not equal to nil as an interface value.
func NotNil[T any](argName string, val T) (T, error) {
	if IsNil(val) {
		return val, Fail(argName, ErrNil, "must not be nil")
	}
	return val, nil
}

// NotZeroValue validates that val is not the zero value of its type.
func NotZeroValue[T comparable](argName string, val T) (T, error) {
	var zero T
	if val == zero {
		return val, Fail(argName, ErrZero, "must not be the zero value")
	}
	return val, nil
}

// OneOf validates that val is equal to one of the allowed values.
func OneOf[T comparable](argName string, val T, allowed ...T) (T, error) {
	if !slices.Contains(allowed, val) {
		return val, Fail(argName, ErrMissing, "must be one of %v, got %v", allowed, val)
	}
	return val, nil
}

// That validates an arbitrary condition about val, using detail as the message when ok is false.
func That[T any](argName string, val T, ok bool, detail string) (T, error) {
	if !ok {
		return val, Fail(argName, ErrArgument, "%s", detail)
	}
	return val, nil
}

// Context validates that ctx is not nil, and has not been cancelled or timed out.
func Context(argName string, ctx context.Context) (context.Context, error) {
	if ctx == nil {
		return ctx, Fail(argName, ErrNil, "must not be nil")
	}
	if err := ctx.Err(); err != nil {
		return ctx, Wrap(argName, ErrDone, err, "must not be done")
	}
	return ctx, nil
}
