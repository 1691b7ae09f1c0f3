package check

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgError_Error(t *testing.T) {
	err := Fail("count", ErrOutOfRange, "must not be negative, got %d", -1)
	assert.Equal(t, `argument "count": must not be negative, got -1`, err.Error())

	unnamed := Fail("", ErrNil, "must not be nil")
	assert.Equal(t, "invalid argument: must not be nil", unnamed.Error())

	noDetail := &ArgError{Name: "x", Kind: ErrEmpty}
	assert.Equal(t, `argument "x": empty value`, noDetail.Error(), "The kind should be used when there is no detail")
}

func TestArgError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Fail("x", ErrNil, "must not be nil"))
	assert.ErrorIs(t, err, ErrArgument)
	assert.ErrorIs(t, err, ErrNil)
	assert.ErrorIs(t, err, &ArgError{})
	assert.NotErrorIs(t, err, ErrEmpty)
}

func TestWrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap("path", ErrArgument, cause, "failed to stat")
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrArgument)
	assert.Equal(t, `argument "path": failed to stat: permission denied`, err.Error())
}

func TestNameOf(t *testing.T) {
	name, ok := NameOf(fmt.Errorf("context: %w", Fail("port", ErrOutOfRange, "bad")))
	assert.True(t, ok)
	assert.Equal(t, "port", name)

	_, ok = NameOf(errors.New("plain"))
	assert.False(t, ok)
}
