package mapcheck

import (
	"testing"

	"github.com/saylorsolutions/argx/check"
	"github.com/stretchr/testify/assert"
)

func TestNotEmpty(t *testing.T) {
	_, err := NotEmpty("m", map[string]int{"a": 1})
	assert.NoError(t, err)
	_, err = NotEmpty("m", map[string]int{})
	assert.ErrorIs(t, err, check.ErrEmpty)

	var nilMap map[string]int
	_, err = NotEmpty("m", nilMap)
	assert.ErrorIs(t, err, check.ErrNil)
}

func TestSize(t *testing.T) {
	m := map[int]bool{1: true, 2: false}
	_, err := Size("m", m, 2)
	assert.NoError(t, err)
	_, err = Size("m", m, 1)
	assert.EqualError(t, err, `argument "m": size must be 1, got 2`)

	_, err = SizeInRange("m", m, 0, 2)
	assert.NoError(t, err)
	_, err = SizeInRange("m", m, 3, 5)
	assert.ErrorIs(t, err, check.ErrLength)
	_, err = SizeInRange("m", m, 5, 3)
	assert.ErrorIs(t, err, check.ErrInvalidBounds)
}

func TestContainsKey(t *testing.T) {
	m := map[string]int{"a": 1}
	_, err := ContainsKey("m", m, "a")
	assert.NoError(t, err)
	_, err = ContainsKey("m", m, "b")
	assert.ErrorIs(t, err, check.ErrMissing)
	assert.EqualError(t, err, `argument "m": must contain key b`)
}

func TestNoNilKeys(t *testing.T) {
	_, err := NoNilKeys("m", map[any]int{"a": 1, 2: 2})
	assert.NoError(t, err)
	_, err = NoNilKeys("m", map[any]int{nil: 1})
	assert.ErrorIs(t, err, check.ErrNilElement)

	var p *int
	_, err = NoNilKeys("m", map[*int]string{p: "nil"})
	assert.ErrorIs(t, err, check.ErrNilElement)
}

func TestNoNilValues(t *testing.T) {
	one := 1
	_, err := NoNilValues("m", map[string]*int{"a": &one})
	assert.NoError(t, err)
	_, err = NoNilValues("m", map[string]*int{"a": &one, "b": nil})
	assert.ErrorIs(t, err, check.ErrNilElement)
	assert.EqualError(t, err, `argument "m": value for key b must not be nil`)

	_, err = NoNilValues("m", map[string][]byte{"empty": {}})
	assert.NoError(t, err, "An empty slice value is not nil")
}
