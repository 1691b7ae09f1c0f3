package slicecheck

import (
	"math"
	"testing"

	"github.com/saylorsolutions/argx/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotEmpty(t *testing.T) {
	_, err := NotEmpty("s", []int{1})
	assert.NoError(t, err)

	_, err = NotEmpty("s", []int{})
	assert.ErrorIs(t, err, check.ErrEmpty)

	var nilSlice []string
	_, err = NotEmpty("s", nilSlice)
	assert.ErrorIs(t, err, check.ErrNil)
}

func TestLen(t *testing.T) {
	_, err := Len("s", []byte{1, 2}, 2)
	assert.NoError(t, err)
	_, err = Len("s", []byte{1, 2}, 3)
	assert.EqualError(t, err, `argument "s": length must be 3, got 2`)

	_, err = LenInRange("s", []byte{}, 0, 1)
	assert.NoError(t, err)
	_, err = LenInRange("s", []byte{1, 2}, 0, 1)
	assert.ErrorIs(t, err, check.ErrLength)

	_, err = MaxLen("s", []byte{1, 2}, 2)
	assert.NoError(t, err)
	_, err = MaxLen("s", []byte{1, 2}, 1)
	assert.ErrorIs(t, err, check.ErrLength)
}

func TestIndex(t *testing.T) {
	s := []string{"a", "b"}
	i, err := Index("i", s, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, i)
	_, err = Index("i", s, 2)
	assert.EqualError(t, err, `argument "i": index 2 out of bounds for size 2`)
}

func TestSubSlice(t *testing.T) {
	s := []int{1, 2, 3, 4}
	sub, err := SubSlice("s", s, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, sub)

	sub, err = SubSlice("s", s, 3, 5)
	assert.ErrorIs(t, err, check.ErrIndex)
	assert.Equal(t, s, sub, "The original slice should be returned on error")
}

func TestNoNil(t *testing.T) {
	one := 1
	_, err := NoNil("ptrs", []*int{&one, &one})
	assert.NoError(t, err)

	_, err = NoNil("ptrs", []*int{&one, nil})
	assert.ErrorIs(t, err, check.ErrNilElement)
	assert.EqualError(t, err, `argument "ptrs": element at index 1 must not be nil`)

	_, err = NoNil("vals", []any{1, "", nil})
	assert.ErrorIs(t, err, check.ErrNilElement)

	_, err = NoNil("ints", []int{0, 0})
	assert.NoError(t, err, "Non-nillable element types can't contain nil")

	arr := [2]error{}
	_, err = NoNil("arr", arr[:])
	assert.ErrorIs(t, err, check.ErrNilElement)
}

func TestNoDuplicates(t *testing.T) {
	_, err := NoDuplicates("s", []string{"a", "b"})
	assert.NoError(t, err)
	_, err = NoDuplicates("s", []string{"a", "b", "a"})
	assert.ErrorIs(t, err, check.ErrDuplicate)
	assert.EqualError(t, err, `argument "s": element at index 2 duplicates index 0: a`)
}

func TestNoDuplicates_Interfaces(t *testing.T) {
	var (
		err error
		buf []byte
	)
	assert.NotPanics(t, func() {
		_, err = NoDuplicates("s", []any{[]int{1}, 2})
	})
	assert.ErrorIs(t, err, check.ErrArgument)
	assert.EqualError(t, err, `argument "s": element at index 0 has uncomparable type []int`)

	type holder struct{ val any }
	assert.NotPanics(t, func() {
		_, err = NoDuplicates("s", []holder{{val: 1}, {val: buf}})
	})
	assert.ErrorIs(t, err, check.ErrArgument)

	_, err = NoDuplicates("s", []holder{{val: nil}, {val: 1}})
	assert.NoError(t, err)
	_, err = NoDuplicates("s", []any{nil, 1, "1"})
	assert.NoError(t, err)
	_, err = NoDuplicates("s", []any{1, nil, nil})
	assert.ErrorIs(t, err, check.ErrDuplicate)
}

func TestNoDuplicates_NaN(t *testing.T) {
	_, err := NoDuplicates("s", []float64{math.NaN(), 1})
	assert.NoError(t, err)
	_, err = NoDuplicates("s", []float64{math.NaN(), 1, math.NaN()})
	assert.ErrorIs(t, err, check.ErrDuplicate)
	assert.EqualError(t, err, `argument "s": element at index 2 duplicates index 0: NaN`)
}

func TestContains(t *testing.T) {
	_, err := Contains("s", []int{1, 2}, 2)
	assert.NoError(t, err)
	_, err = Contains("s", []int{1, 2}, 3)
	assert.ErrorIs(t, err, check.ErrMissing)
}
