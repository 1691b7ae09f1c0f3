package check

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignChecks(t *testing.T) {
	type signCheck = func(argName string, val int) (int, error)
	tests := map[string]struct {
		check signCheck
		valid []int
		bad   []int
	}{
		"NotNegative": {check: NotNegative[int], valid: []int{0, 1, math.MaxInt}, bad: []int{-1, math.MinInt}},
		"Positive":    {check: Positive[int], valid: []int{1, math.MaxInt}, bad: []int{0, -1}},
		"NotPositive": {check: NotPositive[int], valid: []int{0, -1, math.MinInt}, bad: []int{1}},
		"Negative":    {check: Negative[int], valid: []int{-1, math.MinInt}, bad: []int{0, 1}},
		"NotZero":     {check: NotZero[int], valid: []int{-1, 1}, bad: []int{0}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			for _, val := range tc.valid {
				got, err := tc.check("n", val)
				assert.NoError(t, err, "Value %d should be valid", val)
				assert.Equal(t, val, got)
			}
			for _, val := range tc.bad {
				got, err := tc.check("n", val)
				assert.ErrorIs(t, err, ErrArgument, "Value %d should be invalid", val)
				assert.Equal(t, val, got)
			}
		})
	}
}

func TestNotNegative_Message(t *testing.T) {
	_, err := NotNegative("timeout", -time.Second)
	assert.EqualError(t, err, `argument "timeout": must not be negative, got -1s`)
}

func TestSignChecks_NaN(t *testing.T) {
	nan := math.NaN()
	_, err := NotNegative("f", nan)
	assert.Error(t, err)
	_, err = Positive("f", nan)
	assert.Error(t, err)
	_, err = NotPositive("f", nan)
	assert.Error(t, err)
	_, err = Negative("f", nan)
	assert.Error(t, err)
	_, err = NotZero("f", nan)
	assert.NoError(t, err, "NaN is not zero")
}

func TestComparisons(t *testing.T) {
	_, err := GreaterThan("n", 5, 4)
	assert.NoError(t, err)
	_, err = GreaterThan("n", 4, 4)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = AtLeast("n", 4, 4)
	assert.NoError(t, err)
	_, err = AtLeast("n", 3, 4)
	assert.EqualError(t, err, `argument "n": must be at least 4, got 3`)

	_, err = LessThan[uint8]("n", 3, 4)
	assert.NoError(t, err)
	_, err = LessThan[uint8]("n", 4, 4)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = AtMost("n", 2.5, 2.5)
	assert.NoError(t, err)
	_, err = AtMost("n", math.NaN(), 2.5)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFloatChecks(t *testing.T) {
	_, err := NotNaN("f", float32(1))
	assert.NoError(t, err)
	_, err = NotNaN("f", math.NaN())
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Finite("f", 1e300)
	assert.NoError(t, err)
	_, err = Finite("f", math.Inf(-1))
	assert.EqualError(t, err, `argument "f": must be finite, got -Inf`)
	_, err = Finite("f", math.NaN())
	assert.Error(t, err)
}
