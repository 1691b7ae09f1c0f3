package check

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBetween(t *testing.T) {
	var (
		start = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
		end   = start.Add(24 * time.Hour)
	)

	got, err := Between("at", start.Add(time.Hour), start, end)
	assert.NoError(t, err)
	assert.Equal(t, start.Add(time.Hour), got)

	_, err = Between("at", start, start, end)
	assert.NoError(t, err)
	_, err = Between("at", end, start, end)
	assert.NoError(t, err)

	_, err = Between("at", end.Add(time.Nanosecond), start, end)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Between("at", start, end, start)
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func TestNotBeforeNotAfter(t *testing.T) {
	now := time.Now()

	_, err := NotBefore("deadline", now, now)
	assert.NoError(t, err)
	_, err = NotBefore("deadline", now.Add(-time.Second), now)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NotAfter("created", now, now)
	assert.NoError(t, err)
	_, err = NotAfter("created", now.Add(time.Second), now)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
