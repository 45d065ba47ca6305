package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-15", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"03/15/2026", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"2026-03-15T18:45:00Z", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"  2026-03-15 ", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseDate("15th March")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestOverlapsInclusive(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
	}

	// Shared boundary day counts as overlap.
	assert.True(t, Overlaps(day(1), day(5), day(5), day(9)))
	assert.True(t, Overlaps(day(5), day(9), day(1), day(5)))
	assert.True(t, Overlaps(day(3), day(4), day(1), day(9)))
	assert.True(t, Overlaps(day(1), day(9), day(3), day(4)))

	assert.False(t, Overlaps(day(1), day(4), day(5), day(9)))
	assert.False(t, Overlaps(day(10), day(12), day(5), day(9)))
}
