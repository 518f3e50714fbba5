package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"30s", 30 * time.Second},
		{"10m", 10 * time.Minute},
		{"2h", 2 * time.Hour},
		{"3d", 72 * time.Hour},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDuration(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	for _, bad := range []string{"", "10", "m", "1.5h", "10 m", "-5m"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := ParseDuration(bad)
			assert.Error(t, err)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{72 * time.Hour, "3d"},
		{36 * time.Hour, "36h"},
		{90 * time.Minute, "90m"},
		{45 * time.Second, "45s"},
		{2 * time.Hour, "2h"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatDuration(tc.d))
		})
	}
}

func TestFormatDuration_RoundTrip(t *testing.T) {
	for _, d := range []time.Duration{time.Minute, 2 * time.Hour, 72 * time.Hour} {
		parsed, err := ParseDuration(FormatDuration(d))
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
}

func TestParseTimeSpec(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("compact duration offsets from base", func(t *testing.T) {
		got, err := ParseTimeSpec("10m", base)
		require.NoError(t, err)
		assert.Equal(t, base.Add(10*time.Minute), got)
	})

	t.Run("natural language resolves against base", func(t *testing.T) {
		got, err := ParseTimeSpec("tomorrow at 9am", base)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC), got)
	})

	t.Run("gibberish is rejected", func(t *testing.T) {
		_, err := ParseTimeSpec("whenever", base)
		assert.Error(t, err)
	})
}
