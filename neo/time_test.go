package neo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"Typical", "2020-Jan-01 12:30", time.Date(2020, 1, 1, 12, 30, 0, 0, time.UTC), false},
		{"EndOfYear", "1999-Dec-31 23:59", time.Date(1999, 12, 31, 23, 59, 0, 0, time.UTC), false},
		{"EmptyIsUnknown", "", time.Time{}, false},
		{"WrongLayout", "2020-01-01 12:30", time.Time{}, true},
		{"Garbage", "not a time", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCalendarTime(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "2020-01-01 12:30", FormatTime(time.Date(2020, 1, 1, 12, 30, 59, 0, time.UTC)))
	assert.Equal(t, "", FormatTime(time.Time{}))

	// Zoned times render in UTC.
	loc := time.FixedZone("CET", 3600)
	assert.Equal(t, "2020-01-01 11:30", FormatTime(time.Date(2020, 1, 1, 12, 30, 0, 0, loc)))
}

func TestFormatParseRoundTrip(t *testing.T) {
	in := "2187-Apr-28 03:48"
	parsed, err := ParseCalendarTime(in)
	require.NoError(t, err)
	assert.Equal(t, "2187-04-28 03:48", FormatTime(parsed))
}
