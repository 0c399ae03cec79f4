package neo

import "time"

const (
	// CalendarLayout is the NASA "cd" calendar layout used by the close
	// approach data feed, e.g. "2020-Jan-01 12:30".
	CalendarLayout = "2006-Jan-02 15:04"

	// TimeLayout is the fixed output layout used everywhere this library
	// renders an approach time, e.g. "2020-01-01 12:30". The source data
	// has minute precision, so no seconds are shown.
	TimeLayout = "2006-01-02 15:04"
)

// ParseCalendarTime parses a NASA calendar timestamp ("2020-Jan-01 12:30")
// into a UTC time. The empty string parses to the zero time, the
// unknown-time sentinel.
func ParseCalendarTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(CalendarLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// FormatTime renders t in the fixed output layout, minute precision. The
// zero time formats as the empty string.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimeLayout)
}
