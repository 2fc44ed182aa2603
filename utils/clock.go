package utils

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidClock reports an unparsable or out-of-range clock value.
var ErrInvalidClock = errors.New("invalid clock value")

// ErrInvalidDate reports an unparsable calendar date.
var ErrInvalidDate = errors.New("invalid date")

const dateLayout = "2006-01-02"

// ParseClock converts an "HH:MM" string into minutes from midnight.
// "24:00" is accepted as the end-of-day boundary.
func ParseClock(s string) (int, error) {
	if s == "24:00" {
		return 24 * 60, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight as "HH:MM".
func FormatClock(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// ParseDate parses a "YYYY-MM-DD" calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate renders a date as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// SlotForMinutes maps a clock time (minutes from midnight) onto its diary
// grid slot. Times before the grid opens map to negative slots; callers
// decide whether to clamp or skip.
func SlotForMinutes(mins int) int {
	return mins/60 - DayStartHour
}
