package timeutil

import (
	"fmt"
	"time"
)

const layoutClock = "15:04"

// ParseClock parses a 24-hour "HH:MM" clock string.
func ParseClock(input string) (hour, min int, err error) {
	t, err := time.Parse(layoutClock, input)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock time %q, want HH:MM", input)
	}
	return t.Hour(), t.Minute(), nil
}

// At combines a date with a clock time in the date's location.
func At(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}
