package utils

import (
	"time"
)

const DayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD value as midnight in the given location.
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayLayout, value, loc)
}

// DayBounds returns the [start, end) span of the calendar day containing t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}

// Yesterday returns yesterday's date in the given location, the default day
// the original tracker reports on.
func Yesterday(loc *time.Location) string {
	return time.Now().In(loc).AddDate(0, 0, -1).Format(DayLayout)
}
