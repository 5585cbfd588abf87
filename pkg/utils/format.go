package utils

import (
	"fmt"
	"time"
)

func FormatPeriod(start, end time.Time) string {
	return fmt.Sprintf("%s - %s",
		start.Format("2006-01-02 15:04"),
		end.Format("2006-01-02 15:04"))
}

// FormatMinutes renders a minute count as "7h30m", or "45m" under an hour.
func FormatMinutes(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
