package utils

import (
	"fmt"
	"time"
)

// RelativeTime renders how long ago past happened relative to now, with
// the same fixed thresholds the feed always used: seconds under a
// minute, then minutes, hours, days, 30-day months and 12-month years.
func RelativeTime(past, now time.Time) string {
	seconds := int(now.Sub(past).Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%d seconds ago", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%d %s ago", minutes, plural("minute", minutes))
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%d %s ago", hours, plural("hour", hours))
	}

	days := hours / 24
	if days < 30 {
		return fmt.Sprintf("%d %s ago", days, plural("day", days))
	}

	months := days / 30
	if months < 12 {
		return fmt.Sprintf("%d %s ago", months, plural("month", months))
	}

	years := months / 12
	return fmt.Sprintf("%d %s ago", years, plural("year", years))
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
