package domain

import (
	"math"
	"time"
)

const UrgentWithinDays = 3

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate accepts the date formats produced by the backend. Date-only
// values are UTC midnight.
func ParseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func FormatDate(value string) string {
	if value == "" {
		return "N/A"
	}

	t, ok := ParseDate(value)
	if !ok {
		return "Invalid Date"
	}

	return t.Format("Jan 2, 2006")
}

// DaysUntil rounds the remaining time up to whole days; it is negative for
// passed deadlines and false when deadline is empty or unparseable.
func DaysUntil(deadline string, now time.Time) (int, bool) {
	if deadline == "" {
		return 0, false
	}

	t, ok := ParseDate(deadline)
	if !ok {
		return 0, false
	}

	days := math.Ceil(t.Sub(now).Hours() / 24)
	return int(days), true
}

func IsUrgent(deadline string, now time.Time) bool {
	days, ok := DaysUntil(deadline, now)
	return ok && days <= UrgentWithinDays
}
