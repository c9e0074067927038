package utils

import (
	"regexp"
	"strings"
	"time"
)

const calendarDateLayout = "2006-01-02"

// DayOf returns the calendar-date part of an ISO-8601 value, i.e. everything
// before the first 'T'. "2024-05-01T10:00:00Z" and "2024-05-01" share the
// same day.
func DayOf(iso string) string {
	day, _, _ := strings.Cut(strings.TrimSpace(iso), "T")
	return day
}

func IsCalendarDate(iso string) bool {
	_, err := time.Parse(calendarDateLayout, DayOf(iso))
	return err == nil
}

// DayPattern matches stored fecha values on day: the bare date or the date
// followed by a time component. Stored values are trimmed before insert.
func DayPattern(day string) string {
	return "^" + regexp.QuoteMeta(day) + "(T|$)"
}
