package util

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for every stored date.
const DateLayout = "2006-01-02"

// CivilDate keeps only the year, month and day of t, pinned to UTC midnight.
// The components are read in t's own location, so 23:30 local stays on the
// same day no matter what the UTC offset is.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a civil date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// FormatDate renders the civil date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return CivilDate(t).Format(DateLayout)
}

// AddDays shifts the civil date of t by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return CivilDate(t).AddDate(0, 0, n)
}

// DaysBetween returns the whole calendar days from -> to (negative when to is earlier).
func DaysBetween(from, to time.Time) int {
	return int(CivilDate(to).Sub(CivilDate(from)).Hours() / 24)
}
