package utils

import (
	"strings"
	"time"
)

const (
	layoutDate        = "2006-01-02"
	layoutDisplayDate = "02-01-2006"
	layoutClock       = "15:04"
)

// ParseDate parses YYYY-MM-DD anchored to midnight local time. Anchoring
// avoids the off-by-one-day shift a UTC parse produces east of Greenwich.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ParseClock parses a bare HH:MM clock value.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(layoutClock, strings.TrimSpace(s))
}

// DisplayDate converts an ISO YYYY-MM-DD string to the DD-MM-YYYY form used
// in summaries and outbound notifications. Unparseable input is returned
// unchanged rather than dropped.
func DisplayDate(iso string) string {
	t, err := ParseDate(iso)
	if err != nil {
		return strings.TrimSpace(iso)
	}
	return t.Format(layoutDisplayDate)
}

// Today truncates a time to midnight local, for "not earlier than today"
// comparisons.
func Today(now time.Time) time.Time {
	y, m, d := now.In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
