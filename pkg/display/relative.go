package display

import (
	"fmt"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// FormatDate renders the calendar date as D.M.YYYY without leading zeros.
func FormatDate(date time.Time) string {
	y, m, d := date.Date()
	return fmt.Sprintf("%d.%d.%d", d, int(m), y)
}

// DaysBetween returns the number of calendar days from today to date,
// negative for past dates. Each value is read as a calendar date in its own
// location. Seconds are compared directly because time.Duration saturates
// after about 292 years.
func DaysBetween(date, today time.Time) int {
	return int((midnight(date).Unix() - midnight(today).Unix()) / secondsPerDay)
}

// Relative phrases the distance between date and today:
// "(today)", "(yesterday)", "(tomorrow)", "(N days ago)" or
// "(in N days, yet to come!)".
func Relative(date, today time.Time) string {
	switch n := DaysBetween(date, today); {
	case n == 0:
		return "(today)"
	case n == -1:
		return "(yesterday)"
	case n == 1:
		return "(tomorrow)"
	case n < 0:
		return fmt.Sprintf("(%d days ago)", -n)
	default:
		return fmt.Sprintf("(in %d days, yet to come!)", n)
	}
}

// Dated combines FormatDate and Relative, e.g. "4.1.2026 (today)".
func Dated(date, today time.Time) string {
	return FormatDate(date) + " " + Relative(date, today)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
