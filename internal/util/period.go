package util

import "time"

const lastInstantOffset = 999 * time.Millisecond

// endOfDay returns 23:59:59.999 on the day of t.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location()).
		Add(lastInstantOffset)
}

// startOfDay returns 00:00:00.000 on the day of t.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthWindow returns the first calendar day 00:00:00.000 through the last
// calendar day 23:59:59.999 of the month containing asOf.
func MonthWindow(asOf time.Time) (time.Time, time.Time) {
	first := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, asOf.Location())
	last := first.AddDate(0, 1, -1)
	return first, endOfDay(last)
}

// WeekWindow returns Monday 00:00:00.000 through Sunday 23:59:59.999 of the
// week containing asOf. Weeks start on Monday; Sunday belongs to the week
// that started six days earlier.
func WeekWindow(asOf time.Time) (time.Time, time.Time) {
	daysSinceMonday := int(asOf.Weekday()) - 1
	if asOf.Weekday() == time.Sunday {
		daysSinceMonday = 6
	}
	monday := startOfDay(asOf.AddDate(0, 0, -daysSinceMonday))
	sunday := monday.AddDate(0, 0, 6)
	return monday, endOfDay(sunday)
}

// YearWindow returns Jan 1 00:00:00.000 through Dec 31 23:59:59.999 of the
// year containing asOf.
func YearWindow(asOf time.Time) (time.Time, time.Time) {
	first := time.Date(asOf.Year(), time.January, 1, 0, 0, 0, 0, asOf.Location())
	last := time.Date(asOf.Year(), time.December, 31, 0, 0, 0, 0, asOf.Location())
	return first, endOfDay(last)
}
