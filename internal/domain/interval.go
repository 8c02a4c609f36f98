package domain

import "time"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any instant. Intervals that merely touch at a
// boundary (one ends exactly where the other begins) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// MonthEarlier returns t moved one calendar month into the past, keeping the
// time of day. When the day of month does not exist in the target month the
// result is clamped to that month's last day (2024-03-31 -> 2024-02-29).
// This deliberately avoids time.AddDate, whose normalization rolls such
// dates forward into the original month.
func MonthEarlier(t time.Time) time.Time {
	year, month, day := t.Date()
	firstOfPrev := time.Date(year, month-1, 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(firstOfPrev.Year(), firstOfPrev.Month(), t.Location()); day > last {
		day = last
	}
	hour, min, sec := t.Clock()
	return time.Date(firstOfPrev.Year(), firstOfPrev.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month, loc *time.Location) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// WithinEnrollmentWindow reports whether now falls inside the enrollment
// window for a competition starting at start. The window spans one calendar
// month ending at the competition start, inclusive on both ends.
func WithinEnrollmentWindow(start, now time.Time) bool {
	open := MonthEarlier(start)
	return !now.Before(open) && !now.After(start)
}
