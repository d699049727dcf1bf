package domain

import "time"

// StartOfHour truncates a timestamp to the beginning of its hour,
// preserving the location. This is the canonical appointment instant:
// all comparisons and storage use the truncated value.
func StartOfHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// InBusinessHours reports whether the hour of a (normalized) timestamp
// falls inside the bookable window
func InBusinessHours(t time.Time) bool {
	hour := t.Hour()
	return hour >= BusinessDayStartHour && hour <= BusinessDayEndHour
}

// SameDay reports whether two timestamps fall on the same calendar day
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
