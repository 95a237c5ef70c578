package game

import "time"

// dayKeyLayout is the canonical calendar-day format. All lookups join on
// this string, never on raw time equality, to avoid timezone drift.
const dayKeyLayout = "2006-01-02"

// DayKey returns YYYY-MM-DD in UTC.
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

// ParseDayKey parses a YYYY-MM-DD string to a UTC midnight time.
func ParseDayKey(s string) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, s, time.UTC)
}

// DaysBetween returns whole calendar days from a to b (positive when b is
// later), comparing UTC day boundaries.
func DaysBetween(a, b time.Time) int {
	au := a.UTC().Truncate(24 * time.Hour)
	bu := b.UTC().Truncate(24 * time.Hour)
	return int(bu.Sub(au).Hours() / 24)
}
