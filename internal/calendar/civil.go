package calendar

import (
	"fmt"
	"time"
)

// civilDateLayout is the wire format for all-day dates and day keys.
const civilDateLayout = "2006-01-02"

// CivilDate is a calendar day with no time component and no timezone. It is
// the key type for day buckets and the payload of all-day event boundaries.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// CivilDateOf returns the civil date of t in t's location.
func CivilDateOf(t time.Time) CivilDate {
	y, m, d := t.Date()
	return CivilDate{Year: y, Month: m, Day: d}
}

// ParseCivilDate parses a YYYY-MM-DD string.
func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.Parse(civilDateLayout, s)
	if err != nil {
		return CivilDate{}, fmt.Errorf("invalid civil date %q: %w", s, err)
	}
	return CivilDateOf(t), nil
}

// String returns the date in YYYY-MM-DD form.
func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Midnight returns the date at 00:00:00 in loc.
func (d CivilDate) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date shifted by n calendar days. time.Date normalizes
// out-of-range days, so month and year boundaries are handled for free.
func (d CivilDate) AddDays(n int) CivilDate {
	return CivilDateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// Before reports whether d is strictly earlier than other.
func (d CivilDate) Before(other CivilDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other.
func (d CivilDate) After(other CivilDate) bool {
	return other.Before(d)
}

// DaysUntil returns the number of calendar days from d to other. Negative
// when other is earlier.
func (d CivilDate) DaysUntil(other CivilDate) int {
	a := d.Midnight(time.UTC)
	b := other.Midnight(time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}
