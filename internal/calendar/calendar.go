// Package calendar provides whole-day date values and the canonical
// YYYY-MM-DD / YYYY-MM keys used for protocol logs and monthly reports.
//
// Day keys carry no timezone: the caller decides which location "today"
// is evaluated in by passing a time.Time already converted to it.
package calendar

import (
	"fmt"
	"time"
)

const (
	// DayLayout is the canonical day key format.
	DayLayout = "2006-01-02"
	// MonthLayout is the canonical month key format.
	MonthLayout = "2006-01"
	// ClockLayout is the 24-hour wall-clock format used for scheduled times.
	ClockLayout = "15:04"
)

// Day is a calendar day with no time-of-day or location.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// Month is a calendar month with no location.
type Month struct {
	Year  int
	Month time.Month
}

// DayOf returns the calendar day of t in t's location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// Today returns the calendar day of now.
func Today(now time.Time) Day {
	return DayOf(now)
}

// ParseDay parses a YYYY-MM-DD key.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day key %q: %w", s, err)
	}
	return DayOf(t), nil
}

// String returns the canonical YYYY-MM-DD key.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Day) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n calendar days (normalizing month and year rollover).
func (d Day) AddDays(n int) Day {
	return DayOf(d.midnight().AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other.
func (d Day) Compare(other Day) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

// Before reports whether d is strictly earlier than other.
func (d Day) Before(other Day) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly later than other.
func (d Day) After(other Day) bool {
	return d.Compare(other) > 0
}

// DaysBetween returns the number of whole calendar days from a to b (b - a).
// Both days are anchored at UTC midnight, so DST transitions never skew the result.
func DaysBetween(a, b Day) int {
	return int(b.midnight().Sub(a.midnight()).Hours() / 24)
}

// Range returns the n most recent days ending with now's calendar day, oldest first.
func Range(now time.Time, n int) []Day {
	if n <= 0 {
		return []Day{}
	}
	today := DayOf(now)
	days := make([]Day, n)
	for i := 0; i < n; i++ {
		days[i] = today.AddDays(i - (n - 1))
	}
	return days
}

// ParseMonth parses a YYYY-MM key.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month key %q: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// CurrentMonth returns the month of now.
func CurrentMonth(now time.Time) Month {
	return Month{Year: now.Year(), Month: now.Month()}
}

// String returns the canonical YYYY-MM key.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Contains reports whether d falls within m.
func (m Month) Contains(d Day) bool {
	return d.Year == m.Year && d.Month == m.Month
}

// DaysInMonth returns the number of days in m; day 0 of the following month
// normalizes to the last day of m, which accounts for leap years.
func DaysInMonth(m Month) int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Clock returns now's HH:MM wall-clock reading.
func Clock(now time.Time) string {
	return now.Format(ClockLayout)
}

// ValidClock reports whether s is a zero-padded 24-hour HH:MM value.
func ValidClock(s string) bool {
	if len(s) != len(ClockLayout) {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
