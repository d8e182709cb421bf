// Package timeutil holds calendar day keys and day-window parsing.
package timeutil

import (
	"encoding/json"
	"fmt"
	"time"
)

// LayoutDay is the canonical YYYY-MM-DD layout used for day keys.
const LayoutDay = "2006-01-02"

// Day is a local calendar day in YYYY-MM-DD form. Time of day and zone are
// deliberately discarded. The zero value is not a valid day.
type Day string

// ParseDay validates s and returns it as a Day.
func ParseDay(s string) (Day, error) {
	t, err := time.ParseInLocation(LayoutDay, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid day %q: expected YYYY-MM-DD", s)
	}
	// Reject non-canonical forms such as "2024-1-02" that Parse tolerates.
	if t.Format(LayoutDay) != s {
		return "", fmt.Errorf("invalid day %q: expected YYYY-MM-DD", s)
	}
	return Day(s), nil
}

// MustDay is ParseDay for constants and tests.
func MustDay(s string) Day {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DayOf returns the local calendar day containing t.
func DayOf(t time.Time) Day {
	return Day(t.Local().Format(LayoutDay))
}

// Date builds a Day from its parts; out of range values normalize the way
// time.Date does.
func Date(year int, month time.Month, day int) Day {
	return Day(time.Date(year, month, day, 12, 0, 0, 0, time.Local).Format(LayoutDay))
}

// Today returns the current local day.
func Today() Day {
	return DayOf(time.Now())
}

// Time returns noon of the day in the local zone. Noon keeps AddDate stable
// across daylight saving transitions.
func (d Day) Time() time.Time {
	t, err := time.ParseInLocation(LayoutDay, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t.Add(12 * time.Hour)
}

// Valid reports whether d is a well formed day key.
func (d Day) Valid() bool {
	_, err := ParseDay(string(d))
	return err == nil
}

// AddDays returns the day n calendar days after d (n may be negative).
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

// Next is AddDays(1).
func (d Day) Next() Day { return d.AddDays(1) }

// Prev is AddDays(-1).
func (d Day) Prev() Day { return d.AddDays(-1) }

// Year returns the year of d.
func (d Day) Year() int { return d.Time().Year() }

// Month returns the month of d.
func (d Day) Month() time.Month { return d.Time().Month() }

// DayOfMonth returns the day of the month of d.
func (d Day) DayOfMonth() int { return d.Time().Day() }

// Weekday returns the weekday of d.
func (d Day) Weekday() time.Weekday { return d.Time().Weekday() }

// Monday returns the Monday on or before d.
func (d Day) Monday() Day {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// SameMonth reports whether d and o fall in the same year and month.
func (d Day) SameMonth(o Day) bool {
	return d.Year() == o.Year() && d.Month() == o.Month()
}

// Before compares day keys lexicographically, which is chronological order.
func (d Day) Before(o Day) bool { return d < o }

// Human renders d like "Thursday, 15 October 2026".
func (d Day) Human() string {
	return d.Time().Format("Monday, 2 January 2006")
}

var (
	idWeekdays = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}
	idMonths   = [...]string{"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember"}
)

// HumanIn renders d in the long form of locale. "id" gives
// "Kamis, 15 Oktober 2026"; anything else falls back to Human.
func (d Day) HumanIn(locale string) string {
	if locale != "id" {
		return d.Human()
	}
	t := d.Time()
	return fmt.Sprintf("%s, %d %s %d", idWeekdays[t.Weekday()], t.Day(), idMonths[t.Month()-1], t.Year())
}

func (d Day) String() string { return string(d) }

// UnmarshalJSON accepts only canonical day keys.
func (d *Day) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartDay returns the weekday of the first day of the given month.
func StartDay(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 12, 0, 0, 0, time.UTC).Weekday()
}
