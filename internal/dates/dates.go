// Package dates provides a calendar-day date type.
//
// Pay dates and ex-dates in this system identify calendar days, not
// instants: there is no timezone conversion anywhere. The canonical
// string form is YYYY-MM-DD. The upstream payment-schedule tables also
// carry dates in the short M/D/YY form, so Parse accepts both and
// everything is normalized to Date at ingestion.
package dates

import (
	"encoding/json"
	"fmt"
	"time"
)

// Format is the canonical string representation of a Date.
const Format = "2006-01-02"

// shortFormat matches the M/D/YY form used by the upstream payment
// schedule (e.g. "1/22/25").
const shortFormat = "1/2/06"

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Parse parses a Date from either the canonical YYYY-MM-DD form or the
// short M/D/YY form. All other formats are rejected.
func Parse(s string) (Date, error) {
	if t, err := time.Parse(Format, s); err == nil {
		return New(t.Date()), nil
	}
	if t, err := time.Parse(shortFormat, s); err == nil {
		return New(t.Date()), nil
	}
	return Date{}, fmt.Errorf("invalid date %q: want %q or %q", s, Format, shortFormat)
}

// MustParse is like Parse but panics on error. For seed data and tests.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// DaysUntil returns the number of calendar days from d to x.
// Negative when x is before d.
func (d Date) DaysUntil(x Date) int {
	return int(x.time().Sub(d.time()) / (24 * time.Hour))
}

// InMonth reports whether the date falls in the given calendar month.
// Month is 1-based (January = 1).
func (d Date) InMonth(year int, month time.Month) bool {
	return d.y == year && d.m == month
}

// String formats the date in its canonical form.
func (d Date) String() string { return d.time().Format(Format) }

// MarshalJSON encodes the date as a canonical YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a date from either accepted string form.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
