package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the DD/MM/YYYY layout used by the record store and all displays
const DateLayout = "02/01/2006"

const secondsPerDay = 24 * 60 * 60

// MaxDate is the last date the DD/MM/YYYY layout can represent
var MaxDate = NewDate(9999, time.December, 31)

// Date is a calendar date without time of day. Dates are held at UTC midnight so
// day differences are always whole multiples of 24h.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its components
func NewDate(year int, month time.Month, dayOfMonth int) Date {
	return Date{t: time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t in t's own location
func DateOf(t time.Time) Date {
	year, month, dayOfMonth := t.Date()
	return NewDate(year, month, dayOfMonth)
}

// Today returns the current local calendar date
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a DD/MM/YYYY string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected DD/MM/YYYY", s)
	}
	return DateOf(t), nil
}

// Time returns the date as a UTC midnight timestamp
func (d Date) Time() time.Time {
	return d.t
}

// IsZero reports whether the date is unset
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// String formats the date as DD/MM/YYYY
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// AddDays returns the date n days later (earlier if n is negative)
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// DaysSince returns the number of whole days from other to d
func (d Date) DaysSince(other Date) int {
	return int((d.t.Unix() - other.t.Unix()) / secondsPerDay)
}

// Before reports whether d is earlier than other
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After reports whether d is later than other
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal reports whether both dates are the same calendar day
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// MarshalJSON writes the date as a quoted DD/MM/YYYY string
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON reads a quoted DD/MM/YYYY string. Empty strings and null leave the date unset.
func (d *Date) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		*d = Date{}
		return nil
	}
	s, err := strconv.Unquote(raw)
	if err != nil {
		return fmt.Errorf("invalid date %s: expected a quoted DD/MM/YYYY string", raw)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
