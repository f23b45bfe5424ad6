package datepicker

import (
	"fmt"
	"time"
)

const isoLayout = "2006-01-02"

// DateValue is a calendar day without time of day. The zero value is invalid.
// Values are immutable; every arithmetic helper returns a new value.
type DateValue struct {
	year  int
	month time.Month
	day   int
}

// Date builds a normalized DateValue. Out of range components roll over the
// same way time.Date does, so Date(2024, 2, 30) is March 1st.
func Date(year int, month time.Month, day int) DateValue {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return DateValue{year: t.Year(), month: t.Month(), day: t.Day()}
}

// FromTime drops the time of day of t, in t's location.
func FromTime(t time.Time) DateValue {
	return DateValue{year: t.Year(), month: t.Month(), day: t.Day()}
}

// Today returns the current day according to now, seen from loc.
func Today(now func() time.Time, loc *time.Location) DateValue {
	if now == nil {
		now = time.Now
	}
	t := now()
	if loc != nil {
		t = t.In(loc)
	}
	return FromTime(t)
}

// FromUnixMilli converts epoch milliseconds into the day they fall on in loc.
func FromUnixMilli(ms int64, loc *time.Location) DateValue {
	t := time.UnixMilli(ms)
	if loc != nil {
		t = t.In(loc)
	}
	return FromTime(t)
}

// ParseISO reads a yyyy-mm-dd string.
func ParseISO(value string) (DateValue, error) {
	t, err := time.Parse(isoLayout, value)
	if err != nil {
		return DateValue{}, fmt.Errorf("datepicker: parse iso date %q: %w", value, err)
	}
	return FromTime(t), nil
}

func (d DateValue) Year() int             { return d.year }
func (d DateValue) Month() time.Month     { return d.month }
func (d DateValue) Day() int              { return d.day }
func (d DateValue) IsZero() bool          { return d.month == 0 }
func (d DateValue) Weekday() time.Weekday { return d.Time(time.UTC).Weekday() }

// Time returns local midnight of the day in loc.
func (d DateValue) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// UnixMilli returns epoch milliseconds of midnight in loc.
func (d DateValue) UnixMilli(loc *time.Location) int64 {
	return d.Time(loc).UnixMilli()
}

func (d DateValue) AddDays(n int) DateValue {
	return Date(d.year, d.month, d.day+n)
}

// AddMonths shifts by n months, letting the day overflow like a date constructor.
func (d DateValue) AddMonths(n int) DateValue {
	return Date(d.year, d.month+time.Month(n), d.day)
}

func (d DateValue) AddYears(n int) DateValue {
	return Date(d.year+n, d.month, d.day)
}

func (d DateValue) StartOfMonth() DateValue {
	return DateValue{year: d.year, month: d.month, day: 1}
}

func (d DateValue) EndOfMonth() DateValue {
	return DateValue{year: d.year, month: d.month, day: DaysInMonth(d.year, d.month)}
}

// Compare returns -1, 0 or 1.
func (d DateValue) Compare(other DateValue) int {
	switch {
	case d.year != other.year:
		return sign(d.year - other.year)
	case d.month != other.month:
		return sign(int(d.month) - int(other.month))
	default:
		return sign(d.day - other.day)
	}
}

func (d DateValue) Equal(other DateValue) bool  { return d == other }
func (d DateValue) Before(other DateValue) bool { return d.Compare(other) < 0 }
func (d DateValue) After(other DateValue) bool  { return d.Compare(other) > 0 }

func (d DateValue) SameMonth(other DateValue) bool {
	return d.year == other.year && d.month == other.month
}

// String renders the ISO form, or an empty string for the zero value.
func (d DateValue) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// DaysInMonth asks for day 32 of the month and reads back how far it overflowed.
func DaysInMonth(year int, month time.Month) int {
	return 32 - Date(year, month, 32).Day()
}

func monthIndex(d DateValue) int {
	return d.year*12 + int(d.month) - 1
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
