package datepicker

import (
	"fmt"
	"time"
)

// Locale holds the day and month name tables used by formatting, parsing and
// grid headers. Arrays are indexed by time.Weekday (Sunday first) and by
// month number minus one.
type Locale struct {
	Code        string   `json:"code,omitempty" yaml:"code,omitempty"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Parent      string   `json:"parent,omitempty" yaml:"parent,omitempty"`
	Months      []string `json:"months,omitempty" yaml:"months,omitempty"`
	MonthsShort []string `json:"months_short,omitempty" yaml:"months_short,omitempty"`
	Days        []string `json:"days,omitempty" yaml:"days,omitempty"`
	DaysShort   []string `json:"days_short,omitempty" yaml:"days_short,omitempty"`
	DaysMin     []string `json:"days_min,omitempty" yaml:"days_min,omitempty"`
}

// Validate checks every table is present and has the expected length.
func (l Locale) Validate() error {
	checks := []struct {
		field string
		got   int
		want  int
	}{
		{"months", len(l.Months), 12},
		{"months_short", len(l.MonthsShort), 12},
		{"days", len(l.Days), 7},
		{"days_short", len(l.DaysShort), 7},
		{"days_min", len(l.DaysMin), 7},
	}
	for _, check := range checks {
		if check.got != check.want {
			return fmt.Errorf("datepicker: locale %q: %s has %d entries, want %d", l.Code, check.field, check.got, check.want)
		}
	}
	return nil
}

// Clone returns a deep copy so callers can't mutate shared tables.
func (l Locale) Clone() Locale {
	out := l
	out.Months = cloneStrings(l.Months)
	out.MonthsShort = cloneStrings(l.MonthsShort)
	out.Days = cloneStrings(l.Days)
	out.DaysShort = cloneStrings(l.DaysShort)
	out.DaysMin = cloneStrings(l.DaysMin)
	return out
}

// inherit fills missing tables from parent.
func (l Locale) inherit(parent Locale) Locale {
	if len(l.Months) == 0 {
		l.Months = cloneStrings(parent.Months)
	}
	if len(l.MonthsShort) == 0 {
		l.MonthsShort = cloneStrings(parent.MonthsShort)
	}
	if len(l.Days) == 0 {
		l.Days = cloneStrings(parent.Days)
	}
	if len(l.DaysShort) == 0 {
		l.DaysShort = cloneStrings(parent.DaysShort)
	}
	if len(l.DaysMin) == 0 {
		l.DaysMin = cloneStrings(parent.DaysMin)
	}
	if l.Name == "" {
		l.Name = parent.Name
	}
	return l
}

func (l Locale) complete() bool {
	return len(l.Months) > 0 && len(l.MonthsShort) > 0 && len(l.Days) > 0 &&
		len(l.DaysShort) > 0 && len(l.DaysMin) > 0
}

// MonthIndex looks name up case-insensitively in the long (or short) month
// table and returns its zero based index, or -1 when there is no exact match.
func (l Locale) MonthIndex(name string, short bool) int {
	list := l.Months
	if short {
		list = l.MonthsShort
	}
	return indexFold(list, name)
}

// DayIndex is the weekday counterpart of MonthIndex.
func (l Locale) DayIndex(name string, short bool) int {
	list := l.Days
	if short {
		list = l.DaysShort
	}
	return indexFold(list, name)
}

func (l Locale) monthName(m time.Month, short bool) string {
	if short {
		return nameAt(l.MonthsShort, int(m)-1)
	}
	return nameAt(l.Months, int(m)-1)
}

func (l Locale) dayName(w time.Weekday, short bool) string {
	if short {
		return nameAt(l.DaysShort, int(w))
	}
	return nameAt(l.Days, int(w))
}

// WeekdayHeader returns the minimal day names rotated so firstDay leads.
func (l Locale) WeekdayHeader(firstDay time.Weekday) []string {
	source := l.DaysMin
	if len(source) != 7 {
		source = l.DaysShort
	}
	out := make([]string, 7)
	for i := range out {
		out[i] = nameAt(source, (i+int(firstDay))%7)
	}
	return out
}

func indexFold(list []string, name string) int {
	target := foldName(name)
	if target == "" {
		return -1
	}
	for i, candidate := range list {
		if foldName(candidate) == target {
			return i
		}
	}
	return -1
}

func nameAt(list []string, idx int) string {
	if idx < 0 || idx >= len(list) {
		return ""
	}
	return list[idx]
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
