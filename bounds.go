package datepicker

import (
	"fmt"
	"strconv"
	"strings"
)

// BoundKind tells how a BoundSpec produces a date.
type BoundKind int

const (
	BoundNone BoundKind = iota
	BoundAbsolute
	BoundPattern
	BoundRelative
)

// BoundSpec describes a min, max or default date before it is resolved
// against a clock and a date format.
type BoundSpec struct {
	Kind BoundKind
	Date DateValue
	Text string
	Days int
}

// AbsoluteDate pins the bound to d.
func AbsoluteDate(d DateValue) BoundSpec {
	if d.IsZero() {
		return BoundSpec{}
	}
	return BoundSpec{Kind: BoundAbsolute, Date: d}
}

// PatternDate is text in the configured date format. Text that does not parse
// as a date but reads as a signed integer is treated as a day offset.
func PatternDate(text string) BoundSpec {
	if strings.TrimSpace(text) == "" {
		return BoundSpec{}
	}
	return BoundSpec{Kind: BoundPattern, Text: text}
}

// RelativeDays is today plus n days.
func RelativeDays(n int) BoundSpec {
	return BoundSpec{Kind: BoundRelative, Days: n}
}

func (b BoundSpec) IsSet() bool { return b.Kind != BoundNone }

func (b BoundSpec) String() string {
	switch b.Kind {
	case BoundAbsolute:
		return b.Date.String()
	case BoundPattern:
		return b.Text
	case BoundRelative:
		return fmt.Sprintf("%+d", b.Days)
	default:
		return ""
	}
}

// Resolve turns the spec into a date. Pattern text is parsed strictly with
// tokens first, then read as a day offset, and finally accepted from a lenient
// parse when that recovered a field without errors. An unset spec resolves to the zero
// value without error.
func (b BoundSpec) Resolve(today DateValue, parser Parser, tokens []Token) (DateValue, error) {
	switch b.Kind {
	case BoundNone:
		return DateValue{}, nil
	case BoundAbsolute:
		return b.Date, nil
	case BoundRelative:
		return today.AddDays(b.Days), nil
	}

	text := strings.TrimSpace(b.Text)

	strict := parser
	strict.Strict = true
	if d, err := strict.Parse(tokens, text); err == nil {
		return d, nil
	}

	if days, err := strconv.Atoi(strings.TrimPrefix(text, "+")); err == nil {
		return today.AddDays(days), nil
	}

	lenient := parser
	lenient.Strict = false
	d, err := lenient.Parse(tokens, text)
	if err != nil {
		return DateValue{}, fmt.Errorf("datepicker: resolve bound %q: %w", b.Text, err)
	}
	return d, nil
}

// Bounds restricts which dates may be selected. Zero fields are unset.
type Bounds struct {
	Min DateValue
	Max DateValue
}

// Contains reports whether d lies within both bounds, inclusive.
func (b Bounds) Contains(d DateValue) bool {
	if !b.Min.IsZero() && d.Before(b.Min) {
		return false
	}
	if !b.Max.IsZero() && d.After(b.Max) {
		return false
	}
	return true
}

// ContainsMonth reports whether any day of d's month is selectable.
func (b Bounds) ContainsMonth(d DateValue) bool {
	idx := monthIndex(d)
	if !b.Min.IsZero() && idx < monthIndex(b.Min) {
		return false
	}
	if !b.Max.IsZero() && idx > monthIndex(b.Max) {
		return false
	}
	return true
}

// ContainsYear reports whether any day of d's year is selectable.
func (b Bounds) ContainsYear(d DateValue) bool {
	if !b.Min.IsZero() && d.Year() < b.Min.Year() {
		return false
	}
	if !b.Max.IsZero() && d.Year() > b.Max.Year() {
		return false
	}
	return true
}

// ContainsPeriod checks d at the granularity of view.
func (b Bounds) ContainsPeriod(d DateValue, view ViewLevel) bool {
	switch view {
	case ViewYear:
		return b.ContainsYear(d)
	case ViewDecade:
		start := d.Year() - floorMod(d.Year(), 10)
		if !b.Max.IsZero() && start > b.Max.Year() {
			return false
		}
		if !b.Min.IsZero() && start+9 < b.Min.Year() {
			return false
		}
		return true
	default:
		return b.ContainsMonth(d)
	}
}

// Clamp moves d inside the bounds.
func (b Bounds) Clamp(d DateValue) DateValue {
	if !b.Min.IsZero() && d.Before(b.Min) {
		return b.Min
	}
	if !b.Max.IsZero() && d.After(b.Max) {
		return b.Max
	}
	return d
}
