package datepicker

import "slices"

// SelectionSet is an ordered set of dates whose size and ordering depend on
// its mode: single holds at most one date, range at most two in ascending
// order, multi any number of unique dates in insertion order.
type SelectionSet struct {
	mode  SelectionMode
	dates []DateValue
}

// NewSelectionSet pushes dates in order into an empty set.
func NewSelectionSet(mode SelectionMode, dates ...DateValue) *SelectionSet {
	s := &SelectionSet{mode: mode}
	s.Set(dates...)
	return s
}

func (s *SelectionSet) Mode() SelectionMode { return s.mode }
func (s *SelectionSet) Len() int            { return len(s.dates) }

// Push applies the mode's rule for a newly picked date.
func (s *SelectionSet) Push(d DateValue) {
	if d.IsZero() {
		return
	}

	switch s.mode {
	case ModeMulti:
		if idx := s.Contains(d); idx >= 0 {
			s.dates = slices.Delete(s.dates, idx, idx+1)
			return
		}
		s.dates = append(s.dates, d)
	case ModeRange:
		if len(s.dates) >= 2 {
			s.dates = s.dates[:0]
		}
		s.dates = append(s.dates, d)
		sortDates(s.dates)
	default:
		s.dates = append(s.dates[:0], d)
	}
}

// Contains returns the index of d, or -1.
func (s *SelectionSet) Contains(d DateValue) int {
	for i, held := range s.dates {
		if held == d {
			return i
		}
	}
	return -1
}

// InRange reports whether d lies strictly between the two held endpoints.
func (s *SelectionSet) InRange(d DateValue) bool {
	if len(s.dates) != 2 {
		return false
	}
	return d.After(s.dates[0]) && d.Before(s.dates[1])
}

// Get returns the i-th date. Negative indices count from the end.
func (s *SelectionSet) Get(i int) (DateValue, bool) {
	if i < 0 {
		i += len(s.dates)
	}
	if i < 0 || i >= len(s.dates) {
		return DateValue{}, false
	}
	return s.dates[i], true
}

// All returns a copy of the held dates.
func (s *SelectionSet) All() []DateValue {
	return slices.Clone(s.dates)
}

func (s *SelectionSet) Clear() {
	s.dates = nil
}

// Set replaces the contents. Multi mode keeps the first occurrence of each
// date; the other modes push the dates in order.
func (s *SelectionSet) Set(dates ...DateValue) {
	s.dates = nil
	if s.mode == ModeMulti {
		for _, d := range dates {
			if !d.IsZero() && s.Contains(d) < 0 {
				s.dates = append(s.dates, d)
			}
		}
		return
	}
	for _, d := range dates {
		s.Push(d)
	}
}

// WithMode returns a copy normalized for mode: single keeps the first date,
// range the first two sorted, multi drops duplicates.
func (s *SelectionSet) WithMode(mode SelectionMode) *SelectionSet {
	out := &SelectionSet{mode: mode}
	for _, d := range s.dates {
		if out.Contains(d) >= 0 {
			continue
		}
		switch mode {
		case ModeSingle:
			if len(out.dates) >= 1 {
				continue
			}
		case ModeRange:
			if len(out.dates) >= 2 {
				continue
			}
		}
		out.dates = append(out.dates, d)
	}
	if mode == ModeRange {
		sortDates(out.dates)
	}
	return out
}

// Complete reports whether a pick has filled the selection: one date in
// single mode, two in range mode. Multi selections are never complete.
func (s *SelectionSet) Complete() bool {
	switch s.mode {
	case ModeSingle:
		return len(s.dates) == 1
	case ModeRange:
		return len(s.dates) == 2
	default:
		return false
	}
}

func sortDates(dates []DateValue) {
	slices.SortFunc(dates, func(a, b DateValue) int { return a.Compare(b) })
}
