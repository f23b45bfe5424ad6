package datepicker

import (
	"slices"
	"strconv"
	"time"
)

const (
	defaultDayLabel   = "d"
	defaultMonthLabel = "M"
	defaultTitle      = "MM yy"
)

// NavLink is a prev or next header control. Date is the reference the
// controller moves to when it is followed.
type NavLink struct {
	Date    DateValue
	Enabled bool
}

// Cell is one renderable grid unit.
type Cell struct {
	Date       DateValue
	Label      string
	Tags       []Tag
	Selectable bool
}

// Has reports whether the cell carries tag.
func (c Cell) Has(tag Tag) bool {
	return slices.Contains(c.Tags, tag)
}

// Payload is everything a rendering collaborator needs to draw one view.
type Payload struct {
	View  ViewLevel
	Title string
	Prev  NavLink
	Next  NavLink
	// Weekdays holds the minimal day names for the header, WeekdaysShort the
	// abbreviated ones. Both are empty outside the month view.
	Weekdays      []string
	WeekdaysShort []string
	Columns       int
	Rows          int
	Cells         []Cell
}

// MonthRequest describes a month view.
type MonthRequest struct {
	Year              int
	Month             time.Month
	FirstDay          time.Weekday
	Bounds            Bounds
	Selection         *SelectionSet
	Active            DateValue
	Today             DateValue
	Rows              RowPolicy
	SelectOtherMonths bool
	Locale            Locale
	DayLabel          string
	TitlePattern      string
}

// BuildMonth lays out the weeks of a month, padded with the trailing days of
// the previous month and the leading days of the next.
func BuildMonth(req MonthRequest) Payload {
	first := Date(req.Year, req.Month, 1)
	days := DaysInMonth(first.Year(), first.Month())
	prevMonth := first.AddDays(-1)
	prevDays := DaysInMonth(prevMonth.Year(), prevMonth.Month())

	offset := floorMod(int(first.Weekday())-int(req.FirstDay), 7)
	rows := (offset + days + 6) / 7
	if req.Rows == RowsFixed {
		rows = 6
	}

	formatter := NewFormatter(req.Locale)
	dayLabel := stringOr(req.DayLabel, defaultDayLabel)
	last := first.EndOfMonth()

	cells := make([]Cell, 0, rows*7)
	for i := 0; i < rows*7; i++ {
		var (
			d    DateValue
			tags []Tag
		)
		other := true
		switch {
		case i < offset:
			d = Date(prevMonth.Year(), prevMonth.Month(), prevDays-offset+i+1)
			tags = append(tags, TagPrevMonth)
		case i-offset >= days:
			d = last.AddDays(i - offset - days + 1)
			tags = append(tags, TagNextMonth)
		default:
			d = Date(first.Year(), first.Month(), i-offset+1)
			other = false
		}

		selectable := req.Bounds.Contains(d) && (!other || req.SelectOtherMonths)
		if !selectable {
			tags = append(tags, TagDisabled)
		}
		if d == req.Today {
			tags = append(tags, TagToday)
		}
		if req.Selection != nil {
			if req.Selection.Contains(d) >= 0 {
				tags = append(tags, TagSelected)
			}
			if req.Selection.Mode() == ModeRange && req.Selection.InRange(d) {
				tags = append(tags, TagRange)
			}
		}
		if !req.Active.IsZero() && d == req.Active {
			tags = append(tags, TagActive)
		}
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			tags = append(tags, TagWeekend)
		}

		cells = append(cells, Cell{
			Date:       d,
			Label:      formatter.FormatPattern(dayLabel, d),
			Tags:       tags,
			Selectable: selectable,
		})
	}

	next := first.AddMonths(1)
	shortHeader := make([]string, 7)
	for i := range shortHeader {
		shortHeader[i] = req.Locale.dayName(time.Weekday((i+int(req.FirstDay))%7), true)
	}

	return Payload{
		View:          ViewMonth,
		Title:         formatter.FormatPattern(stringOr(req.TitlePattern, defaultTitle), first),
		Prev:          NavLink{Date: prevMonth, Enabled: req.Bounds.Min.IsZero() || !req.Bounds.Min.After(prevMonth)},
		Next:          NavLink{Date: next, Enabled: req.Bounds.Max.IsZero() || !req.Bounds.Max.Before(next)},
		Weekdays:      req.Locale.WeekdayHeader(req.FirstDay),
		WeekdaysShort: shortHeader,
		Columns:       7,
		Rows:          rows,
		Cells:         cells,
	}
}

// YearRequest describes the twelve months of a year.
type YearRequest struct {
	Year       int
	Month      time.Month
	Bounds     Bounds
	Selection  *SelectionSet
	Today      DateValue
	Locale     Locale
	MonthLabel string
}

// BuildYear lays out month cells anchored to day 1, four per row.
func BuildYear(req YearRequest) Payload {
	formatter := NewFormatter(req.Locale)
	label := stringOr(req.MonthLabel, defaultMonthLabel)

	cells := make([]Cell, 0, 12)
	for m := time.January; m <= time.December; m++ {
		d := Date(req.Year, m, 1)

		var tags []Tag
		selectable := req.Bounds.ContainsMonth(d)
		if !selectable {
			tags = append(tags, TagDisabled)
		}
		if !req.Today.IsZero() && d.SameMonth(req.Today) {
			tags = append(tags, TagToday)
		}
		if selectionHas(req.Selection, d.SameMonth) {
			tags = append(tags, TagSelected)
		}
		if m == req.Month {
			tags = append(tags, TagActive)
		}

		cells = append(cells, Cell{
			Date:       d,
			Label:      formatter.FormatPattern(label, d),
			Tags:       tags,
			Selectable: selectable,
		})
	}

	month := req.Month
	if month < time.January || month > time.December {
		month = time.January
	}
	anchor := Date(req.Year, month, 1)
	prev := anchor.AddYears(-1)
	next := anchor.AddYears(1)

	return Payload{
		View:    ViewYear,
		Title:   strconv.Itoa(req.Year),
		Prev:    NavLink{Date: prev, Enabled: req.Bounds.Min.IsZero() || req.Bounds.Min.Year() <= prev.Year()},
		Next:    NavLink{Date: next, Enabled: req.Bounds.Max.IsZero() || req.Bounds.Max.Year() >= next.Year()},
		Columns: 4,
		Rows:    3,
		Cells:   cells,
	}
}

// DecadeRequest describes the ten years of a decade.
type DecadeRequest struct {
	Year      int
	Bounds    Bounds
	Selection *SelectionSet
	Today     DateValue
}

// BuildDecade lays out ten year cells anchored to January 1st. The grid has
// four columns, so the third row has two empty slots.
func BuildDecade(req DecadeRequest) Payload {
	start := req.Year - floorMod(req.Year, 10)

	cells := make([]Cell, 0, 10)
	for y := start; y < start+10; y++ {
		d := Date(y, time.January, 1)
		sameYear := func(other DateValue) bool { return other.Year() == y }

		var tags []Tag
		selectable := req.Bounds.ContainsYear(d)
		if !selectable {
			tags = append(tags, TagDisabled)
		}
		if !req.Today.IsZero() && sameYear(req.Today) {
			tags = append(tags, TagToday)
		}
		if selectionHas(req.Selection, sameYear) {
			tags = append(tags, TagSelected)
		}
		if y == req.Year {
			tags = append(tags, TagActive)
		}

		cells = append(cells, Cell{
			Date:       d,
			Label:      strconv.Itoa(y),
			Tags:       tags,
			Selectable: selectable,
		})
	}

	prev := Date(start-10, time.January, 1)
	next := Date(start+10, time.January, 1)

	return Payload{
		View:    ViewDecade,
		Title:   strconv.Itoa(start) + "-" + strconv.Itoa(start+9),
		Prev:    NavLink{Date: prev, Enabled: req.Bounds.Min.IsZero() || req.Bounds.Min.Year() <= start-1},
		Next:    NavLink{Date: next, Enabled: req.Bounds.Max.IsZero() || req.Bounds.Max.Year() >= start+10},
		Columns: 4,
		Rows:    3,
		Cells:   cells,
	}
}

func selectionHas(s *SelectionSet, match func(DateValue) bool) bool {
	if s == nil {
		return false
	}
	return slices.ContainsFunc(s.dates, match)
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
