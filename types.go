package datepicker

import (
	"fmt"
	"strings"
)

// SelectionMode governs how many dates a SelectionSet may hold and how pushes apply.
type SelectionMode int

const (
	ModeSingle SelectionMode = iota
	ModeMulti
	ModeRange
)

func (m SelectionMode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeMulti:
		return "multi"
	case ModeRange:
		return "range"
	default:
		return fmt.Sprintf("SelectionMode(%d)", int(m))
	}
}

// ParseSelectionMode maps a configuration string to a SelectionMode.
func ParseSelectionMode(raw string) (SelectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "single":
		return ModeSingle, nil
	case "multi", "multiple":
		return ModeMulti, nil
	case "range":
		return ModeRange, nil
	default:
		return ModeSingle, fmt.Errorf("datepicker: unknown selection mode %q", raw)
	}
}

// ViewLevel is the zoom tier of the calendar.
type ViewLevel int

const (
	ViewMonth ViewLevel = iota
	ViewYear
	ViewDecade
)

func (v ViewLevel) String() string {
	switch v {
	case ViewMonth:
		return "month"
	case ViewYear:
		return "year"
	case ViewDecade:
		return "decade"
	default:
		return fmt.Sprintf("ViewLevel(%d)", int(v))
	}
}

func (v ViewLevel) valid() bool {
	return v >= ViewMonth && v <= ViewDecade
}

// ParseViewLevel maps a name to a ViewLevel.
func ParseViewLevel(raw string) (ViewLevel, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "month", "days":
		return ViewMonth, nil
	case "year", "months":
		return ViewYear, nil
	case "decade", "years":
		return ViewDecade, nil
	default:
		return ViewMonth, fmt.Errorf("datepicker: unknown view level %q", raw)
	}
}

// RowPolicy controls how many week rows a month grid has.
type RowPolicy int

const (
	// RowsAuto uses as many rows as the month needs (4 to 6).
	RowsAuto RowPolicy = iota
	// RowsFixed always renders 6 rows.
	RowsFixed
)

// Tag classifies a grid cell for the rendering collaborator.
type Tag string

const (
	TagPrevMonth Tag = "prev-month"
	TagNextMonth Tag = "next-month"
	TagDisabled  Tag = "disabled"
	TagToday     Tag = "today"
	TagSelected  Tag = "selected"
	TagRange     Tag = "range"
	TagActive    Tag = "active"
	TagWeekend   Tag = "weekend"
)
