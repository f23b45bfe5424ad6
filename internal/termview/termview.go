// Package termview renders picker payloads for terminals.
package termview

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/mattn/go-isatty"

	datepicker "github.com/goliatone/go-datepicker"
)

// Options controls payload rendering.
type Options struct {
	// Styled selects lipgloss styling. Plain output marks cells with
	// brackets instead: [selected] <active> (today) {range}.
	Styled bool

	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	CellStyle     lipgloss.Style
	OtherStyle    lipgloss.Style
	DisabledStyle lipgloss.Style
	WeekendStyle  lipgloss.Style
	TodayStyle    lipgloss.Style
	RangeStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ActiveStyle   lipgloss.Style
}

// DefaultOptions returns the styling used for terminal rendering.
func DefaultOptions(styled bool) Options {
	return Options{
		Styled:        styled,
		TitleStyle:    lipgloss.NewStyle().Bold(true),
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		CellStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		OtherStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		DisabledStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Strikethrough(true),
		WeekendStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		RangeStyle:    lipgloss.NewStyle().Background(lipgloss.Color("237")),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		ActiveStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true).Reverse(true),
	}
}

// IsTerminal reports whether w is an interactive terminal that accepts styling.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render draws the header, the weekday row when present, and the cell grid.
func Render(p datepicker.Payload, opts Options) string {
	columns := p.Columns
	if columns <= 0 {
		columns = 7
	}

	width := 2
	for _, cell := range p.Cells {
		width = max(width, lipgloss.Width(cell.Label))
	}
	for _, name := range p.Weekdays {
		width = max(width, lipgloss.Width(name))
	}

	var lines []string
	rowWidth := columns*(width+2) + columns - 1
	lines = append(lines, renderTitle(p, opts, rowWidth))

	if len(p.Weekdays) > 0 {
		header := make([]string, len(p.Weekdays))
		for i, name := range p.Weekdays {
			header[i] = " " + lipgloss.PlaceHorizontal(width, lipgloss.Right, name) + " "
		}
		text := strings.Join(header, " ")
		if opts.Styled {
			text = opts.HeaderStyle.Render(text)
		}
		lines = append(lines, text)
	}

	for start := 0; start < len(p.Cells); start += columns {
		end := min(start+columns, len(p.Cells))
		row := make([]string, 0, columns)
		for _, cell := range p.Cells[start:end] {
			row = append(row, renderCell(cell, width, opts))
		}
		lines = append(lines, strings.Join(row, " "))
	}

	return strings.Join(lines, "\n")
}

func renderTitle(p datepicker.Payload, opts Options, width int) string {
	prev, next := "<", ">"
	if !p.Prev.Enabled {
		prev = " "
	}
	if !p.Next.Enabled {
		next = " "
	}

	title := p.Title
	if opts.Styled {
		title = opts.TitleStyle.Render(title)
	}
	inner := max(width-4, lipgloss.Width(title))
	return prev + " " + lipgloss.PlaceHorizontal(inner, lipgloss.Center, title) + " " + next
}

func renderCell(cell datepicker.Cell, width int, opts Options) string {
	label := lipgloss.PlaceHorizontal(width, lipgloss.Right, cell.Label)
	other := cell.Has(datepicker.TagPrevMonth) || cell.Has(datepicker.TagNextMonth)

	if !opts.Styled {
		if other && !cell.Selectable {
			return strings.Repeat(" ", width+2)
		}
		open, closing := " ", " "
		switch {
		case cell.Has(datepicker.TagActive):
			open, closing = "<", ">"
		case cell.Has(datepicker.TagSelected):
			open, closing = "[", "]"
		case cell.Has(datepicker.TagRange):
			open, closing = "{", "}"
		case cell.Has(datepicker.TagToday):
			open, closing = "(", ")"
		case cell.Has(datepicker.TagDisabled):
			open, closing = " ", "x"
		}
		return open + label + closing
	}

	style := opts.CellStyle
	if cell.Has(datepicker.TagWeekend) {
		style = opts.WeekendStyle
	}
	if other {
		style = opts.OtherStyle
	}
	if cell.Has(datepicker.TagDisabled) {
		style = opts.DisabledStyle
	}
	if cell.Has(datepicker.TagToday) {
		style = style.Inherit(opts.TodayStyle)
	}
	if cell.Has(datepicker.TagRange) {
		style = opts.RangeStyle.Inherit(style)
	}
	if cell.Has(datepicker.TagSelected) {
		style = opts.SelectedStyle.Inherit(style)
	}
	if cell.Has(datepicker.TagActive) {
		style = opts.ActiveStyle.Inherit(style)
	}
	return style.Render(" " + label + " ")
}
