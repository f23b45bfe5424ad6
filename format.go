package datepicker

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Formatter renders dates through compiled patterns.
type Formatter struct {
	Locale Locale
	// Location anchors the @ token; nil means time.Local.
	Location *time.Location
}

// NewFormatter builds a Formatter for the locale.
func NewFormatter(locale Locale) Formatter {
	return Formatter{Locale: locale}
}

// Format applies tokens to d. Formatting the zero DateValue is a programming
// error and panics.
func (f Formatter) Format(tokens []Token, d DateValue) string {
	if d.IsZero() {
		panic("datepicker: format of zero DateValue")
	}

	var out strings.Builder
	for _, token := range tokens {
		if token.Kind == TokenLiteral {
			out.WriteString(token.Value)
			continue
		}
		out.WriteString(f.formatCode(token.Value, d))
	}
	return out.String()
}

// FormatPattern compiles pattern through the shared cache and formats d.
func (f Formatter) FormatPattern(pattern string, d DateValue) string {
	return f.Format(sharedPatterns.Compile(pattern), d)
}

func (f Formatter) formatCode(code string, d DateValue) string {
	switch code {
	case "d":
		return strconv.Itoa(d.Day())
	case "dd":
		return pad2(d.Day())
	case "D":
		return f.Locale.dayName(d.Weekday(), true)
	case "DD":
		return f.Locale.dayName(d.Weekday(), false)
	case "m":
		return strconv.Itoa(int(d.Month()))
	case "mm":
		return pad2(int(d.Month()))
	case "M":
		return f.Locale.monthName(d.Month(), true)
	case "MM":
		return f.Locale.monthName(d.Month(), false)
	case "y":
		return pad2(floorMod(d.Year(), 100))
	case "yy":
		return strconv.Itoa(d.Year())
	case "@":
		loc := f.Location
		if loc == nil {
			loc = time.Local
		}
		return strconv.FormatInt(d.UnixMilli(loc), 10)
	default:
		return code
	}
}

// FormatDate formats d with pattern using the English tables.
func FormatDate(pattern string, d DateValue) string {
	locale, err := DefaultCatalog().Resolve(rootLocale)
	if err != nil {
		panic(fmt.Sprintf("datepicker: %v", err))
	}
	return NewFormatter(locale).FormatPattern(pattern, d)
}

func pad2(v int) string {
	if v >= 0 && v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
