package datepicker

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Parser recovers dates from text using compiled patterns.
//
// Parsing is lenient by default: a token that does not match at the current
// position leaves its field unresolved, the position does not move, and the
// field later defaults (year to Reference's year, month to January, day to
// 1). Strict parsing turns unresolved fields and overflowing dates into
// errors. A day or month name that matches no locale entry is always
// reported.
type Parser struct {
	Locale Locale
	// Matcher reads day and month names; nil means DefaultNameMatcher.
	Matcher NameMatcher
	// Location anchors the @ token; nil means time.Local.
	Location *time.Location
	// Reference supplies the default year; zero means today.
	Reference DateValue
	Strict    bool
}

// NewParser builds a lenient Parser for the locale.
func NewParser(locale Locale) Parser {
	return Parser{Locale: locale}
}

// ParseResult is the detailed outcome of a single pass over text.
type ParseResult struct {
	Date       DateValue
	Consumed   int
	Resolved   []string
	Unresolved []string
	Err        error
}

type parsedFields struct {
	year, month, day int
	epoch            int64
	hasYear          bool
	hasMonth         bool
	hasDay           bool
	hasEpoch         bool
}

// Parse returns the recovered date and an error when the text could not be
// recovered the way the parser's policy demands. A strict failure still
// carries the best-effort date; an unknown name carries none. Callers that
// store dates should only keep them when err is nil.
func (p Parser) Parse(tokens []Token, text string) (DateValue, error) {
	res := p.ParseDetailed(tokens, text)
	return res.Date, res.Err
}

// ParsePattern compiles pattern through the shared cache and parses text.
func (p Parser) ParsePattern(pattern, text string) (DateValue, error) {
	return p.Parse(sharedPatterns.Compile(pattern), text)
}

// ParseDetailed runs one pass and reports what resolved.
func (p Parser) ParseDetailed(tokens []Token, text string) ParseResult {
	fields, res := p.scan(tokens, text)

	// an unknown name never defaults to a month, so there is no date to offer
	if res.Err != nil {
		return res
	}
	if !fields.hasYear && !fields.hasMonth && !fields.hasDay && !fields.hasEpoch {
		res.Err = &ParseError{Kind: ParseNoDate, Text: text}
		return res
	}

	if fields.hasEpoch {
		res.Date = FromUnixMilli(fields.epoch, p.location())
		return res
	}

	year := p.reference().Year()
	if fields.hasYear {
		year = fields.year
	}
	month := 0
	if fields.hasMonth {
		month = fields.month
	}
	day := 1
	if fields.hasDay {
		day = fields.day
	}
	res.Date = Date(year, time.Month(month+1), day)

	if !p.Strict {
		return res
	}

	if len(res.Unresolved) > 0 {
		res.Err = &ParseError{Kind: ParseFieldUnresolved, Token: res.Unresolved[0], Text: text}
		return res
	}
	if (fields.hasDay && res.Date.Day() != day) || (fields.hasMonth && int(res.Date.Month()) != month+1) {
		res.Err = &ParseError{Kind: ParseInvalidDate, Text: text}
	}
	return res
}

func (p Parser) scan(tokens []Token, text string) (parsedFields, ParseResult) {
	var (
		fields parsedFields
		res    ParseResult
		pos    int
	)

	for _, token := range tokens {
		rest := text[pos:]

		if token.Kind == TokenLiteral {
			if n := len(token.Value); n <= len(rest) && strings.EqualFold(rest[:n], token.Value) {
				pos += n
			}
			continue
		}

		n := p.match(token.Value, rest)
		if n == 0 {
			res.Unresolved = append(res.Unresolved, token.Value)
			continue
		}
		matched := rest[:n]

		switch token.Value {
		case "d", "dd":
			fields.day, _ = strconv.Atoi(matched)
			fields.hasDay = true
		case "m", "mm":
			value, _ := strconv.Atoi(matched)
			fields.month = value - 1
			fields.hasMonth = true
		case "y":
			value, _ := strconv.Atoi(matched)
			fields.year = windowYear(value)
			fields.hasYear = true
		case "yy":
			fields.year, _ = strconv.Atoi(matched)
			fields.hasYear = true
		case "D", "DD":
			// weekday names carry no field but must still be known
			if p.Locale.DayIndex(matched, token.Value == "D") < 0 {
				res.nameNotFound(token.Value, pos, text)
				pos += n
				continue
			}
		case "M", "MM":
			idx := p.Locale.MonthIndex(matched, token.Value == "M")
			if idx < 0 {
				res.nameNotFound(token.Value, pos, text)
				pos += n
				continue
			}
			fields.month = idx
			fields.hasMonth = true
		case "@":
			epoch, err := strconv.ParseInt(matched, 10, 64)
			if err != nil {
				res.Unresolved = append(res.Unresolved, token.Value)
				pos += n
				continue
			}
			fields.epoch = epoch
			fields.hasEpoch = true
		}

		res.Resolved = append(res.Resolved, token.Value)
		pos += n
	}

	res.Consumed = pos
	return fields, res
}

func (res *ParseResult) nameNotFound(code string, pos int, text string) {
	res.Unresolved = append(res.Unresolved, code)
	if res.Err == nil {
		res.Err = &ParseError{Kind: ParseNameNotFound, Token: code, Pos: pos, Text: text}
	}
}

// match returns how many bytes of text the code's matcher accepts at position 0.
func (p Parser) match(code, text string) int {
	switch code {
	case "d", "m":
		return digitsAt(text, 1, 2)
	case "dd", "mm", "y":
		return digitsAt(text, 2, 2)
	case "yy":
		return digitsAt(text, 4, 4)
	case "@":
		return digitsAt(text, 1, -1)
	case "D", "DD", "M", "MM":
		matcher := p.Matcher
		if matcher == nil {
			matcher = DefaultNameMatcher()
		}
		return matcher.MatchName(text, p.Locale)
	default:
		return 0
	}
}

// digitsAt accepts between lo and hi ASCII digits (hi < 0 for unbounded).
func digitsAt(text string, lo, hi int) int {
	n := 0
	for n < len(text) && text[n] >= '0' && text[n] <= '9' {
		if hi >= 0 && n == hi {
			break
		}
		n++
	}
	if n < lo {
		return 0
	}
	return n
}

// windowYear maps two-digit years: above 68 is the 1900s, otherwise the 2000s.
func windowYear(v int) int {
	if v > 68 {
		return 1900 + v
	}
	return 2000 + v
}

func (p Parser) reference() DateValue {
	if !p.Reference.IsZero() {
		return p.Reference
	}
	return Today(time.Now, p.location())
}

func (p Parser) location() *time.Location {
	if p.Location != nil {
		return p.Location
	}
	return time.Local
}

var defaultSeparators = []string{",", ";"}

// SplitMulti cuts text holding several dates into one segment per successful
// token pass. Whitespace and whole separators between segments are skipped.
// It stops as soon as a pass consumes nothing, so it always ends.
func (p Parser) SplitMulti(tokens []Token, text string, separators ...string) []string {
	seps := slices.Clone(defaultSeparators)
	for _, sep := range separators {
		if sep = strings.TrimSpace(sep); sep != "" {
			seps = append(seps, sep)
		}
	}

	var segments []string
	rest := text
	for {
		rest = skipSeparators(rest, seps)
		if rest == "" {
			break
		}

		_, res := p.scan(tokens, rest)
		if res.Consumed == 0 {
			break
		}
		if segment := strings.TrimSpace(rest[:res.Consumed]); segment != "" {
			segments = append(segments, segment)
		}
		rest = rest[res.Consumed:]
	}
	return segments
}

// skipSeparators drops leading whitespace and separators. A separator ending
// in a letter must not run into another letter, so "al" never eats the
// start of "abril" or "alpha".
func skipSeparators(text string, seps []string) string {
	for {
		trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
		for _, sep := range seps {
			if !strings.HasPrefix(trimmed, sep) {
				continue
			}
			last, _ := utf8.DecodeLastRuneInString(sep)
			next, _ := utf8.DecodeRuneInString(trimmed[len(sep):])
			if unicode.IsLetter(last) && unicode.IsLetter(next) {
				continue
			}
			trimmed = trimmed[len(sep):]
			break
		}
		if trimmed == text {
			return text
		}
		text = trimmed
	}
}

// ParseMulti splits text and parses every segment. Only segments that parse
// cleanly contribute a date; the errors of the others are joined.
func (p Parser) ParseMulti(tokens []Token, text string, separators ...string) ([]DateValue, error) {
	var (
		dates []DateValue
		errs  []error
	)
	for _, segment := range p.SplitMulti(tokens, text, separators...) {
		res := p.ParseDetailed(tokens, segment)
		if res.Err != nil {
			errs = append(errs, res.Err)
			continue
		}
		dates = append(dates, res.Date)
	}
	return dates, errors.Join(errs...)
}
