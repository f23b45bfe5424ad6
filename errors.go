package datepicker

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldUnresolved indicates a token did not match the text at the current position.
	ErrFieldUnresolved = errors.New("datepicker: field unresolved")
	// ErrNameNotFound indicates a month name was matched but is not part of the locale tables.
	ErrNameNotFound = errors.New("datepicker: name not found")
	// ErrNoDate indicates that no field could be recovered from the text
	ErrNoDate = errors.New("datepicker: no date in text")
	// ErrInvalidDate indicates resolved fields overflow the calendar (strict parsing only)
	ErrInvalidDate = errors.New("datepicker: invalid date")
	// ErrUnknownLocale indicates no name tables exist for the locale or its fallbacks
	ErrUnknownLocale = errors.New("datepicker: unknown locale")
	// ErrUnknownInstance indicates the registry has no controller for the element
	ErrUnknownInstance = errors.New("datepicker: unknown instance")
	// ErrInvalidSnapshot indicates a snapshot payload could not be restored
	ErrInvalidSnapshot = errors.New("datepicker: invalid snapshot")
	// ErrInvalidConfigFile indicates a TOML configuration file could not be decoded
	ErrInvalidConfigFile = errors.New("datepicker: invalid configuration file")
)

// ParseErrorKind classifies recoverable parse failures.
type ParseErrorKind int

const (
	ParseFieldUnresolved ParseErrorKind = iota
	ParseNameNotFound
	ParseNoDate
	ParseInvalidDate
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseFieldUnresolved:
		return "field unresolved"
	case ParseNameNotFound:
		return "name not found"
	case ParseNoDate:
		return "no date"
	case ParseInvalidDate:
		return "invalid date"
	default:
		return "unknown"
	}
}

// ParseError reports where and why text could not be fully recovered.
type ParseError struct {
	Kind  ParseErrorKind
	Token string
	Pos   int
	Text  string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("datepicker: parse %q: %s", e.Text, e.Kind)
	}
	return fmt.Sprintf("datepicker: parse %q: token %q at %d: %s", e.Text, e.Token, e.Pos, e.Kind)
}

func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case ParseFieldUnresolved:
		return ErrFieldUnresolved
	case ParseNameNotFound:
		return ErrNameNotFound
	case ParseNoDate:
		return ErrNoDate
	case ParseInvalidDate:
		return ErrInvalidDate
	default:
		return nil
	}
}

// IsNameNotFound reports whether err carries a failed locale name lookup.
func IsNameNotFound(err error) bool {
	return errors.Is(err, ErrNameNotFound)
}

// IsUnresolved reports whether err means some or all fields were not recovered.
func IsUnresolved(err error) bool {
	return errors.Is(err, ErrFieldUnresolved) || errors.Is(err, ErrNoDate)
}
