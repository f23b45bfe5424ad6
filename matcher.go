package datepicker

import (
	"regexp"
	"strings"
)

// NameMatcher finds a day or month name at the start of text. It returns the
// number of bytes the name occupies, or 0 when nothing matches.
type NameMatcher interface {
	MatchName(text string, locale Locale) int
}

// NameMatcherFunc adapts a function to NameMatcher.
type NameMatcherFunc func(text string, locale Locale) int

func (fn NameMatcherFunc) MatchName(text string, locale Locale) int {
	return fn(text, locale)
}

var (
	wordPattern = regexp.MustCompile(`^(?i:[0-9]*['a-z\x{00A0}-\x{05FF}\x{0700}-\x{D7FF}\x{F900}-\x{FDCF}\x{FDF0}-\x{FFEF}]+)`)
	// Arabic script runs, optionally followed by one or two more words, so
	// names like "كانون الثاني" are read whole.
	rtlPhrasePattern = regexp.MustCompile(`^[\x{0600}-\x{06FF}/]+(?:\s*?[\x{0600}-\x{06FF}]+){1,2}`)
)

// WordMatcher accepts an optional digit prefix followed by a run of latin or
// other non-Arabic letters.
type WordMatcher struct{}

func (WordMatcher) MatchName(text string, _ Locale) int {
	return len(wordPattern.FindString(text))
}

// RTLPhraseMatcher accepts Arabic script names of up to three words.
type RTLPhraseMatcher struct{}

func (RTLPhraseMatcher) MatchName(text string, _ Locale) int {
	return len(rtlPhrasePattern.FindString(text))
}

// ListMatcher matches the longest locale name that prefixes text, ignoring
// case. It handles multi-word names in any script without a pattern.
type ListMatcher struct{}

func (ListMatcher) MatchName(text string, locale Locale) int {
	best := 0
	for _, list := range [][]string{locale.Months, locale.MonthsShort, locale.Days, locale.DaysShort} {
		for _, name := range list {
			if len(name) <= best || len(name) > len(text) {
				continue
			}
			if strings.EqualFold(text[:len(name)], name) {
				best = len(name)
			}
		}
	}
	return best
}

// MatcherChain tries each matcher in order and keeps the first match.
type MatcherChain []NameMatcher

func (c MatcherChain) MatchName(text string, locale Locale) int {
	for _, matcher := range c {
		if matcher == nil {
			continue
		}
		if n := matcher.MatchName(text, locale); n > 0 {
			return n
		}
	}
	return 0
}

// DefaultNameMatcher combines WordMatcher and RTLPhraseMatcher.
func DefaultNameMatcher() NameMatcher {
	return MatcherChain{WordMatcher{}, RTLPhraseMatcher{}}
}
