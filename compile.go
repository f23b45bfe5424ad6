package datepicker

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// TokenKind distinguishes pattern codes from literal text.
type TokenKind int

const (
	TokenLiteral TokenKind = iota
	TokenCode
)

// Token is one unit of a compiled pattern.
type Token struct {
	Kind  TokenKind
	Value string
}

func (t Token) IsLiteral() bool { return t.Kind == TokenLiteral }

func (t Token) String() string {
	if t.Kind == TokenLiteral {
		return "'" + t.Value + "'"
	}
	return t.Value
}

// Pattern codes, longest first so that "dd" wins over "d".
//
//	d   day of month (no leading zero)
//	dd  day of month (two digit)
//	D   day name short
//	DD  day name long
//	m   month of year (no leading zero)
//	mm  month of year (two digit)
//	M   month name short
//	MM  month name long
//	y   year (two digit)
//	yy  year (four digit)
//	@   unix timestamp in milliseconds
var patternCodes = []string{"dd", "DD", "mm", "MM", "yy", "d", "D", "m", "M", "y", "@"}

// Compile splits pattern into tokens. A backslash turns the next character
// into a literal, [...] is copied verbatim, and anything else that is not a
// code becomes literal text. Compile never fails.
func Compile(pattern string) []Token {
	var (
		tokens  []Token
		literal strings.Builder
	)

	flush := func() {
		if literal.Len() == 0 {
			return
		}
		tokens = append(tokens, Token{Kind: TokenLiteral, Value: literal.String()})
		literal.Reset()
	}

	for i := 0; i < len(pattern); {
		switch pattern[i] {
		case '[':
			if end := closingBracket(pattern, i); end > i {
				literal.WriteString(pattern[i+1 : end])
				i = end + 1
				continue
			}
		case '\\':
			if i+1 < len(pattern) {
				r, size := utf8.DecodeRuneInString(pattern[i+1:])
				literal.WriteRune(r)
				i += 1 + size
			} else {
				i++
			}
			continue
		}

		if code := matchCode(pattern[i:]); code != "" {
			flush()
			tokens = append(tokens, Token{Kind: TokenCode, Value: code})
			i += len(code)
			continue
		}

		r, size := utf8.DecodeRuneInString(pattern[i:])
		literal.WriteRune(r)
		i += size
	}
	flush()

	return tokens
}

// closingBracket returns the index of the last ']' before the next '[', or -1.
func closingBracket(pattern string, open int) int {
	end := -1
	for j := open + 1; j < len(pattern); j++ {
		switch pattern[j] {
		case '[':
			return end
		case ']':
			end = j
		}
	}
	return end
}

func matchCode(s string) string {
	for _, code := range patternCodes {
		if strings.HasPrefix(s, code) {
			return code
		}
	}
	return ""
}

// PatternCache memoizes compiled patterns. Token lists are shared, callers
// must treat them as read only.
type PatternCache struct {
	mu      sync.RWMutex
	entries map[string][]Token
}

func NewPatternCache() *PatternCache {
	return &PatternCache{entries: make(map[string][]Token)}
}

func (c *PatternCache) Compile(pattern string) []Token {
	if c == nil {
		return Compile(pattern)
	}

	c.mu.RLock()
	tokens, ok := c.entries[pattern]
	c.mu.RUnlock()
	if ok {
		return tokens
	}

	tokens = Compile(pattern)

	c.mu.Lock()
	if c.entries == nil {
		c.entries = make(map[string][]Token)
	}
	c.entries[pattern] = tokens
	c.mu.Unlock()

	return tokens
}

// Len reports how many patterns are cached.
func (c *PatternCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var sharedPatterns = NewPatternCache()
