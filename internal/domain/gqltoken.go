package domain

import (
	"strings"
	"unicode/utf8"
)

type gqlTokenKind int

const (
	tokEOF gqlTokenKind = iota
	tokPunct
	tokSpread
	tokName
	tokNumber
	tokString
	tokBlockString
	// tokInterpolation is a template ${...} placeholder kept as opaque text.
	tokInterpolation
	// tokInvalid is an unterminated string or interpolation.
	tokInvalid
)

type gqlToken struct {
	kind gqlTokenKind
	text string
	off  int
}

func (t gqlToken) is(text string) bool {
	return (t.kind == tokPunct || t.kind == tokSpread) && t.text == text
}

// gqlLexer splits GraphQL text into tokens with one token of lookahead.
// Commas are kept as tokens. Whitespace and comments are dropped.
type gqlLexer struct {
	src    string
	pos    int
	peeked *gqlToken
}

func newGQLLexer(src string) *gqlLexer {
	return &gqlLexer{src: src}
}

func (l *gqlLexer) peek() gqlToken {
	if l.peeked == nil {
		t := l.scan()
		l.peeked = &t
	}

	return *l.peeked
}

func (l *gqlLexer) next() gqlToken {
	t := l.peek()
	l.peeked = nil

	return t
}

//nolint:cyclop // one case per token class
func (l *gqlLexer) scan() gqlToken {
	l.skipIgnored()

	if l.pos >= len(l.src) {
		return gqlToken{kind: tokEOF, off: l.pos}
	}

	start := l.pos
	c := l.src[l.pos]

	switch {
	case c == '.' && strings.HasPrefix(l.src[l.pos:], "..."):
		l.pos += 3
		return gqlToken{kind: tokSpread, text: "...", off: start}
	case c == '$' && l.at(1) == '{':
		return l.interpolation()
	case c == '"' && strings.HasPrefix(l.src[l.pos:], `"""`):
		return l.blockString()
	case c == '"':
		return l.stringValue()
	case isNameStart(c):
		for l.pos < len(l.src) && isNameContinue(l.src[l.pos]) {
			l.pos++
		}

		return gqlToken{kind: tokName, text: l.src[start:l.pos], off: start}
	case isDigit(c) || (c == '-' && isDigit(l.at(1))):
		return l.number()
	case c < utf8.RuneSelf:
		l.pos++
		return gqlToken{kind: tokPunct, text: l.src[start:l.pos], off: start}
	default:
		_, size := utf8.DecodeRuneInString(l.src[l.pos:])
		l.pos += size

		return gqlToken{kind: tokPunct, text: l.src[start:l.pos], off: start}
	}
}

func (l *gqlLexer) at(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}

	return l.src[l.pos+n]
}

func (l *gqlLexer) skipIgnored() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v':
			l.pos++
		case c == '#':
			end := strings.IndexAny(l.src[l.pos:], "\n\r")
			if end < 0 {
				l.pos = len(l.src)
				return
			}

			l.pos += end
		case strings.HasPrefix(l.src[l.pos:], "\ufeff"):
			l.pos += len("\ufeff")
		default:
			return
		}
	}
}

func (l *gqlLexer) stringValue() gqlToken {
	start := l.pos
	l.pos++

	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '\\':
			l.pos += 2
		case '"':
			l.pos++
			return gqlToken{kind: tokString, text: l.src[start:l.pos], off: start}
		case '\n', '\r':
			return gqlToken{kind: tokInvalid, text: l.src[start:l.pos], off: start}
		default:
			l.pos++
		}
	}

	l.pos = len(l.src)

	return gqlToken{kind: tokInvalid, text: l.src[start:], off: start}
}

func (l *gqlLexer) blockString() gqlToken {
	start := l.pos
	l.pos += 3

	for l.pos < len(l.src) {
		switch {
		case strings.HasPrefix(l.src[l.pos:], `\"""`):
			l.pos += 4
		case strings.HasPrefix(l.src[l.pos:], `"""`):
			l.pos += 3
			return gqlToken{kind: tokBlockString, text: l.src[start:l.pos], off: start}
		default:
			l.pos++
		}
	}

	return gqlToken{kind: tokInvalid, text: l.src[start:], off: start}
}

func (l *gqlLexer) number() gqlToken {
	start := l.pos
	if l.src[l.pos] == '-' {
		l.pos++
	}

	for l.pos < len(l.src) {
		c := l.src[l.pos]

		switch {
		case isDigit(c) || c == '.' || c == 'e' || c == 'E':
			l.pos++
		case (c == '+' || c == '-') && (l.src[l.pos-1] == 'e' || l.src[l.pos-1] == 'E'):
			l.pos++
		default:
			return gqlToken{kind: tokNumber, text: l.src[start:l.pos], off: start}
		}
	}

	return gqlToken{kind: tokNumber, text: l.src[start:l.pos], off: start}
}

// interpolation consumes ${...} with balanced braces, skipping quoted text.
func (l *gqlLexer) interpolation() gqlToken {
	start := l.pos
	l.pos += 2
	depth := 1

	for l.pos < len(l.src) {
		c := l.src[l.pos]

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				l.pos++
				return gqlToken{kind: tokInterpolation, text: l.src[start:l.pos], off: start}
			}
		case '\'', '"', '`':
			l.skipQuoted(c)
			continue
		}

		l.pos++
	}

	return gqlToken{kind: tokInvalid, text: l.src[start:], off: start}
}

func (l *gqlLexer) skipQuoted(delim byte) {
	l.pos++

	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '\\':
			l.pos += 2
			continue
		case delim:
			l.pos++
			return
		}

		l.pos++
	}
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameContinue(c byte) bool {
	return isNameStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
