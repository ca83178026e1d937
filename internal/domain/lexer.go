package domain

import (
	"iter"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// jsLiteral is one completed JavaScript string literal.
type jsLiteral struct {
	// Value is the unescaped content. Template interpolations are kept verbatim.
	Value string
	// Offset is the byte offset of the opening delimiter.
	Offset int
	Delim  byte
}

// keywords after which a slash starts a regular expression rather than a division.
var regexPrefixKeywords = map[string]bool{
	"return": true, "typeof": true, "instanceof": true, "in": true, "of": true,
	"new": true, "delete": true, "void": true, "throw": true, "case": true,
	"do": true, "else": true, "yield": true, "await": true,
}

type templateFrame struct {
	start int
	buf   strings.Builder
	// interp is true while the lexer is inside a ${...} of this template.
	interp      bool
	interpStart int
	depth       int
}

// jsLexer walks JavaScript source and reports string literals. It is an
// explicit state machine: code, quoted string, template text, template
// interpolation, comments and regular expression literals. It never backtracks.
type jsLexer struct {
	src    string
	pos    int
	frames []*templateFrame
	// operand is true when the previous significant token ends an expression,
	// in which case a slash is a division operator.
	operand bool
}

func newJSLexer(src string) *jsLexer {
	return &jsLexer{src: src}
}

// jsLiterals yields every string literal of src as it closes. Literals nested
// in template interpolations are reported before the enclosing template.
func jsLiterals(src string) iter.Seq[jsLiteral] {
	return func(yield func(jsLiteral) bool) {
		lx := newJSLexer(src)

		for {
			lit, ok := lx.next()
			if !ok || !yield(lit) {
				return
			}
		}
	}
}

//nolint:cyclop,gocognit // one case per lexer state
func (l *jsLexer) next() (jsLiteral, bool) {
	for l.pos < len(l.src) {
		if top := l.top(); top != nil && !top.interp {
			if lit, done := l.templateText(top); done {
				return lit, true
			}

			continue
		}

		c := l.src[l.pos]

		switch {
		case isJSSpace(c):
			l.pos++
		case c == '/' && l.peek(1) == '/':
			l.skipLineComment()
		case c == '/' && l.peek(1) == '*':
			l.skipBlockComment()
		case c == '/':
			if l.operand {
				l.pos++
				l.operand = false
			} else {
				l.skipRegex()
				l.operand = true
			}
		case c == '\'' || c == '"':
			lit, ok := l.quoted(c)
			l.operand = true

			if ok {
				return lit, true
			}
		case c == '`':
			l.frames = append(l.frames, &templateFrame{start: l.pos})
			l.pos++
		case c == '{':
			if top := l.top(); top != nil {
				top.depth++
			}

			l.pos++
			l.operand = false
		case c == '}':
			if top := l.top(); top != nil {
				if top.depth == 0 {
					top.buf.WriteString(l.src[top.interpStart : l.pos+1])
					top.interp = false
					l.pos++

					continue
				}

				top.depth--
			}

			l.pos++
			l.operand = true
		case c == ')' || c == ']':
			l.pos++
			l.operand = true
		case isJSWordByte(c):
			start := l.pos
			for l.pos < len(l.src) && isJSWordByte(l.src[l.pos]) {
				l.pos++
			}

			l.operand = !regexPrefixKeywords[l.src[start:l.pos]]
		default:
			l.pos++
			l.operand = false
		}
	}

	return jsLiteral{}, false
}

func (l *jsLexer) top() *templateFrame {
	if len(l.frames) == 0 {
		return nil
	}

	return l.frames[len(l.frames)-1]
}

func (l *jsLexer) peek(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}

	return l.src[l.pos+n]
}

// quoted consumes a '...' or "..." literal. A raw line break ends it as invalid.
func (l *jsLexer) quoted(delim byte) (jsLiteral, bool) {
	start := l.pos
	l.pos++

	var b strings.Builder

	for l.pos < len(l.src) {
		c := l.src[l.pos]

		switch c {
		case delim:
			l.pos++
			return jsLiteral{Value: b.String(), Offset: start, Delim: delim}, true
		case '\\':
			l.unescape(&b)
		case '\n', '\r':
			return jsLiteral{}, false
		default:
			b.WriteByte(c)
			l.pos++
		}
	}

	return jsLiteral{}, false
}

// templateText consumes template characters until the closing backtick or the
// start of an interpolation. It reports the finished literal when the template closes.
func (l *jsLexer) templateText(top *templateFrame) (jsLiteral, bool) {
	for l.pos < len(l.src) {
		c := l.src[l.pos]

		switch {
		case c == '`':
			l.pos++
			l.frames = l.frames[:len(l.frames)-1]
			l.operand = true

			return jsLiteral{Value: top.buf.String(), Offset: top.start, Delim: '`'}, true
		case c == '\\':
			l.unescape(&top.buf)
		case c == '$' && l.peek(1) == '{':
			top.interp = true
			top.interpStart = l.pos
			top.depth = 0
			l.pos += 2
			l.operand = false

			return jsLiteral{}, false
		default:
			top.buf.WriteByte(c)
			l.pos++
		}
	}

	// Unterminated template: drop it.
	l.frames = l.frames[:len(l.frames)-1]

	return jsLiteral{}, false
}

// unescape decodes the escape sequence at l.pos into b.
//
//nolint:cyclop // one case per escape
func (l *jsLexer) unescape(b *strings.Builder) {
	l.pos++ // backslash
	if l.pos >= len(l.src) {
		return
	}

	c := l.src[l.pos]
	l.pos++

	switch c {
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'v':
		b.WriteByte('\v')
	case '0':
		b.WriteByte(0)
	case '\r':
		if l.pos < len(l.src) && l.src[l.pos] == '\n' {
			l.pos++
		}
	case '\n':
	case 'x':
		if r, ok := l.hex(2); ok {
			b.WriteRune(r)
		} else {
			b.WriteByte('x')
		}
	case 'u':
		l.unicodeEscape(b)
	default:
		// Also covers \' \" \\ \` \$ and U+2028/2029 continuations.
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(l.src[l.pos-1:])
			l.pos += size - 1

			if r == '\u2028' || r == '\u2029' {
				return
			}

			b.WriteRune(r)

			return
		}

		b.WriteByte(c)
	}
}

func (l *jsLexer) unicodeEscape(b *strings.Builder) {
	if l.pos < len(l.src) && l.src[l.pos] == '{' {
		end := strings.IndexByte(l.src[l.pos:], '}')
		if end > 1 && end <= 7 {
			if r, ok := parseHex(l.src[l.pos+1 : l.pos+end]); ok && r <= utf8.MaxRune {
				l.pos += end + 1
				b.WriteRune(r)

				return
			}
		}

		b.WriteByte('u')

		return
	}

	r, ok := l.hex(4)
	if !ok {
		b.WriteByte('u')
		return
	}

	if utf16.IsSurrogate(r) && strings.HasPrefix(l.src[l.pos:], `\u`) {
		save := l.pos
		l.pos += 2

		if lo, ok := l.hex(4); ok {
			if pair := utf16.DecodeRune(r, lo); pair != utf8.RuneError {
				b.WriteRune(pair)
				return
			}
		}

		l.pos = save
	}

	b.WriteRune(r)
}

// hex reads exactly n hex digits.
func (l *jsLexer) hex(n int) (rune, bool) {
	if l.pos+n > len(l.src) {
		return 0, false
	}

	r, ok := parseHex(l.src[l.pos : l.pos+n])
	if ok {
		l.pos += n
	}

	return r, ok
}

func parseHex(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}

	var r rune

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c >= '0' && c <= '9':
			r = r<<4 | rune(c-'0')
		case c >= 'a' && c <= 'f':
			r = r<<4 | rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			r = r<<4 | rune(c-'A'+10)
		default:
			return 0, false
		}
	}

	return r, true
}

func (l *jsLexer) skipLineComment() {
	end := strings.IndexAny(l.src[l.pos:], "\n\r")
	if end < 0 {
		l.pos = len(l.src)
		return
	}

	l.pos += end
}

func (l *jsLexer) skipBlockComment() {
	end := strings.Index(l.src[l.pos+2:], "*/")
	if end < 0 {
		l.pos = len(l.src)
		return
	}

	l.pos += end + 4
}

// skipRegex consumes a regular expression literal and its flags. A line break
// before the closing slash abandons it at that point.
func (l *jsLexer) skipRegex() {
	l.pos++
	inClass := false

	for l.pos < len(l.src) {
		c := l.src[l.pos]

		switch {
		case c == '\\':
			l.pos += 2
			continue
		case c == '\n' || c == '\r':
			return
		case c == '[':
			inClass = true
		case c == ']':
			inClass = false
		case c == '/' && !inClass:
			l.pos++
			for l.pos < len(l.src) && isJSWordByte(l.src[l.pos]) {
				l.pos++
			}

			return
		}

		l.pos++
	}
}

func isJSSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isJSWordByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') ||
		c >= utf8.RuneSelf
}
