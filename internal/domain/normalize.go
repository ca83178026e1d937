package domain

import "strings"

type braceKind int

const (
	braceParen braceKind = iota
	braceList
	braceSelection
	braceObject
)

// renderTokens joins tokens into the single-line form used for operation
// bodies. A `{` opens a selection set unless it sits inside parentheses, a
// list or another object value, in which case it is rendered compactly.
func renderTokens(tokens []gqlToken) string {
	var (
		b     strings.Builder
		stack []braceKind
		prev  gqlToken
		// prevObject records whether prev was an object brace.
		prevObject bool
	)

	for i, t := range tokens {
		object := false

		switch {
		case t.is("{"):
			object = len(stack) > 0 && stack[len(stack)-1] != braceSelection
			if object {
				stack = append(stack, braceObject)
			} else {
				stack = append(stack, braceSelection)
			}
		case t.is("}"):
			if len(stack) > 0 {
				object = stack[len(stack)-1] == braceObject
				stack = stack[:len(stack)-1]
			}
		case t.is("("):
			stack = append(stack, braceParen)
		case t.is("["):
			stack = append(stack, braceList)
		case t.is(")"), t.is("]"):
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}

		if i > 0 && spaceBetween(prev, prevObject, t, object) {
			b.WriteByte(' ')
		}

		b.WriteString(t.text)

		prev, prevObject = t, object
	}

	return b.String()
}

func spaceBetween(prev gqlToken, prevObject bool, cur gqlToken, curObject bool) bool {
	switch {
	case prev.is("(") || prev.is("[") || prev.is("$") || prev.is("@"):
		return false
	case prev.is("{") && prevObject:
		return false
	case prev.kind == tokSpread:
		return cur.kind != tokName || cur.text == "on"
	case cur.is(")") || cur.is("]") || cur.is(":") || cur.is(",") || cur.is("!") || cur.is("("):
		return false
	case cur.is("}") && curObject:
		return false
	}

	return true
}

// indentTokens renders tokens over several lines, breaking at selection set
// braces and indenting nested sets by two spaces. It is the fallback when a
// body cannot be pretty printed by a GraphQL parser.
func indentTokens(tokens []gqlToken) string {
	var (
		b       strings.Builder
		line    []gqlToken
		depth   int
		nesting int
	)

	flush := func() {
		if len(line) == 0 {
			return
		}

		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(renderTokens(line))
		b.WriteByte('\n')

		line = line[:0]
	}

	for _, t := range tokens {
		switch {
		case t.is("(") || t.is("["):
			nesting++
		case t.is(")") || t.is("]"):
			nesting--
		}

		switch {
		case nesting > 0:
			line = append(line, t)
		case t.is("{"):
			line = append(line, t)
			flush()
			depth++
		case t.is("}"):
			flush()

			if depth > 0 {
				depth--
			}

			line = append(line, t)
			flush()
		default:
			line = append(line, t)
		}
	}

	flush()

	return strings.TrimRight(b.String(), "\n")
}
