package domain

import (
	"strings"

	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

// ParseOperation turns one candidate text into an OperationRecord. Rejections
// are *ParseError values wrapping one of ErrNotAnOperation,
// ErrAnonymousOperation, ErrMalformedVariables or ErrUnbalancedBody.
// Anything after the closing brace of the selection set is ignored; use
// ParseOperations for documents defining several operations.
func ParseOperation(raw string) (m.OperationRecord, error) {
	p := &operationParser{lex: newGQLLexer(raw)}

	return p.parse()
}

// ParseOperations parses every query and mutation defined in raw, in order.
// Fragment definitions and template placeholders between operations are
// skipped. Parsing stops at text that does not start a definition, or at the
// first rejection, which is returned together with the records before it.
func ParseOperations(raw string) ([]m.OperationRecord, error) {
	p := &operationParser{lex: newGQLLexer(raw)}

	var records []m.OperationRecord

	for {
		record, err := p.parse()
		if err != nil {
			return records, err
		}

		records = append(records, record)

		if !p.skipToNextOperation() {
			return records, nil
		}

		p.tokens = nil
	}
}

// skipToNextOperation consumes fragments and placeholders and reports whether
// another query or mutation follows.
func (p *operationParser) skipToNextOperation() bool {
	for {
		t := p.lex.peek()

		switch {
		case t.kind == tokInterpolation:
			p.lex.next()
		case t.kind == tokName && t.text == "fragment":
			if !p.skipFragment() {
				return false
			}
		case t.kind == tokName:
			_, ok := m.ParseOperationKind(t.text)
			return ok
		default:
			return false
		}
	}
}

func (p *operationParser) skipFragment() bool {
	for !p.lex.peek().is("{") {
		if t := p.lex.next(); t.kind == tokEOF || t.kind == tokInvalid {
			return false
		}
	}

	return p.balanced("{", "}", ErrUnbalancedBody) == nil
}

type operationParser struct {
	lex    *gqlLexer
	tokens []gqlToken
}

func (p *operationParser) next() gqlToken {
	t := p.lex.next()
	if t.kind != tokEOF {
		p.tokens = append(p.tokens, t)
	}

	return t
}

func (p *operationParser) parse() (m.OperationRecord, error) {
	keyword := p.next()

	kind, ok := m.ParseOperationKind(keyword.text)
	if keyword.kind != tokName || !ok {
		return m.OperationRecord{}, parseErrorf(ErrNotAnOperation, keyword.off, "expected query or mutation, got %q", keyword.text)
	}

	name := p.next()
	if name.kind != tokName {
		return m.OperationRecord{}, parseErrorf(ErrAnonymousOperation, name.off, "operation has no name")
	}

	variables := []m.VariableDecl{}

	if p.lex.peek().is("(") {
		var err error

		variables, err = p.variableDefinitions()
		if err != nil {
			return m.OperationRecord{}, err
		}
	}

	if err := p.directives(ErrUnbalancedBody); err != nil {
		return m.OperationRecord{}, err
	}

	if err := p.selectionSet(); err != nil {
		return m.OperationRecord{}, err
	}

	return m.OperationRecord{
		Kind:      kind,
		Name:      name.text,
		Variables: variables,
		Body:      renderTokens(p.tokens),
	}, nil
}

//nolint:cyclop // linear walk over one variable definition
func (p *operationParser) variableDefinitions() ([]m.VariableDecl, error) {
	open := p.next()
	variables := []m.VariableDecl{}
	seen := map[string]bool{}

	for {
		t := p.next()

		switch {
		case t.is(","):
			continue
		case t.is(")"):
			if len(variables) == 0 {
				return nil, parseErrorf(ErrMalformedVariables, open.off, "empty variable list")
			}

			return variables, nil
		case t.kind == tokEOF:
			return nil, parseErrorf(ErrMalformedVariables, open.off, "unclosed variable list")
		case !t.is("$"):
			return nil, parseErrorf(ErrMalformedVariables, t.off, "expected $, got %q", t.text)
		}

		name := p.next()
		if name.kind != tokName || name.off != t.off+1 {
			return nil, parseErrorf(ErrMalformedVariables, name.off, "expected variable name")
		}

		if seen[name.text] {
			return nil, parseErrorf(ErrMalformedVariables, name.off, "duplicate variable $%s", name.text)
		}

		seen[name.text] = true

		if colon := p.next(); !colon.is(":") {
			return nil, parseErrorf(ErrMalformedVariables, colon.off, "expected : after $%s", name.text)
		}

		typ, err := p.typeReference()
		if err != nil {
			return nil, err
		}

		if p.lex.peek().is("=") {
			p.next()

			if err := p.value(); err != nil {
				return nil, err
			}
		}

		if err := p.directives(ErrMalformedVariables); err != nil {
			return nil, err
		}

		variables = append(variables, m.VariableDecl{Name: name.text, Type: typ})
	}
}

// typeReference reads Named, [Type] and their non-null forms, returning the
// signature without whitespace.
func (p *operationParser) typeReference() (string, error) {
	var b strings.Builder

	t := p.next()

	switch {
	case t.kind == tokName:
		b.WriteString(t.text)
	case t.is("["):
		inner, err := p.typeReference()
		if err != nil {
			return "", err
		}

		if closing := p.next(); !closing.is("]") {
			return "", parseErrorf(ErrMalformedVariables, closing.off, "expected ] in list type")
		}

		b.WriteString("[" + inner + "]")
	default:
		return "", parseErrorf(ErrMalformedVariables, t.off, "expected type, got %q", t.text)
	}

	if p.lex.peek().is("!") {
		p.next()
		b.WriteByte('!')
	}

	return b.String(), nil
}

// value skips one default value: a scalar token, a list or an object.
func (p *operationParser) value() error {
	t := p.next()

	switch {
	case t.kind == tokName, t.kind == tokNumber, t.kind == tokString,
		t.kind == tokBlockString, t.kind == tokInterpolation:
		return nil
	case t.is("$"):
		if name := p.next(); name.kind != tokName {
			return parseErrorf(ErrMalformedVariables, name.off, "expected variable name in default value")
		}

		return nil
	case t.is("["):
		for !p.lex.peek().is("]") {
			if p.lex.peek().is(",") {
				p.next()
				continue
			}

			if err := p.value(); err != nil {
				return err
			}
		}

		p.next()

		return nil
	case t.is("{"):
		return p.objectFields()
	default:
		return parseErrorf(ErrMalformedVariables, t.off, "unexpected %q in default value", t.text)
	}
}

func (p *operationParser) objectFields() error {
	for {
		t := p.next()

		switch {
		case t.is("}"):
			return nil
		case t.is(","):
			continue
		case t.kind != tokName:
			return parseErrorf(ErrMalformedVariables, t.off, "expected object field, got %q", t.text)
		}

		if colon := p.next(); !colon.is(":") {
			return parseErrorf(ErrMalformedVariables, colon.off, "expected : in object value")
		}

		if err := p.value(); err != nil {
			return err
		}
	}
}

// directives consumes @name and @name(...) sequences.
func (p *operationParser) directives(kind error) error {
	for p.lex.peek().is("@") {
		at := p.next()

		if name := p.next(); name.kind != tokName || name.off != at.off+1 {
			return parseErrorf(kind, at.off, "expected directive name")
		}

		if p.lex.peek().is("(") {
			if err := p.balanced("(", ")", kind); err != nil {
				return err
			}
		}
	}

	return nil
}

// balanced consumes tokens from an opening delimiter to its match.
func (p *operationParser) balanced(open, closing string, kind error) error {
	first := p.next()
	depth := 0

	for t := first; ; t = p.next() {
		switch {
		case t.kind == tokEOF:
			return parseErrorf(kind, first.off, "missing %s", closing)
		case t.kind == tokInvalid:
			return parseErrorf(kind, t.off, "unterminated %q", t.text)
		case t.is(open):
			depth++
		case t.is(closing):
			depth--
			if depth == 0 {
				return nil
			}
		}
	}
}

func (p *operationParser) selectionSet() error {
	if t := p.lex.peek(); !t.is("{") {
		return parseErrorf(ErrUnbalancedBody, t.off, "expected selection set, got %q", t.text)
	}

	return p.balanced("{", "}", ErrUnbalancedBody)
}
