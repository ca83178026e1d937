package domain

import (
	"bytes"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
)

// PrettyOperation renders a normalized body as an indented multi line document.
// Bodies the GraphQL parser refuses, such as those with template
// interpolations, are indented at selection set braces instead.
func PrettyOperation(body string) string {
	doc, err := parser.ParseQuery(&ast.Source{Name: "operation", Input: body})
	if err == nil && len(doc.Operations) > 0 {
		var buf bytes.Buffer

		formatter.NewFormatter(&buf).FormatQueryDocument(doc)

		if out := strings.TrimSpace(buf.String()); out != "" {
			return out
		}
	}

	lex := newGQLLexer(body)

	var tokens []gqlToken

	for t := lex.next(); t.kind != tokEOF; t = lex.next() {
		tokens = append(tokens, t)
	}

	return indentTokens(tokens)
}
