package domain

import (
	"iter"
	"log/slog"
	"strings"

	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

// Scanner finds GraphQL operations embedded as string literals in JavaScript.
type Scanner struct{}

// NewScanner creates a Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan yields the unescaped content of every string literal of file that
// looks like a query or mutation. The sequence can be ranged over repeatedly
// and yields the same texts each time.
func (s *Scanner) Scan(file m.SourceFile) iter.Seq[string] {
	return s.candidates(file, nil)
}

func (s *Scanner) candidates(file m.SourceFile, diag *m.Diagnostics) iter.Seq[string] {
	return func(yield func(string) bool) {
		for lit := range jsLiterals(file.Content) {
			if diag != nil {
				diag.Literals++
			}

			if !isOperationCandidate(lit.Value) {
				continue
			}

			if diag != nil {
				diag.Candidates++
			}

			if !yield(lit.Value) {
				return
			}
		}
	}
}

// ScanOperations yields the records of the candidates of file that parse. A
// candidate defining several operations yields each of them. Rejected
// definitions are counted in diag when it is not nil.
func (s *Scanner) ScanOperations(file m.SourceFile, diag *m.Diagnostics) iter.Seq[m.OperationRecord] {
	return func(yield func(m.OperationRecord) bool) {
		for raw := range s.candidates(file, diag) {
			records, err := ParseOperations(raw)

			for _, record := range records {
				record.Source = file.Identifier

				if !yield(record) {
					return
				}
			}

			if err != nil {
				slog.Debug("Dropped operation candidate", "file", file.Identifier, "error", err)

				if diag != nil {
					diag.Reject(rejectionKind(err))
				}
			}
		}
	}
}

// isOperationCandidate reports whether text starts, after leading whitespace,
// with query or mutation followed by a name, `{` or `(`.
func isOperationCandidate(text string) bool {
	trimmed := strings.TrimLeft(text, " \t\n\r\f\v")

	for _, keyword := range []string{"query", "mutation"} {
		rest, ok := strings.CutPrefix(trimmed, keyword)
		if !ok || rest == "" {
			continue
		}

		switch c := rest[0]; {
		case c == '{' || c == '(':
			return true
		case isJSSpace(c):
			rest = strings.TrimLeft(rest, " \t\n\r\f\v")

			return rest != "" && (isNameStart(rest[0]) || rest[0] == '{' || rest[0] == '(')
		}
	}

	return false
}
