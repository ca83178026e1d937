package domain

import (
	"errors"
	"fmt"
)

// Rejection kinds reported by ParseOperation. None of them is fatal: the
// candidate is dropped and counted.
var (
	ErrNotAnOperation     = errors.New("not an operation")
	ErrAnonymousOperation = errors.New("anonymous operation")
	ErrMalformedVariables = errors.New("malformed variables")
	ErrUnbalancedBody     = errors.New("unbalanced body")
)

// ErrEncoding marks a corpus file that is not decodable as text.
var ErrEncoding = errors.New("undecodable text")

// ParseError describes why a candidate was rejected.
type ParseError struct {
	Kind   error
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", e.Kind, e.Offset, e.Msg)
}

// Unwrap exposes the rejection kind to errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Kind
}

func parseErrorf(kind error, offset int, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// rejectionKind maps an error to the diagnostics counter it increments.
func rejectionKind(err error) string {
	switch {
	case errors.Is(err, ErrNotAnOperation):
		return "not_an_operation"
	case errors.Is(err, ErrAnonymousOperation):
		return "anonymous_operation"
	case errors.Is(err, ErrMalformedVariables):
		return "malformed_variables"
	case errors.Is(err, ErrUnbalancedBody):
		return "unbalanced_body"
	default:
		return "other"
	}
}
