package model

import "fmt"

// OperationKind is the GraphQL operation type.
type OperationKind int

const (
	// Query is a read operation.
	Query OperationKind = iota
	// Mutation is a write operation.
	Mutation
)

// String returns the GraphQL keyword for the kind.
func (k OperationKind) String() string {
	switch k {
	case Query:
		return "query"
	case Mutation:
		return "mutation"
	default:
		return fmt.Sprintf("OperationKind(%d)", int(k))
	}
}

// ParseOperationKind maps a GraphQL keyword to its kind.
func ParseOperationKind(keyword string) (OperationKind, bool) {
	switch keyword {
	case "query":
		return Query, true
	case "mutation":
		return Mutation, true
	default:
		return 0, false
	}
}

// VariableDecl is one `$name: Type` entry of an operation's variable list.
// Type keeps the GraphQL syntax, including `!` and list brackets.
type VariableDecl struct {
	Name string
	Type string
}

// OperationRecord is a named query or mutation recovered from the corpus.
type OperationRecord struct {
	Kind      OperationKind
	Name      string
	Variables []VariableDecl
	// Body is the normalized single-line GraphQL text of the operation.
	Body string
	// Source is the identifier of the file the record was found in.
	Source string
}

// VariableNames returns the variable names in declaration order. The result is
// never nil.
func (r OperationRecord) VariableNames() []string {
	names := make([]string, 0, len(r.Variables))
	for _, v := range r.Variables {
		names = append(names, v.Name)
	}

	return names
}

// Signature renders the operation header, e.g. `query GetUser($id: ID!)`.
func (r OperationRecord) Signature() string {
	sig := r.Kind.String() + " " + r.Name
	if len(r.Variables) == 0 {
		return sig
	}

	sig += "("
	for i, v := range r.Variables {
		if i > 0 {
			sig += ", "
		}

		sig += "$" + v.Name + ": " + v.Type
	}

	return sig + ")"
}
