package model

// ChangeStatus classifies an operation in a ResultDiff.
type ChangeStatus int

// Available ChangeStatus values.
const (
	Added ChangeStatus = iota
	Removed
	Changed
)

func (s ChangeStatus) String() string {
	switch s {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	default:
		return "unknown"
	}
}

// OperationChange describes one operation that differs between two results.
type OperationChange struct {
	Name   string
	Kind   OperationKind
	Status ChangeStatus
	// Diff is a unified diff of the pretty printed bodies. Empty unless Changed.
	Diff string
}

// ResultDiff lists what changed between two extraction results.
type ResultDiff struct {
	EndpointBefore string
	EndpointAfter  string
	Changes        []OperationChange
}

// EndpointChanged reports whether the detected endpoint moved.
func (d ResultDiff) EndpointChanged() bool {
	return d.EndpointBefore != d.EndpointAfter
}

// Empty reports whether both results are equivalent.
func (d ResultDiff) Empty() bool {
	return !d.EndpointChanged() && len(d.Changes) == 0
}

// Count returns the number of changes with the given status.
func (d ResultDiff) Count(status ChangeStatus) int {
	n := 0

	for _, c := range d.Changes {
		if c.Status == status {
			n++
		}
	}

	return n
}
