package model

// ScanSummary is what a scan reports once the result is written.
type ScanSummary struct {
	Target      string
	URLs        int
	Fetched     int
	Output      Path
	Result      ExtractionResult
	Candidates  []EndpointCandidate
	Diagnostics Diagnostics
}

// OperationView is a record prepared for display.
type OperationView struct {
	Record OperationRecord
	// Pretty is the multi line rendering of the body.
	Pretty string
}

// ResultView is a saved result prepared for display.
type ResultView struct {
	Source     Path
	Endpoint   *string
	Operations []OperationView
}

// Count returns the number of operations of the given kind.
func (v ResultView) Count(kind OperationKind) int {
	n := 0

	for _, op := range v.Operations {
		if op.Record.Kind == kind {
			n++
		}
	}

	return n
}
