package domain

import (
	"log/slog"

	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

// Aggregator accumulates operation records into a name keyed set. It is the
// only writer of that set and is not safe for concurrent use.
type Aggregator struct {
	set        *m.OperationSet
	duplicates int
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{set: m.NewOperationSet()}
}

// Add stores records in order. A record whose name is already present is
// discarded: the first one seen wins.
func (a *Aggregator) Add(records ...m.OperationRecord) {
	for _, r := range records {
		if a.set.Add(r) {
			continue
		}

		a.duplicates++

		kept, _ := a.set.Get(r.Name)
		slog.Debug("Discarded duplicate operation",
			"name", r.Name, "source", r.Source, "kept_source", kept.Source)
	}
}

// Duplicates returns how many records were discarded.
func (a *Aggregator) Duplicates() int {
	return a.duplicates
}

// Result builds the ExtractionResult. The endpoint is left nil unless found.
func (a *Aggregator) Result(endpoint string, found bool) m.ExtractionResult {
	operations := m.NewOperationSet()
	for _, r := range a.set.Records() {
		operations.Add(r)
	}

	result := m.ExtractionResult{Operations: operations}
	if found {
		result.Endpoint = &endpoint
	}

	return result
}
