package model

import "sort"

// EndpointCandidate is a GraphQL endpoint guess and how often it was referenced.
type EndpointCandidate struct {
	URL         string
	Occurrences int
	// SourceFiles lists, sorted, the identifiers of the files referencing URL.
	SourceFiles []string
}

// Absolute reports whether the candidate carries a scheme and host.
func (c EndpointCandidate) Absolute() bool {
	return IsAbsoluteURL(c.URL)
}

// OperationSet maps operation names to records and remembers insertion order.
// Names are unique: the first record added under a name is kept.
type OperationSet struct {
	order  []string
	byName map[string]OperationRecord
}

// NewOperationSet returns an empty set.
func NewOperationSet() *OperationSet {
	return &OperationSet{byName: map[string]OperationRecord{}}
}

// Add stores r unless its name is already present. It reports whether r was stored.
func (s *OperationSet) Add(r OperationRecord) bool {
	if s.byName == nil {
		s.byName = map[string]OperationRecord{}
	}

	if _, ok := s.byName[r.Name]; ok {
		return false
	}

	s.byName[r.Name] = r
	s.order = append(s.order, r.Name)

	return true
}

// Get returns the record stored under name.
func (s *OperationSet) Get(name string) (OperationRecord, bool) {
	if s == nil {
		return OperationRecord{}, false
	}

	r, ok := s.byName[name]

	return r, ok
}

// Len returns the number of records.
func (s *OperationSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.order)
}

// Names returns the names in insertion order.
func (s *OperationSet) Names() []string {
	if s == nil {
		return nil
	}

	return append([]string(nil), s.order...)
}

// Records returns the records in insertion order.
func (s *OperationSet) Records() []OperationRecord {
	if s == nil {
		return nil
	}

	out := make([]OperationRecord, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}

	return out
}

// OfKind returns the records of the given kind in insertion order.
func (s *OperationSet) OfKind(kind OperationKind) []OperationRecord {
	var out []OperationRecord

	for _, r := range s.Records() {
		if r.Kind == kind {
			out = append(out, r)
		}
	}

	return out
}

// ExtractionResult is the sole output of the extraction core.
type ExtractionResult struct {
	// Endpoint is nil when no candidate was found.
	Endpoint   *string
	Operations *OperationSet
}

// EndpointOrEmpty returns the endpoint or "" when absent.
func (r ExtractionResult) EndpointOrEmpty() string {
	if r.Endpoint == nil {
		return ""
	}

	return *r.Endpoint
}

// Diagnostics counts what the core dropped or skipped during one run.
type Diagnostics struct {
	Files        int
	SkippedFiles int
	Literals     int
	Candidates   int
	Rejected     map[string]int
	Duplicates   int
}

// Reject increments the counter for a rejection kind.
func (d *Diagnostics) Reject(kind string) {
	if d.Rejected == nil {
		d.Rejected = map[string]int{}
	}

	d.Rejected[kind]++
}

// Merge adds the counters of other to d.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Files += other.Files
	d.SkippedFiles += other.SkippedFiles
	d.Literals += other.Literals
	d.Candidates += other.Candidates
	d.Duplicates += other.Duplicates

	for kind, n := range other.Rejected {
		if d.Rejected == nil {
			d.Rejected = map[string]int{}
		}

		d.Rejected[kind] += n
	}
}

// RejectedKinds returns the rejection kinds sorted by name.
func (d Diagnostics) RejectedKinds() []string {
	kinds := make([]string, 0, len(d.Rejected))
	for k := range d.Rejected {
		kinds = append(kinds, k)
	}

	sort.Strings(kinds)

	return kinds
}
