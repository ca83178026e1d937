package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationSet(t *testing.T) {
	set := NewOperationSet()

	assert.True(t, set.Add(OperationRecord{Kind: Query, Name: "B", Source: "one.js"}))
	assert.True(t, set.Add(OperationRecord{Kind: Mutation, Name: "A"}))
	assert.False(t, set.Add(OperationRecord{Kind: Query, Name: "B", Source: "two.js"}))

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"B", "A"}, set.Names())

	b, ok := set.Get("B")
	require.True(t, ok)
	assert.Equal(t, "one.js", b.Source)

	assert.Len(t, set.OfKind(Mutation), 1)
	assert.Len(t, set.Records(), 2)
}

func TestOperationSet_NilAndZero(t *testing.T) {
	var nilSet *OperationSet

	assert.Zero(t, nilSet.Len())
	assert.Nil(t, nilSet.Names())
	assert.Nil(t, nilSet.Records())
	assert.Empty(t, nilSet.OfKind(Query))

	_, ok := nilSet.Get("A")
	assert.False(t, ok)

	var zero OperationSet
	assert.True(t, zero.Add(OperationRecord{Name: "A"}))
	assert.Equal(t, 1, zero.Len())
}

func TestExtractionResult_EndpointOrEmpty(t *testing.T) {
	endpoint := "/graphql"

	assert.Empty(t, ExtractionResult{}.EndpointOrEmpty())
	assert.Equal(t, "/graphql", ExtractionResult{Endpoint: &endpoint}.EndpointOrEmpty())
}

func TestEndpointCandidate_Absolute(t *testing.T) {
	assert.True(t, EndpointCandidate{URL: "https://api.example.com/graphql"}.Absolute())
	assert.False(t, EndpointCandidate{URL: "/graphql"}.Absolute())
}

func TestDiagnostics(t *testing.T) {
	var total Diagnostics

	first := Diagnostics{Files: 1, Literals: 10, Candidates: 2}
	first.Reject("unbalanced_body")

	second := Diagnostics{Files: 1, SkippedFiles: 1, Literals: 5, Candidates: 1, Duplicates: 1}
	second.Reject("anonymous_operation")
	second.Reject("unbalanced_body")

	total.Merge(first)
	total.Merge(second)

	assert.Equal(t, Diagnostics{
		Files:        2,
		SkippedFiles: 1,
		Literals:     15,
		Candidates:   3,
		Duplicates:   1,
		Rejected:     map[string]int{"unbalanced_body": 2, "anonymous_operation": 1},
	}, total)
	assert.Equal(t, []string{"anonymous_operation", "unbalanced_body"}, total.RejectedKinds())
}

func TestCorpus_Identifiers(t *testing.T) {
	corpus := Corpus{{Identifier: "a.js"}, {Identifier: "b.js"}}

	assert.Equal(t, []string{"a.js", "b.js"}, corpus.Identifiers())
}

func TestResultDiff(t *testing.T) {
	diff := ResultDiff{Changes: []OperationChange{{Status: Added}, {Status: Added}, {Status: Changed}}}

	assert.False(t, diff.Empty())
	assert.Equal(t, 2, diff.Count(Added))
	assert.Equal(t, 0, diff.Count(Removed))
	assert.Equal(t, "changed", Changed.String())
	assert.Equal(t, "unknown", ChangeStatus(9).String())
	assert.True(t, ResultDiff{}.Empty())
}
