package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

func TestAggregator_FirstSeenWins(t *testing.T) {
	aggregator := NewAggregator()

	aggregator.Add(
		m.OperationRecord{
			Kind:      m.Query,
			Name:      "GetUser",
			Variables: []m.VariableDecl{{Name: "id", Type: "ID!"}},
			Body:      "query GetUser($id: ID!) { a }",
			Source:    "a.js",
		},
		m.OperationRecord{Kind: m.Mutation, Name: "Save", Body: "mutation Save { b }", Source: "a.js"},
	)
	aggregator.Add(m.OperationRecord{
		Kind:      m.Query,
		Name:      "GetUser",
		Variables: []m.VariableDecl{{Name: "login", Type: "String"}, {Name: "limit", Type: "Int"}},
		Body:      "query GetUser($login: String, $limit: Int) { c }",
		Source:    "b.js",
	})

	result := aggregator.Result("", false)

	assert.Nil(t, result.Endpoint)
	assert.Equal(t, []string{"GetUser", "Save"}, result.Operations.Names())
	assert.Equal(t, 1, aggregator.Duplicates())

	kept, ok := result.Operations.Get("GetUser")
	require.True(t, ok)
	assert.Equal(t, "a.js", kept.Source)
	assert.Equal(t, "query GetUser($id: ID!) { a }", kept.Body)
	assert.Equal(t, []m.VariableDecl{{Name: "id", Type: "ID!"}}, kept.Variables)
}

func TestAggregator_ResultEndpoint(t *testing.T) {
	aggregator := NewAggregator()

	result := aggregator.Result("/graphql", true)

	require.NotNil(t, result.Endpoint)
	assert.Equal(t, "/graphql", *result.Endpoint)
	assert.Equal(t, 0, result.Operations.Len())
}

func TestAggregator_ResultIsSnapshot(t *testing.T) {
	aggregator := NewAggregator()
	aggregator.Add(m.OperationRecord{Name: "A"})

	result := aggregator.Result("", false)

	aggregator.Add(m.OperationRecord{Name: "B"})

	assert.Equal(t, []string{"A"}, result.Operations.Names())
}
