package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		literal string
		want    string
		ok      bool
	}{
		{"https://api.example.com/graphql", "https://api.example.com/graphql", true},
		{"https://API.Example.com/graphql/?x=1#frag", "https://api.example.com/graphql", true},
		{"http://example.com/v1/GraphQL", "http://example.com/v1/GraphQL", true},
		{"//cdn.example.com/gql", "https://cdn.example.com/gql", true},
		{"/graphql", "/graphql", true},
		{"/graphql?op=GetUser", "/graphql", true},
		{"https://graphql.example.com", "https://graphql.example.com", true},
		{"/gql", "/gql", true},
		{"https://api.example.com/graphql?operationName=Foo", "https://api.example.com/graphql", true},
		{"/api/graphql?v=2", "/api/graphql", true},
		{"/graphql?query={viewer{id}}&vars=()", "/graphql", true},
		{"/gq", "", false},
		{"/api", "", false},
		{"graphql", "", false},
		{"https://example.com/api", "", false},
		{"https://example.com/gqlx", "", false},
		{"https://example.com/graphql {", "", false},
		{"query GetUser { a }", "", false},
		{"/graphql/${id}", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			got, ok := normalizeEndpoint(tt.literal)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEndpointDetector_Detect(t *testing.T) {
	corpus := m.Corpus{
		{
			Identifier: "main.js",
			Content: `fetch("https://api.example.com/graphql", a);` +
				`fetch("https://api.example.com/graphql", b);` +
				`fetch("https://api.example.com/graphql", c);`,
		},
		{Identifier: "vendor.js", Content: `const url = "/graphql";`},
	}

	endpoint, ok := NewEndpointDetector().Detect(corpus)

	require.True(t, ok)
	assert.Equal(t, "https://api.example.com/graphql", endpoint)
}

func TestEndpointDetector_Detect_QueryStringsAndShortPaths(t *testing.T) {
	corpus := m.Corpus{
		{
			Identifier: "main.js",
			Content: `f("https://api.example.com/graphql?operationName=Foo");` +
				`g("https://api.example.com/graphql?operationName=Bar");` +
				`h("/gql"); h("/api/graphql?v=2")`,
		},
	}

	detector := NewEndpointDetector()

	endpoint, ok := detector.Detect(corpus)
	require.True(t, ok)
	assert.Equal(t, "https://api.example.com/graphql", endpoint)

	assert.Equal(t, []m.EndpointCandidate{
		{URL: "https://api.example.com/graphql", Occurrences: 2, SourceFiles: []string{"main.js"}},
		{URL: "/api/graphql", Occurrences: 1, SourceFiles: []string{"main.js"}},
		{URL: "/gql", Occurrences: 1, SourceFiles: []string{"main.js"}},
	}, detector.Candidates(corpus))
}

func TestEndpointDetector_Candidates(t *testing.T) {
	corpus := m.Corpus{
		{Identifier: "b.js", Content: `x("/graphql"); y("/graphql"); z("https://b.example.com/graphql")`},
		{Identifier: "a.js", Content: `x("https://a.example.com/graphql"); y("/graphql")`},
	}

	candidates := NewEndpointDetector().Candidates(corpus)

	assert.Equal(t, []m.EndpointCandidate{
		{URL: "/graphql", Occurrences: 3, SourceFiles: []string{"a.js", "b.js"}},
		{URL: "https://a.example.com/graphql", Occurrences: 1, SourceFiles: []string{"a.js"}},
		{URL: "https://b.example.com/graphql", Occurrences: 1, SourceFiles: []string{"b.js"}},
	}, candidates)
}

func TestEndpointDetector_AbsoluteWinsTies(t *testing.T) {
	corpus := m.Corpus{
		{Identifier: "a.js", Content: `x("/graphql"); y("https://api.example.com/gql")`},
	}

	endpoint, ok := NewEndpointDetector().Detect(corpus)

	require.True(t, ok)
	assert.Equal(t, "https://api.example.com/gql", endpoint)
}

func TestEndpointDetector_NothingFound(t *testing.T) {
	corpus := m.Corpus{{Identifier: "a.js", Content: `fetch("/api/users"); const q = "query A { a }";`}}

	endpoint, ok := NewEndpointDetector().Detect(corpus)

	assert.False(t, ok)
	assert.Empty(t, endpoint)
	assert.Empty(t, NewEndpointDetector().Candidates(corpus))
}
