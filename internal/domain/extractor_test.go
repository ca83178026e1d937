package domain

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

func sampleCorpus(files int) m.Corpus {
	corpus := make(m.Corpus, 0, files)

	for i := range files {
		corpus = append(corpus, m.SourceFile{
			Identifier: fmt.Sprintf("chunk-%02d.js", i),
			Content: fmt.Sprintf(
				`const a = "query Op%d($id: ID!) { node(id: $id) { id } }";`+
					`const b = "query Shared($v%d: Int) { shared%d }";`+
					`const c = "mutation Write%d { write { ok } }";`+
					`fetch("https://api.example.com/graphql");`,
				i, i, i, i%3),
		})
	}

	return corpus
}

func TestExtractor_Extract(t *testing.T) {
	corpus := m.Corpus{
		{
			Identifier: "main.js",
			Content: `const Q = "query GetUser($id: ID!) { user(id: $id) { id username } }";` +
				`fetch("https://api.example.com/graphql", a);` +
				`fetch("https://api.example.com/graphql", b);` +
				`fetch("https://api.example.com/graphql", c);`,
		},
		{
			Identifier: "vendor.js",
			Content:    `const u = "/graphql"; const A = "query { viewer { id } }"; const M = "mutation Save($in: In!) { save(in: $in) { ok } }";`,
		},
	}

	extraction, err := NewExtractor(2).Extract(context.Background(), corpus)
	require.NoError(t, err)

	result := extraction.Result
	require.NotNil(t, result.Endpoint)
	assert.Equal(t, "https://api.example.com/graphql", *result.Endpoint)
	assert.Equal(t, []string{"GetUser", "Save"}, result.Operations.Names())

	getUser, ok := result.Operations.Get("GetUser")
	require.True(t, ok)
	assert.Equal(t, m.Query, getUser.Kind)
	assert.Equal(t, []m.VariableDecl{{Name: "id", Type: "ID!"}}, getUser.Variables)
	assert.Equal(t, "main.js", getUser.Source)

	save, ok := result.Operations.Get("Save")
	require.True(t, ok)
	assert.Equal(t, m.Mutation, save.Kind)

	require.Len(t, extraction.Candidates, 2)
	assert.Equal(t, 3, extraction.Candidates[0].Occurrences)

	assert.Equal(t, 2, extraction.Diagnostics.Files)
	assert.Equal(t, map[string]int{"anonymous_operation": 1}, extraction.Diagnostics.Rejected)
}

func TestExtractor_ThreadCountDoesNotChangeResult(t *testing.T) {
	corpus := sampleCorpus(40)

	single, err := NewExtractor(1).Extract(context.Background(), corpus)
	require.NoError(t, err)

	parallel, err := NewExtractor(8).Extract(context.Background(), corpus)
	require.NoError(t, err)

	assert.Equal(t, single.Result.Operations.Records(), parallel.Result.Operations.Records())
	assert.Equal(t, single.Result.Endpoint, parallel.Result.Endpoint)
	assert.Equal(t, single.Candidates, parallel.Candidates)
	assert.Equal(t, single.Diagnostics, parallel.Diagnostics)
}

func TestExtractor_FirstFileWinsAcrossFiles(t *testing.T) {
	corpus := sampleCorpus(6)

	extraction, err := NewExtractor(4).Extract(context.Background(), corpus)
	require.NoError(t, err)

	shared, ok := extraction.Result.Operations.Get("Shared")
	require.True(t, ok)
	assert.Equal(t, "chunk-00.js", shared.Source)
	assert.Equal(t, "query Shared($v0: Int) { shared0 }", shared.Body)
	assert.Equal(t, []m.VariableDecl{{Name: "v0", Type: "Int"}}, shared.Variables)

	write1, ok := extraction.Result.Operations.Get("Write1")
	require.True(t, ok)
	assert.Equal(t, "chunk-01.js", write1.Source)

	// Shared repeats in five files, Write0..2 repeat once each.
	assert.Equal(t, 8, extraction.Diagnostics.Duplicates)
}

func TestExtractor_EmptyCorpus(t *testing.T) {
	extraction, err := NewExtractor(0).Extract(context.Background(), nil)
	require.NoError(t, err)

	assert.Nil(t, extraction.Result.Endpoint)
	assert.Equal(t, 0, extraction.Result.Operations.Len())
	assert.Empty(t, extraction.Candidates)
}

func TestExtractor_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExtractor(2).Extract(ctx, sampleCorpus(4))

	require.ErrorIs(t, err, context.Canceled)
}
