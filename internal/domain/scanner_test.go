package domain

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

func TestIsOperationCandidate(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"query GetUser { a }", true},
		{"  \n mutation M { a }", true},
		{"query{ a }", true},
		{"query($a: Int) { a }", true},
		{"mutation {", true},
		{"query\n\tFeed", true},
		{"queryString", false},
		{"query", false},
		{"query   ", false},
		{"query 123", false},
		{"subscription S { a }", false},
		{"the query is slow", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, isOperationCandidate(tt.text))
		})
	}
}

func TestScanner_Scan(t *testing.T) {
	file := m.SourceFile{
		Identifier: "app.js",
		Content:    `const a = "query A { a }"; const b = 'hello'; const c = "mutation B { b }";`,
	}

	seq := NewScanner().Scan(file)

	first := slices.Collect(seq)
	second := slices.Collect(seq)

	assert.Equal(t, []string{"query A { a }", "mutation B { b }"}, first)
	assert.Equal(t, first, second)
}

func TestScanner_ScanOperations(t *testing.T) {
	file := m.SourceFile{
		Identifier: "https://example.com/app.js",
		Content: `const Q = "query GetUser($id: ID!) { user(id: $id) { id username } }";` +
			`const A = "query { viewer { id } }";` +
			`const x = "hello";`,
	}

	var diag m.Diagnostics

	records := slices.Collect(NewScanner().ScanOperations(file, &diag))

	require.Len(t, records, 1)
	assert.Equal(t, m.OperationRecord{
		Kind:      m.Query,
		Name:      "GetUser",
		Variables: []m.VariableDecl{{Name: "id", Type: "ID!"}},
		Body:      "query GetUser($id: ID!) { user(id: $id) { id username } }",
		Source:    "https://example.com/app.js",
	}, records[0])

	assert.Equal(t, 3, diag.Literals)
	assert.Equal(t, 2, diag.Candidates)
	assert.Equal(t, map[string]int{"anonymous_operation": 1}, diag.Rejected)
}

func TestScanner_ScanOperations_NilDiagnostics(t *testing.T) {
	file := m.SourceFile{Identifier: "a.js", Content: `x("query { a }"); y("query B { b }")`}

	records := slices.Collect(NewScanner().ScanOperations(file, nil))

	require.Len(t, records, 1)
	assert.Equal(t, "B", records[0].Name)
}

func TestScanner_ScanOperations_EscapedQuotes(t *testing.T) {
	file := m.SourceFile{
		Identifier: "a.js",
		Content:    `const Q = "query Search($q: String) { search(q: \"x\") { id } }";`,
	}

	records := slices.Collect(NewScanner().ScanOperations(file, nil))

	require.Len(t, records, 1)
	assert.Equal(t, `query Search($q: String) { search(q: "x") { id } }`, records[0].Body)
}

func TestScanner_ScanOperations_TemplateLiteral(t *testing.T) {
	file := m.SourceFile{
		Identifier: "a.js",
		Content:    "const Q = gql`\n  query Feed {\n    feed { ...${PostFields} }\n  }\n`;",
	}

	records := slices.Collect(NewScanner().ScanOperations(file, nil))

	require.Len(t, records, 1)
	assert.Equal(t, "Feed", records[0].Name)
	assert.Equal(t, "query Feed { feed { ... ${PostFields} } }", records[0].Body)
}

func TestScanner_ScanOperations_SeveralOperationsInOneLiteral(t *testing.T) {
	file := m.SourceFile{
		Identifier: "app.js",
		Content: `const D = "query A { a } mutation B($x: Int) { b(x: $x) }";` +
			"const E = gql`query C { ...F } fragment F on T { f } ${Extra} query { anon }`;",
	}

	var diag m.Diagnostics

	records := slices.Collect(NewScanner().ScanOperations(file, &diag))

	require.Len(t, records, 3)
	assert.Equal(t, "A", records[0].Name)
	assert.Equal(t, m.Mutation, records[1].Kind)
	assert.Equal(t, "B", records[1].Name)
	assert.Equal(t, []m.VariableDecl{{Name: "x", Type: "Int"}}, records[1].Variables)
	assert.Equal(t, "C", records[2].Name)

	for _, record := range records {
		assert.Equal(t, "app.js", record.Source)
	}

	assert.Equal(t, 2, diag.Candidates)
	assert.Equal(t, map[string]int{"anonymous_operation": 1}, diag.Rejected)
}

func TestScanner_ScanOperations_StopsEarly(t *testing.T) {
	file := m.SourceFile{
		Identifier: "a.js",
		Content:    `a("query A { a }"); b("query B { b }"); c("query C { c }")`,
	}

	var names []string

	for record := range NewScanner().ScanOperations(file, nil) {
		names = append(names, record.Name)
		if len(names) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"A", "B"}, names)
}
