package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

func TestTUI_ViewModeWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer

	ui := NewTUI(&buf)
	ctx := context.Background()

	require.NoError(t, ui.Start(ctx, WithViewMode()))

	// Progress updates are dropped when no progress view runs.
	ui.DisplayScanStart(ctx, "example.com")
	ui.DisplayCollected(ctx, 1)
	ui.DisplayFetched(ctx, 1, 1)
	ui.DisplaySavedScripts(ctx, 1, "js_files")
	assert.Empty(t, buf.String())

	require.NoError(t, ui.DisplayScanSummary(ctx, sampleSummary()))
	assert.Contains(t, buf.String(), "Files scanned")
	assert.Contains(t, buf.String(), "anonymous_operation")

	ui.Wait(ctx)
	ui.Close(ctx)
}

func TestTUI_DisplayResultPrintsWhenNotPaging(t *testing.T) {
	var buf bytes.Buffer

	ui := NewTUI(&buf)
	view := m.ResultView{Operations: []m.OperationView{{
		Record: m.OperationRecord{Kind: m.Query, Name: "GetUser", Variables: []m.VariableDecl{{Name: "id", Type: "ID!"}}},
		Pretty: "query GetUser($id: ID!) {\n  user {\n    id\n  }\n}",
	}}}

	require.NoError(t, ui.DisplayResult(context.Background(), view))

	out := buf.String()
	assert.Contains(t, out, "graphsniper - GraphQL operation finder")
	assert.Contains(t, out, "1 queries, 0 mutations")
	assert.Contains(t, out, "    query GetUser($id: ID!) {\n")
}

func TestTUI_DisplayDiff(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewTUI(&buf).DisplayDiff(context.Background(), m.ResultDiff{}))

	assert.Contains(t, buf.String(), "No changes")
}

func TestRenderDiff(t *testing.T) {
	diff := m.ResultDiff{
		EndpointBefore: "/graphql",
		Changes: []m.OperationChange{
			{Name: "GetUser", Kind: m.Query, Status: m.Changed, Diff: "--- old/GetUser\n+++ new/GetUser\n@@ -1 +1 @@\n-a\n+b\n"},
			{Name: "Gone", Kind: m.Query, Status: m.Removed},
		},
	}

	out := renderDiff(diff)

	assert.Contains(t, out, "/graphql -> not found")
	assert.Contains(t, out, "GetUser")
	assert.Contains(t, out, "Gone")
	assert.Contains(t, out, "  -a\n")
	assert.Contains(t, out, "  +b\n")
	assert.Contains(t, out, "0 added, 1 removed, 1 changed")
}

func TestRenderResult_Empty(t *testing.T) {
	out := renderResult(m.ResultView{})

	assert.Contains(t, out, "No operations found")
	assert.Contains(t, out, "not found")
}

func TestProgressModel(t *testing.T) {
	pm := newProgressModel()
	require.NotNil(t, pm.Init())

	model, cmd := pm.Update(stageMsg{line: "Target example.com", status: "downloading"})
	assert.Nil(t, cmd)

	pm = model.(progressModel)
	assert.Equal(t, []string{"Target example.com"}, pm.lines)
	assert.Equal(t, "downloading", pm.status)
	assert.Contains(t, pm.View(), "✓ Target example.com")
	assert.Contains(t, pm.View(), "downloading")

	model, cmd = pm.Update(summaryMsg{summary: sampleSummary()})
	require.NotNil(t, cmd)

	pm = model.(progressModel)
	assert.True(t, pm.done)
	assert.NotContains(t, pm.View(), "downloading")
	assert.Contains(t, pm.View(), "Files scanned")
}

func TestProgressModel_Finish(t *testing.T) {
	model, cmd := newProgressModel().Update(finishMsg{})

	require.NotNil(t, cmd)
	assert.True(t, model.(progressModel).done)

	model, cmd = newProgressModel().Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.True(t, model.(progressModel).done)
}

func TestPagerModel(t *testing.T) {
	content := strings.Repeat("line\n", 30)

	t.Run("pagination depends on height", func(t *testing.T) {
		assert.True(t, newPagerModel(content, 80, 20).needsPagination())
		assert.False(t, newPagerModel(content, 80, 40).needsPagination())
		assert.False(t, newPagerModel(content, 0, 0).needsPagination())
	})

	t.Run("window resize", func(t *testing.T) {
		model, _ := newPagerModel(content, 80, 20).Update(tea.WindowSizeMsg{Width: 100, Height: 50})

		pm := model.(pagerModel)
		assert.Equal(t, 50, pm.height)
		assert.Equal(t, 48, pm.viewport.Height)
		assert.False(t, pm.needsPagination())
	})

	t.Run("navigation", func(t *testing.T) {
		model, _ := newPagerModel(content, 80, 12).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})

		pm := model.(pagerModel)
		assert.True(t, pm.viewport.AtBottom())
		assert.Contains(t, pm.View(), "100%")

		model, _ = pm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
		assert.True(t, model.(pagerModel).viewport.AtTop())
	})

	t.Run("quit", func(t *testing.T) {
		model, cmd := newPagerModel(content, 80, 12).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

		require.NotNil(t, cmd)
		assert.Empty(t, model.(pagerModel).View())
	})
}
