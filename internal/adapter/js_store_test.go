package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

func TestJSFileName(t *testing.T) {
	tests := []struct {
		identifier string
		want       string
	}{
		{"https://example.com/static/js/main.abc.js?v=2", "main.abc.js"},
		{"https://example.com/", "file.js"},
		{"https://example.com", "file.js"},
		{"https://example.com/a%20b.js", "a_b.js"},
		{"web/static/app.js", "app.js"},
		{"example.com", "example.com"},
		{"sub.example.com:8443", "sub.example.com_8443"},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			assert.Equal(t, tt.want, JSFileName(tt.identifier))
		})
	}
}

func TestUniqueName(t *testing.T) {
	used := map[string]int{}

	got := []string{
		uniqueName(used, "app_2.js"),
		uniqueName(used, "app.js"),
		uniqueName(used, "app.js"),
		uniqueName(used, "app.js"),
		uniqueName(used, "vendor"),
		uniqueName(used, "vendor"),
	}

	assert.Equal(t, []string{"app_2.js", "app.js", "app_3.js", "app_4.js", "vendor", "vendor_2"}, got)
}

func TestLocalJSStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalJSStore(NewLocalSourceFSAdapter(), PlainBeautifier{})

	written, err := store.Save(m.Path(dir), m.Corpus{
		{Identifier: "https://a.example.com/static/app.js", Content: "var a;"},
		{Identifier: "https://b.example.com/app.js", Content: "var b;"},
	})
	require.NoError(t, err)

	require.Equal(t, []m.Path{
		m.Path(filepath.Join(dir, "app.js")),
		m.Path(filepath.Join(dir, "app_2.js")),
	}, written)

	data, err := os.ReadFile(filepath.Join(dir, "app_2.js"))
	require.NoError(t, err)
	assert.Equal(t, "var b;", string(data))
}

func TestLocalJSStore_SaveError(t *testing.T) {
	fs := NewLocalSourceFSAdapter()
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	store := NewLocalJSStore(fs, PlainBeautifier{})

	_, err := store.Save(m.Path(blocker), m.Corpus{{Identifier: "https://a.example.com/app.js", Content: "var a;"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save https://a.example.com/app.js")
}

func TestEsbuildBeautifier(t *testing.T) {
	beautifier := NewEsbuildBeautifier()

	out := beautifier.Beautify("a.js", `function f(){return "query A { a }"}`)
	assert.True(t, strings.Contains(out, "return \"query A { a }\";"), out)
	assert.Contains(t, out, "\n")

	broken := "function ("
	assert.Equal(t, broken, beautifier.Beautify("b.js", broken))
}
