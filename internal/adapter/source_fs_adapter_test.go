package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.js"), "var a;\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.js"), "var b;\n")

		visited := walkAll(t, adapter, root, false)

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.js")} {
			if containsPath(visited, forbidden) {
				t.Fatalf("Walk() unexpectedly visited %s when recursive is false", forbidden)
			}
		}

		if !containsPath(visited, filepath.Join(root, "main.js")) {
			t.Fatalf("Walk() did not visit top-level file")
		}
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		child := filepath.Join(root, "nested", "child.js")
		writeTestFile(t, child, "var b;\n")

		if !containsPath(walkAll(t, adapter, root, true), child) {
			t.Fatalf("Walk() did not visit nested file when recursive")
		}
	})

	t.Run("recursive skips node_modules and .git", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		vendored := filepath.Join(root, "node_modules", "lib", "index.js")
		hook := filepath.Join(root, ".git", "hooks", "x.js")
		writeTestFile(t, vendored, "var a;\n")
		writeTestFile(t, hook, "var a;\n")

		visited := walkAll(t, adapter, root, true)

		for _, forbidden := range []string{vendored, hook} {
			if containsPath(visited, forbidden) {
				t.Fatalf("Walk() visited %s", forbidden)
			}
		}
	})
}

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.js"), "var b;")
	writeTestFile(t, filepath.Join(root, "a.MJS"), "var a;")
	writeTestFile(t, filepath.Join(root, "style.css"), "body {}")
	writeTestFile(t, filepath.Join(root, "static", "chunk.js"), "var c;")
	writeTestFile(t, filepath.Join(root, "static", "chunk.test.js"), "var t;")
	writeTestFile(t, filepath.Join(root, "data.txt"), "query A { a }")

	t.Run("recursive pattern with default include", func(t *testing.T) {
		sources, err := NewLocalSourceFSAdapter().Get([]m.Path{m.Path(root + "/...")}, nil)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}

		want := []string{
			filepath.Join(root, "a.MJS"),
			filepath.Join(root, "b.js"),
			filepath.Join(root, "static", "chunk.js"),
			filepath.Join(root, "static", "chunk.test.js"),
		}

		assertIdentifiers(t, sources, want)

		if string(sources[1].Data) != "var b;" {
			t.Fatalf("Get() data = %q", sources[1].Data)
		}
	})

	t.Run("non recursive root", func(t *testing.T) {
		sources, err := NewLocalSourceFSAdapter().Get([]m.Path{m.Path(root)}, nil)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}

		assertIdentifiers(t, sources, []string{filepath.Join(root, "a.MJS"), filepath.Join(root, "b.js")})
	})

	t.Run("exclude patterns", func(t *testing.T) {
		sources, err := NewLocalSourceFSAdapter().Get([]m.Path{m.Path(root + "/...")}, []string{"*.js"}, `\.test\.js$`, "^b")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}

		assertIdentifiers(t, sources, []string{filepath.Join(root, "static", "chunk.js")})
	})

	t.Run("explicit file skips include check", func(t *testing.T) {
		file := filepath.Join(root, "data.txt")

		sources, err := NewLocalSourceFSAdapter().Get([]m.Path{m.Path(file), m.Path(file)}, nil)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}

		assertIdentifiers(t, sources, []string{file})
	})

	t.Run("invalid patterns", func(t *testing.T) {
		if _, err := NewLocalSourceFSAdapter().Get([]m.Path{m.Path(root)}, []string{"[a"}); err == nil {
			t.Fatalf("Get() expected include error")
		}

		if _, err := NewLocalSourceFSAdapter().Get([]m.Path{m.Path(root)}, nil, "("); err == nil {
			t.Fatalf("Get() expected exclude error")
		}
	})

	t.Run("missing root", func(t *testing.T) {
		if _, err := NewLocalSourceFSAdapter().Get([]m.Path{m.Path(filepath.Join(root, "missing"))}, nil); err == nil {
			t.Fatalf("Get() expected error for missing root")
		}
	})
}

func TestSplitPattern(t *testing.T) {
	tests := []struct {
		pattern   string
		root      string
		recursive bool
	}{
		{"./...", ".", true},
		{"...", ".", true},
		{"/...", ".", true},
		{"web/static/...", "web/static", true},
		{"web/static", "web/static", false},
		{"main.js", "main.js", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			root, recursive := splitPattern(tt.pattern)
			if root != tt.root || recursive != tt.recursive {
				t.Fatalf("splitPattern(%q) = (%q, %v), want (%q, %v)", tt.pattern, root, recursive, tt.root, tt.recursive)
			}
		})
	}
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "main.js")
	content := "const q = `query A { a }`;\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalSourceFSAdapter_WriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "out", "deep", "result.json")

	if err := adapter.WriteFile(m.Path(path), []byte("first"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := adapter.WriteFile(m.Path(path), []byte("second"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	if string(got) != "second" {
		t.Fatalf("WriteFile() left %q", got)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("WriteFile() left temporary files: %v", entries)
	}

	info, err := adapter.FileInfo(m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.Size() != int64(len("second")) {
		t.Fatalf("FileInfo() size = %d", info.Size())
	}
}

func TestLocalSourceFSAdapter_JoinPath(t *testing.T) {
	got := NewLocalSourceFSAdapter().JoinPath("out", "example.com_graphql_schema.json")
	if got != m.Path(filepath.Join("out", "example.com_graphql_schema.json")) {
		t.Fatalf("JoinPath() = %s", got)
	}
}

func walkAll(t *testing.T, adapter *LocalSourceFSAdapter, root string, recursive bool) []string {
	t.Helper()

	var visited []string

	err := adapter.Walk(m.Path(root), recursive, func(path string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		visited = append(visited, path)

		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	return visited
}

func assertIdentifiers(t *testing.T, sources []m.RawSource, want []string) {
	t.Helper()

	if len(sources) != len(want) {
		t.Fatalf("got %d sources, want %d: %v", len(sources), len(want), sources)
	}

	for i, source := range sources {
		if source.Identifier != want[i] {
			t.Fatalf("source %d = %s, want %s", i, source.Identifier, want[i])
		}
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	mustMkdir(t, filepath.Dir(path))

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", dir, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
