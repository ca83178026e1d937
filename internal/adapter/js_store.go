package adapter

import (
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"regexp"
	"strings"

	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

const defaultJSFileName = "file.js"

var unsafeFileNameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// JSStore keeps readable copies of downloaded scripts.
type JSStore interface {
	// Save writes every file under dir and returns the written paths in order.
	Save(dir m.Path, files m.Corpus) ([]m.Path, error)
}

// LocalJSStore writes beautified copies through a SourceFSAdapter.
type LocalJSStore struct {
	fs         SourceFSAdapter
	beautifier Beautifier
}

// NewLocalJSStore creates a LocalJSStore.
func NewLocalJSStore(fs SourceFSAdapter, beautifier Beautifier) *LocalJSStore {
	return &LocalJSStore{fs: fs, beautifier: beautifier}
}

// Save implements JSStore. Names come from the URL path base; clashes get a
// numeric suffix so no copy overwrites another one of the same run.
func (s *LocalJSStore) Save(dir m.Path, files m.Corpus) ([]m.Path, error) {
	used := map[string]int{}
	written := make([]m.Path, 0, len(files))

	for _, file := range files {
		name := uniqueName(used, JSFileName(file.Identifier))
		target := s.fs.JoinPath(string(dir), name)
		content := s.beautifier.Beautify(file.Identifier, file.Content)

		if err := s.fs.WriteFile(target, []byte(content), 0o600); err != nil {
			return written, fmt.Errorf("save %s: %w", file.Identifier, err)
		}

		written = append(written, target)
	}

	slog.Info("Saved script copies", "dir", dir, "files", len(written))

	return written, nil
}

// JSFileName derives a safe local file name from a script URL or path.
func JSFileName(identifier string) string {
	p := identifier
	if u, err := url.Parse(identifier); err == nil && u.Host != "" {
		p = u.Path
	}

	name := path.Base(p)
	if name == "." || name == "/" || name == "" {
		return defaultJSFileName
	}

	return unsafeFileNameChars.ReplaceAllString(name, "_")
}

func uniqueName(used map[string]int, name string) string {
	used[name]++
	if used[name] == 1 {
		return name
	}

	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	candidate := fmt.Sprintf("%s_%d%s", stem, used[name], ext)
	for used[candidate] > 0 {
		used[name]++
		candidate = fmt.Sprintf("%s_%d%s", stem, used[name], ext)
	}

	used[candidate]++

	return candidate
}
