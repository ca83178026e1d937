// Package adapter contains the I/O adapters of graphsniper: URL collection,
// downloads, the local file system and result persistence.
package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

const recursiveSuffix = "/..."

// DefaultIncludePatterns selects the JavaScript files of a local tree.
var DefaultIncludePatterns = []string{"*.js", "*.mjs"}

// SourceFSAdapter abstracts the file system operations the workflow relies on
// so it can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get resolves Go-style path patterns (`./...`, `./dir/...`, files) to the
	// files whose base name matches one of include and whose path matches none
	// of the exclude regular expressions. Files named explicitly skip the
	// include check. Files are returned sorted by path.
	Get(paths []m.Path, include []string, exclude ...string) ([]m.RawSource, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// WriteFile atomically replaces the file at path, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get implements SourceFSAdapter.
func (a *LocalSourceFSAdapter) Get(paths []m.Path, include []string, exclude ...string) ([]m.RawSource, error) {
	if len(paths) == 0 {
		paths = []m.Path{"./..."}
	}

	if len(include) == 0 {
		include = DefaultIncludePatterns
	}

	matchers, err := compileGlobs(include)
	if err != nil {
		return nil, err
	}

	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}

	var files []string

	for _, p := range paths {
		root, recursive := splitPattern(string(p))

		err := a.Walk(m.Path(root), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() || seen[path] {
				return nil
			}

			explicit := path == root
			if (!explicit && !matchesAny(matchers, info.Name())) || excluded(excludes, path) {
				return nil
			}

			seen[path] = true
			files = append(files, path)

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", p, err)
		}
	}

	sort.Strings(files)

	sources := make([]m.RawSource, 0, len(files))

	for _, path := range files {
		data, err := a.ReadFile(m.Path(path))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		sources = append(sources, m.RawSource{Identifier: path, Data: data})
	}

	slog.Debug("Collected local sources", "paths", len(paths), "files", len(sources))

	return sources, nil
}

// splitPattern turns `dir/...` into (dir, true) and anything else into (path, false).
func splitPattern(pattern string) (string, bool) {
	if pattern == "..." {
		return ".", true
	}

	if root, ok := strings.CutSuffix(pattern, recursiveSuffix); ok {
		if root == "" {
			root = "."
		}

		return root, true
	}

	return pattern, false
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	matchers := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(strings.ToLower(pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}

		matchers = append(matchers, g)
	}

	return matchers, nil
}

func matchesAny(matchers []glob.Glob, name string) bool {
	name = strings.ToLower(name)

	for _, g := range matchers {
		if g.Match(name) {
			return true
		}
	}

	return false
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		out = append(out, re)
	}

	return out, nil
}

func excluded(patterns []*regexp.Regexp, path string) bool {
	for _, re := range patterns {
		if re.MatchString(path) || re.MatchString(filepath.Base(path)) {
			return true
		}
	}

	return false
}

// Walk iterates over files under root, optionally descending into subdirectories.
// A root that is a file is visited on its own.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && path != rootStr {
			if !recursive || skipDir(info.Name()) {
				return filepath.SkipDir
			}
		}

		return fn(path, info, nil)
	})
}

// skipDir names directories never worth scanning.
func skipDir(name string) bool {
	return name == ".git" || name == "node_modules"
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFile writes content to a temp file next to path, syncs it and renames
// it over path, so readers never observe a partial file.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	target := string(path)
	dir := filepath.Dir(target)

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".graphsniper-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}

	tmpName := tmp.Name()
	success := false

	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("fsync: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}

	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}

	success = true

	return nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
