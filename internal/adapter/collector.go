package adapter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"path"
	"strings"
	"time"

	"github.com/gobwas/glob"
)

// DefaultCollectTimeout bounds a single collector run.
const DefaultCollectTimeout = 10 * time.Minute

// ErrToolNotFound is returned by a CommandRunner when the binary is not installed.
var ErrToolNotFound = errors.New("tool not found")

// Tool is an external URL collection binary.
type Tool struct {
	Name string
	// Args builds the command line arguments for a domain.
	Args func(domain string) []string
}

// KnownTools lists the collectors graphsniper knows how to drive.
var KnownTools = map[string]Tool{
	"waybackurls": {Name: "waybackurls", Args: func(d string) []string { return []string{d} }},
	"gau":         {Name: "gau", Args: func(d string) []string { return []string{d} }},
	"katana": {Name: "katana", Args: func(d string) []string {
		return []string{"-u", "https://" + d, "-silent"}
	}},
}

// DefaultTools is the collection order used when none is configured.
var DefaultTools = []string{"waybackurls", "gau", "katana"}

// URLCollector gathers the JavaScript URLs known for a domain.
type URLCollector interface {
	Collect(ctx context.Context, domain string) ([]string, error)
}

// CommandRunner runs a binary and returns its standard output.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs binaries found in PATH.
type ExecRunner struct{}

// Run implements CommandRunner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	var stdout bytes.Buffer

	// #nosec G204 - the binary comes from the fixed KnownTools table
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		// Partial output is still useful, collectors often exit non zero.
		return stdout.Bytes(), fmt.Errorf("run %s: %w", name, err)
	}

	return stdout.Bytes(), nil
}

// ToolCollector runs the configured tools one after another and keeps the
// URLs whose path base matches one of the patterns, in first-seen order.
type ToolCollector struct {
	runner   CommandRunner
	tools    []Tool
	patterns []glob.Glob
	timeout  time.Duration
}

// NewToolCollector builds a collector for the named tools. Unknown names,
// and invalid patterns, are rejected.
func NewToolCollector(runner CommandRunner, tools []string, patterns []string, timeout time.Duration) (*ToolCollector, error) {
	if len(tools) == 0 {
		tools = DefaultTools
	}

	if len(patterns) == 0 {
		patterns = DefaultIncludePatterns
	}

	selected := make([]Tool, 0, len(tools))

	for _, name := range tools {
		tool, ok := KnownTools[name]
		if !ok {
			return nil, fmt.Errorf("unknown collector %q", name)
		}

		selected = append(selected, tool)
	}

	matchers, err := compileGlobs(patterns)
	if err != nil {
		return nil, err
	}

	return &ToolCollector{runner: runner, tools: selected, patterns: matchers, timeout: timeout}, nil
}

// Collect implements URLCollector. Tool failures are logged and skipped; the
// only error is a cancelled context.
func (c *ToolCollector) Collect(ctx context.Context, domain string) ([]string, error) {
	seen := map[string]bool{}

	var urls []string

	for _, tool := range c.tools {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := c.run(ctx, tool, domain)
		if err != nil {
			if errors.Is(err, ErrToolNotFound) {
				slog.Warn("Collector not installed, skipping", "tool", tool.Name)
			} else {
				slog.Warn("Collector failed", "tool", tool.Name, "error", err)
			}
		}

		found := 0

		scanner := bufio.NewScanner(bytes.NewReader(out))
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for scanner.Scan() {
			u := strings.TrimSpace(scanner.Text())
			if u == "" || seen[u] || !c.isScript(u) {
				continue
			}

			seen[u] = true
			urls = append(urls, u)
			found++
		}

		slog.Info("Collector finished", "tool", tool.Name, "urls", found)
	}

	return urls, nil
}

func (c *ToolCollector) run(ctx context.Context, tool Tool, domain string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	return c.runner.Run(ctx, tool.Name, tool.Args(domain)...)
}

// isScript matches the base of the URL path against the patterns.
func (c *ToolCollector) isScript(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" {
		return false
	}

	return matchesAny(c.patterns, path.Base(u.Path))
}

// SanitizeDomain reduces a target such as `https://example.com/app` to its host.
func SanitizeDomain(target string) string {
	d := strings.TrimSpace(target)

	lower := strings.ToLower(d)
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(lower, scheme) {
			d = d[len(scheme):]
			break
		}
	}

	if i := strings.IndexAny(d, "/?#"); i >= 0 {
		d = d[:i]
	}

	return d
}
