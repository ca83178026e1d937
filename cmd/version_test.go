package cmd

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	if strings.Contains(output, "version: unknown") {
		return
	}

	assert.Contains(t, output, "graphsniper version")
	assert.Contains(t, output, "go version")
}

func TestBuildLines(t *testing.T) {
	info := &debug.BuildInfo{
		GoVersion: "go1.25.1",
		Main:      debug.Module{Path: "graphsniper.dev/pkg/graphsniper", Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "4f2a9c1"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		},
	}

	assert.Equal(t, []string{
		"graphsniper version\t v0.3.0",
		"module\t graphsniper.dev/pkg/graphsniper",
		"revision\t 4f2a9c1 (modified)",
		"built\t 2026-10-01T12:00:00Z",
		"go version\t go1.25.1",
	}, buildLines(info))
}

func TestBuildLines_WithoutVCS(t *testing.T) {
	info := &debug.BuildInfo{
		GoVersion: "go1.25.1",
		Main:      debug.Module{Path: "graphsniper.dev/pkg/graphsniper", Version: "(devel)"},
	}

	assert.Equal(t, []string{
		"graphsniper version\t (devel)",
		"module\t graphsniper.dev/pkg/graphsniper",
		"go version\t go1.25.1",
	}, buildLines(info))
}
