// Package controller renders graphsniper progress and results on the terminal.
package controller

import (
	"context"
	"fmt"
	"strings"

	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeScan StartMode = iota
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithScanMode shows live progress until the summary is displayed.
func WithScanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeScan
	}
}

// WithViewMode prepares the UI for displaying saved results.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeView}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how the workflow reports to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish
	DisplayScanStart(ctx context.Context, target string)
	DisplayCollected(ctx context.Context, urls int)
	DisplayFetched(ctx context.Context, fetched, requested int)
	DisplaySavedScripts(ctx context.Context, count int, dir m.Path)
	DisplayScanSummary(ctx context.Context, summary m.ScanSummary) error
	DisplayResult(ctx context.Context, view m.ResultView) error
	DisplayDiff(ctx context.Context, diff m.ResultDiff) error
}

const (
	notFoundLabel = "not found"
	noneLabel     = "-"
)

// formatVariables renders declarations the way they appear in the operation.
func formatVariables(vars []m.VariableDecl) string {
	if len(vars) == 0 {
		return noneLabel
	}

	parts := make([]string, 0, len(vars))

	for _, v := range vars {
		if v.Type == "" {
			parts = append(parts, "$"+v.Name)
			continue
		}

		parts = append(parts, fmt.Sprintf("$%s: %s", v.Name, v.Type))
	}

	return strings.Join(parts, ", ")
}

func endpointLabel(endpoint *string) string {
	if endpoint == nil {
		return notFoundLabel
	}

	return *endpoint
}

func orLabel(s, label string) string {
	if s == "" {
		return label
	}

	return s
}
