package adapter

import (
	"log/slog"

	"github.com/evanw/esbuild/pkg/api"
)

// Beautifier reformats JavaScript for human reading.
type Beautifier interface {
	Beautify(identifier, src string) string
}

// EsbuildBeautifier reprints JavaScript through esbuild without minification.
type EsbuildBeautifier struct{}

// NewEsbuildBeautifier creates an EsbuildBeautifier.
func NewEsbuildBeautifier() *EsbuildBeautifier {
	return &EsbuildBeautifier{}
}

// Beautify returns src reformatted, or src unchanged when esbuild rejects it.
func (EsbuildBeautifier) Beautify(identifier, src string) string {
	result := api.Transform(src, api.TransformOptions{
		Loader:        api.LoaderJS,
		LegalComments: api.LegalCommentsInline,
		LogLevel:      api.LogLevelSilent,
	})

	if len(result.Errors) > 0 {
		slog.Debug("Beautify failed, keeping original", "file", identifier, "error", result.Errors[0].Text)
		return src
	}

	return string(result.Code)
}

// PlainBeautifier leaves sources untouched.
type PlainBeautifier struct{}

// Beautify returns src.
func (PlainBeautifier) Beautify(_ string, src string) string {
	return src
}
