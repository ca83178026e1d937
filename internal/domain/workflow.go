package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"graphsniper.dev/pkg/graphsniper/internal/adapter"
	"graphsniper.dev/pkg/graphsniper/internal/controller"
	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

// ErrEmptyTarget is returned by Scan when the target has no host.
var ErrEmptyTarget = errors.New("empty target")

// resultSuffix is appended to the domain to name the result of a scan.
const resultSuffix = "_graphql_schema"

// ScanArgs contains the arguments for scanning a domain.
type ScanArgs struct {
	Target string
	Output m.Path
	Format adapter.Format
	// JSDir receives readable copies of the downloaded scripts when SaveJS is set.
	JSDir  m.Path
	SaveJS bool
}

// ExtractArgs contains the arguments for extracting from local files.
type ExtractArgs struct {
	Paths   []m.Path
	Include []string
	Exclude []string
	// File is the result path. When empty the result is encoded to Out.
	File   m.Path
	Format adapter.Format
	Out    io.Writer
}

// ViewArgs contains the arguments for displaying a saved result.
type ViewArgs struct {
	Result m.Path
}

// DiffArgs contains the arguments for comparing two saved results.
type DiffArgs struct {
	Old m.Path
	New m.Path
}

// Workflow defines the commands graphsniper runs.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) error
	Extract(ctx context.Context, args ExtractArgs) error
	View(ctx context.Context, args ViewArgs) error
	Diff(ctx context.Context, args DiffArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ResultStore
	adapter.URLCollector
	adapter.Fetcher
	adapter.JSStore
	controller.UI
	extractor Extractor
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	resultStore adapter.ResultStore,
	collector adapter.URLCollector,
	fetcher adapter.Fetcher,
	jsStore adapter.JSStore,
	ui controller.UI,
	extractor Extractor,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ResultStore:     resultStore,
		URLCollector:    collector,
		Fetcher:         fetcher,
		JSStore:         jsStore,
		UI:              ui,
		extractor:       extractor,
	}
}

// ResultFileName names the result written for a scanned domain.
func ResultFileName(domain string, format adapter.Format) string {
	return adapter.JSFileName(domain) + resultSuffix + format.Extension()
}

// Scan collects the script URLs of a domain, downloads them, extracts the
// operations and writes the result under args.Output. Finding nothing is not
// an error.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) error {
	domain := adapter.SanitizeDomain(args.Target)
	if domain == "" {
		return fmt.Errorf("%w: %q", ErrEmptyTarget, args.Target)
	}

	if err := w.Start(ctx, controller.WithScanMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	w.DisplayScanStart(ctx, domain)

	urls, err := w.Collect(ctx, domain)
	if err != nil {
		return fmt.Errorf("collect urls: %w", err)
	}

	w.DisplayCollected(ctx, len(urls))

	raws, err := w.Fetch(ctx, urls)
	if err != nil {
		return fmt.Errorf("fetch sources: %w", err)
	}

	w.DisplayFetched(ctx, len(raws), len(urls))

	corpus, skipped := DecodeCorpus(raws)

	if args.SaveJS {
		w.saveScripts(ctx, args.JSDir, corpus)
	}

	extraction, err := w.extractor.Extract(ctx, corpus)
	if err != nil {
		return fmt.Errorf("extract operations: %w", err)
	}

	extraction.Diagnostics.SkippedFiles += skipped

	output := w.JoinPath(string(args.Output), ResultFileName(domain, args.Format))
	if err := w.SaveResult(output, extraction.Result, args.Format); err != nil {
		slog.Error("Failed to save result", "path", output, "error", err)
		return fmt.Errorf("save result: %w", err)
	}

	slog.Info("Scan finished", "domain", domain, "operations", extraction.Result.Operations.Len(), "output", output)

	summary := m.ScanSummary{
		Target:      domain,
		URLs:        len(urls),
		Fetched:     len(raws),
		Output:      output,
		Result:      extraction.Result,
		Candidates:  extraction.Candidates,
		Diagnostics: extraction.Diagnostics,
	}

	if err := w.DisplayScanSummary(ctx, summary); err != nil {
		return err
	}

	w.Wait(ctx)

	return nil
}

// saveScripts keeps readable copies. Failing to do so does not fail the scan.
func (w *workflow) saveScripts(ctx context.Context, dir m.Path, corpus m.Corpus) {
	saved, err := w.Save(dir, corpus)
	if err != nil {
		slog.Warn("Failed to save script copies", "dir", dir, "error", err)
		return
	}

	w.DisplaySavedScripts(ctx, len(saved), dir)
}

// Extract runs the extraction over local files.
func (w *workflow) Extract(ctx context.Context, args ExtractArgs) error {
	raws, err := w.Get(args.Paths, args.Include, args.Exclude...)
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	corpus, skipped := DecodeCorpus(raws)

	extraction, err := w.extractor.Extract(ctx, corpus)
	if err != nil {
		return fmt.Errorf("extract operations: %w", err)
	}

	extraction.Diagnostics.SkippedFiles += skipped

	if args.File == "" {
		if err := w.EncodeResult(args.Out, extraction.Result, args.Format); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}

		return nil
	}

	if err := w.SaveResult(args.File, extraction.Result, args.Format); err != nil {
		slog.Error("Failed to save result", "path", args.File, "error", err)
		return fmt.Errorf("save result: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	return w.DisplayScanSummary(ctx, m.ScanSummary{
		Target:      fmt.Sprintf("%d local files", len(raws)),
		Output:      args.File,
		Result:      extraction.Result,
		Candidates:  extraction.Candidates,
		Diagnostics: extraction.Diagnostics,
	})
}

// View displays a saved result with every operation pretty printed.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	result, err := w.loadResult(args.Result)
	if err != nil {
		return err
	}

	view := m.ResultView{Source: args.Result, Endpoint: result.Endpoint}
	for _, record := range result.Operations.Records() {
		view.Operations = append(view.Operations, m.OperationView{Record: record, Pretty: PrettyOperation(record.Body)})
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	return w.DisplayResult(ctx, view)
}

// Diff displays what changed between two saved results.
func (w *workflow) Diff(ctx context.Context, args DiffArgs) error {
	before, err := w.loadResult(args.Old)
	if err != nil {
		return err
	}

	after, err := w.loadResult(args.New)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		return err
	}
	defer w.Close(ctx)

	return w.DisplayDiff(ctx, DiffResults(before, after))
}

// loadResult reads a saved result and restores the variable types, which
// the document only keeps inside the bodies.
func (w *workflow) loadResult(path m.Path) (m.ExtractionResult, error) {
	result, err := w.LoadResult(path)
	if err != nil {
		return m.ExtractionResult{}, fmt.Errorf("load result %s: %w", path, err)
	}

	return restoreVariableTypes(result), nil
}

func restoreVariableTypes(result m.ExtractionResult) m.ExtractionResult {
	restored := m.NewOperationSet()

	for _, record := range result.Operations.Records() {
		if parsed, err := ParseOperation(record.Body); err == nil && parsed.Name == record.Name {
			record.Variables = parsed.Variables
		}

		restored.Add(record)
	}

	return m.ExtractionResult{Endpoint: result.Endpoint, Operations: restored}
}
