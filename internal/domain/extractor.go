package domain

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

// FileResult is everything the core finds in one corpus file.
type FileResult struct {
	Identifier  string
	Operations  []m.OperationRecord
	Endpoints   []string
	Diagnostics m.Diagnostics
}

// Extraction is the outcome of one Extract call.
type Extraction struct {
	Result      m.ExtractionResult
	Candidates  []m.EndpointCandidate
	Diagnostics m.Diagnostics
}

// Extractor runs endpoint detection and operation recovery over a corpus.
type Extractor interface {
	Extract(ctx context.Context, corpus m.Corpus) (Extraction, error)
}

type extractor struct {
	threads int
	scanner *Scanner
}

// NewExtractor creates an Extractor processing up to threads files at once.
// A non positive value uses the number of CPUs.
func NewExtractor(threads int) Extractor {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	return &extractor{threads: threads, scanner: NewScanner()}
}

// Extract scans every file concurrently, each worker filling its own slot, and
// then merges the slots in corpus order. The result does not depend on the
// number of threads. The only error is a cancelled context.
func (e *extractor) Extract(ctx context.Context, corpus m.Corpus) (Extraction, error) {
	results := make([]FileResult, len(corpus))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.threads)

	for i, file := range corpus {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			results[i] = e.processFile(file)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Extraction{}, err
	}

	return merge(results), nil
}

func (e *extractor) processFile(file m.SourceFile) FileResult {
	res := FileResult{Identifier: file.Identifier}
	res.Diagnostics.Files = 1

	for record := range e.scanner.ScanOperations(file, &res.Diagnostics) {
		res.Operations = append(res.Operations, record)
	}

	res.Endpoints = endpointHits(file.Content)

	slog.Debug("Scanned file",
		"file", file.Identifier,
		"operations", len(res.Operations),
		"endpoints", len(res.Endpoints))

	return res
}

// merge folds per-file results in order. It is the single writer of the
// aggregate and the endpoint table.
func merge(results []FileResult) Extraction {
	aggregator := NewAggregator()
	table := newEndpointTable()

	var diag m.Diagnostics

	for _, res := range results {
		aggregator.Add(res.Operations...)
		table.add(res.Identifier, res.Endpoints...)
		diag.Merge(res.Diagnostics)
	}

	diag.Duplicates = aggregator.Duplicates()

	endpoint, found := table.best()

	return Extraction{
		Result:      aggregator.Result(endpoint, found),
		Candidates:  table.ranked(),
		Diagnostics: diag,
	}
}
