package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

// maxCandidateRows caps the endpoint candidates listed in a summary.
const maxCandidateRows = 5

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait returns immediately, SimpleUI never blocks.
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayScanStart announces the target.
func (s *SimpleUI) DisplayScanStart(ctx context.Context, target string) {
	if ctx.Err() != nil {
		return
	}

	s.printf("[+] Scanning: %s\n", target)
}

// DisplayCollected prints the number of collected script URLs.
func (s *SimpleUI) DisplayCollected(ctx context.Context, urls int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("[+] Found %d JavaScript URLs\n", urls)
}

// DisplayFetched prints the download outcome.
func (s *SimpleUI) DisplayFetched(ctx context.Context, fetched, requested int) {
	if ctx.Err() != nil {
		return
	}

	s.printf("[+] Downloaded %d/%d files\n", fetched, requested)
}

// DisplaySavedScripts prints where script copies were written.
func (s *SimpleUI) DisplaySavedScripts(ctx context.Context, count int, dir m.Path) {
	if ctx.Err() != nil {
		return
	}

	s.printf("[+] Saved %d scripts to %s\n", count, dir)
}

// DisplayScanSummary prints the summary table, followed by the rejected
// candidates and the endpoint ranking when there is something to show.
func (s *SimpleUI) DisplayScanSummary(ctx context.Context, summary m.ScanSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(summary))

	if kinds := summary.Diagnostics.RejectedKinds(); len(kinds) > 0 {
		s.printf("\n%s", renderRejectedTable(summary.Diagnostics, kinds))
	}

	if len(summary.Candidates) > 1 {
		s.printf("\n%s", renderCandidatesTable(summary.Candidates))
	}

	return nil
}

func renderSummaryTable(summary m.ScanSummary) string {
	var tableBuffer bytes.Buffer

	result := summary.Result

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Item", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	table.Append([]string{"Target", orLabel(summary.Target, noneLabel)})

	if summary.URLs > 0 || summary.Fetched > 0 {
		table.Append([]string{"JavaScript URLs", strconv.Itoa(summary.URLs)})
		table.Append([]string{"Downloaded", strconv.Itoa(summary.Fetched)})
	}

	table.Append([]string{"Files scanned", strconv.Itoa(summary.Diagnostics.Files)})
	table.Append([]string{"Queries", strconv.Itoa(len(result.Operations.OfKind(m.Query)))})
	table.Append([]string{"Mutations", strconv.Itoa(len(result.Operations.OfKind(m.Mutation)))})
	table.Append([]string{"Endpoint", endpointLabel(result.Endpoint)})
	table.Append([]string{"Output", orLabel(string(summary.Output), noneLabel)})

	table.Render()

	return tableBuffer.String()
}

func renderRejectedTable(diag m.Diagnostics, kinds []string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Rejected", "Candidates"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, kind := range kinds {
		table.Append([]string{kind, strconv.Itoa(diag.Rejected[kind])})

		total += diag.Rejected[kind]
	}

	table.SetFooter([]string{"Total", strconv.Itoa(total)})
	table.Render()

	return tableBuffer.String()
}

func renderCandidatesTable(candidates []m.EndpointCandidate) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Endpoint candidate", "Hits", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	for i, c := range candidates {
		if i == maxCandidateRows {
			break
		}

		table.Append([]string{c.URL, strconv.Itoa(c.Occurrences), strconv.Itoa(len(c.SourceFiles))})
	}

	table.Render()

	return tableBuffer.String()
}

// DisplayResult prints the operations table followed by every operation
// pretty printed.
func (s *SimpleUI) DisplayResult(ctx context.Context, view m.ResultView) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Endpoint: %s\n\n", endpointLabel(view.Endpoint))

	if len(view.Operations) == 0 {
		s.printf("No operations in %s\n", view.Source)
		return nil
	}

	s.printf("%s\n", renderOperationsTable(view))

	for _, op := range view.Operations {
		s.printf("# %s (%s)\n%s\n\n", op.Record.Name, op.Record.Kind, op.Pretty)
	}

	return nil
}

func renderOperationsTable(view m.ResultView) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Operation", "Kind", "Variables"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, op := range view.Operations {
		table.Append([]string{op.Record.Name, op.Record.Kind.String(), formatVariables(op.Record.Variables)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Queries %d", view.Count(m.Query)),
		fmt.Sprintf("Mutations %d", view.Count(m.Mutation)),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayDiff prints the endpoint change, a status table and the body diffs.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff m.ResultDiff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if diff.Empty() {
		s.printf("No changes\n")
		return nil
	}

	if diff.EndpointChanged() {
		s.printf("Endpoint: %s -> %s\n\n", orLabel(diff.EndpointBefore, notFoundLabel), orLabel(diff.EndpointAfter, notFoundLabel))
	}

	if len(diff.Changes) == 0 {
		return nil
	}

	s.printf("%s\n", renderChangesTable(diff))

	for _, change := range diff.Changes {
		if change.Diff != "" {
			s.printf("%s\n", change.Diff)
		}
	}

	return nil
}

func renderChangesTable(diff m.ResultDiff) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Operation", "Kind", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	for _, change := range diff.Changes {
		table.Append([]string{change.Name, change.Kind.String(), change.Status.String()})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Added %d", diff.Count(m.Added)),
		fmt.Sprintf("Removed %d", diff.Count(m.Removed)),
		fmt.Sprintf("Changed %d", diff.Count(m.Changed)),
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
