package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "graphsniper.dev/pkg/graphsniper/internal/model"
)

// pagerChrome is the number of lines the pager reserves for its footer.
const pagerChrome = 2

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E535AB")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B"))

	valueStyle = lipgloss.NewStyle().Bold(true)

	queryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6")).
			Bold(true)

	mutationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			Bold(true)

	addedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	removedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171"))

	changedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBBF24"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748B")).
			Italic(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress view in scan mode. View mode needs no setup.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	if cfg.mode != ModeScan {
		return nil
	}

	t.program = tea.NewProgram(
		newProgressModel(),
		tea.WithContext(ctx),
		tea.WithOutput(t.output),
		tea.WithInput(nil),
	)
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		if _, err := t.program.Run(); err != nil {
			slog.Debug("Progress view stopped", "error", err)
		}
	}()

	return nil
}

// Close stops the progress view and waits for its last frame.
func (t *TUI) Close(ctx context.Context) {
	if t.program == nil {
		return
	}

	t.program.Send(finishMsg{})
	t.Wait(ctx)
	t.program = nil
}

// Wait blocks until the progress view exits.
func (t *TUI) Wait(ctx context.Context) {
	if t.done == nil {
		return
	}

	select {
	case <-t.done:
	case <-ctx.Done():
	}
}

func (t *TUI) send(msg tea.Msg) {
	if t.program != nil {
		t.program.Send(msg)
	}
}

// DisplayScanStart announces the target.
func (t *TUI) DisplayScanStart(_ context.Context, target string) {
	t.send(stageMsg{line: "Target " + valueStyle.Render(target), status: "collecting JavaScript URLs"})
}

// DisplayCollected reports the collected script URLs.
func (t *TUI) DisplayCollected(_ context.Context, urls int) {
	t.send(stageMsg{line: fmt.Sprintf("Found %s JavaScript URLs", valueStyle.Render(fmt.Sprint(urls))), status: "downloading"})
}

// DisplayFetched reports the download outcome.
func (t *TUI) DisplayFetched(_ context.Context, fetched, requested int) {
	t.send(stageMsg{line: fmt.Sprintf("Downloaded %s/%d files", valueStyle.Render(fmt.Sprint(fetched)), requested), status: "extracting operations"})
}

// DisplaySavedScripts reports where script copies went.
func (t *TUI) DisplaySavedScripts(_ context.Context, count int, dir m.Path) {
	t.send(stageMsg{line: fmt.Sprintf("Saved %d scripts to %s", count, dir), status: "extracting operations"})
}

// DisplayScanSummary hands the summary to the progress view, or prints it
// when no progress view is running.
func (t *TUI) DisplayScanSummary(ctx context.Context, summary m.ScanSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if t.program != nil {
		t.program.Send(summaryMsg{summary: summary})
		return nil
	}

	_, err := fmt.Fprint(t.output, renderSummary(summary))

	return err
}

// DisplayResult shows a saved result, paging when it does not fit.
func (t *TUI) DisplayResult(ctx context.Context, view m.ResultView) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.page(renderResult(view))
}

// DisplayDiff shows the difference between two results, paging when needed.
func (t *TUI) DisplayDiff(ctx context.Context, diff m.ResultDiff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.page(renderDiff(diff))
}

// page prints content directly when it fits the terminal and runs the pager otherwise.
func (t *TUI) page(content string) error {
	width, height := terminalSize(t.output)

	model := newPagerModel(content, width, height)
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, content)
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func renderHeader(b *strings.Builder) {
	b.WriteString(bannerStyle.Render("╔════════════════════════════════════════════════════════════════╗") + "\n")
	b.WriteString(bannerStyle.Render("║             graphsniper - GraphQL operation finder             ║") + "\n")
	b.WriteString(bannerStyle.Render("╚════════════════════════════════════════════════════════════════╝") + "\n\n")
}

func kindStyle(kind m.OperationKind) lipgloss.Style {
	if kind == m.Mutation {
		return mutationStyle
	}

	return queryStyle
}

func renderSummary(summary m.ScanSummary) string {
	var b strings.Builder

	result := summary.Result

	row := func(label, value string) {
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-16s", label)), valueStyle.Render(value))
	}

	b.WriteString("\n")
	row("Files scanned", fmt.Sprint(summary.Diagnostics.Files))
	row("Queries", fmt.Sprint(len(result.Operations.OfKind(m.Query))))
	row("Mutations", fmt.Sprint(len(result.Operations.OfKind(m.Mutation))))
	row("Endpoint", endpointLabel(result.Endpoint))
	row("Output", orLabel(string(summary.Output), noneLabel))

	if kinds := summary.Diagnostics.RejectedKinds(); len(kinds) > 0 {
		b.WriteString("\n  " + labelStyle.Render("Rejected candidates") + "\n")

		for _, kind := range kinds {
			fmt.Fprintf(&b, "    %-22s %d\n", kind, summary.Diagnostics.Rejected[kind])
		}
	}

	return b.String()
}

func renderResult(view m.ResultView) string {
	var b strings.Builder

	renderHeader(&b)

	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("Endpoint"), valueStyle.Render(endpointLabel(view.Endpoint)))
	fmt.Fprintf(&b, "  %s %d queries, %d mutations\n\n",
		labelStyle.Render("Operations"), view.Count(m.Query), view.Count(m.Mutation))

	if len(view.Operations) == 0 {
		b.WriteString("  📭 No operations found\n")
		return b.String()
	}

	for _, op := range view.Operations {
		fmt.Fprintf(&b, "  %s %s\n", kindStyle(op.Record.Kind).Render(op.Record.Kind.String()), valueStyle.Render(op.Record.Name))
		fmt.Fprintf(&b, "  %s %s\n\n", labelStyle.Render("variables"), formatVariables(op.Record.Variables))

		for _, line := range strings.Split(op.Pretty, "\n") {
			b.WriteString("    " + line + "\n")
		}

		b.WriteString("\n")
	}

	return b.String()
}

func renderDiff(diff m.ResultDiff) string {
	var b strings.Builder

	renderHeader(&b)

	if diff.Empty() {
		b.WriteString("  ✅ No changes\n")
		return b.String()
	}

	if diff.EndpointChanged() {
		fmt.Fprintf(&b, "  %s %s -> %s\n\n", labelStyle.Render("Endpoint"),
			removedStyle.Render(orLabel(diff.EndpointBefore, notFoundLabel)),
			addedStyle.Render(orLabel(diff.EndpointAfter, notFoundLabel)))
	}

	for _, change := range diff.Changes {
		style := changedStyle

		switch change.Status {
		case m.Added:
			style = addedStyle
		case m.Removed:
			style = removedStyle
		}

		fmt.Fprintf(&b, "  %s %s %s\n", style.Render(fmt.Sprintf("%-8s", change.Status)),
			kindStyle(change.Kind).Render(change.Kind.String()), change.Name)
	}

	for _, change := range diff.Changes {
		if change.Diff == "" {
			continue
		}

		b.WriteString("\n")

		for _, line := range strings.Split(strings.TrimRight(change.Diff, "\n"), "\n") {
			b.WriteString("  " + colorDiffLine(line) + "\n")
		}
	}

	fmt.Fprintf(&b, "\n  %d added, %d removed, %d changed\n",
		diff.Count(m.Added), diff.Count(m.Removed), diff.Count(m.Changed))

	return b.String()
}

func colorDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		return labelStyle.Render(line)
	case strings.HasPrefix(line, "+"):
		return addedStyle.Render(line)
	case strings.HasPrefix(line, "-"):
		return removedStyle.Render(line)
	case strings.HasPrefix(line, "@@"):
		return changedStyle.Render(line)
	default:
		return line
	}
}

type stageMsg struct {
	line   string
	status string
}

type summaryMsg struct {
	summary m.ScanSummary
}

type finishMsg struct{}

// progressModel shows the finished stages and a spinner for the running one.
type progressModel struct {
	spinner spinner.Model
	lines   []string
	status  string
	summary *m.ScanSummary
	done    bool
}

func newProgressModel() progressModel {
	return progressModel{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(bannerStyle)),
		status:  "starting",
	}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stageMsg:
		pm.lines = append(pm.lines, msg.line)
		pm.status = msg.status

		return pm, nil

	case summaryMsg:
		pm.summary = &msg.summary
		pm.done = true

		return pm, tea.Quit

	case finishMsg:
		pm.done = true

		return pm, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			pm.done = true
			return pm, tea.Quit
		}

	case spinner.TickMsg:
		if pm.done {
			return pm, nil
		}

		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm progressModel) View() string {
	var b strings.Builder

	renderHeader(&b)

	for _, line := range pm.lines {
		b.WriteString("  " + addedStyle.Render("✓") + " " + line + "\n")
	}

	if !pm.done {
		fmt.Fprintf(&b, "  %s %s\n", pm.spinner.View(), helpStyle.Render(pm.status))
	}

	if pm.summary != nil {
		b.WriteString(renderSummary(*pm.summary))
	}

	return b.String()
}

// pagerModel scrolls long content in a viewport.
type pagerModel struct {
	viewport viewport.Model
	content  string
	lines    int
	height   int
	quitting bool
}

func newPagerModel(content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-pagerChrome, 1))
	vp.SetContent(content)

	return pagerModel{
		viewport: vp,
		content:  content,
		lines:    strings.Count(content, "\n"),
		height:   height,
	}
}

// needsPagination returns true if the content is taller than the terminal.
func (pm pagerModel) needsPagination() bool {
	return pm.height > 0 && pm.lines > pm.height-pagerChrome
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-pagerChrome, 1)
		pm.viewport.SetContent(pm.content)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	footer := fmt.Sprintf("  %3.f%% | ↑/k: up | ↓/j: down | d/u: half page | g: top | G: bottom | q: quit",
		pm.viewport.ScrollPercent()*100)

	return pm.viewport.View() + "\n\n" + helpStyle.Render(footer)
}
