package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "mutar.dev/pkg/mutar/internal/model"
)

var errUIStarted = errors.New("ui already started")

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output         io.Writer
	programOptions []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	started bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for the requested mode. The
// estimate view takes over the screen until the user quits; the run view
// prints inline and stays on screen after Close.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := resolveStartConfig(options)
	if config.mode == ModeRun {
		return t.startWithModel(newRunModel())
	}

	return t.startWithModel(newEstimateModel(), tea.WithAltScreen())
}

func (t *TUI) startWithModel(model tea.Model, options ...tea.ProgramOption) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return errUIStarted
	}

	programOptions := append([]tea.ProgramOption{tea.WithOutput(t.output)}, options...)
	programOptions = append(programOptions, t.programOptions...)

	t.program = tea.NewProgram(model, programOptions...)
	t.done = make(chan struct{})
	t.started = true

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("TUI program failed", "error", err)
		}
	}(t.program, t.done)

	return nil
}

// send forwards msg to the running program; it is a no-op before Start.
func (t *TUI) send(msg tea.Msg) bool {
	t.mu.Lock()
	program, started := t.program, t.started
	t.mu.Unlock()

	if !started || program == nil {
		return false
	}

	program.Send(msg)

	return true
}

// Close stops the program and waits for its final frame.
func (t *TUI) Close(ctx context.Context) {
	t.mu.Lock()
	program, done, started := t.program, t.done, t.started
	t.started = false
	t.program = nil
	t.mu.Unlock()

	if !started {
		return
	}

	program.Quit()

	select {
	case <-done:
	case <-ctx.Done():
		program.Kill()
	}
}

// Wait blocks until the user closes the program.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	done, started := t.done, t.started
	t.mu.Unlock()

	if !started {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// DisplayEstimation hands the site counts to the estimate view.
func (t *TUI) DisplayEstimation(ctx context.Context, estimates []m.FileEstimate, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	msg := estimationMsg{err: err, items: make([]fileItem, 0, len(estimates))}

	for _, estimate := range estimates {
		msg.items = append(msg.items, fileItem{
			path:    shortPath(estimate.Source),
			flips:   estimate.FlipSites,
			deletes: estimate.DeleteSites,
			err:     estimate.Err,
		})

		if estimate.Err == nil {
			msg.statements += estimate.Statements
			msg.flips += estimate.FlipSites
			msg.deletes += estimate.DeleteSites
		}
	}

	if !t.send(msg) {
		model := newEstimateModel().handleEstimationMsg(msg)
		_, _ = fmt.Fprintln(t.output, model.View())
	}

	return err
}

// DisplayConcurrencyInfo shows concurrency settings.
func (t *TUI) DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.send(concurrencyMsg{threads: threads, shardIndex: shardIndex, shards: shardCount})
}

// DisplayMutant prints one mutant with a coloured diff.
func (t *TUI) DisplayMutant(ctx context.Context, mutant m.FileMutant) {
	if err := ctx.Err(); err != nil {
		return
	}

	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	typeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("5"))

	lines := []string{fmt.Sprintf("%s %s %s",
		idStyle.Render(fmt.Sprintf("#%d", mutant.ID)),
		typeStyle.Render(mutant.Site.Op.Type()),
		mutant.Description,
	)}

	body := mutant.Diff
	if body == "" {
		body = string(mutant.Code)
	}

	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		lines = append(lines, renderDiffLine(line, 120))
	}

	_, _ = fmt.Fprintln(t.output, lipgloss.NewStyle().Padding(0, 0, 1, 2).Render(strings.Join(lines, "\n")))
}

// DisplayMutantsWritten records where the mutant files went.
func (t *TUI) DisplayMutantsWritten(ctx context.Context, count int, output m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	if !t.send(writtenMsg{count: count, output: string(output)}) {
		_, _ = fmt.Fprintf(t.output, "Wrote %d mutant(s) to %s\n", count, output)
	}
}

// DisplayMutationSummary hands the per-file results to the run view.
func (t *TUI) DisplayMutationSummary(ctx context.Context, reports []m.FileReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := summaryMsg{rows: make([]reportRow, 0, len(reports))}

	for _, report := range reports {
		msg.rows = append(msg.rows, reportRow{
			path:      shortPath(report.Source),
			generated: report.Generated,
			kept:      report.Kept,
			discarded: report.Discarded,
			err:       report.Err,
		})

		msg.generated += report.Generated
		msg.kept += report.Kept
		msg.discarded += report.Discarded
	}

	if !t.send(msg) {
		model, _ := newRunModel().Update(msg)
		_, _ = fmt.Fprint(t.output, model.View())
	}

	return nil
}

// DisplayManifest prints a saved manifest as a styled list.
func (t *TUI) DisplayManifest(ctx context.Context, manifest m.Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(countColumnWidth).Align(lipgloss.Right)
	typeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	lines := []string{
		titleStyle.Render("🧬 Mutar Manifest"),
		mutedStyle.Render(fmt.Sprintf("Run %s created %s%s", manifest.RunID, manifest.CreatedAt.Format(time.RFC3339), shardSuffix(manifest.Shard))),
		"",
	}

	for _, entry := range manifest.Mutants {
		lines = append(lines, fmt.Sprintf("%s  %s  %s  %s",
			idStyle.Render(fmt.Sprintf("%d", entry.ID)),
			pathStyle.Render(entry.Output),
			typeStyle.Render(entry.Operator),
			mutedStyle.Render(spanLabel(entry.Span)),
		))
	}

	lines = append(lines, "", fmt.Sprintf("Mutants: %d", len(manifest.Mutants)))

	_, _ = fmt.Fprintln(t.output, lipgloss.NewStyle().Padding(1, 0, 1, 2).Render(strings.Join(lines, "\n")))

	return nil
}
