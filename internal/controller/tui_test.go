package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "mutar.dev/pkg/mutar/internal/model"
)

type quitModel struct{}

func (quitModel) Init() tea.Cmd                       { return tea.Quit }
func (quitModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return quitModel{}, nil }
func (quitModel) View() string                        { return "" }

func newHeadlessTUI() (*TUI, *bytes.Buffer) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)
	tui.programOptions = append(tui.programOptions, tea.WithInput(nil))

	return tui, &buf
}

func TestTUI_SendBeforeStart(t *testing.T) {
	tui, _ := newHeadlessTUI()

	if tui.send(writtenMsg{count: 1}) {
		t.Fatal("send() before Start = true, want false")
	}
}

func TestTUI_WaitAndCloseBeforeStart(t *testing.T) {
	tui, buf := newHeadlessTUI()
	ctx := context.Background()

	tui.Wait(ctx)
	tui.Close(ctx)

	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestTUI_StartTwice(t *testing.T) {
	tui, _ := newHeadlessTUI()

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel() error = %v", err)
	}

	if err := tui.startWithModel(quitModel{}); !errors.Is(err, errUIStarted) {
		t.Fatalf("second startWithModel() error = %v, want errUIStarted", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tui.Wait(ctx)
	tui.Close(ctx)

	if ctx.Err() != nil {
		t.Fatal("program did not stop in time")
	}
}

func TestTUI_StartCanceledContext(t *testing.T) {
	tui, _ := newHeadlessTUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := tui.Start(ctx, WithRunMode()); !errors.Is(err, context.Canceled) {
		t.Fatalf("Start() error = %v, want context.Canceled", err)
	}

	if tui.send(writtenMsg{}) {
		t.Fatal("send() after failed Start = true, want false")
	}
}

func TestTUI_RunModeLifecycle(t *testing.T) {
	tui, buf := newHeadlessTUI()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := tui.Start(ctx, WithRunMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	tui.DisplayConcurrencyInfo(ctx, 2, 0, 1)
	tui.DisplayMutantsWritten(ctx, 2, "mutants")

	err := tui.DisplayMutationSummary(ctx, []m.FileReport{
		{Source: source("R/calc.R"), Generated: 2, Kept: 2},
	})
	if err != nil {
		t.Fatalf("DisplayMutationSummary() error = %v", err)
	}

	tui.Close(ctx)

	if ctx.Err() != nil {
		t.Fatal("program did not stop in time")
	}

	output := buf.String()
	if !strings.Contains(output, "Mutar Mutant Generation") {
		t.Fatalf("output missing title\noutput:\n%s", output)
	}

	if !strings.Contains(output, "R/calc.R") {
		t.Fatalf("output missing report row\noutput:\n%s", output)
	}
}

func TestTUI_FallbackOutputWithoutProgram(t *testing.T) {
	tui, buf := newHeadlessTUI()
	ctx := context.Background()

	tui.DisplayMutantsWritten(ctx, 3, "out")
	assertContainsAll(t, buf.String(), "Wrote 3 mutant(s) to out")

	buf.Reset()

	if err := tui.DisplayMutationSummary(ctx, []m.FileReport{{Source: source("R/a.R"), Generated: 1, Kept: 1}}); err != nil {
		t.Fatalf("DisplayMutationSummary() error = %v", err)
	}
	assertContainsAll(t, buf.String(), "Mutar Mutant Generation", "R/a.R")

	buf.Reset()

	boom := errors.New("boom")
	if err := tui.DisplayEstimation(ctx, nil, boom); !errors.Is(err, boom) {
		t.Fatalf("DisplayEstimation() error = %v, want boom", err)
	}
	assertContainsAll(t, buf.String(), "Mutar Site Estimate", "estimation error: boom")
}

func TestTUI_DisplayMutant(t *testing.T) {
	tui, buf := newHeadlessTUI()

	tui.DisplayMutant(context.Background(), m.FileMutant{
		ID:          2,
		Description: "Line 1, Col 5 - Line 1, Col 9: '*' -> '/'",
		Site:        m.Site{Op: m.Operator{Kind: "Multiply"}},
		Diff:        "--- expr.R\n+++ expr.R (mutant)\n@@ -1 +1 @@\n-a + b * c\n+a + b / c\n",
	})

	assertContainsAll(t, buf.String(), "#2", "MultiplyOperator", "+a + b / c", "-a + b * c")
}

func TestTUI_DisplayMutant_CanceledContext(t *testing.T) {
	tui, buf := newHeadlessTUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tui.DisplayMutant(ctx, m.FileMutant{ID: 1, Code: []byte("x\n")})

	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestTUI_DisplayManifest(t *testing.T) {
	tui, buf := newHeadlessTUI()

	if err := tui.DisplayManifest(context.Background(), testManifest()); err != nil {
		t.Fatalf("DisplayManifest() error = %v", err)
	}

	assertContainsAll(t, buf.String(), "Mutar Manifest", "6f1c2d3e", "(shard 1/2)", "R/calc/calc.mutant_001.R", "PlusOperator", "Mutants: 1")
}
