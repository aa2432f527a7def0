package controller

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func TestRunModel_Progress(t *testing.T) {
	model := newRunModel()

	if model.Init() == nil {
		t.Fatal("Init() should start the spinner")
	}

	updated, _ := model.Update(concurrencyMsg{threads: 4, shardIndex: 2, shards: 0})
	model = updated.(runModel)

	if model.threads != 4 || model.shardIndex != 2 || model.shards != 1 {
		t.Fatalf("concurrency = %d %d/%d, want 4 2/1", model.threads, model.shardIndex, model.shards)
	}

	view := model.View()
	if !strings.Contains(view, "Generating mutants…") {
		t.Fatalf("View() missing progress line\nview:\n%s", view)
	}
}

func TestRunModel_Summary(t *testing.T) {
	model := newRunModel()

	updated, _ := model.Update(writtenMsg{count: 5, output: "mutants"})
	updated, _ = updated.Update(summaryMsg{
		rows: []reportRow{
			{path: "R/a.R", generated: 6, kept: 5, discarded: 1},
			{path: "R/c.R", err: errors.New("1:3: unexpected end of input\nmore detail")},
		},
		generated: 6,
		kept:      5,
		discarded: 1,
	})
	model = updated.(runModel)

	if !model.finished {
		t.Fatal("expected summary to finish the run")
	}

	if model.written != 5 || model.output != "mutants" {
		t.Fatalf("written = %d to %q", model.written, model.output)
	}

	view := model.View()
	for _, want := range []string{"Mutar Mutant Generation", "Generated:", "R/a.R", "R/c.R", "unexpected end of input"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\nview:\n%s", want, view)
		}
	}

	if strings.Contains(view, "more detail") {
		t.Fatalf("View() should only show the first error line\nview:\n%s", view)
	}

	if strings.Contains(view, "Generating mutants…") {
		t.Fatal("finished view still shows progress")
	}
}

func TestRunModel_SpinnerStopsWhenFinished(t *testing.T) {
	updated, _ := newRunModel().Update(summaryMsg{})

	if _, cmd := updated.Update(spinner.TickMsg{}); cmd != nil {
		t.Fatal("finished model should not keep ticking")
	}
}

func TestRunModel_Quit(t *testing.T) {
	_, cmd := newRunModel().Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("ctrl+c did not quit")
	}
}

func TestRenderDiffLine(t *testing.T) {
	for _, line := range []string{"--- expr.R", "+++ expr.R (mutant)", "@@ -1 +1 @@", "-a + b", "+a - b", " context"} {
		if got := renderDiffLine(line, 80); !strings.Contains(got, strings.TrimSpace(line)) {
			t.Errorf("renderDiffLine(%q) = %q", line, got)
		}
	}

	if got := renderDiffLine("+abcdefgh", 5); !strings.Contains(got, "+abc…") {
		t.Errorf("renderDiffLine() did not truncate: %q", got)
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("one\ntwo"); got != "one" {
		t.Fatalf("firstLine() = %q, want %q", got, "one")
	}

	if got := firstLine("single"); got != "single" {
		t.Fatalf("firstLine() = %q, want %q", got, "single")
	}
}
