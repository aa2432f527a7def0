package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// runModel follows a mutant generation run and ends on its summary.
type runModel struct {
	width      int
	spinner    spinner.Model
	threads    int
	shardIndex int
	shards     int
	written    int
	output     string
	rows       []reportRow
	generated  int
	kept       int
	discarded  int
	finished   bool
}

func newRunModel() runModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return runModel{
		width:   80,
		spinner: s,
		threads: 1,
		shards:  1,
	}
}

func (m runModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case concurrencyMsg:
		m.threads = msg.threads
		m.shardIndex = msg.shardIndex
		m.shards = max(msg.shards, 1)

	case writtenMsg:
		m.written = msg.count
		m.output = msg.output

	case summaryMsg:
		m.rows = msg.rows
		m.generated = msg.generated
		m.kept = msg.kept
		m.discarded = msg.discarded
		m.finished = true
	}

	return m, nil
}

func (m runModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("🧬 Mutar Mutant Generation")

	meta := summaryStyle.Render(fmt.Sprintf(
		"Threads: %s  •  Shard: %s / %s",
		accentStyle.Render(fmt.Sprintf("%d", m.threads)),
		accentStyle.Render(fmt.Sprintf("%d", m.shardIndex)),
		accentStyle.Render(fmt.Sprintf("%d", m.shards)),
	))

	if !m.finished {
		progress := lipgloss.NewStyle().Padding(0, 2).Render(m.spinner.View() + " Generating mutants…")
		return lipgloss.JoinVertical(lipgloss.Left, title, meta, progress) + "\n"
	}

	totals := summaryStyle.Render(fmt.Sprintf(
		"Generated: %s  •  Kept: %s  •  Discarded: %s  •  Written: %s → %s",
		accentStyle.Render(fmt.Sprintf("%d", m.generated)),
		accentStyle.Render(fmt.Sprintf("%d", m.kept)),
		accentStyle.Render(fmt.Sprintf("%d", m.discarded)),
		accentStyle.Render(fmt.Sprintf("%d", m.written)),
		accentStyle.Render(m.output),
	))

	return lipgloss.JoinVertical(lipgloss.Left, title, meta, m.renderReports(), totals) + "\n"
}

func (m runModel) renderReports() string {
	width := max(m.width-6, 40)
	pathWidth := width - 3*(countColumnWidth+2)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(width)

	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true).
		Width(countColumnWidth).
		Align(lipgloss.Right)
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	lines := []string{headerStyle.Render(fmt.Sprintf("%6s  %6s  %6s  %s", "Gen", "Kept", "Drop", "File Path"))}

	for _, row := range m.rows {
		if row.err != nil {
			lines = append(lines, fmt.Sprintf("%s  %s",
				errorStyle.Width(3*countColumnWidth+4).Align(lipgloss.Right).Render("error"),
				pathStyle.Render(truncateToWidth(row.path+": "+firstLine(row.err.Error()), pathWidth)),
			))

			continue
		}

		lines = append(lines, fmt.Sprintf("%s  %s  %s  %s",
			countStyle.Render(fmt.Sprintf("%d", row.generated)),
			countStyle.Render(fmt.Sprintf("%d", row.kept)),
			countStyle.Render(fmt.Sprintf("%d", row.discarded)),
			pathStyle.Render(truncateToWidth(row.path, pathWidth)),
		))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderDiffLine(line string, width int) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	switch {
	case strings.HasPrefix(line, "+++"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	case strings.HasPrefix(line, "---"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	case strings.HasPrefix(line, "@@"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	case strings.HasPrefix(line, "+"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case strings.HasPrefix(line, "-"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	}

	return style.Render(truncateToWidth(line, width))
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return line
}
