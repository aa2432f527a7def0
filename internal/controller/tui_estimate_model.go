package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

const countColumnWidth = 6

// estimateDelegate renders one source file per line.
type estimateDelegate struct {
	offset int
}

func (d estimateDelegate) Height() int  { return 1 }
func (d estimateDelegate) Spacing() int { return 0 }
func (d estimateDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d estimateDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	// three count columns plus their spacing
	width := m.Width() - 3*(countColumnWidth+2)

	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true).
		Width(countColumnWidth).
		Align(lipgloss.Right)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	displayPath := truncateToWidth(file.path, width)

	if index == m.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = selected.Width(countColumnWidth).Align(lipgloss.Right)
		pathStyle = selected
		displayPath = animateScroll(file.path, width, d.offset)
	}

	counts := []string{fmt.Sprintf("%d", file.total()), fmt.Sprintf("%d", file.flips), fmt.Sprintf("%d", file.deletes)}
	if file.err != nil {
		countStyle = countStyle.Foreground(lipgloss.Color("9"))
		counts = []string{"error", "-", "-"}
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s  %s",
		countStyle.Render(counts[0]),
		countStyle.Render(counts[1]),
		countStyle.Render(counts[2]),
		pathStyle.Render(displayPath),
	)
}

// animateScroll shows a window of text that moves one rune per tick once
// a short pause has passed. Text that fits is returned as is.
func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const (
		gap   = "   "
		pause = 5
	)

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	start := (offset - pause) % len(runes)

	window := make([]rune, 0, width)
	for i := range width {
		window = append(window, runes[(start+i)%len(runes)])
	}

	return string(window)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// estimateModel lists the mutation sites of every source file.
type estimateModel struct {
	width        int
	height       int
	fileList     list.Model
	delegate     estimateDelegate
	statements   int
	flips        int
	deletes      int
	failed       int
	err          error
	rendered     bool
	animOffset   int
	lastSelected int
}

func newEstimateModel() estimateModel {
	delegate := estimateDelegate{}
	fileList := list.New([]list.Item{}, delegate, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	return estimateModel{
		width:        80,
		height:       24,
		fileList:     fileList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m estimateModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m estimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fileList.SetWidth(m.width)

	case tickMsg:
		if m.fileList.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.fileList.SetDelegate(m.delegate)

			return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (msg.String() == "q" && m.fileList.FilterState() != list.Filtering) {
			return m, tea.Quit
		}

		m.fileList, cmd = m.fileList.Update(msg)

		if m.fileList.Index() != m.lastSelected {
			m.lastSelected = m.fileList.Index()
			m.animOffset = 0
			m.delegate.offset = 0
			m.fileList.SetDelegate(m.delegate)
		}

		return m, cmd

	case estimationMsg:
		m = m.handleEstimationMsg(msg)
	}

	return m, cmd
}

func (m estimateModel) handleEstimationMsg(msg estimationMsg) estimateModel {
	m.statements = msg.statements
	m.flips = msg.flips
	m.deletes = msg.deletes
	m.err = msg.err
	m.failed = 0

	items := make([]list.Item, 0, len(msg.items))
	for _, item := range msg.items {
		if item.err != nil {
			m.failed++
		}

		items = append(items, item)
	}

	m.fileList.SetItems(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m estimateModel) View() string {
	if !m.rendered {
		return "Locating mutation sites…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("🧬 Mutar Site Estimate")

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 0, 1, 2)
		return lipgloss.JoinVertical(lipgloss.Left, title, errStyle.Render(fmt.Sprintf("estimation error: %v", m.err)))
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Sites: %s   Flips: %s   Deletions: %s   Statements: %s   Files: %s   Unparsable: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.flips+m.deletes)),
		accentStyle.Render(fmt.Sprintf("%d", m.flips)),
		accentStyle.Render(fmt.Sprintf("%d", m.deletes)),
		accentStyle.Render(fmt.Sprintf("%d", m.statements)),
		accentStyle.Render(fmt.Sprintf("%d", len(m.fileList.Items()))),
		accentStyle.Render(fmt.Sprintf("%d", m.failed)),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderTable(),
		footer,
	)
}

func (m estimateModel) renderTable() string {
	// title, summary, footer, border and header take nine rows
	listHeight := max(m.height-9, 5)
	// margin, border and padding take six columns
	listWidth := m.width - 6

	m.fileList.SetHeight(listHeight)
	m.fileList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %6s  %6s  %s", "Sites", "Flips", "Dels", "File Path"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.fileList.View(),
		),
	)
}
