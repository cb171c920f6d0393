// Package ui renders live per-file progress for multi-file runs.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"kremap/internal/driver"
)

const (
	statusWidth = 10
	// header, blank, blank, bar, summary
	chromeLines = 5
	minRows     = 3
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	statusStyles = map[string]lipgloss.Style{
		"done":      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"error":     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		"parsing":   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		"remapping": lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		"writing":   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	}
	defaultStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	// share of a file's work done once it enters a stage
	stageWeight = map[driver.Stage]float64{
		driver.StageParse: 0.2,
		driver.StageRemap: 0.5,
		driver.StageWrite: 0.8,
	}
)

type fileItem struct {
	path   string
	status string // driver.Event.Label
	stage  driver.Stage
	final  bool
	failed bool
}

func (it fileItem) active() bool { return !it.final && it.status != "queued" }

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	bar     progress.Model
	items   []fileItem
	index   map[string]int
	width   int
	height  int
	done    bool
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model for a run over files. Active
// and failed files are listed first; the rest are summarised when the
// terminal is too short. It quits once events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 76

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     bar,
		items:   make([]fileItem, len(files)),
		index:   make(map[string]int, len(files)),
		width:   80,
		height:  24,
	}
	for i, file := range files {
		m.items[i] = fileItem{path: file, status: "queued"}
		m.index[file] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

// next ждёт следующее событие драйвера.
func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.events; ok {
			return eventMsg(ev)
		}
		return doneMsg{}
	}
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.apply(driver.Event(msg))
		return m, tea.Batch(m.bar.SetPercent(m.percent()), m.next())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
	case progress.FrameMsg:
		bm, cmd := m.bar.Update(msg)
		m.bar = bm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) apply(ev driver.Event) {
	idx, ok := m.index[ev.File]
	if !ok {
		return
	}
	item := &m.items[idx]
	if label := ev.Label(); label != "" {
		item.status = label
	}
	item.stage = ev.Stage
	switch ev.Status {
	case driver.StatusError:
		item.failed = true
		item.final = true
	case driver.StatusDone:
		item.final = true
	}
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	finished, failed := m.counts()
	header := fmt.Sprintf("%s (%d/%d)", m.title, finished, len(m.items))
	if failed > 0 {
		header += fmt.Sprintf(", %d failed", failed)
	}
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	nameWidth := max(m.width-statusWidth-4, 20)
	rows, hidden := m.rows(max(m.height-chromeLines, minRows))
	for _, item := range rows {
		style, ok := statusStyles[item.status]
		if !ok {
			style = defaultStatusStyle
		}
		fmt.Fprintf(&b, "  %s %s\n", style.Render(fmt.Sprintf("%*s", statusWidth, item.status)), truncate(item.path, nameWidth))
	}
	if hidden > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ... %d more", hidden)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	return b.String()
}

// rows picks up to limit items: active files, then failures, then the rest,
// each group in input order. hidden counts what did not fit.
func (m *progressModel) rows(limit int) (rows []fileItem, hidden int) {
	rank := func(it fileItem) int {
		switch {
		case it.active():
			return 0
		case it.failed:
			return 1
		}
		return 2
	}
	for r := range 3 {
		for _, it := range m.items {
			if rank(it) != r {
				continue
			}
			if len(rows) < limit {
				rows = append(rows, it)
			} else {
				hidden++
			}
		}
	}
	return rows, hidden
}

func (m *progressModel) counts() (finished, failed int) {
	for _, it := range m.items {
		if it.final {
			finished++
		}
		if it.failed {
			failed++
		}
	}
	return finished, failed
}

func (m *progressModel) percent() float64 {
	if len(m.items) == 0 {
		return 0
	}
	var total float64
	for _, it := range m.items {
		switch {
		case it.final:
			total++
		case it.status != "queued":
			total += stageWeight[it.stage]
		}
	}
	return total / float64(len(m.items))
}

// truncate shortens value to width display cells, ending in "..." when
// there is room for it.
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	tail := "..."
	if width <= len(tail) {
		tail = ""
	}
	return runewidth.Truncate(value, width, tail)
}
