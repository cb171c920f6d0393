package ui

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"kremap/internal/driver"
)

func TestProgressModelTracksFiles(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("fmt", []string{"a.kt", "b.kt"}, events).(*progressModel)

	steps := []driver.Event{
		{File: "a.kt", Stage: driver.StageParse, Status: driver.StatusWorking},
		{File: "b.kt", Stage: driver.StageParse, Status: driver.StatusError, Err: errors.New("boom")},
		{File: "a.kt", Stage: driver.StageWrite, Status: driver.StatusWorking},
		{File: "zzz.kt", Stage: driver.StageWrite, Status: driver.StatusDone},
	}
	for _, ev := range steps {
		m.Update(eventMsg(ev))
	}

	if m.items[0].status != "writing" || m.items[1].status != "error" {
		t.Fatalf("statuses = %q, %q", m.items[0].status, m.items[1].status)
	}
	if got := m.percent(); math.Abs(got-0.9) > 1e-9 {
		t.Errorf("percent = %v", got)
	}
	view := m.View()
	if !strings.Contains(view, "fmt (1/2), 1 failed") {
		t.Errorf("view header missing:\n%s", view)
	}

	_, cmd := m.Update(doneMsg{})
	if cmd == nil || !m.done {
		t.Fatal("done should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
	if !strings.HasPrefix(stripANSI(m.View()), "done: ") {
		t.Errorf("view = %q", m.View())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("src/main/kotlin/App.kt", 10); got != "src/mai..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("a.kt", 10); got != "a.kt" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Errorf("truncate = %q", got)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	esc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			esc = true
		case esc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			esc = false
		case !esc:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestProgressViewWindowsLongRuns(t *testing.T) {
	files := make([]string, 50)
	for i := range files {
		files[i] = fmt.Sprintf("f%02d.kt", i)
	}
	m := NewProgressModel("fmt", files, make(chan driver.Event)).(*progressModel)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	m.Update(eventMsg{File: "f40.kt", Stage: driver.StageRemap, Status: driver.StatusWorking})
	m.Update(eventMsg{File: "f45.kt", Stage: driver.StageParse, Status: driver.StatusError})

	rows, hidden := m.rows(5)
	if len(rows) != 5 || hidden != 45 {
		t.Fatalf("rows = %d, hidden = %d", len(rows), hidden)
	}
	if rows[0].path != "f40.kt" || rows[1].path != "f45.kt" {
		t.Errorf("active and failed files must come first: %q, %q", rows[0].path, rows[1].path)
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "... 45 more") {
		t.Errorf("view:\n%s", view)
	}
	if strings.Contains(view, "f49.kt") {
		t.Errorf("hidden file rendered:\n%s", view)
	}
}
