package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/plotkit/internal/series"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(series.NoisyLine(80, 0.5, 2, 0.2, 1))
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return sized.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_ViewBeforeSize(t *testing.T) {
	m := New(nil)
	if got := m.View(); got != "Loading..." {
		t.Errorf("View before sizing = %q", got)
	}
}

func TestModel_TabCyclesViews(t *testing.T) {
	m := newTestModel(t)
	if m.viewMode != ViewLine {
		t.Fatalf("initial view = %v, want Line", m.viewMode)
	}

	tab := tea.KeyMsg{Type: tea.KeyTab}
	order := []ViewMode{ViewHistogram, ViewHeatmap, ViewPolar, ViewStream, ViewLine}
	for _, want := range order {
		next, _ := m.Update(tab)
		m = next.(Model)
		if m.viewMode != want {
			t.Fatalf("viewMode = %v, want %v", m.viewMode, want)
		}
	}
}

func TestModel_ViewRendersEveryMode(t *testing.T) {
	m := newTestModel(t)
	tab := tea.KeyMsg{Type: tea.KeyTab}
	for v := ViewMode(0); v < viewModeCount; v++ {
		out := m.View()
		if out == "" {
			t.Errorf("empty View for mode %v", m.viewMode)
		}
		if !strings.Contains(out, "["+m.viewMode.String()+"]") {
			t.Errorf("active tab marker missing for mode %v", m.viewMode)
		}
		next, _ := m.Update(tab)
		m = next.(Model)
	}
}

func TestModel_StreamTickPushes(t *testing.T) {
	m := newTestModel(t)
	before := m.ring.Len()

	next, cmd := m.Update(StreamTickMsg(time.Now()))
	m = next.(Model)

	if m.ring.Len() != before+1 {
		t.Errorf("ring Len = %d, want %d", m.ring.Len(), before+1)
	}
	if cmd == nil {
		t.Error("stream tick should reschedule itself")
	}
}

func TestModel_Toggles(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyMsg("t"))
	m = next.(Model)
	if !m.showTrend {
		t.Error("t should enable the trendline")
	}

	next, _ = m.Update(keyMsg("l"))
	m = next.(Model)
	if !m.logY {
		t.Error("l should enable log y")
	}

	next, _ = m.Update(keyMsg("c"))
	m = next.(Model)
	if !m.cumulative {
		t.Error("c should enable cumulative bins")
	}

	paletteBefore := m.paletteIdx
	next, _ = m.Update(keyMsg("p"))
	m = next.(Model)
	if m.paletteIdx == paletteBefore {
		t.Error("p should advance the palette")
	}

	binBefore := m.binIdx
	next, _ = m.Update(keyMsg("b"))
	m = next.(Model)
	if m.binIdx == binBefore {
		t.Error("b should advance the bin rule")
	}
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q command is not tea.Quit")
	}
}

func TestViewMode_String(t *testing.T) {
	tests := []struct {
		mode ViewMode
		want string
	}{
		{ViewLine, "Line"},
		{ViewHistogram, "Histogram"},
		{ViewHeatmap, "Heatmap"},
		{ViewPolar, "Polar"},
		{ViewStream, "Stream"},
		{viewModeCount, "?"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
