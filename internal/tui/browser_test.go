package tui

import (
	"testing"

	"github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/wsglyph/internal/icon"
)

func testModel() model {
	table := icon.NewTable(
		map[string]string{"firefox": "F", "kitty": "T"},
		map[string]string{"vim": "V"},
	)
	return newModel(table, "")
}

func TestEntries_FilterNarrowsActiveTab(t *testing.T) {
	m := testModel()
	if got := len(m.entries()); got != 2 {
		t.Fatalf("expected 2 class entries, got %d", got)
	}

	m.filter.SetValue("fire")
	entries := m.entries()
	if len(entries) != 1 || entries[0].Key != "firefox" {
		t.Fatalf("expected only firefox, got %+v", entries)
	}
}

func TestUpdate_TabSwitchesTable(t *testing.T) {
	m := testModel()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)
	if m.activeTab != TabNames {
		t.Fatalf("expected names tab, got %v", m.activeTab)
	}
	entries := m.entries()
	if len(entries) != 1 || entries[0].Key != "vim" {
		t.Fatalf("expected name entries, got %+v", entries)
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command for q")
	}
}
