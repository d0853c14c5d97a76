// Package tui is an interactive browser over the icon tables, so users
// can check which glyph a window class or name maps to without reading
// the config.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/wsglyph/internal/icon"
)

// Tab identifies which icon table is shown.
type Tab int

const (
	TabClasses Tab = iota
	TabNames
	tabCount // sentinel for iteration
)

func (t Tab) String() string {
	switch t {
	case TabClasses:
		return "Classes"
	case TabNames:
		return "Names"
	default:
		return "?"
	}
}

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Background(lipgloss.Color("236")).
				Padding(0, 2)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("62"))

	glyphStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// model is the root bubbletea model for the icon browser.
type model struct {
	table *icon.Table

	activeTab Tab
	filter    textinput.Model
	filtering bool
	selected  int
	offset    int

	width  int
	height int
}

func newModel(table *icon.Table, initialFilter string) model {
	filter := textinput.New()
	filter.Placeholder = "filter..."
	filter.Prompt = "/"
	filter.SetValue(initialFilter)

	return model{
		table:  table,
		filter: filter,
	}
}

// Run opens the icon browser over the given table.
func Run(table *icon.Table, initialFilter string) error {
	p := tea.NewProgram(newModel(table, initialFilter), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// entries returns the active tab's table filtered by the current query.
func (m model) entries() []icon.Entry {
	var all []icon.Entry
	if m.activeTab == TabClasses {
		all = m.table.ClassEntries()
	} else {
		all = m.table.NameEntries()
	}
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		return all
	}
	var matched []icon.Entry
	for _, e := range all {
		if strings.Contains(e.Key, query) {
			matched = append(matched, e)
		}
	}
	return matched
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// The filter input captures keys while editing.
		if m.filtering {
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.filter.Blur()
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.selected = 0
				m.offset = 0
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			m.selected = 0
			m.offset = 0
		case "/":
			m.filtering = true
			m.filter.Focus()
		case "j", "down":
			m.moveSelection(1)
		case "k", "up":
			m.moveSelection(-1)
		case "g":
			m.selected = 0
			m.offset = 0
		case "G":
			m.selected = len(m.entries()) - 1
		}
	}
	return m, nil
}

func (m *model) moveSelection(delta int) {
	count := len(m.entries())
	if count == 0 {
		m.selected = 0
		return
	}
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= count {
		m.selected = count - 1
	}
}

// listHeight returns the rows available for table entries.
func (m model) listHeight() int {
	// tab bar (2 with margin) + filter line (1) + help (1)
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

// View implements tea.Model.
func (m model) View() string {
	var b strings.Builder

	var tabs []string
	for i := Tab(0); i < tabCount; i++ {
		style := inactiveTabStyle
		if i == m.activeTab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(i.String()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	entries := m.entries()
	height := m.listHeight()

	selected := m.selected
	if selected >= len(entries) {
		selected = len(entries) - 1
	}
	offset := m.offset
	if selected >= 0 && selected < offset {
		offset = selected
	}
	if selected >= offset+height {
		offset = selected - height + 1
	}

	for i := offset; i < len(entries) && i < offset+height; i++ {
		entry := entries[i]
		row := fmt.Sprintf("%-28s %s", entry.Key, glyphStyle.Render(entry.Icon))
		if i == selected {
			row = selectedRowStyle.Render(fmt.Sprintf("%-28s %s", entry.Key, entry.Icon))
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	if len(entries) == 0 {
		b.WriteString(helpStyle.Render("no entries match the filter"))
		b.WriteString("\n")
	}

	b.WriteString(m.filter.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: switch table  /: filter  j/k: move  q: quit"))
	return b.String()
}
