package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/vscaperrotta/converto/pkg/convert"
)

// ModeSelectorModel is the conversion-mode picker overlay. It offers the
// eight fixed modes behind a fuzzy search box.
type ModeSelectorModel struct {
	allModes      []convert.Mode
	filteredModes []convert.Mode

	searchInput   textinput.Model
	selectedIndex int

	width  int
	height int
	theme  Theme

	// Selection result
	confirmed bool
	cancelled bool
	selected  convert.Mode
}

// NewModeSelectorModel creates a mode picker with the cursor on current.
func NewModeSelectorModel(current convert.Mode, theme Theme) ModeSelectorModel {
	ti := textinput.New()
	ti.Placeholder = "Filter modes..."
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 28

	m := ModeSelectorModel{
		allModes:    convert.AllModes,
		searchInput: ti,
		theme:       theme,
	}
	m.filteredModes = append([]convert.Mode{}, m.allModes...)
	for i, mode := range m.filteredModes {
		if mode == current {
			m.selectedIndex = i
		}
	}
	return m
}

// SetSize sets dimensions
func (m *ModeSelectorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Confirmed returns true once the user picked a mode with enter.
func (m ModeSelectorModel) Confirmed() bool { return m.confirmed }

// Cancelled returns true once the user dismissed the picker.
func (m ModeSelectorModel) Cancelled() bool { return m.cancelled }

// Selected returns the confirmed mode.
func (m ModeSelectorModel) Selected() convert.Mode { return m.selected }

// Update handles input
func (m ModeSelectorModel) Update(msg tea.Msg) (ModeSelectorModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "ctrl+c":
		m.cancelled = true
		return m, nil

	case "enter":
		if len(m.filteredModes) > 0 {
			m.confirmed = true
			m.selected = m.filteredModes[m.selectedIndex]
		}
		return m, nil

	case "up", "ctrl+p":
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
		return m, nil

	case "down", "ctrl+n":
		if m.selectedIndex < len(m.filteredModes)-1 {
			m.selectedIndex++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.filterModes()
	return m, cmd
}

// filterModes narrows the list with a fuzzy match over both the kebab name
// and the display form, so "pxr", "px-rem" and "PX REM" all hit.
func (m *ModeSelectorModel) filterModes() {
	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		m.filteredModes = append([]convert.Mode{}, m.allModes...)
		m.selectedIndex = 0
		return
	}

	searchStrings := make([]string, len(m.allModes))
	for i, mode := range m.allModes {
		searchStrings[i] = mode.String() + " " + mode.DisplayName()
	}
	matches := fuzzy.Find(query, searchStrings)

	m.filteredModes = make([]convert.Mode, 0, len(matches))
	for _, match := range matches {
		m.filteredModes = append(m.filteredModes, m.allModes[match.Index])
	}
	m.selectedIndex = 0
}

// View renders the picker panel.
func (m ModeSelectorModel) View() string {
	t := m.theme

	titleStyle := t.Renderer.NewStyle().
		Bold(true).
		Foreground(t.Primary)
	rowStyle := t.Renderer.NewStyle().
		Foreground(t.Subtext).
		PaddingLeft(2)
	selectedStyle := t.Renderer.NewStyle().
		Foreground(t.Text).
		Background(ColorBgHighlight).
		Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Conversion mode"))
	b.WriteString("\n\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	if len(m.filteredModes) == 0 {
		b.WriteString(t.Renderer.NewStyle().Foreground(t.Muted).Render("  no matching mode"))
		b.WriteString("\n")
	}

	for i, mode := range m.filteredModes {
		row := Truncate(mode.DisplayName(), 24)
		if i == m.selectedIndex {
			b.WriteString(selectedStyle.Render("▸ " + row))
		} else {
			b.WriteString(rowStyle.Render(row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.Renderer.NewStyle().Foreground(t.Muted).Render("↑/↓ move · enter select · esc cancel"))

	panel := t.FocusedPanelStyle().Padding(1, 2).Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
	}
	return panel
}
