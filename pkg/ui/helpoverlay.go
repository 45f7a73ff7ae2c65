package ui

import (
	_ "embed"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

//go:embed help.md
var helpMarkdown string

// HelpOverlayModel shows keyboard shortcuts and a unit cheat sheet.
type HelpOverlayModel struct {
	visible  bool
	width    int
	height   int
	theme    Theme
	rendered string
}

// NewHelpOverlayModel creates a new help overlay
func NewHelpOverlayModel(theme Theme) HelpOverlayModel {
	return HelpOverlayModel{
		theme: theme,
	}
}

// Toggle toggles visibility
func (m *HelpOverlayModel) Toggle() {
	m.visible = !m.visible
	if m.visible && m.rendered == "" {
		m.render()
	}
}

// IsVisible returns true if overlay is showing
func (m HelpOverlayModel) IsVisible() bool {
	return m.visible
}

// SetSize sets dimensions and invalidates the cached render.
func (m *HelpOverlayModel) SetSize(width, height int) {
	if width != m.width {
		m.rendered = ""
	}
	m.width = width
	m.height = height
	if m.visible && m.rendered == "" {
		m.render()
	}
}

// Update handles input
func (m HelpOverlayModel) Update(msg tea.Msg) (HelpOverlayModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg.(type) {
	case tea.KeyMsg:
		// Any key closes help
		m.visible = false
	}

	return m, nil
}

// render produces the glamour output once per size.
func (m *HelpOverlayModel) render() {
	wrap := 60
	if m.width > 0 && m.width-8 < wrap {
		wrap = m.width - 8
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		if out, rerr := r.Render(helpMarkdown); rerr == nil {
			m.rendered = out
		}
	}
	if m.rendered == "" {
		// Markdown rendering is cosmetic; fall back to the raw text.
		m.rendered = helpMarkdown
	}
}

// View renders the help overlay
func (m HelpOverlayModel) View() string {
	if !m.visible {
		return ""
	}

	body := m.rendered
	if body == "" {
		body = helpMarkdown
	}
	panel := m.theme.PanelStyle().Padding(0, 1).Render(body)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
	}
	return panel
}
