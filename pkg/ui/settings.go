package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vscaperrotta/converto/pkg/convert"
)

// Settings field order.
const (
	fieldBaseRem = iota
	fieldBaseEm
	fieldContainerWidth
	fieldBaseUnit
	numSettingsFields
)

var settingsLabels = [numSettingsFields]string{
	"px per rem",
	"px per em",
	"container width (px)",
	"px per base unit",
}

// SettingsModel is the base-ratio editor overlay. Non-positive or
// unparseable values never leave this modal; the engine stays unguarded.
type SettingsModel struct {
	inputs [numSettingsFields]textinput.Model
	focus  int
	errMsg string

	width  int
	height int
	theme  Theme

	// Result
	submitted bool
	cancelled bool
	ratios    convert.Ratios
}

// NewSettingsModel creates a ratio editor pre-filled with current values.
func NewSettingsModel(current convert.Ratios, theme Theme) SettingsModel {
	m := SettingsModel{theme: theme}

	values := [numSettingsFields]float64{
		current.BaseRem,
		current.BaseEm,
		current.ContainerWidth,
		current.BaseUnit,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 12
		ti.Width = 10
		ti.SetValue(trimFloat(values[i]))
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	return m
}

// trimFloat renders a ratio without trailing zeros for editing.
func trimFloat(v float64) string {
	s := FormatValue(v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// SetSize sets dimensions
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Submitted returns true once the user applied valid ratios.
func (m SettingsModel) Submitted() bool { return m.submitted }

// Cancelled returns true once the user dismissed the editor.
func (m SettingsModel) Cancelled() bool { return m.cancelled }

// Ratios returns the applied ratios.
func (m SettingsModel) Ratios() convert.Ratios { return m.ratios }

// Update handles input
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "ctrl+c":
		m.cancelled = true
		return m, nil

	case "enter":
		ratios, err := m.parseRatios()
		if err != "" {
			m.errMsg = err
			return m, nil
		}
		m.ratios = ratios
		m.submitted = true
		return m, nil

	case "tab", "down":
		m.setFocus((m.focus + 1) % numSettingsFields)
		return m, nil

	case "shift+tab", "up":
		m.setFocus((m.focus + numSettingsFields - 1) % numSettingsFields)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.errMsg = ""
	return m, cmd
}

func (m *SettingsModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// parseRatios validates all four fields. The returned string is the error
// message to show, empty on success.
func (m SettingsModel) parseRatios() (convert.Ratios, string) {
	var values [numSettingsFields]float64
	for i, input := range m.inputs {
		v, err := ParseValue(input.Value())
		if err != nil {
			return convert.Ratios{}, settingsLabels[i] + " is not a number"
		}
		if v <= 0 {
			return convert.Ratios{}, settingsLabels[i] + " must be positive"
		}
		values[i] = v
	}
	return convert.Ratios{
		BaseRem:        values[fieldBaseRem],
		BaseEm:         values[fieldBaseEm],
		ContainerWidth: values[fieldContainerWidth],
		BaseUnit:       values[fieldBaseUnit],
	}, ""
}

// View renders the editor panel.
func (m SettingsModel) View() string {
	t := m.theme

	titleStyle := t.Renderer.NewStyle().
		Bold(true).
		Foreground(t.Primary)
	labelStyle := t.Renderer.NewStyle().
		Foreground(t.Subtext).
		Width(22)
	focusedLabelStyle := labelStyle.
		Foreground(t.Text).
		Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Base ratios"))
	b.WriteString("\n\n")

	for i, input := range m.inputs {
		label := settingsLabels[i]
		if i == m.focus {
			b.WriteString(focusedLabelStyle.Render(label))
		} else {
			b.WriteString(labelStyle.Render(label))
		}
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(t.Renderer.NewStyle().Foreground(t.Danger).Render(m.errMsg))
	} else {
		b.WriteString(t.Renderer.NewStyle().Foreground(t.Muted).Render("tab next field · enter apply · esc cancel"))
	}

	panel := t.FocusedPanelStyle().Padding(1, 2).Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
	}
	return panel
}
