package ui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vscaperrotta/converto/pkg/convert"
)

// statusFlashDuration is how long transient status messages stay visible.
const statusFlashDuration = 1500 * time.Millisecond

// RatiosReloadedMsg is sent from outside the program (config watcher) when
// the config file changed on disk.
type RatiosReloadedMsg struct {
	Ratios convert.Ratios
}

// statusExpireMsg clears a transient status message. The seq guard keeps an
// old timer from wiping a newer message.
type statusExpireMsg struct {
	seq int
}

// Model is the main converter screen: one mode, two value fields, and the
// base ratios everything is computed against.
type Model struct {
	mode   convert.Mode
	ratios convert.Ratios

	inputs [2]textinput.Model
	focus  int // 0 = left field, 1 = right field

	width  int
	height int
	theme  Theme

	// Overlays; nil / not-visible when closed
	modeSelector *ModeSelectorModel
	settings     *SettingsModel
	help         HelpOverlayModel

	statusMsg string
	statusSeq int

	quitting bool
}

// NewModel creates the converter model with the given starting mode and
// ratios. The caller is expected to have normalized the ratios already.
func NewModel(mode convert.Mode, ratios convert.Ratios) Model {
	m := Model{
		mode:   mode,
		ratios: ratios,
		theme:  DefaultTheme(),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 16
		ti.Width = MinFieldWidth
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	m.help = NewHelpOverlayModel(m.theme)
	m.applyPlaceholders()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		if m.modeSelector != nil {
			m.modeSelector.SetSize(msg.Width, msg.Height)
		}
		if m.settings != nil {
			m.settings.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case RatiosReloadedMsg:
		m.ratios = msg.Ratios
		m.recompute()
		return m.flashStatus("config reloaded")

	case statusExpireMsg:
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Overlays swallow input while open.
	if m.help.IsVisible() {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}
	if m.modeSelector != nil {
		return m.updateModeSelector(msg)
	}
	if m.settings != nil {
		return m.updateSettings(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "tab", "shift+tab":
			m.setFocus(1 - m.focus)
			return m, nil

		case "s":
			m.swapDirection()
			return m, nil

		case "m":
			sel := NewModeSelectorModel(m.mode, m.theme)
			sel.SetSize(m.width, m.height)
			m.modeSelector = &sel
			return m, textinput.Blink

		case "o":
			set := NewSettingsModel(m.ratios, m.theme)
			set.SetSize(m.width, m.height)
			m.settings = &set
			return m, textinput.Blink

		case "?":
			m.help.Toggle()
			return m, nil

		case "c":
			return m.copyResult()

		case "esc":
			m.inputs[m.focus].SetValue("")
			m.inputs[1-m.focus].SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.recompute()
	return m, cmd
}

func (m Model) updateModeSelector(msg tea.Msg) (tea.Model, tea.Cmd) {
	sel, cmd := m.modeSelector.Update(msg)
	m.modeSelector = &sel

	if sel.Cancelled() {
		m.modeSelector = nil
		return m, nil
	}
	if sel.Confirmed() {
		m.mode = sel.Selected()
		m.modeSelector = nil
		m.applyPlaceholders()
		m.recompute()
		return m, nil
	}
	return m, cmd
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	set, cmd := m.settings.Update(msg)
	m.settings = &set

	if set.Cancelled() {
		m.settings = nil
		return m, nil
	}
	if set.Submitted() {
		m.ratios = set.Ratios()
		m.settings = nil
		m.recompute()
		return m.flashStatus("ratios updated")
	}
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	m.recompute()
}

// swapDirection flips the mode and exchanges the field values, so the
// numbers on screen stay attached to their units.
func (m *Model) swapDirection() {
	m.mode = convert.Invert(m.mode)
	left, right := m.inputs[0].Value(), m.inputs[1].Value()
	m.inputs[0].SetValue(right)
	m.inputs[1].SetValue(left)
	m.applyPlaceholders()
	m.recompute()
}

func (m *Model) applyPlaceholders() {
	ls := convert.Labels(m.mode)
	m.inputs[0].Placeholder = ls.Placeholder1
	m.inputs[1].Placeholder = ls.Placeholder2
}

// recompute re-derives the counterpart field from the focused one. The
// left field is the mode's declared direction, the right one the reverse.
// Unparseable input leaves the counterpart blank rather than erroring.
func (m *Model) recompute() {
	src, dst := m.focus, 1-m.focus

	v, err := ParseValue(m.inputs[src].Value())
	if err != nil {
		m.inputs[dst].SetValue("")
		return
	}

	var result float64
	if src == 0 {
		result = convert.Direct(m.mode, v, m.ratios)
	} else {
		result = convert.Reverse(m.mode, v, m.ratios)
	}
	m.inputs[dst].SetValue(FormatValue(result))
}

// copyResult puts the counterpart of the focused field on the clipboard.
func (m Model) copyResult() (tea.Model, tea.Cmd) {
	text := m.inputs[1-m.focus].Value()
	if text == "" {
		return m.flashStatus("nothing to copy")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return m.flashStatus("clipboard unavailable")
	}
	return m.flashStatus("copied " + text)
}

func (m Model) flashStatus(msg string) (tea.Model, tea.Cmd) {
	m.statusMsg = msg
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(statusFlashDuration, func(time.Time) tea.Msg {
		return statusExpireMsg{seq: seq}
	})
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.help.IsVisible() {
		return m.help.View()
	}
	if m.modeSelector != nil {
		return m.modeSelector.View()
	}
	if m.settings != nil {
		return m.settings.View()
	}

	t := m.theme
	ls := convert.Labels(m.mode)

	titleStyle := t.Renderer.NewStyle().
		Bold(true).
		Foreground(t.Primary)
	arrowStyle := t.Renderer.NewStyle().
		Foreground(t.Muted).
		Padding(1, SpaceSM, 0, SpaceSM)

	header := titleStyle.Render("converto") +
		t.Renderer.NewStyle().Foreground(t.Muted).Render("  ·  "+m.mode.DisplayName())

	left := m.renderField(0, ls.Label1)
	right := m.renderField(1, ls.Label2)

	var fields string
	if m.width > 0 && m.width < BreakpointNarrow {
		fields = lipgloss.JoinVertical(lipgloss.Left, left, right)
	} else {
		fields = lipgloss.JoinHorizontal(lipgloss.Top, left, arrowStyle.Render("⇄"), right)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(fields)
	b.WriteString("\n")
	b.WriteString(RenderDivider(lipgloss.Width(fields)))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	body := t.Renderer.NewStyle().Padding(1, 2).Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

func (m Model) renderField(i int, label string) string {
	t := m.theme
	focused := i == m.focus

	badge := RenderUnitBadge(label, focused, t)
	box := t.PanelStyle()
	if focused {
		box = t.FocusedPanelStyle()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		badge,
		box.Padding(0, 1).Render(m.inputs[i].View()),
	)
}

func (m Model) renderFooter() string {
	t := m.theme

	if m.statusMsg != "" {
		return t.Renderer.NewStyle().
			Foreground(t.Success).
			Render("✓ " + m.statusMsg)
	}
	return t.Renderer.NewStyle().
		Foreground(t.Muted).
		Render("tab field · s swap · m mode · o ratios · c copy · ? help · q quit")
}
