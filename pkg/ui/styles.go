package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Consistent spacing, colors, and visual language
// ══════════════════════════════════════════════════════════════════════════════

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
)

// Layout breakpoints for responsive design.
const (
	// BreakpointNarrow is the width below which the two value fields stack
	// vertically instead of sitting side by side.
	BreakpointNarrow = 64

	// MinFieldWidth is the minimum width for a value input box.
	MinFieldWidth = 16
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired with extended semantic colors
// ══════════════════════════════════════════════════════════════════════════════

var (
	// Base colors
	ColorBg          = lipgloss.Color("#282A36")
	ColorBgSubtle    = lipgloss.Color("#363949")
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorMuted       = lipgloss.Color("#6272A4")

	// Accent colors
	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorInfo    = lipgloss.Color("#8BE9FD")
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorWarning = lipgloss.Color("#FFB86C")
	ColorDanger  = lipgloss.Color("#FF5555")
)

// Theme carries the renderer and the semantic colors the widgets draw with.
// Widgets build styles through theme.Renderer so output degrades correctly
// on dumb terminals.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary lipgloss.Color
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color
}

// DefaultTheme returns the standard theme bound to the default renderer.
func DefaultTheme() Theme {
	return Theme{
		Renderer:    lipgloss.DefaultRenderer(),
		Primary:     ColorPrimary,
		Text:        ColorText,
		Subtext:     ColorSubtext,
		Muted:       ColorMuted,
		Success:     ColorSuccess,
		Warning:     ColorWarning,
		Danger:      ColorDanger,
		Border:      ColorBgHighlight,
		BorderFocus: ColorPrimary,
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// PANEL STYLES
// ══════════════════════════════════════════════════════════════════════════════

// PanelStyle is the default style for unfocused panels
func (t Theme) PanelStyle() lipgloss.Style {
	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)
}

// FocusedPanelStyle is the style for focused panels
func (t Theme) FocusedPanelStyle() lipgloss.Style {
	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus)
}

// RenderDivider renders a horizontal divider line
func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(ColorBgHighlight).
		Render(strings.Repeat("─", width))
}

// RenderUnitBadge returns a styled unit label badge like "PX" or "REM"
func RenderUnitBadge(label string, focused bool, t Theme) string {
	fg, bg := t.Muted, lipgloss.Color("")
	if focused {
		fg, bg = t.Primary, ColorBgSubtle
	}
	return t.Renderer.NewStyle().
		Foreground(fg).
		Background(bg).
		Bold(focused).
		Padding(0, 1).
		Render(label)
}
