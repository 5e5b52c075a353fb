package tui

import "github.com/charmbracelet/lipgloss"

// palette holds the semantic colors of one theme.
type palette struct {
	accent  lipgloss.Color
	text    lipgloss.Color
	muted   lipgloss.Color
	success lipgloss.Color
	danger  lipgloss.Color
	surface lipgloss.Color
}

var darkPalette = palette{
	accent:  lipgloss.Color("#89b4fa"),
	text:    lipgloss.Color("#cdd6f4"),
	muted:   lipgloss.Color("#6c7086"),
	success: lipgloss.Color("#a6e3a1"),
	danger:  lipgloss.Color("#f38ba8"),
	surface: lipgloss.Color("#313244"),
}

var lightPalette = palette{
	accent:  lipgloss.Color("#1e66f5"),
	text:    lipgloss.Color("#4c4f69"),
	muted:   lipgloss.Color("#9ca0b0"),
	success: lipgloss.Color("#40a02b"),
	danger:  lipgloss.Color("#d20f39"),
	surface: lipgloss.Color("#ccd0da"),
}

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

func (p palette) titleBar() lipgloss.Style {
	return titleStyle.Foreground(p.accent)
}

func (p palette) errorText() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(p.danger)
}

func (p palette) statusText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.success)
}

func (p palette) activeTab() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(p.accent).Underline(true)
}

func (p palette) inactiveTab() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.muted)
}
