package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Raw      lipgloss.Style
	Error    lipgloss.Style
	Faint    lipgloss.Style
	Box      lipgloss.Style
}

func defaultStyles() Styles {
	base := lipgloss.NewStyle()
	return Styles{
		Title:    base.Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Subtitle: base.Faint(true),
		Label:    base.Foreground(lipgloss.Color("#A3A3A3")).Width(9),
		Value:    base.Foreground(lipgloss.Color("#22C55E")),
		Raw:      base.Foreground(lipgloss.Color("#60A5FA")),
		Error:    base.Foreground(lipgloss.Color("#EF4444")),
		Faint:    base.Faint(true),
		Box:      base.Padding(0, 1),
	}
}
