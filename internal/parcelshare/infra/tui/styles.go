package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#2196F3")
	colorAccent  = lipgloss.Color("#8BC34A")
	colorDanger  = lipgloss.Color("#e53935")
	colorWarning = lipgloss.Color("#FFC107")
	colorMuted   = lipgloss.Color("#8a94a6")
)

type Styles struct {
	Brand      lipgloss.Style
	Link       lipgloss.Style
	ActiveLink lipgloss.Style
	Welcome    lipgloss.Style
	Title      lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Badge      lipgloss.Style
	Urgent     lipgloss.Style
	Label      lipgloss.Style
	Input      lipgloss.Style
	Spinner    lipgloss.Style
	Help       lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Brand:      lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).PaddingRight(2),
		Link:       lipgloss.NewStyle().PaddingRight(2),
		ActiveLink: lipgloss.NewStyle().PaddingRight(2).Bold(true).Underline(true).Foreground(colorAccent),
		Welcome:    lipgloss.NewStyle().Italic(true).Foreground(colorMuted),
		Title:      lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Error:      lipgloss.NewStyle().Foreground(colorDanger).Border(lipgloss.RoundedBorder()).BorderForeground(colorDanger).Padding(0, 1),
		Success:    lipgloss.NewStyle().Foreground(colorAccent).Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1),
		Muted:      lipgloss.NewStyle().Foreground(colorMuted),
		Selected:   lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Badge:      lipgloss.NewStyle().Foreground(colorPrimary),
		Urgent:     lipgloss.NewStyle().Bold(true).Foreground(colorWarning),
		Label:      lipgloss.NewStyle().Width(24).Foreground(colorMuted),
		Input:      lipgloss.NewStyle().Foreground(colorAccent),
		Spinner:    lipgloss.NewStyle().Foreground(colorPrimary),
		Help:       lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
	}
}

// PlainStyles renders without colors or borders, for non-interactive output.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Brand:      plain.PaddingRight(2),
		Link:       plain.PaddingRight(2),
		ActiveLink: plain.PaddingRight(2),
		Welcome:    plain,
		Title:      plain.MarginBottom(1),
		Error:      plain,
		Success:    plain,
		Muted:      plain,
		Selected:   plain,
		Badge:      plain,
		Urgent:     plain,
		Label:      plain.Width(24),
		Input:      plain,
		Spinner:    plain,
		Help:       plain.MarginTop(1),
	}
}
