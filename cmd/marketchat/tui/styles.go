package tui

import "github.com/charmbracelet/lipgloss"

// Styles collects the lipgloss styles for the chat screen.
type Styles struct {
	UserLabel      lipgloss.Style
	AssistantLabel lipgloss.Style
	Heading        lipgloss.Style
	Emphasis       lipgloss.Style
	Currency       lipgloss.Style
	Bullet         lipgloss.Style
	Muted          lipgloss.Style
	Citation       lipgloss.Style
	Card           lipgloss.Style
	CardTitle      lipgloss.Style
	Hint           lipgloss.Style
}

// DefaultStyles returns the standard theme.
func DefaultStyles() Styles {
	return Styles{
		UserLabel:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		AssistantLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Heading:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Emphasis:       lipgloss.NewStyle().Bold(true),
		Currency:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		Bullet:         lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Muted:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Citation:       lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Underline(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().Bold(true),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("105")),
	}
}
