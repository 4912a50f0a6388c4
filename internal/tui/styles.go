package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	titleStyle  = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	toggleStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
	textStyle   = lipgloss.NewStyle().Foreground(colorText)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorStatusBarBg)
	footerStyle = lipgloss.NewStyle().
			Background(colorFooterBg)
)
