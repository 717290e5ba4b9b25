package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	dividerStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false).Padding(1, 0)
	bannerStyle     = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Border(lipgloss.DoubleBorder()).
			Padding(0, 2)
)
