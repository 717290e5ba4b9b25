package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderPage lays out a full-screen page: title, body, key hints and the
// global quit hint.
func renderPage(title, body, hints string) string {
	body = strings.TrimRight(body, "\n")
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	footer := "ctrl+c quit"
	if hints != "" {
		footer = hints + " · " + footer
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(strings.ToUpper(title)),
		dividerStyle.Render(body),
		helpStyle.Render(footer),
	))
}
