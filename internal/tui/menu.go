package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// page identifies a screen of the authentication flow.
type page int

const (
	pageMenu page = iota
	pageLogin
	pageRegister
)

type menuItem struct {
	label  string
	target page
}

// MenuModel lets the user choose between logging in and registering.
type MenuModel struct {
	items  []menuItem
	cursor int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{label: "Log in", target: pageLogin},
			{label: "Create an account", target: pageRegister},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(keyMsg, keys.down):
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case key.Matches(keyMsg, keys.enter):
		return m, navigate(m.items[m.cursor].target)
	}
	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(okStyle.Render("> " + item.label))
		} else {
			b.WriteString("  " + item.label)
		}
		b.WriteString("\n")
	}
	return renderPage("TabPFN account", b.String(), "↑/↓ move · enter select · v version")
}
