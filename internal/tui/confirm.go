package tui

import (
	"github.com/MKhiriev/go-tabpfn-client/internal/app"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel asks a yes/no question and quits on the first answer.
type confirmModel struct {
	message  string
	question string

	answered   bool
	accepted   bool
	quitByUser bool
}

func newTermsModel() confirmModel {
	return confirmModel{message: app.MsgTermsAndConditions, question: app.MsgTermsQuestion}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.yes):
		m.answered, m.accepted = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.answered, m.accepted = true, false
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	if m.answered {
		return ""
	}
	content := m.message + "\n\n" + m.question + "\n\ny yes    n no"
	return overlayBoxStyle.Render(content)
}
