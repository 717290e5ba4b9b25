package tui

import tea "github.com/charmbracelet/bubbletea"

// NavigateTo asks the flow to show Page. A non-nil Payload is delivered to
// the new page instead of calling its Init.
type NavigateTo struct {
	Page    page
	Payload tea.Msg
}

func navigate(p page) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: p} }
}

// LoginResult is produced by the login command.
type LoginResult struct {
	Email string
	Err   error
}

// RegisterResult is produced by the registration command. Message is the
// notice returned by the service.
type RegisterResult struct {
	Email   string
	Message string
	Err     error
}

type passwordPolicyMsg struct {
	requirements []string
	err          error
}
