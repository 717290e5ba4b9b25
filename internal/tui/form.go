package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// formField is one labelled input of a credentialForm.
type formField struct {
	label string
	input textinput.Model
}

func newField(label, placeholder string, limit int, secret bool) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return formField{label: label, input: in}
}

// credentialForm holds the inputs shared by the login and register pages:
// focus handling, submit state and the inline error line.
type credentialForm struct {
	fields     []formField
	focus      int
	submitting bool
	errMsg     string
}

func newCredentialForm(fields ...formField) credentialForm {
	f := credentialForm{fields: fields}
	f.fields[0].input.Focus()
	return f
}

func (f *credentialForm) value(i int) string {
	return f.fields[i].input.Value()
}

// handleKey moves focus on tab and shift+tab. It reports whether the key was
// consumed.
func (f *credentialForm) handleKey(msg tea.KeyMsg) bool {
	step := 0
	switch {
	case key.Matches(msg, keys.tab):
		step = 1
	case key.Matches(msg, keys.backtab):
		step = -1
	default:
		return false
	}

	n := len(f.fields)
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + step + n) % n
	f.fields[f.focus].input.Focus()
	return true
}

// updateFocused forwards msg to the focused input.
func (f *credentialForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *credentialForm) fail(msg string) {
	f.submitting = false
	f.errMsg = msg
}

func (f *credentialForm) start() {
	f.submitting = true
	f.errMsg = ""
}

func (f *credentialForm) render(action, pending string) string {
	width := 0
	for _, field := range f.fields {
		width = max(width, lipgloss.Width(field.label))
	}

	var b strings.Builder
	for _, field := range f.fields {
		fmt.Fprintf(&b, "%-*s  %s\n", width, field.label, field.input.View())
	}

	b.WriteString("\n")
	if f.submitting {
		b.WriteString(helpStyle.Render(pending))
	} else {
		b.WriteString("[" + action + "]")
	}

	if f.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(f.errMsg))
	}
	return b.String()
}
