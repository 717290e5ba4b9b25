package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-tabpfn-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel creates an account. The password policy of the service is
// fetched on Init and listed above the form.
type RegisterModel struct {
	ctx  context.Context
	auth Authenticator
	form credentialForm

	policy []string
}

// NewRegisterModel returns the registration page.
func NewRegisterModel(ctx context.Context, auth Authenticator) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newCredentialForm(
			newField("Email", "you@example.com", 254, false),
			newField("Password", "password", 256, true),
			newField("Repeat password", "password", 256, true),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	ctx, auth := m.ctx, m.auth
	loadPolicy := func() tea.Msg {
		reqs, err := auth.PasswordPolicy(ctx)
		return passwordPolicyMsg{requirements: reqs, err: err}
	}
	return tea.Batch(textinput.Blink, loadPolicy)
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case passwordPolicyMsg:
		if msg.err == nil {
			m.policy = msg.requirements
		}
		return m, nil

	case RegisterResult:
		if msg.Err != nil {
			m.form.fail(humanizeServerUnavailableError(msg.Err))
		}
		return m, nil

	case tea.KeyMsg:
		if m.form.handleKey(msg) {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			m.form.fail("")
			return m, navigate(pageMenu)
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	return m, m.form.updateFocused(msg)
}

func (m *RegisterModel) submit() tea.Cmd {
	if m.form.submitting {
		return nil
	}

	reg := models.Registration{
		Email:           strings.TrimSpace(m.form.value(0)),
		Password:        m.form.value(1),
		PasswordConfirm: m.form.value(2),
	}
	switch {
	case reg.Email == "" || reg.Password == "" || reg.PasswordConfirm == "":
		m.form.fail("All fields are required")
		return nil
	case reg.Password != reg.PasswordConfirm:
		m.form.fail("Passwords do not match")
		return nil
	}

	m.form.start()
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		message, err := auth.Register(ctx, reg)
		return RegisterResult{Email: reg.Email, Message: message, Err: err}
	}
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	if len(m.policy) > 0 {
		b.WriteString("Password requirements:\n")
		for _, req := range m.policy {
			b.WriteString("  • " + req + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(m.form.render("Create account", "Creating account..."))

	return renderPage("Create an account", b.String(), "esc back · tab next field · enter submit")
}
