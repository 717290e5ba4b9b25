// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel asks for email and password and calls Authenticator.Login. The
// resulting [LoginResult] ends the flow on success.
type LoginModel struct {
	ctx  context.Context
	auth Authenticator
	form credentialForm
}

// NewLoginModel returns the login page with the email field focused.
func NewLoginModel(ctx context.Context, auth Authenticator) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newCredentialForm(
			newField("Email", "you@example.com", 254, false),
			newField("Password", "password", 256, true),
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
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

func (m *LoginModel) submit() tea.Cmd {
	if m.form.submitting {
		return nil
	}

	email := strings.TrimSpace(m.form.value(0))
	password := m.form.value(1)
	if email == "" || password == "" {
		m.form.fail("Email and password are required")
		return nil
	}

	m.form.start()
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		return LoginResult{Email: email, Err: auth.Login(ctx, email, password)}
	}
}

func (m *LoginModel) View() string {
	return renderPage("Log in", m.form.render("Log in", "Logging in..."), "esc back · tab next field · enter submit")
}
