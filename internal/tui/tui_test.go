package tui

import (
	"bytes"
	"context"
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/MKhiriev/go-tabpfn-client/internal/app"
	"github.com/MKhiriev/go-tabpfn-client/internal/logger"
	"github.com/MKhiriev/go-tabpfn-client/internal/mock"
	"github.com/MKhiriev/go-tabpfn-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeInto(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

func newTestAgent(out *bytes.Buffer, input string) *PromptAgent {
	return NewPromptAgent(logger.Nop(),
		WithOutput(out),
		WithProgramOptions(tea.WithInput(strings.NewReader(input)), tea.WithoutRenderer()),
	)
}

// ── PromptAgent output ───────────────────────────────────────────────────────

func TestPromptAgent_Notices(t *testing.T) {
	var out bytes.Buffer
	agent := newTestAgent(&out, "")

	agent.PromptWelcome()
	assert.Contains(t, out.String(), app.MsgWelcome)

	out.Reset()
	agent.PromptReusingExistingToken()
	assert.Contains(t, out.String(), app.MsgReusingToken)
}

func TestPromptAgent_GreetingMessages(t *testing.T) {
	var out bytes.Buffer
	agent := newTestAgent(&out, "")

	agent.PromptRetrievedGreetingMessages(nil)
	assert.Empty(t, out.String())

	agent.PromptRetrievedGreetingMessages([]string{"new model released"})
	assert.Contains(t, out.String(), app.MsgGreetingHeader)
	assert.Contains(t, out.String(), "new model released")
}

func TestPromptAgent_TermsAndConditions(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		wantErr error
	}{
		{name: "accepted", input: "y", want: true},
		{name: "declined", input: "n", want: false},
		{name: "ctrl+c", input: "\x03", wantErr: ErrUserQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			agent := newTestAgent(&out, tt.input)

			got, err := agent.PromptTermsAndConditions(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── confirmModel ─────────────────────────────────────────────────────────────

func TestConfirmModel_IgnoresOtherKeys(t *testing.T) {
	m := newTermsModel()

	updated, cmd := m.Update(keyRunes("x"))
	assert.Nil(t, cmd)
	assert.False(t, updated.(confirmModel).answered)
	assert.Contains(t, updated.View(), app.MsgTermsQuestion)
}

// ── authFlow routing ─────────────────────────────────────────────────────────

func newTestFlow(t *testing.T, auth Authenticator) authFlow {
	t.Helper()
	ctx := context.Background()
	pages := map[page]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, auth),
		pageRegister: NewRegisterModel(ctx, auth),
	}
	return newAuthFlow(pages, pageMenu, models.NewAppBuildInfo("1.0.0", "", ""))
}

func TestAuthFlow_MenuNavigation(t *testing.T) {
	ctrl := gomock.NewController(t)
	flow := newTestFlow(t, mock.NewMockUserAuthService(ctrl))

	updated, cmd := flow.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)

	updated, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageRegister}, cmd())

	updated, _ = updated.Update(NavigateTo{Page: pageLogin})
	assert.Equal(t, pageLogin, updated.(authFlow).current)

	updated, _ = updated.Update(NavigateTo{Page: page(42)})
	assert.Equal(t, pageLogin, updated.(authFlow).current)
}

func TestAuthFlow_BuildInfoToggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	flow := newTestFlow(t, mock.NewMockUserAuthService(ctrl))

	updated, _ := flow.Update(keyRunes("v"))
	assert.Contains(t, updated.View(), "1.0.0")

	updated, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	assert.Contains(t, updated.View(), "1.0.0")

	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, updated.View(), "1.0.0")
}

func TestAuthFlow_VersionKeyOnlyOnMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	flow := newTestFlow(t, mock.NewMockUserAuthService(ctrl))

	updated, _ := flow.Update(NavigateTo{Page: pageLogin})
	updated, _ = updated.Update(keyRunes("v"))
	assert.False(t, updated.(authFlow).showBuildInfo)
}

func TestAuthFlow_CtrlC(t *testing.T) {
	ctrl := gomock.NewController(t)
	flow := newTestFlow(t, mock.NewMockUserAuthService(ctrl))

	updated, cmd := flow.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, updated.(authFlow).outcome.quit)
}

func TestAuthFlow_FinishesOnResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	flow := newTestFlow(t, mock.NewMockUserAuthService(ctrl))

	updated, cmd := flow.Update(LoginResult{Email: "a@b.c"})
	require.NotNil(t, cmd)
	assert.Equal(t, authOutcome{email: "a@b.c"}, updated.(authFlow).outcome)
	assert.Empty(t, updated.View())

	updated, cmd = newTestFlow(t, mock.NewMockUserAuthService(ctrl)).
		Update(RegisterResult{Email: "n@b.c", Message: "verify your email"})
	require.NotNil(t, cmd)
	assert.Equal(t, authOutcome{email: "n@b.c", notice: "verify your email"}, updated.(authFlow).outcome)
}

func TestAuthFlow_LoginErrorStaysOnPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	flow := newTestFlow(t, mock.NewMockUserAuthService(ctrl))
	updated, _ := flow.Update(NavigateTo{Page: pageLogin})

	updated, _ = updated.Update(LoginResult{Email: "a@b.c", Err: errors.New("dial tcp 127.0.0.1: connection refused")})
	assert.Empty(t, updated.(authFlow).outcome.email)
	assert.Contains(t, updated.View(), "service is unavailable")
}

func TestHumanizeServerUnavailableError(t *testing.T) {
	assert.Empty(t, humanizeServerUnavailableError(nil))
	assert.Equal(t, msgNoConnection, humanizeServerUnavailableError(context.DeadlineExceeded))
	assert.Equal(t, msgNoConnection, humanizeServerUnavailableError(&net.OpError{Op: "dial", Err: errors.New("refused")}))
	assert.Equal(t, "wrong password", humanizeServerUnavailableError(errors.New("wrong password")))
}

// ── LoginModel ───────────────────────────────────────────────────────────────

func TestLoginModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockUserAuthService(ctrl)
	ctx := context.Background()

	var m tea.Model = NewLoginModel(ctx, auth)
	m = typeInto(m, "a@b.c")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "pw")

	auth.EXPECT().Login(ctx, "a@b.c", "pw").Return(nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, LoginResult{Email: "a@b.c"}, cmd())
}

func TestLoginModel_RequiresFields(t *testing.T) {
	ctrl := gomock.NewController(t)

	var m tea.Model = NewLoginModel(context.Background(), mock.NewMockUserAuthService(ctrl))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Email and password are required")
}

// ── RegisterModel ────────────────────────────────────────────────────────────

func TestRegisterModel_ShowsPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)

	var m tea.Model = NewRegisterModel(context.Background(), mock.NewMockUserAuthService(ctrl))
	m, _ = m.Update(passwordPolicyMsg{requirements: []string{"At least 8 characters"}})
	assert.Contains(t, m.View(), "At least 8 characters")
}

func TestRegisterModel_PasswordsMustMatch(t *testing.T) {
	ctrl := gomock.NewController(t)

	var m tea.Model = NewRegisterModel(context.Background(), mock.NewMockUserAuthService(ctrl))
	m = typeInto(m, "a@b.c")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "one")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "two")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Passwords do not match")
}

func TestRegisterModel_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockUserAuthService(ctrl)
	ctx := context.Background()

	var m tea.Model = NewRegisterModel(ctx, auth)
	m = typeInto(m, "a@b.c")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "secret")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeInto(m, "secret")

	auth.EXPECT().Register(ctx, models.Registration{
		Email: "a@b.c", Password: "secret", PasswordConfirm: "secret",
	}).Return("check your inbox", nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, RegisterResult{Email: "a@b.c", Message: "check your inbox"}, cmd())
}
