// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive prompts shown while a tabpfn session
// is initialized: the welcome banner, the terms and conditions question, the
// login or register flow and the greeting messages of the service.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-tabpfn-client/internal/app"
	"github.com/MKhiriev/go-tabpfn-client/internal/logger"
	"github.com/MKhiriev/go-tabpfn-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Authenticator is the part of the auth collaborator the login flow needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, reg models.Registration) (string, error)
	PasswordPolicy(ctx context.Context) ([]string, error)
}

// PromptAgent prints notices to out and runs Bubble Tea programs for the
// interactive questions.
type PromptAgent struct {
	out       io.Writer
	buildInfo models.AppBuildInfo
	options   []tea.ProgramOption

	logger *logger.Logger
}

// Option customises a [PromptAgent].
type Option func(*PromptAgent)

// WithOutput redirects notices and programs to w.
func WithOutput(w io.Writer) Option {
	return func(p *PromptAgent) { p.out = w }
}

// WithBuildInfo sets the build info shown by the version hotkey.
func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(p *PromptAgent) { p.buildInfo = info }
}

// WithProgramOptions appends options to every Bubble Tea program started by
// the agent, e.g. [tea.WithInput] in tests.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(p *PromptAgent) { p.options = append(p.options, opts...) }
}

// NewPromptAgent returns a [PromptAgent] writing to stdout.
func NewPromptAgent(log *logger.Logger, opts ...Option) *PromptAgent {
	p := &PromptAgent{
		out:       os.Stdout,
		buildInfo: models.NewAppBuildInfo("", "", ""),
		logger:    log,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PromptWelcome prints the welcome banner.
func (p *PromptAgent) PromptWelcome() {
	fmt.Fprintln(p.out, renderWelcome())
}

// PromptReusingExistingToken tells the user a cached token is used.
func (p *PromptAgent) PromptReusingExistingToken() {
	fmt.Fprintln(p.out, okStyle.Render(app.MsgReusingToken))
}

// PromptTermsAndConditions shows the terms and reports whether the user
// accepted them. Leaving with ctrl+c yields [ErrUserQuit].
func (p *PromptAgent) PromptTermsAndConditions(ctx context.Context) (bool, error) {
	finalModel, err := p.run(ctx, newTermsModel())
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}
	return result.accepted, nil
}

// PromptAndSetToken runs the login or register flow against auth and returns
// the email of the authenticated account.
func (p *PromptAgent) PromptAndSetToken(ctx context.Context, auth Authenticator) (string, error) {
	pages := map[page]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, auth),
		pageRegister: NewRegisterModel(ctx, auth),
	}

	finalModel, err := p.run(ctx, newAuthFlow(pages, pageMenu, p.buildInfo), tea.WithAltScreen())
	if err != nil {
		return "", err
	}

	flow, ok := finalModel.(authFlow)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	result := flow.outcome
	if result.quit || result.email == "" {
		return "", ErrUserQuit
	}

	if result.notice != "" {
		fmt.Fprintln(p.out, result.notice)
		fmt.Fprintln(p.out, app.MsgVerifyEmail)
	}
	p.logger.Info().Str("email", result.email).Msg("user authenticated")
	return result.email, nil
}

// PromptRetrievedGreetingMessages prints messages. Nothing is printed for an
// empty list.
func (p *PromptAgent) PromptRetrievedGreetingMessages(messages []string) {
	if len(messages) == 0 {
		return
	}
	fmt.Fprintln(p.out, renderGreetingMessages(messages))
}

func (p *PromptAgent) run(ctx context.Context, model tea.Model, extra ...tea.ProgramOption) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(p.out)}
	opts = append(opts, extra...)
	opts = append(opts, p.options...)

	finalModel, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}
	return finalModel, nil
}
