package tui

import (
	"github.com/MKhiriev/go-tabpfn-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// authOutcome is what the flow leaves behind when it quits.
type authOutcome struct {
	email  string
	notice string
	quit   bool
}

// authFlow routes between the menu, login and register pages. It owns the
// global hotkeys and quits once a login or registration succeeded.
type authFlow struct {
	pages   map[page]tea.Model
	current page

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	outcome authOutcome
}

func newAuthFlow(pages map[page]tea.Model, start page, buildInfo models.AppBuildInfo) authFlow {
	return authFlow{pages: pages, current: start, buildInfo: buildInfo}
}

func (f authFlow) active() tea.Model {
	return f.pages[f.current]
}

func (f authFlow) Init() tea.Cmd {
	if m := f.active(); m != nil {
		return m.Init()
	}
	return nil
}

func (f authFlow) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if next, cmd, handled := f.handleHotkey(msg); handled {
			return next, cmd
		}

	case NavigateTo:
		target, ok := f.pages[msg.Page]
		if !ok {
			return f, nil
		}
		f.current, f.showBuildInfo = msg.Page, false
		if msg.Payload != nil {
			payload := msg.Payload
			return f, func() tea.Msg { return payload }
		}
		return f, target.Init()

	case LoginResult:
		if msg.Err == nil {
			f.outcome.email = msg.Email
			return f, tea.Quit
		}

	case RegisterResult:
		if msg.Err == nil {
			f.outcome.email, f.outcome.notice = msg.Email, msg.Message
			return f, tea.Quit
		}
	}

	m := f.active()
	if m == nil {
		return f, nil
	}
	updated, cmd := m.Update(msg)
	f.pages[f.current] = updated
	return f, cmd
}

// handleHotkey processes keys that work on every page. While the build info
// window is open it swallows all other keys.
func (f authFlow) handleHotkey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.quit):
		f.outcome.quit = true
		return f, tea.Quit, true
	case key.Matches(msg, keys.version) && f.current == pageMenu:
		f.showBuildInfo = !f.showBuildInfo
		return f, nil, true
	case key.Matches(msg, keys.esc) && f.showBuildInfo:
		f.showBuildInfo = false
		return f, nil, true
	}
	return f, nil, f.showBuildInfo
}

func (f authFlow) View() string {
	switch {
	case f.outcome.email != "":
		return ""
	case f.showBuildInfo:
		return renderBuildInfoWindow(f.buildInfo)
	}
	if m := f.active(); m != nil {
		return m.View()
	}
	return renderPage("TabPFN", "", "")
}
