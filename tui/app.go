// Package tui is the terminal front end: one Bubble Tea model, one mode per
// view, all backend work done through tea.Cmd closures that resolve to typed
// messages.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bebric123/MedAnalyzer/api"
	"github.com/Bebric123/MedAnalyzer/model"
	"github.com/Bebric123/MedAnalyzer/poller"
	"github.com/Bebric123/MedAnalyzer/session"
)

type mode int

const (
	modeLogin mode = iota
	modeRegister
	modeReset
	modeUpload
	modeStatus
	modeResults
	modeHistory
	modeJournal
)

// AuthExpiredMsg is sent from outside the program when a request hit a 401
// and the session store was cleared.
type AuthExpiredMsg struct{}

type Model struct {
	client        *api.Client
	store         *session.Store
	pollInterval  time.Duration
	redirectDelay time.Duration

	mode     mode
	width    int
	height   int
	user     model.User
	notice   string
	quitting bool

	login    loginForm
	register registerForm
	reset    resetForm
	upload   uploadForm
	status   statusState
	results  resultsState
	history  historyState
	journal  journalState
}

// NewModel builds the app. When a persisted session is still valid the user
// lands on the upload view directly.
func NewModel(client *api.Client, store *session.Store, pollInterval, redirectDelay time.Duration) Model {
	m := Model{
		client:        client,
		store:         store,
		pollInterval:  pollInterval,
		redirectDelay: redirectDelay,
		width:         100,
		height:        30,
		login:         newLoginForm(),
		register:      newRegisterForm(),
		reset:         newResetForm(),
		upload:        newUploadForm(),
		history:       newHistoryState(),
		journal:       newJournalState(),
	}
	if store.Authenticated() {
		m.mode = modeUpload
		m.user = store.User()
		m.upload.focusFirst()
	} else {
		m.mode = modeLogin
		m.login.focusFirst()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.mode == modeUpload {
		return tea.Batch(textBlink(), m.prefetchCmd())
	}
	return textBlink()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case AuthExpiredMsg:
		return m.toLogin("Session expired, please sign in again")

	case prefetchMsg:
		if msg.err == nil {
			m.history.list = msg.diseases
			m.journal.entries = msg.entries
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.stopPolling()
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.mode {
	case modeLogin:
		return m.updateLogin(msg)
	case modeRegister:
		return m.updateRegister(msg)
	case modeReset:
		return m.updateReset(msg)
	case modeUpload:
		return m.updateUpload(msg)
	case modeStatus:
		return m.updateStatus(msg)
	case modeResults:
		return m.updateResults(msg)
	case modeHistory:
		return m.updateHistory(msg)
	case modeJournal:
		return m.updateJournal(msg)
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTitleBar())
	b.WriteString("\n\n")

	switch m.mode {
	case modeLogin:
		b.WriteString(m.viewLogin())
	case modeRegister:
		b.WriteString(m.viewRegister())
	case modeReset:
		b.WriteString(m.viewReset())
	case modeUpload:
		b.WriteString(m.viewUpload())
	case modeStatus:
		b.WriteString(m.viewStatus())
	case modeResults:
		b.WriteString(m.viewResults())
	case modeHistory:
		b.WriteString(m.viewHistory())
	case modeJournal:
		b.WriteString(m.viewJournal())
	}

	return b.String()
}

func (m Model) renderTitleBar() string {
	title := titleStyle.Render("MedAnalyzer")
	var right string
	if m.authenticated() {
		who := m.user.Name
		if who == "" {
			who = m.user.Email
		}
		right = dimStyle.Render("  " + who + "  F1: upload  F2: history  F3: journal")
	}
	line := title + right
	if m.notice != "" {
		line += "\n" + noticeStyle.Render("  "+m.notice)
	}
	return line
}

func (m Model) authenticated() bool {
	switch m.mode {
	case modeLogin, modeRegister, modeReset:
		return false
	}
	return true
}

// handleNav processes the shared view-switch and logout keys used by every
// authenticated list view. The bool reports whether the key was consumed.
func (m Model) handleNav(key string) (Model, tea.Cmd, bool) {
	switch key {
	case "f1":
		next := m.toUpload()
		return next, nil, true
	case "f2":
		next, cmd := m.toHistory()
		return next, cmd, true
	case "f3":
		next, cmd := m.toJournal()
		return next, cmd, true
	case "ctrl+l":
		next, cmd := m.logout()
		return next, cmd, true
	}
	return m, nil, false
}

func (m Model) toUpload() Model {
	m.stopPolling()
	m.mode = modeUpload
	m.notice = ""
	m.upload.focusFirst()
	return m
}

func (m Model) toLogin(notice string) (Model, tea.Cmd) {
	m.stopPolling()
	m.mode = modeLogin
	m.user = model.User{}
	m.notice = notice
	m.login = newLoginForm()
	m.login.focusFirst()
	return m, textBlink()
}

func (m Model) logout() (Model, tea.Cmd) {
	client := m.client
	next, cmd := m.toLogin("Signed out")
	return next, tea.Batch(cmd, func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		_ = client.Logout(ctx)
		return nil
	})
}

// stopPolling cancels the live poller, if any. Safe to call from any view.
func (m *Model) stopPolling() {
	if m.status.cancel != nil {
		m.status.cancel()
		m.status.cancel = nil
		m.status.updates = nil
	}
}

func (m Model) newPoller() *poller.Poller {
	return poller.New(m.client, m.pollInterval)
}
