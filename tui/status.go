package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bebric123/MedAnalyzer/api"
	"github.com/Bebric123/MedAnalyzer/model"
	"github.com/Bebric123/MedAnalyzer/poller"
)

type statusState struct {
	sessionID   string
	session     model.AnalysisSession
	seen        bool // at least one status reply arrived
	spin        spinner.Model
	prog        progress.Model
	updates     <-chan poller.Update
	cancel      context.CancelFunc
	err         *api.Error
	redirecting bool
}

// pollUpdateMsg carries one poller observation into the event loop.
type pollUpdateMsg struct {
	update poller.Update
	ok     bool // false once the poller channel has closed
}

// resultRedirectMsg fires after the post-completion delay. It carries the
// session it was scheduled for so a timer outliving its session is inert.
type resultRedirectMsg struct {
	sessionID string
	fileID    string
}

// retryStartedMsg reports the outcome of asking the backend to re-run a
// failed analysis.
type retryStartedMsg struct {
	sessionID string
	err       error
}

// enterStatus switches to the polling view for a session, cancelling any
// poller left over from a previous session id.
func (m Model) enterStatus(sessionID string) (Model, tea.Cmd) {
	m.stopPolling()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	ctx, cancel := context.WithCancel(context.Background())
	updates := m.newPoller().Run(ctx, sessionID)

	m.mode = modeStatus
	m.status = statusState{
		sessionID: sessionID,
		session:   model.AnalysisSession{SessionID: sessionID, Status: model.StatusPending},
		spin:      spin,
		prog:      progress.New(progress.WithDefaultGradient()),
		updates:   updates,
		cancel:    cancel,
	}

	return m, tea.Batch(waitForUpdate(updates), spin.Tick)
}

// waitForUpdate blocks on the poller channel and resolves to exactly one
// message; the handler re-issues it until the channel closes.
func waitForUpdate(ch <-chan poller.Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-ch
		return pollUpdateMsg{update: u, ok: ok}
	}
}

func (m Model) updateStatus(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pollUpdateMsg:
		if !msg.ok {
			// poller finished; the last update already decided what happens
			return m, nil
		}
		if msg.update.Err != nil {
			m.status.err = api.AsError(msg.update.Err)
			m.stopPolling()
			return m, nil
		}

		m.status.session = msg.update.Session
		m.status.seen = true

		if msg.update.Session.Status == model.StatusCompleted && msg.update.Session.FileID != "" {
			m.status.redirecting = true
			sessionID := m.status.sessionID
			fileID := msg.update.Session.FileID
			return m, tea.Batch(
				waitForUpdate(m.status.updates),
				tea.Tick(m.redirectDelay, func(time.Time) tea.Msg {
					return resultRedirectMsg{sessionID: sessionID, fileID: fileID}
				}),
			)
		}
		return m, waitForUpdate(m.status.updates)

	case resultRedirectMsg:
		if m.mode != modeStatus || !m.status.redirecting || msg.sessionID != m.status.sessionID {
			return m, nil
		}
		return m.enterResults(msg.fileID)

	case retryStartedMsg:
		if msg.err != nil {
			m.status.err = api.AsError(msg.err)
			return m, nil
		}
		// backend accepted the re-run; poll the session from scratch
		return m.enterStatus(msg.sessionID)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.status.spin, cmd = m.status.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if next, cmd, ok := m.handleNav(msg.String()); ok {
			return next, cmd
		}
		switch msg.String() {
		case "esc":
			next := m.toUpload()
			return next, nil
		case "r":
			// retry a failed analysis in place when the file id is known,
			// otherwise fall back to the upload form
			if m.status.session.Status == model.StatusFailed && m.status.session.FileID != "" {
				return m, m.retryCmd(m.status.sessionID, m.status.session.FileID)
			}
			if m.status.session.Status == model.StatusFailed || m.status.err != nil {
				next := m.toUpload()
				return next, nil
			}
		case "enter":
			// completed but waiting out the redirect delay: jump now
			if m.status.session.Status == model.StatusCompleted && m.status.session.FileID != "" {
				return m.enterResults(m.status.session.FileID)
			}
		}
	}
	return m, nil
}

func (m Model) retryCmd(sessionID, fileID string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		return retryStartedMsg{sessionID: sessionID, err: client.Retry(ctx, fileID)}
	}
}

func (m Model) viewStatus() string {
	st := m.status
	status := st.session.Status

	content := sectionStyle.Render("Analysis status") + "\n\n"
	if st.session.Filename != "" {
		content += fmt.Sprintf("File: %s\n", st.session.Filename)
	}
	content += dimStyle.Render("Session "+st.sessionID) + "\n\n"

	content += st.prog.ViewAs(float64(status.Progress())/100) + "\n\n"

	line := statusLine(status)
	if !st.seen && st.err == nil {
		line = dimStyle.Render("Checking status...")
	}
	if !status.Terminal() && st.err == nil {
		line = st.spin.View() + " " + line
	}
	content += line + "\n"

	switch {
	case st.err != nil:
		content += "\n" + errorStyle.Render("Status check failed: "+st.err.Message) + "\n"
		content += helpStyle.Render("r: upload again  Esc: back")
	case status == model.StatusFailed:
		retryHint := "r: upload again"
		if st.session.FileID != "" {
			retryHint = "r: retry analysis"
		}
		content += "\n" + helpStyle.Render(retryHint+"  Esc: back")
	case status == model.StatusCompleted && st.session.FileID != "":
		content += "\n" + dimStyle.Render("Opening results...") + "\n"
		content += helpStyle.Render("Enter: open now")
	default:
		content += "\n" + helpStyle.Render("Esc: cancel and go back")
	}

	return boxStyle.Width(min(m.width-4, 72)).Render(content)
}

func statusLine(s model.SessionStatus) string {
	label := fmt.Sprintf("%s (%d%%)", s.Label(), s.Progress())
	switch s {
	case model.StatusPending:
		return statusPendingStyle.Render(label)
	case model.StatusInProgress:
		return statusProgressStyle.Render(label)
	case model.StatusCompleted:
		return statusCompletedStyle.Render(label)
	case model.StatusFailed:
		return statusFailedStyle.Render(label)
	}
	return label
}
