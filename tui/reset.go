package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bebric123/MedAnalyzer/api"
)

type resetForm struct {
	email      textinput.Model
	submitting bool
	sent       bool
	err        *api.Error
}

func newResetForm() resetForm {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	return resetForm{email: email}
}

func (f *resetForm) focusFirst() {
	f.email.Focus()
}

type resetResultMsg struct {
	err error
}

func (m Model) resetCmd(email string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		return resetResultMsg{err: client.ResetPassword(ctx, email)}
	}
}

func (m Model) updateReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resetResultMsg:
		m.reset.submitting = false
		if msg.err != nil {
			m.reset.err = api.AsError(msg.err)
			return m, nil
		}
		m.reset.sent = true
		return m, nil

	case tea.KeyMsg:
		f := &m.reset
		switch msg.String() {
		case "esc":
			return m.toLogin("")
		case "enter":
			if f.submitting || f.sent {
				return m, nil
			}
			f.err = nil
			if f.email.Value() == "" {
				f.err = &api.Error{Kind: api.KindValidation, Message: "Email is required"}
				return m, nil
			}
			f.submitting = true
			return m, m.resetCmd(f.email.Value())
		}

		var cmd tea.Cmd
		f.email, cmd = f.email.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) viewReset() string {
	f := m.reset

	content := sectionStyle.Render("Reset password") + "\n\n"
	content += renderField("Email:", f.email.View(), true, fieldError(f.err, "email"))

	switch {
	case f.sent:
		content += noticeStyle.Render("If the address exists, a reset email is on its way.") + "\n"
	case f.submitting:
		content += dimStyle.Render("Sending...") + "\n"
	case f.err != nil && len(f.err.Fields) == 0:
		content += errorStyle.Render(f.err.Message) + "\n"
	}
	content += "\n" + helpStyle.Render("Enter: send reset email  Esc: back to sign in")

	return boxStyle.Width(min(m.width-4, 64)).Render(content)
}
