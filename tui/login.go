package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bebric123/MedAnalyzer/api"
	"github.com/Bebric123/MedAnalyzer/model"
)

// login form field indices
const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldCount
)

type loginForm struct {
	email      textinput.Model
	password   textinput.Model
	focus      int
	submitting bool
	err        *api.Error
}

func newLoginForm() loginForm {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254

	password := textinput.New()
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128

	return loginForm{email: email, password: password}
}

func (f *loginForm) focusFirst() {
	f.focus = loginFieldEmail
	f.email.Focus()
	f.password.Blur()
}

func (f *loginForm) cycle(delta int) {
	f.email.Blur()
	f.password.Blur()
	f.focus = (f.focus + delta + loginFieldCount) % loginFieldCount
	switch f.focus {
	case loginFieldEmail:
		f.email.Focus()
	case loginFieldPassword:
		f.password.Focus()
	}
}

type loginResultMsg struct {
	user model.User
	err  error
}

func (m Model) loginCmd(email, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		user, err := client.Login(ctx, email, password)
		return loginResultMsg{user: user, err: err}
	}
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.login.err = api.AsError(msg.err)
			return m, nil
		}
		m.user = msg.user
		m.notice = ""
		next := m.toUpload()
		return next, next.prefetchCmd()

	case tea.KeyMsg:
		f := &m.login
		switch msg.String() {
		case "ctrl+r":
			m.mode = modeRegister
			m.register = newRegisterForm()
			m.register.focusFirst()
			return m, textBlink()
		case "ctrl+p":
			m.mode = modeReset
			m.reset = newResetForm()
			m.reset.focusFirst()
			return m, textBlink()
		case "tab", "down":
			f.cycle(1)
			return m, nil
		case "shift+tab", "up":
			f.cycle(-1)
			return m, nil
		case "enter":
			if f.submitting {
				return m, nil
			}
			f.err = nil
			if f.email.Value() == "" || f.password.Value() == "" {
				f.err = &api.Error{Kind: api.KindValidation, Message: "Email and password are required"}
				return m, nil
			}
			f.submitting = true
			return m, m.loginCmd(f.email.Value(), f.password.Value())
		}

		var cmd tea.Cmd
		switch f.focus {
		case loginFieldEmail:
			f.email, cmd = f.email.Update(msg)
		case loginFieldPassword:
			f.password, cmd = f.password.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) viewLogin() string {
	f := m.login

	content := sectionStyle.Render("Sign in") + "\n\n"
	content += renderField("Email:", f.email.View(), f.focus == loginFieldEmail, fieldError(f.err, "email"))
	content += renderField("Password:", f.password.View(), f.focus == loginFieldPassword, fieldError(f.err, "password"))

	if f.err != nil && len(f.err.Fields) == 0 {
		content += errorStyle.Render(f.err.Message) + "\n"
	}
	if f.submitting {
		content += dimStyle.Render("Signing in...") + "\n"
	}
	content += "\n" + helpStyle.Render("Enter: sign in  Ctrl+R: register  Ctrl+P: reset password  Ctrl+C: quit")

	return boxStyle.Width(min(m.width-4, 64)).Render(content)
}

// renderField lays out one labelled input with an optional inline field
// error underneath, the way the backend reports per-field validation.
func renderField(label, input string, focused bool, fieldErr string) string {
	style := labelStyle
	if focused {
		style = focusedLabelStyle
	}
	out := fmt.Sprintf("%s %s\n", style.Render(label), input)
	if fieldErr != "" {
		out += fieldErrorStyle.Render("  "+fieldErr) + "\n"
	}
	return out
}

func fieldError(err *api.Error, field string) string {
	if err == nil {
		return ""
	}
	return err.FieldError(field)
}
