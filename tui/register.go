package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bebric123/MedAnalyzer/api"
	"github.com/Bebric123/MedAnalyzer/model"
)

// register form field indices
const (
	regFieldName = iota
	regFieldEmail
	regFieldPassword
	regFieldConfirm
	regFieldCount
)

type registerForm struct {
	inputs     [regFieldCount]textinput.Model
	focus      int
	submitting bool
	err        *api.Error
}

func newRegisterForm() registerForm {
	var f registerForm

	name := textinput.New()
	name.Placeholder = "Full name"
	name.CharLimit = 150

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254

	password := textinput.New()
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128

	confirm := textinput.New()
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '•'
	confirm.CharLimit = 128

	f.inputs[regFieldName] = name
	f.inputs[regFieldEmail] = email
	f.inputs[regFieldPassword] = password
	f.inputs[regFieldConfirm] = confirm
	return f
}

func (f *registerForm) focusFirst() {
	f.focus = regFieldName
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.inputs[regFieldName].Focus()
}

func (f *registerForm) cycle(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + regFieldCount) % regFieldCount
	f.inputs[f.focus].Focus()
}

type registerResultMsg struct {
	user model.User
	err  error
}

func (m Model) registerCmd(reg api.Registration) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		user, err := client.Register(ctx, reg)
		return registerResultMsg{user: user, err: err}
	}
}

func (m Model) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		m.register.submitting = false
		if msg.err != nil {
			m.register.err = api.AsError(msg.err)
			return m, nil
		}
		m.user = msg.user
		m.notice = "Account created"
		next := m.toUpload()
		return next, next.prefetchCmd()

	case tea.KeyMsg:
		f := &m.register
		switch msg.String() {
		case "esc":
			return m.toLogin("")
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
			if f.inputs[regFieldEmail].Value() == "" || f.inputs[regFieldPassword].Value() == "" {
				f.err = &api.Error{Kind: api.KindValidation, Message: "Email and password are required"}
				return m, nil
			}
			if f.inputs[regFieldPassword].Value() != f.inputs[regFieldConfirm].Value() {
				f.err = &api.Error{Kind: api.KindValidation, Message: "Passwords do not match"}
				return m, nil
			}
			f.submitting = true
			return m, m.registerCmd(api.Registration{
				Name:     f.inputs[regFieldName].Value(),
				Email:    f.inputs[regFieldEmail].Value(),
				Password: f.inputs[regFieldPassword].Value(),
			})
		}

		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) viewRegister() string {
	f := m.register
	labels := [regFieldCount]string{"Name:", "Email:", "Password:", "Confirm:"}
	fields := [regFieldCount]string{"name", "email", "password", "password"}

	content := sectionStyle.Render("Create account") + "\n\n"
	for i := range f.inputs {
		content += renderField(labels[i], f.inputs[i].View(), f.focus == i, fieldError(f.err, fields[i]))
	}

	if f.err != nil && len(f.err.Fields) == 0 {
		content += errorStyle.Render(f.err.Message) + "\n"
	}
	if f.submitting {
		content += dimStyle.Render("Creating account...") + "\n"
	}
	content += "\n" + helpStyle.Render("Enter: register  Esc: back to sign in")

	return boxStyle.Width(min(m.width-4, 64)).Render(content)
}
