package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bebric123/MedAnalyzer/api"
)

// upload form field indices
const (
	uploadFieldPath = iota
	uploadFieldDescription
	uploadFieldCount
)

type uploadForm struct {
	path        textinput.Model
	description textinput.Model
	focus       int
	uploading   bool
	err         *api.Error
	shapeErr    string // normalized error outcome from an accepted response
}

func newUploadForm() uploadForm {
	path := textinput.New()
	path.Placeholder = "~/documents/scan.pdf"
	path.CharLimit = 512

	desc := textinput.New()
	desc.Placeholder = "optional description"
	desc.CharLimit = 500

	return uploadForm{path: path, description: desc}
}

func (f *uploadForm) focusFirst() {
	f.focus = uploadFieldPath
	f.path.Focus()
	f.description.Blur()
}

func (f *uploadForm) cycle(delta int) {
	f.path.Blur()
	f.description.Blur()
	f.focus = (f.focus + delta + uploadFieldCount) % uploadFieldCount
	switch f.focus {
	case uploadFieldPath:
		f.path.Focus()
	case uploadFieldDescription:
		f.description.Focus()
	}
}

type uploadResultMsg struct {
	outcome api.UploadOutcome
	err     error
}

func (m Model) uploadCmd(path, description string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		outcome, err := client.Upload(ctx, path, description)
		return uploadResultMsg{outcome: outcome, err: err}
	}
}

func (m Model) updateUpload(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case uploadResultMsg:
		m.upload.uploading = false
		if msg.err != nil {
			m.upload.err = api.AsError(msg.err)
			return m, nil
		}
		switch {
		case msg.outcome.SessionID != "":
			return m.enterStatus(msg.outcome.SessionID)
		case msg.outcome.FileID != "":
			// result already available, skip the polling view
			return m.enterResults(msg.outcome.FileID)
		default:
			m.upload.shapeErr = msg.outcome.ErrorMessage
			return m, nil
		}

	case tea.KeyMsg:
		f := &m.upload
		if next, cmd, ok := m.handleNav(msg.String()); ok {
			return next, cmd
		}
		switch msg.String() {
		case "tab", "down":
			f.cycle(1)
			return m, nil
		case "shift+tab", "up":
			f.cycle(-1)
			return m, nil
		case "enter":
			if f.uploading {
				return m, nil
			}
			f.err = nil
			f.shapeErr = ""
			path := expandHome(f.path.Value())
			if path == "" {
				f.err = &api.Error{Kind: api.KindValidation, Message: "Choose a file to upload"}
				return m, nil
			}
			f.uploading = true
			return m, m.uploadCmd(path, f.description.Value())
		}

		var cmd tea.Cmd
		switch f.focus {
		case uploadFieldPath:
			f.path, cmd = f.path.Update(msg)
		case uploadFieldDescription:
			f.description, cmd = f.description.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) viewUpload() string {
	f := m.upload

	content := sectionStyle.Render("Upload a medical document") + "\n"
	content += dimStyle.Render("Supported: DICOM, PDF, DOCX — up to 50MB") + "\n\n"
	content += renderField("File:", f.path.View(), f.focus == uploadFieldPath, fieldError(f.err, "file"))
	content += renderField("Description:", f.description.View(), f.focus == uploadFieldDescription, fieldError(f.err, "description"))

	switch {
	case f.uploading:
		content += dimStyle.Render("Uploading...") + "\n"
	case f.shapeErr != "":
		content += errorStyle.Render(f.shapeErr) + "\n"
	case f.err != nil && len(f.err.Fields) == 0:
		content += errorStyle.Render(f.err.Message) + "\n"
	}
	content += "\n" + helpStyle.Render("Enter: upload  F2: history  F3: journal  Ctrl+L: sign out")

	return boxStyle.Width(min(m.width-4, 80)).Render(content)
}

func expandHome(p string) string {
	p = strings.TrimSpace(p)
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}
