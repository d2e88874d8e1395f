package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bebric123/MedAnalyzer/api"
	"github.com/Bebric123/MedAnalyzer/model"
)

// journal form field indices
const (
	jFieldDate = iota
	jFieldScore
	jFieldSymptoms
	jFieldDescription
	jFieldCount
)

var wellBeingLabels = [...]string{"Very bad", "Bad", "Fair", "Good", "Excellent"}

type journalForm struct {
	date        textinput.Model
	symptoms    textinput.Model
	description textinput.Model
	score       int // 1..5
	focus       int
	editingID   string // empty for a new entry
	submitting  bool
	err         *api.Error
}

type journalState struct {
	entries          model.JournalList
	cursor           int
	loading          bool
	err              *api.Error
	notice           string
	form             *journalForm
	confirmingDelete bool
}

func newJournalState() journalState {
	return journalState{}
}

func newJournalForm() *journalForm {
	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = 10
	date.SetValue(time.Now().Format("2006-01-02"))

	symptoms := textinput.New()
	symptoms.Placeholder = "comma separated, e.g. Cough, Fatigue"
	symptoms.CharLimit = 500

	desc := textinput.New()
	desc.Placeholder = "how did the day go"
	desc.CharLimit = 1000

	f := &journalForm{date: date, symptoms: symptoms, description: desc, score: 3}
	f.focusField(jFieldDate)
	return f
}

func formFromEntry(e model.JournalEntry) *journalForm {
	f := newJournalForm()
	f.date.SetValue(e.Date)
	f.symptoms.SetValue(strings.Join(e.Symptoms, ", "))
	f.description.SetValue(e.Description)
	f.score = e.WellBeingScore
	f.editingID = e.ID
	return f
}

func (f *journalForm) focusField(i int) {
	f.date.Blur()
	f.symptoms.Blur()
	f.description.Blur()
	f.focus = i
	switch i {
	case jFieldDate:
		f.date.Focus()
	case jFieldSymptoms:
		f.symptoms.Focus()
	case jFieldDescription:
		f.description.Focus()
	}
}

func (f *journalForm) cycle(delta int) {
	f.focusField((f.focus + delta + jFieldCount) % jFieldCount)
}

func (f *journalForm) entry() model.JournalEntry {
	var symptoms []string
	for _, s := range strings.Split(f.symptoms.Value(), ",") {
		if s = strings.TrimSpace(s); s != "" {
			symptoms = append(symptoms, s)
		}
	}
	return model.JournalEntry{
		ID:             f.editingID,
		Date:           strings.TrimSpace(f.date.Value()),
		WellBeingScore: f.score,
		Description:    f.description.Value(),
		Symptoms:       symptoms,
	}
}

type journalMsg struct {
	entries model.JournalList
	err     error
}

type entrySavedMsg struct {
	entry   model.JournalEntry
	created bool
	err     error
}

type entryDeletedMsg struct {
	id  string
	err error
}

func (m Model) fetchJournalCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		entries, err := client.JournalEntries(ctx)
		return journalMsg{entries: entries, err: err}
	}
}

func (m Model) saveEntryCmd(entry model.JournalEntry) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		if entry.ID == "" {
			created, err := client.CreateJournalEntry(ctx, entry)
			return entrySavedMsg{entry: created, created: true, err: err}
		}
		updated, err := client.UpdateJournalEntry(ctx, entry.ID, entry)
		return entrySavedMsg{entry: updated, err: err}
	}
}

func (m Model) deleteEntryCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		return entryDeletedMsg{id: id, err: client.DeleteJournalEntry(ctx, id)}
	}
}

func (m Model) toJournal() (Model, tea.Cmd) {
	m.stopPolling()
	m.mode = modeJournal
	m.journal.loading = true
	m.journal.err = nil
	m.journal.notice = ""
	m.journal.form = nil
	m.journal.confirmingDelete = false
	return m, m.fetchJournalCmd()
}

func (m Model) updateJournal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case journalMsg:
		m.journal.loading = false
		if msg.err != nil {
			m.journal.err = api.AsError(msg.err)
			return m, nil
		}
		m.journal.entries = msg.entries
		if m.journal.cursor >= len(msg.entries) {
			m.journal.cursor = max(0, len(msg.entries)-1)
		}
		return m, nil

	case entrySavedMsg:
		if m.journal.form != nil {
			m.journal.form.submitting = false
		}
		if msg.err != nil {
			if m.journal.form != nil {
				m.journal.form.err = api.AsError(msg.err)
			}
			return m, nil
		}
		// mirror the server change locally, then refetch for truth
		if msg.created {
			m.journal.entries = m.journal.entries.Prepend(msg.entry)
			m.journal.notice = "Entry added"
		} else {
			m.journal.entries = m.journal.entries.Replace(msg.entry)
			m.journal.notice = "Entry updated"
		}
		m.journal.form = nil
		return m, m.fetchJournalCmd()

	case entryDeletedMsg:
		if msg.err != nil {
			m.journal.err = api.AsError(msg.err)
			return m, nil
		}
		m.journal.entries = m.journal.entries.Remove(msg.id)
		m.journal.notice = "Entry deleted"
		return m, m.fetchJournalCmd()

	case tea.KeyMsg:
		if m.journal.form != nil {
			return m.updateJournalForm(msg)
		}
		return m.updateJournalList(msg)
	}
	return m, nil
}

func (m Model) updateJournalList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	j := &m.journal

	if j.confirmingDelete {
		switch msg.String() {
		case "y", "Y":
			j.confirmingDelete = false
			if j.cursor < len(j.entries) {
				return m, m.deleteEntryCmd(j.entries[j.cursor].ID)
			}
		default:
			j.confirmingDelete = false
		}
		return m, nil
	}

	if next, cmd, ok := m.handleNav(msg.String()); ok {
		return next, cmd
	}
	switch msg.String() {
	case "q", "esc":
		next := m.toUpload()
		return next, nil
	case "up", "k":
		if j.cursor > 0 {
			j.cursor--
		}
	case "down", "j":
		if j.cursor < len(j.entries)-1 {
			j.cursor++
		}
	case "r":
		return m.toJournal()
	case "n":
		j.form = newJournalForm()
		j.notice = ""
		return m, textBlink()
	case "e":
		if j.cursor < len(j.entries) {
			j.form = formFromEntry(j.entries[j.cursor])
			j.notice = ""
			return m, textBlink()
		}
	case "x":
		if j.cursor < len(j.entries) {
			j.confirmingDelete = true
			j.notice = ""
		}
	}
	return m, nil
}

func (m Model) updateJournalForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.journal.form

	switch msg.String() {
	case "esc":
		m.journal.form = nil
		return m, nil
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
		entry := f.entry()
		if entry.Date == "" {
			f.err = &api.Error{Kind: api.KindValidation, Message: "Date is required"}
			return m, nil
		}
		if entry.WellBeingScore < 1 || entry.WellBeingScore > 5 {
			f.err = &api.Error{Kind: api.KindValidation, Message: "Score must be between 1 and 5"}
			return m, nil
		}
		f.submitting = true
		return m, m.saveEntryCmd(entry)
	}

	if f.focus == jFieldScore {
		switch msg.String() {
		case "left", "h":
			if f.score > 1 {
				f.score--
			}
		case "right", "l":
			if f.score < 5 {
				f.score++
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch f.focus {
	case jFieldDate:
		f.date, cmd = f.date.Update(msg)
	case jFieldSymptoms:
		f.symptoms, cmd = f.symptoms.Update(msg)
	case jFieldDescription:
		f.description, cmd = f.description.Update(msg)
	}
	return m, cmd
}

func (m Model) viewJournal() string {
	if m.journal.form != nil {
		return m.viewJournalForm()
	}
	return m.viewJournalList()
}

func (m Model) viewJournalList() string {
	j := m.journal

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Wellbeing journal") + "\n\n")

	switch {
	case j.loading:
		b.WriteString(dimStyle.Render("Loading...") + "\n")
	case j.err != nil:
		b.WriteString(errorStyle.Render(j.err.Message) + "\n")
	case len(j.entries) == 0:
		b.WriteString(dimStyle.Render("No entries yet. Press n to add one.") + "\n")
	default:
		for i, e := range j.entries {
			row := fmt.Sprintf("%-12s %-14s %s", e.Date, scoreLabel(e.WellBeingScore), truncate(strings.Join(e.Symptoms, ", "), 40))
			if i == j.cursor {
				row = selectedStyle.Render(row)
			} else {
				row = normalStyle.Render(row)
			}
			b.WriteString(row + "\n")
			if e.Description != "" {
				b.WriteString(dimStyle.Render("    "+truncate(e.Description, 70)) + "\n")
			}
		}
	}

	if j.confirmingDelete && j.cursor < len(j.entries) {
		b.WriteString("\n" + errorStyle.Render(fmt.Sprintf("Delete entry for %s? (y/n)", j.entries[j.cursor].Date)) + "\n")
	} else if j.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(j.notice) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("n: new  e: edit  x: delete  r: refresh  j/k: move  Esc: back"))
	return boxStyle.Width(min(m.width-4, 90)).Render(b.String())
}

func (m Model) viewJournalForm() string {
	f := m.journal.form

	title := "New journal entry"
	if f.editingID != "" {
		title = "Edit journal entry"
	}

	content := sectionStyle.Render(title) + "\n\n"
	content += renderField("Date:", f.date.View(), f.focus == jFieldDate, fieldError(f.err, "date"))
	content += renderField("Feeling:", renderScoreRadio(f.score, f.focus == jFieldScore), f.focus == jFieldScore, fieldError(f.err, "well_being_score"))
	content += renderField("Symptoms:", f.symptoms.View(), f.focus == jFieldSymptoms, fieldError(f.err, "symptoms"))
	content += renderField("Description:", f.description.View(), f.focus == jFieldDescription, fieldError(f.err, "description"))

	if f.err != nil && len(f.err.Fields) == 0 {
		content += errorStyle.Render(f.err.Message) + "\n"
	}
	if f.submitting {
		content += dimStyle.Render("Saving...") + "\n"
	}
	content += "\n" + helpStyle.Render("Enter: save  Esc: cancel  Tab: next field  ←→: adjust feeling")

	return boxStyle.Width(min(m.width-4, 80)).Render(content)
}

func renderScoreRadio(score int, focused bool) string {
	var parts []string
	for i, label := range wellBeingLabels {
		v := i + 1
		if v == score {
			marker := "● "
			if focused {
				parts = append(parts, focusedLabelStyle.Width(0).Render(marker+label))
			} else {
				parts = append(parts, marker+label)
			}
		} else {
			parts = append(parts, dimStyle.Render("○ "+label))
		}
	}
	return strings.Join(parts, "  ")
}

func scoreLabel(score int) string {
	if score >= 1 && score <= 5 {
		return fmt.Sprintf("%d/5 %s", score, wellBeingLabels[score-1])
	}
	return fmt.Sprintf("%d/5", score)
}
