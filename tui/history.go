package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bebric123/MedAnalyzer/api"
	"github.com/Bebric123/MedAnalyzer/model"
)

type historyState struct {
	list       model.DiseaseHistory
	cursor     int
	loading    bool
	err        *api.Error
	notice     string
	confirming bool // waiting on y/n for a deactivate
}

func newHistoryState() historyState {
	return historyState{}
}

type diseasesMsg struct {
	list model.DiseaseHistory
	err  error
}

type deactivateMsg struct {
	message string
	err     error
}

func (m Model) fetchDiseasesCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		list, err := client.Diseases(ctx)
		return diseasesMsg{list: list, err: err}
	}
}

func (m Model) deactivateCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		message, err := client.DeactivateDisease(ctx, id)
		return deactivateMsg{message: message, err: err}
	}
}

func (m Model) toHistory() (Model, tea.Cmd) {
	m.stopPolling()
	m.mode = modeHistory
	m.history.loading = true
	m.history.err = nil
	m.history.notice = ""
	m.history.confirming = false
	return m, m.fetchDiseasesCmd()
}

// active-first display order; cursor indexes into this flattened list
func (h historyState) ordered() []model.Disease {
	return append(h.list.Active(), h.list.Inactive()...)
}

func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case diseasesMsg:
		m.history.loading = false
		if msg.err != nil {
			m.history.err = api.AsError(msg.err)
			return m, nil
		}
		m.history.list = msg.list
		if n := len(m.history.ordered()); m.history.cursor >= n {
			m.history.cursor = max(0, n-1)
		}
		return m, nil

	case deactivateMsg:
		m.history.confirming = false
		if msg.err != nil {
			// leave the list untouched; the prior state still stands
			m.history.notice = ""
			m.history.err = api.AsError(msg.err)
			return m, nil
		}
		m.history.err = nil
		m.history.notice = msg.message
		if m.history.notice == "" {
			m.history.notice = "Disease marked as inactive"
		}
		return m, m.fetchDiseasesCmd()

	case tea.KeyMsg:
		h := &m.history
		if h.confirming {
			switch msg.String() {
			case "y", "Y":
				ordered := h.ordered()
				if h.cursor < len(ordered) {
					return m, m.deactivateCmd(ordered[h.cursor].ID)
				}
				h.confirming = false
			default:
				h.confirming = false
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
			if h.cursor > 0 {
				h.cursor--
			}
		case "down", "j":
			if h.cursor < len(h.ordered())-1 {
				h.cursor++
			}
		case "r":
			return m.toHistory()
		case "d":
			ordered := h.ordered()
			if h.cursor < len(ordered) && ordered[h.cursor].IsActive {
				h.confirming = true
				h.notice = ""
			}
		}
	}
	return m, nil
}

func (m Model) viewHistory() string {
	h := m.history

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Disease history") + "\n\n")

	switch {
	case h.loading:
		b.WriteString(dimStyle.Render("Loading...") + "\n")
	case h.err != nil:
		b.WriteString(errorStyle.Render(h.err.Message) + "\n")
	case len(h.list) == 0:
		b.WriteString(dimStyle.Render("No diseases on record.") + "\n")
	default:
		b.WriteString(m.renderDiseaseSection("Active", h.list.Active(), 0))
		b.WriteString(m.renderDiseaseSection("Inactive", h.list.Inactive(), len(h.list.Active())))
	}

	if h.confirming {
		ordered := h.ordered()
		if h.cursor < len(ordered) {
			b.WriteString("\n" + errorStyle.Render(fmt.Sprintf("Mark %q as inactive? (y/n)", ordered[h.cursor].DiseaseName)) + "\n")
		}
	} else if h.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(h.notice) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("d: deactivate  r: refresh  j/k: move  Esc: back"))
	return boxStyle.Width(min(m.width-4, 90)).Render(b.String())
}

func (m Model) renderDiseaseSection(title string, diseases []model.Disease, offset int) string {
	if len(diseases) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(title) + "\n")
	for i, d := range diseases {
		tag := inactiveTag.Render("inactive")
		if d.IsActive {
			tag = activeTag.Render("active")
		}
		row := fmt.Sprintf("%-10s %-40s %s", d.DiseaseCode, truncate(d.DiseaseName, 40), tag)
		if offset+i == m.history.cursor {
			row = selectedStyle.Render(row)
		} else {
			row = normalStyle.Render(row)
		}
		b.WriteString(row + "\n")
		detail := fmt.Sprintf("    first: %s  last: %s", shortDate(d.FirstDetected), shortDate(d.LastDetected))
		b.WriteString(dimStyle.Render(detail) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-2]) + ".."
}

// shortDate trims an RFC3339 timestamp to its date part.
func shortDate(s string) string {
	if len(s) >= 10 {
		return s[:10]
	}
	if s == "" {
		return "-"
	}
	return s
}
