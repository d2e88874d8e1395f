package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Bebric123/MedAnalyzer/api"
	"github.com/Bebric123/MedAnalyzer/model"
)

type resultsState struct {
	fileID  string
	result  model.AnalysisResult
	loading bool
	err     *api.Error
}

type resultLoadedMsg struct {
	fileID string
	result model.AnalysisResult
	err    error
}

// enterResults switches to the result view and fetches the payload once.
func (m Model) enterResults(fileID string) (Model, tea.Cmd) {
	m.stopPolling()
	m.mode = modeResults
	m.results = resultsState{fileID: fileID, loading: true}

	client := m.client
	return m, func() tea.Msg {
		ctx, cancel := reqContext()
		defer cancel()
		result, err := client.Result(ctx, fileID)
		return resultLoadedMsg{fileID: fileID, result: result, err: err}
	}
}

func (m Model) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultLoadedMsg:
		if msg.fileID != m.results.fileID {
			return m, nil // stale fetch for a view we already left
		}
		m.results.loading = false
		if msg.err != nil {
			m.results.err = api.AsError(msg.err)
			return m, nil
		}
		m.results.result = msg.result
		return m, nil

	case tea.KeyMsg:
		if next, cmd, ok := m.handleNav(msg.String()); ok {
			return next, cmd
		}
		if msg.String() == "esc" {
			next := m.toUpload()
			return next, nil
		}
	}
	return m, nil
}

func (m Model) viewResults() string {
	r := m.results

	if r.loading {
		return boxStyle.Render(dimStyle.Render("Loading results..."))
	}
	if r.err != nil {
		content := errorStyle.Render("Could not load results: "+r.err.Message) + "\n\n"
		content += helpStyle.Render("Esc: back  F1: upload")
		return boxStyle.Width(min(m.width-4, 80)).Render(content)
	}

	content := renderResult(r.result)
	content += "\n" + helpStyle.Render("Esc: back  F2: history  F3: journal")
	return boxStyle.Width(min(m.width-4, 90)).Render(content)
}

// renderResult lays out a finished analysis. Every optional field gets a
// placeholder so a sparse payload still reads as a complete report.
func renderResult(r model.AnalysisResult) string {
	var b strings.Builder

	filename := r.Filename
	if filename == "" {
		filename = "unknown file"
	}
	b.WriteString(sectionStyle.Render("Analysis of "+filename) + "\n")

	created := r.CreatedAt
	if created == "" {
		created = "date not provided"
	}
	b.WriteString(dimStyle.Render(created) + "\n\n")

	b.WriteString(sectionStyle.Render("Summary") + "\n")
	summary := r.Summary
	if summary == "" {
		summary = "No summary provided."
	}
	b.WriteString(summary + "\n\n")

	b.WriteString(sectionStyle.Render("Detected conditions") + "\n")
	b.WriteString(renderConditions(r.DetectedConditions))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Recommendations") + "\n")
	b.WriteString(renderRecommendations(r.Recommendations))

	if r.Error != "" {
		b.WriteString("\n" + errorStyle.Render("Analysis error: "+r.Error) + "\n")
	}

	return b.String()
}

func renderConditions(conditions []model.DetectedCondition) string {
	if len(conditions) == 0 {
		return "No conditions found.\n"
	}

	var b strings.Builder
	for _, c := range conditions {
		name := c.ConditionName
		if name == "" {
			name = "Unknown condition"
		}
		b.WriteString("• " + name)
		if c.Code != "" {
			b.WriteString(fmt.Sprintf(" (code: %s)", c.Code))
		}
		if c.Confidence != nil {
			b.WriteString(fmt.Sprintf(" — confidence: %s", formatConfidence(*c.Confidence)))
		}
		if c.Severity != "" {
			b.WriteString(" — severity: " + c.Severity)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderRecommendations branches on the runtime shape: a numbered list for
// arrays, a paragraph for plain text, a placeholder otherwise.
func renderRecommendations(r model.Recommendations) string {
	switch {
	case r.IsList():
		var b strings.Builder
		for i, item := range r.Items {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, item))
		}
		return b.String()
	case r.IsText():
		return strings.TrimSpace(r.Text) + "\n"
	default:
		return "No recommendations provided.\n"
	}
}

// formatConfidence renders a [0,1] confidence as a percentage with one
// decimal place.
func formatConfidence(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}
