package tui

import (
	"testing"

	"github.com/Bebric123/MedAnalyzer/model"
)

func TestRedirectFromPreviousSessionIgnored(t *testing.T) {
	var m Model
	m.mode = modeStatus
	m.status = statusState{
		sessionID:   "s-2",
		redirecting: true,
		session:     model.AnalysisSession{SessionID: "s-2", Status: model.StatusCompleted, FileID: "f-2"},
	}

	// timer scheduled for an earlier session fires after the view switched
	next, _ := m.updateStatus(resultRedirectMsg{sessionID: "s-1", fileID: "f-1"})
	got := next.(Model)
	if got.mode != modeStatus {
		t.Fatalf("stale redirect switched views, mode = %v", got.mode)
	}
	if got.results.fileID != "" {
		t.Fatalf("stale redirect loaded file %q", got.results.fileID)
	}
}

func TestRedirectForCurrentSessionOpensResults(t *testing.T) {
	var m Model
	m.mode = modeStatus
	m.status = statusState{sessionID: "s-2", redirecting: true}

	next, _ := m.updateStatus(resultRedirectMsg{sessionID: "s-2", fileID: "f-2"})
	got := next.(Model)
	if got.mode != modeResults {
		t.Fatalf("mode = %v, want results", got.mode)
	}
	if got.results.fileID != "f-2" {
		t.Fatalf("fileID = %q, want f-2", got.results.fileID)
	}
}
