package tui

import (
	"strings"
	"testing"

	"github.com/Bebric123/MedAnalyzer/model"
)

func TestRenderRecommendationsList(t *testing.T) {
	out := renderRecommendations(model.Recommendations{Items: []string{"A", "B"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), out)
	}
	if lines[0] != "1. A" || lines[1] != "2. B" {
		t.Fatalf("unexpected list: %q", out)
	}
}

func TestRenderRecommendationsText(t *testing.T) {
	out := renderRecommendations(model.Recommendations{Text: "Rest and hydrate"})
	if out != "Rest and hydrate\n" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderRecommendationsMissing(t *testing.T) {
	for _, r := range []model.Recommendations{{}, {Text: "  "}, {Items: nil}} {
		out := renderRecommendations(r)
		if !strings.Contains(out, "No recommendations provided") {
			t.Fatalf("out = %q", out)
		}
	}
}

func TestRenderConditionsEmpty(t *testing.T) {
	for _, conditions := range [][]model.DetectedCondition{nil, {}} {
		out := renderConditions(conditions)
		if !strings.Contains(out, "No conditions found") {
			t.Fatalf("out = %q", out)
		}
	}
}

func TestRenderConditionsFull(t *testing.T) {
	confidence := 0.925
	out := renderConditions([]model.DetectedCondition{
		{ConditionName: "Hypertension", Code: "I10", Confidence: &confidence, Severity: "medium"},
		{ConditionName: "Migraine"},
	})

	if !strings.Contains(out, "Hypertension (code: I10)") {
		t.Fatalf("missing code: %q", out)
	}
	if !strings.Contains(out, "confidence: 92.5%") {
		t.Fatalf("missing confidence: %q", out)
	}
	if !strings.Contains(out, "severity: medium") {
		t.Fatalf("missing severity: %q", out)
	}
	// optional fields absent: just the name
	if !strings.Contains(out, "• Migraine\n") {
		t.Fatalf("bare condition mangled: %q", out)
	}
}

func TestFormatConfidence(t *testing.T) {
	cases := map[float64]string{
		0.925: "92.5%",
		1:     "100.0%",
		0:     "0.0%",
		0.5:   "50.0%",
	}
	for in, want := range cases {
		if got := formatConfidence(in); got != want {
			t.Errorf("formatConfidence(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderResultPlaceholders(t *testing.T) {
	out := renderResult(model.AnalysisResult{})
	for _, want := range []string{
		"unknown file",
		"date not provided",
		"No summary provided.",
		"No conditions found.",
		"No recommendations provided.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing placeholder %q in %q", want, out)
		}
	}
	if strings.Contains(out, "Analysis error") {
		t.Error("error block rendered without an error")
	}
}

func TestRenderResultError(t *testing.T) {
	out := renderResult(model.AnalysisResult{Error: "text extraction failed"})
	if !strings.Contains(out, "text extraction failed") {
		t.Fatalf("missing analysis error: %q", out)
	}
}
