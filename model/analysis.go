package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// AnalysisSession is a backend-tracked analysis job. The client only ever
// reads it; status is mutated by the backend.
type AnalysisSession struct {
	SessionID string        `json:"session_id"`
	Status    SessionStatus `json:"status"`
	Filename  string        `json:"filename"`
	FileID    string        `json:"file_id"`
}

// DetectedCondition is one condition found by the analysis engine.
// Confidence is a pointer because the backend may omit it entirely.
type DetectedCondition struct {
	ConditionName string   `json:"condition_name"`
	Code          string   `json:"code,omitempty"`
	Confidence    *float64 `json:"confidence,omitempty"`
	Severity      string   `json:"severity,omitempty"`
}

// AnalysisResult is the finished analysis payload for a file. Immutable once
// fetched. Optional fields stay zero-valued when the backend omits them.
type AnalysisResult struct {
	Filename           string              `json:"filename"`
	CreatedAt          string              `json:"created_at"`
	Summary            string              `json:"summary"`
	DetectedConditions []DetectedCondition `json:"detected_conditions"`
	Recommendations    Recommendations     `json:"recommendations"`
	Error              string              `json:"error,omitempty"`
}

// Recommendations is either a list of items or a single block of text on the
// wire. Exactly one of Items/Text is set after decoding; both empty means the
// backend provided nothing.
type Recommendations struct {
	Items []string
	Text  string
}

func (r Recommendations) IsList() bool { return len(r.Items) > 0 }

func (r Recommendations) IsText() bool { return strings.TrimSpace(r.Text) != "" }

func (r Recommendations) Empty() bool { return !r.IsList() && !r.IsText() }

// UnmarshalJSON accepts an array of strings, a plain string, or null.
// Anything else is ignored rather than failing the whole result decode.
func (r *Recommendations) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	switch trimmed[0] {
	case '[':
		return json.Unmarshal(trimmed, &r.Items)
	case '"':
		return json.Unmarshal(trimmed, &r.Text)
	}
	return nil
}

func (r Recommendations) MarshalJSON() ([]byte, error) {
	if r.IsList() {
		return json.Marshal(r.Items)
	}
	if r.IsText() {
		return json.Marshal(r.Text)
	}
	return []byte("null"), nil
}
