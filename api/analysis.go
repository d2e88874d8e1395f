package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Bebric123/MedAnalyzer/model"
)

// UploadOutcome is the single normalized result of an upload. Exactly one
// field is set: SessionID for the asynchronous path, FileID when the result
// is already available, ErrorMessage otherwise.
type UploadOutcome struct {
	SessionID    string
	FileID       string
	ErrorMessage string
	Message      string // server's success notice, when provided
}

// flexID decodes a JSON string or number into a string; the backend is not
// consistent about which it sends for ids.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// uploadEnvelope covers all three response shapes the upload endpoint is
// known to produce.
type uploadEnvelope struct {
	Success   *bool  `json:"success"`
	Message   string `json:"message"`
	Err       string `json:"error"`
	ID        flexID `json:"id"`
	SessionID flexID `json:"session_id"`
	File      *struct {
		ID flexID `json:"id"`
	} `json:"file"`
	Data *struct {
		SessionID flexID `json:"session_id"`
		File      *struct {
			ID flexID `json:"id"`
		} `json:"file"`
	} `json:"data"`
}

// Upload submits a file plus optional description for analysis and
// normalizes the response. Validation failures and transport problems come
// back as errors; shape problems come back inside the outcome.
func (c *Client) Upload(ctx context.Context, path, description string) (UploadOutcome, error) {
	if err := ValidateUpload(path); err != nil {
		return UploadOutcome{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return UploadOutcome{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return UploadOutcome{}, fmt.Errorf("build multipart: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return UploadOutcome{}, fmt.Errorf("read upload: %w", err)
	}
	if description != "" {
		if err := w.WriteField("description", description); err != nil {
			return UploadOutcome{}, fmt.Errorf("build multipart: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return UploadOutcome{}, fmt.Errorf("build multipart: %w", err)
	}

	data, err := c.do(ctx, http.MethodPost, "/analysis/upload/", &buf, w.FormDataContentType())
	if err != nil {
		return UploadOutcome{}, err
	}

	return normalizeUpload(data), nil
}

// normalizeUpload probes the three known envelopes in priority order:
// success-flag, legacy (id + message), bare error. Anything else yields a
// generic error outcome instead of failing.
func normalizeUpload(data []byte) UploadOutcome {
	var env uploadEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return UploadOutcome{ErrorMessage: "Unrecognized server response"}
	}

	switch {
	case env.Success != nil:
		if !*env.Success {
			msg := env.Message
			if msg == "" {
				msg = "File upload failed"
			}
			return UploadOutcome{ErrorMessage: msg}
		}
		sessionID := string(env.SessionID)
		fileID := string(env.ID)
		if env.Data != nil {
			if env.Data.SessionID != "" {
				sessionID = string(env.Data.SessionID)
			}
			if env.Data.File != nil && env.Data.File.ID != "" {
				fileID = string(env.Data.File.ID)
			}
		}
		if env.File != nil && env.File.ID != "" {
			fileID = string(env.File.ID)
		}
		return pickOutcome(sessionID, fileID, env.Message)

	case env.ID != "" && env.Message != "":
		fileID := string(env.ID)
		if env.File != nil && env.File.ID != "" {
			fileID = string(env.File.ID)
		}
		return pickOutcome(string(env.SessionID), fileID, env.Message)

	case env.Err != "":
		return UploadOutcome{ErrorMessage: env.Err}
	}

	return UploadOutcome{ErrorMessage: "Unrecognized server response"}
}

// pickOutcome chooses the async path when a session id is present, the sync
// path when only a file id is, and an error when neither.
func pickOutcome(sessionID, fileID, message string) UploadOutcome {
	if sessionID != "" {
		return UploadOutcome{SessionID: sessionID, Message: message}
	}
	if fileID != "" {
		return UploadOutcome{FileID: fileID, Message: message}
	}
	return UploadOutcome{ErrorMessage: "Server response carried no session or file id"}
}

// sessionEnvelope tolerates string or numeric ids in status replies.
type sessionEnvelope struct {
	SessionID flexID              `json:"session_id"`
	Status    model.SessionStatus `json:"status"`
	Filename  string              `json:"filename"`
	FileID    flexID              `json:"file_id"`
}

// SessionStatus fetches the current state of an analysis job.
func (c *Client) SessionStatus(ctx context.Context, sessionID string) (model.AnalysisSession, error) {
	var env sessionEnvelope
	if err := c.getJSON(ctx, "/analysis/session/"+sessionID+"/", &env); err != nil {
		return model.AnalysisSession{}, err
	}
	return model.AnalysisSession{
		SessionID: string(env.SessionID),
		Status:    env.Status,
		Filename:  env.Filename,
		FileID:    string(env.FileID),
	}, nil
}

// resultEnvelope maps the result payload; the creation timestamp arrives
// under different names depending on backend version.
type resultEnvelope struct {
	Filename           string                    `json:"filename"`
	CreatedAt          string                    `json:"created_at"`
	EndTime            string                    `json:"end_time"`
	StartTime          string                    `json:"start_time"`
	Summary            string                    `json:"summary"`
	DetectedConditions []model.DetectedCondition `json:"detected_conditions"`
	Recommendations    model.Recommendations     `json:"recommendations"`
	Err                string                    `json:"error"`
}

// Result fetches the finished analysis for a file.
func (c *Client) Result(ctx context.Context, fileID string) (model.AnalysisResult, error) {
	var env resultEnvelope
	if err := c.getJSON(ctx, "/analysis/file/"+fileID+"/", &env); err != nil {
		return model.AnalysisResult{}, err
	}

	created := env.CreatedAt
	if created == "" {
		created = env.EndTime
	}
	if created == "" {
		created = env.StartTime
	}

	return model.AnalysisResult{
		Filename:           env.Filename,
		CreatedAt:          created,
		Summary:            env.Summary,
		DetectedConditions: env.DetectedConditions,
		Recommendations:    env.Recommendations,
		Error:              env.Err,
	}, nil
}

// Retry asks the backend to re-run a failed analysis.
func (c *Client) Retry(ctx context.Context, fileID string) error {
	return c.sendJSON(ctx, http.MethodPost, "/analysis/retry/"+fileID+"/", nil, nil)
}

// History lists the user's past analysis sessions, newest first.
func (c *Client) History(ctx context.Context) ([]model.AnalysisSession, error) {
	var envs []sessionEnvelope
	if err := c.getJSON(ctx, "/analysis/history/", &envs); err != nil {
		return nil, err
	}
	out := make([]model.AnalysisSession, 0, len(envs))
	for _, env := range envs {
		out = append(out, model.AnalysisSession{
			SessionID: string(env.SessionID),
			Status:    env.Status,
			Filename:  env.Filename,
			FileID:    string(env.FileID),
		})
	}
	return out, nil
}
