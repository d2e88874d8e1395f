// Package api is the typed HTTP client for the analysis backend. Every
// endpoint wrapper normalizes the backend's response shapes at the boundary
// so the rest of the program sees one canonical form.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Bebric123/MedAnalyzer/session"
)

// Client talks to the backend over HTTP/JSON. The session store is injected;
// the client attaches the bearer token on every request and clears the store
// on any 401 before invoking OnUnauthorized.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
	log     *slog.Logger

	// OnUnauthorized fires after a 401 has cleared the session, so the
	// consumer can force navigation back to login.
	OnUnauthorized func()
}

// New creates a client for the given base URL (no trailing slash needed).
func New(baseURL string, store *session.Store) *Client {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		session: store,
		log:     slog.Default(),
	}
}

// do issues one request and returns the raw response body. Non-2xx statuses
// and transport failures come back as *Error; callers decode the body.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if tok := c.session.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("request failed", "method", method, "path", path, "error", err)
		return nil, &Error{Kind: KindTransport, Message: "No response from server"}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("read response", "method", method, "path", path, "error", err)
		return nil, &Error{Kind: KindTransport, Message: "No response from server"}
	}

	c.log.Debug("request", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		apiErr := parseError(resp.StatusCode, data)
		if apiErr.Kind == KindAuth {
			c.expireSession()
		}
		return nil, apiErr
	}

	return data, nil
}

func (c *Client) expireSession() {
	if err := c.session.Clear(); err != nil {
		c.log.Warn("clear session", "error", err)
	}
	if c.OnUnauthorized != nil {
		c.OnUnauthorized()
	}
}

// getJSON fetches path and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	data, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// sendJSON marshals in (may be nil), sends it with the given method, and
// decodes the response into out when out is non-nil.
func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		body = bytes.NewReader(data)
	}
	data, err := c.do(ctx, method, path, body, "application/json")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
