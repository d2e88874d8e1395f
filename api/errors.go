package api

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies an API failure for component-level handling.
type Kind int

const (
	KindTransport  Kind = iota // request never got a response
	KindValidation             // 400-class, usually with field errors
	KindAuth                   // 401, session already cleared
	KindForbidden              // 403
	KindNotFound               // 404
	KindServer                 // 5xx
)

// Error is the normalized failure surfaced by every client call. Fields
// carries per-field validation messages when the backend sent them;
// Message is always set.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return "api: " + e.Message
}

// FieldError returns the joined messages for one field, empty if none.
func (e *Error) FieldError(field string) string {
	if msgs, ok := e.Fields[field]; ok {
		return strings.Join(msgs, ", ")
	}
	return ""
}

// errorEnvelope matches the three error body shapes the backend uses.
type errorEnvelope struct {
	Message string              `json:"message"`
	Err     string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}

// parseError turns a non-2xx response into an *Error. The body is probed
// for message, then error, then field errors, in that priority.
func parseError(status int, body []byte) *Error {
	e := &Error{Status: status}

	switch {
	case status == 400:
		e.Kind = KindValidation
		e.Message = "Request validation failed"
	case status == 401:
		e.Kind = KindAuth
		e.Message = "Not authenticated"
	case status == 403:
		e.Kind = KindForbidden
		e.Message = "Access denied"
	case status == 404:
		e.Kind = KindNotFound
		e.Message = "Resource not found"
	case status >= 500:
		e.Kind = KindServer
		e.Message = "Server error, try again later"
	default:
		e.Kind = KindServer
		e.Message = fmt.Sprintf("Unexpected response (status %d)", status)
	}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return e
	}

	switch {
	case env.Message != "":
		e.Message = env.Message
	case env.Err != "":
		e.Message = env.Err
	case len(env.Errors) > 0:
		e.Message = flattenFields(env.Errors)
	}
	if len(env.Errors) > 0 {
		e.Fields = env.Errors
	}

	return e
}

// flattenFields joins all field messages into one general message, used
// when a component has nowhere field-specific to show them.
func flattenFields(fields map[string][]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		parts = append(parts, strings.Join(fields[k], ", "))
	}
	return strings.Join(parts, "; ")
}

// AsError returns err as *Error when it is one, else wraps it as transport.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	if apiErr, ok := err.(*Error); ok {
		return apiErr
	}
	return &Error{Kind: KindTransport, Message: err.Error()}
}
