// Package session owns the authenticated session: tokens and user identity,
// persisted to a single JSON file. Everything that needs credentials gets a
// *Store handed to it; nothing reads ambient storage directly.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Bebric123/MedAnalyzer/model"
)

type state struct {
	Tokens model.Tokens `json:"tokens"`
	User   model.User   `json:"user"`
}

// Store is a process-wide auth session with load-on-start and
// clear-on-logout lifecycle. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	path string
	st   state
}

// NewStore creates a store backed by the given file and loads any
// persisted session. A missing or unreadable file just means logged out.
func NewStore(path string) *Store {
	s := &Store{path: path}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		return
	}
	s.st = st
}

// Save persists the tokens and user issued at login.
func (s *Store) Save(tokens model.Tokens, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st = state{Tokens: tokens, User: user}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Clear wipes the in-memory session and removes the file. Called on logout
// and on any 401 from the backend.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st = state{}
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Token returns the access token, empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.Tokens.Access
}

// RefreshToken returns the refresh token, empty when logged out.
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.Tokens.Refresh
}

// User returns the stored account identity.
func (s *Store) User() model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.User
}

// Authenticated reports whether a usable access token is present.
func (s *Store) Authenticated() bool {
	return s.Token() != "" && !s.Expired()
}

// Expired checks the access token's exp claim without verifying the
// signature; verification is the backend's job. Tokens that are not JWTs
// or carry no exp claim never expire locally.
func (s *Store) Expired() bool {
	tok := s.Token()
	if tok == "" {
		return true
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tok, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
