package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Dan9191/contact-service/internal/auth"
)

// Session is the client-held authentication state: the bearer token plus
// its decoded expiry. The expiry is checked before every dispatch so a
// stale token sends the user back to login instead of failing mid-call.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewSession decodes the token expiry and wraps both into a Session
func NewSession(token string) (*Session, error) {
	exp, err := auth.TokenExpiry(token)
	if err != nil {
		return nil, fmt.Errorf("failed to decode token expiry: %w", err)
	}
	return &Session{Token: token, ExpiresAt: exp}, nil
}

// Valid reports whether the session holds an unexpired token
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && time.Now().Before(s.ExpiresAt)
}

// SessionStore persists a Session as a JSON file
type SessionStore struct {
	path string
}

// DefaultSessionPath returns the session file location, honoring the
// CONTACTS_SESSION_FILE override.
func DefaultSessionPath() string {
	if p := os.Getenv("CONTACTS_SESSION_FILE"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".contacts-session.json"
	}
	return filepath.Join(home, ".contacts-session.json")
}

// NewSessionStore creates a store backed by the given file path
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Load reads the persisted session. A missing file yields (nil, nil).
func (st *SessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(st.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	return &s, nil
}

// Save writes the session to disk, readable only by the owner
func (st *SessionStore) Save(s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(st.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing a missing file is a no-op.
func (st *SessionStore) Clear() error {
	if err := os.Remove(st.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
