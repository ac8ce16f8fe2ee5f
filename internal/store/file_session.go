package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

var ErrLocalSessionNotFound = errors.New("local session not found")

// ClientSession is the identity-derived state the client persists between
// runs: the anonymous identity, the device secret that can resume it, and
// the last issued bearer token.
type ClientSession struct {
	UserID       string    `json:"user_id"`
	DeviceSecret string    `json:"device_secret"`
	Token        string    `json:"token"`
	At           time.Time `json:"at"`
}

// fileSessionStore keeps the session as a JSON file. An empty path disables
// persistence entirely; every load then reports a missing session.
type fileSessionStore struct {
	path string
}

func NewSessionStore(path string) SessionStore {
	return &fileSessionStore{path: path}
}

func (s *fileSessionStore) LoadSession() (ClientSession, error) {
	if s.path == "" {
		return ClientSession{}, ErrLocalSessionNotFound
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ClientSession{}, ErrLocalSessionNotFound
		}
		return ClientSession{}, fmt.Errorf("read session file: %w", err)
	}

	var session ClientSession
	if err = json.Unmarshal(data, &session); err != nil {
		return ClientSession{}, fmt.Errorf("decode session file: %w", err)
	}
	if session.UserID == "" {
		return ClientSession{}, ErrLocalSessionNotFound
	}

	return session, nil
}

func (s *fileSessionStore) SaveSession(session ClientSession) error {
	if s.path == "" {
		return nil
	}

	session.At = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	// the device secret is the account credential; keep the file private
	if err = os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

func (s *fileSessionStore) ClearSession() error {
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
