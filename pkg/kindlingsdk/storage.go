package kindlingsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// PersistedSession is the user projection plus token written to local
// storage so a session survives restarts.
type PersistedSession struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

// Storage persists the session projection to a local JSON file, the
// CLI-world stand-in for browser local storage.
type Storage struct {
	path string
}

// NewStorage creates a file-backed storage at the given path.
func NewStorage(path string) *Storage {
	return &Storage{path: filepath.Clean(path)}
}

// Save writes the session to disk. The file holds a bearer token, so
// it is created with owner-only permissions.
func (s *Storage) Save(session PersistedSession) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("kindlingsdk: create storage dir: %w", err)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("kindlingsdk: encode session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("kindlingsdk: write session: %w", err)
	}
	return nil
}

// Load reads a previously saved session. The second return value is
// false when no session has been saved.
func (s *Storage) Load() (PersistedSession, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return PersistedSession{}, false, nil
	}
	if err != nil {
		return PersistedSession{}, false, fmt.Errorf("kindlingsdk: read session: %w", err)
	}

	var session PersistedSession
	if err := json.Unmarshal(data, &session); err != nil {
		return PersistedSession{}, false, fmt.Errorf("kindlingsdk: decode session: %w", err)
	}
	return session, true, nil
}

// Clear removes the persisted session, if any.
func (s *Storage) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
