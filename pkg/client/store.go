package client

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// SessionState is what a Store persists between runs.
type SessionState struct {
	User   *User   `json:"user,omitempty"`
	Tokens *Tokens `json:"tokens,omitempty"`
}

// Store persists session state across restarts. Load returns (nil, nil) when
// nothing has been saved yet.
type Store interface {
	Load() (*SessionState, error)
	Save(state *SessionState) error
	Clear() error
}

// FileStore keeps the session state in a JSON file, created with 0600 since
// it holds tokens.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (*SessionState, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var state SessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *FileStore) Save(state *SessionState) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStore is an in-process Store for tests and throwaway sessions.
type MemoryStore struct {
	state *SessionState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (*SessionState, error) {
	return s.state, nil
}

func (s *MemoryStore) Save(state *SessionState) error {
	s.state = state
	return nil
}

func (s *MemoryStore) Clear() error {
	s.state = nil
	return nil
}
