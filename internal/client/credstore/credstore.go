// Package credstore persists the bearer token and user record of the current
// session across process restarts. The on-disk layout mirrors the two
// string-keyed entries the web client kept in local storage: the token as a
// plain string and the user as an opaque serialized blob that is only decoded
// on read.
package credstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/accessflow/accessflow/internal/core/domain"
)

// Store reads and writes the persisted credentials. Implementations must treat
// corrupt stored data as absent, never as an error surfaced to the caller.
type Store interface {
	// Set persists token and user together; callers never observe one
	// updated without the other.
	Set(token string, user domain.User) error
	// Get returns the last persisted pair, or zero values when nothing was
	// stored or the stored record fails to parse.
	Get() (string, domain.User)
	Clear() error
}

type document struct {
	Token string          `json:"accessflow.token"`
	User  json.RawMessage `json:"accessflow.user"`
}

// FileStore is a Store backed by a single JSON file, written atomically via
// rename so a crash mid-write leaves the previous record intact.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Set(token string, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(document{Token: token, User: rawUser})
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Get() (string, domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user domain.User

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", user
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", user
	}

	// A corrupt user blob reads as an empty user; the token survives so the
	// caller still fails authentication cleanly instead of crashing.
	if len(doc.User) > 0 {
		if err := json.Unmarshal(doc.User, &user); err != nil {
			user = domain.User{}
		}
	}

	return doc.Token, user
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
