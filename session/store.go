// Package session owns the persisted authentication session: the identity
// and bearer token issued at login. The pair is stored together in a single
// JSON file so that neither value can ever be observed without the other.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Session is the persisted identity/token pair. The JSON keys mirror the
// backend's storage contract: access_token and current_username.
type Session struct {
	Identity string `json:"current_username"`
	Token    string `json:"access_token"`
}

const (
	// DefaultDirName is the dot-directory under the user's home dir.
	DefaultDirName = ".agentboard"

	sessionFile = "session.json"
)

// Store persists at most one Session under a directory. All writes go
// through a temp file followed by a rename, so readers see either the full
// previous pair or the full new pair, never a torn write.
type Store struct {
	mu  sync.Mutex
	dir string
}

// NewStore returns a Store rooted at dir. The directory is created lazily
// on the first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultStore returns a Store rooted at ~/.agentboard.
func DefaultStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewStore(filepath.Join(home, DefaultDirName)), nil
}

func (s *Store) path() string { return filepath.Join(s.dir, sessionFile) }

// Save persists the identity/token pair atomically. A subsequent Load
// returns exactly this pair until Clear or another Save.
func (s *Store) Save(identity, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(Session{Identity: identity, Token: token})
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, sessionFile+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path())
}

// Load returns the persisted Session, or nil when no usable session exists.
// A missing file, unreadable storage, malformed JSON, or a pair with either
// field empty all count as absent; storage trouble is never an error the
// caller has to branch on.
func (s *Store) Load() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path())
	if err != nil {
		return nil
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil
	}
	if sess.Identity == "" || sess.Token == "" {
		return nil
	}
	return &sess
}

// Clear removes the persisted session. Idempotent; clearing an absent
// session is success.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// LoadValid returns the persisted Session only if its token is still valid
// at now. An expired or undecodable token clears the store and reports
// absent, forcing re-authentication.
func (s *Store) LoadValid(now time.Time) *Session {
	sess := s.Load()
	if sess == nil {
		return nil
	}
	if !IsValid(sess.Token, now) {
		_ = s.Clear()
		return nil
	}
	return sess
}
