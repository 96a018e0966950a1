package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

const snapshotExt = ".session"

// FileStore persists one msgpack snapshot per session on the local
// filesystem. Writes go through a temp file and os.Rename so a session is
// either fully visible or not visible at all.
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(sessionId string) string {
	return filepath.Join(s.dir, sessionId+snapshotExt)
}

// Save persists the full session state. Re-saving the same session id
// overwrites the previous snapshot.
func (s *FileStore) Save(session *SessionIndex) error {
	data, err := msgpack.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", session.SessionId, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, session.SessionId+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path(session.SessionId)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("publishing snapshot: %w", err)
	}
	return nil
}

// Load reads a persisted session. Returns os.ErrNotExist (wrapped) when the
// session was never saved or has been deleted.
func (s *FileStore) Load(sessionId string) (*SessionIndex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(sessionId))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("session %s: %w", sessionId, os.ErrNotExist)
		}
		return nil, fmt.Errorf("reading snapshot %s: %w", sessionId, err)
	}

	var session SessionIndex
	if err := msgpack.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", sessionId, err)
	}
	return &session, nil
}

// Exists reports whether a snapshot for the session is currently visible.
func (s *FileStore) Exists(sessionId string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, err := os.Stat(s.path(sessionId))
	return err == nil
}

// List returns a summary for every persisted session, newest first.
// In-progress temp files are never listed.
func (s *FileStore) List() ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading index directory: %w", err)
	}

	summaries := make([]Summary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), snapshotExt) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			// Deleted between ReadDir and ReadFile; skip.
			continue
		}
		var session SessionIndex
		if err := msgpack.Unmarshal(data, &session); err != nil {
			continue
		}
		summaries = append(summaries, session.Summary())
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if !summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
		}
		return summaries[i].SessionId < summaries[j].SessionId
	})
	return summaries, nil
}

// Delete removes a persisted session. Deleting an absent session is not an
// error.
func (s *FileStore) Delete(sessionId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(sessionId)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting snapshot %s: %w", sessionId, err)
	}
	return nil
}
